package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hwgraph/pkg/buildinfo"
)

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Get()
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(appName))
			printKeyValue(w, "version", info.Version)
			printKeyValue(w, "commit", info.Commit)
			printKeyValue(w, "built", info.Date)
			printKeyValue(w, "go", info.GoVersion)
			return nil
		},
	}
}
