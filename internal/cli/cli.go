// Package cli implements the hwgraph command-line interface.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hwgraph/internal/config"
	"github.com/matzehuels/hwgraph/pkg/buildinfo"
	"github.com/matzehuels/hwgraph/pkg/component"
	"github.com/matzehuels/hwgraph/pkg/errors"
	hwio "github.com/matzehuels/hwgraph/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and the config file.
const appName = "hwgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// The persistent --config flag names an optional settings file; HWGRAPH_*
// environment variables override it. The loaded log level applies unless
// the caller raises it afterwards (main does so for --verbose).
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "hwgraph inspects and converts hardware netlist graphs",
		Long:         `hwgraph loads hardware netlist graphs (ports, signals, literals, parameters and expressions connected by single-driver edges), checks them, and converts them between JSON, TOML and Graphviz diagrams.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			for _, w := range cfg.Validate() {
				c.Logger.Warn(w)
			}
			c.Config = cfg
			c.SetLogLevel(cfg.LogLevel())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (json, toml or yaml)")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Loading
// =============================================================================

// inputFormat infers the document format from a file extension.
func inputFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return config.FormatJSON, nil
	case ".toml":
		return config.FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format of %s: use a .json or .toml file", path)
}

// loadComponent reads a graph document from path.
func loadComponent(path string) (*component.Component, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := inputFormat(path)
	if err != nil {
		return nil, err
	}
	var c *component.Component
	switch format {
	case config.FormatJSON:
		c, err = hwio.ImportJSON(path)
	case config.FormatTOML:
		c, err = hwio.LoadTOML(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}
