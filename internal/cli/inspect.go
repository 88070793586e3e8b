package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hwgraph/pkg/component"
	"github.com/matzehuels/hwgraph/pkg/node"
)

// inspectCommand creates the inspect command for summarizing a graph file.
func (c *CLI) inspectCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect [graph.json|graph.toml]",
		Short: "Summarize and check a graph document",
		Long: `Summarize and check a graph document.

The inspect command loads a JSON or TOML graph, prints node counts per kind
and the number of edges, lists signals and output ports that nothing drives,
and checks that every edge is registered with both of its endpoints.

Loading already enforces the single-driver rule, so a document that tries to
connect two drivers to the same node fails with a REJECTED error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), cmd.OutOrStdout(), args[0], verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "nodes", "n", false, "list every node with its type")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, w io.Writer, input string, listNodes bool) error {
	logger := loggerFromContext(ctx)
	st := newStage(logger, "input", input)

	comp, err := loadComponent(input)
	if err != nil {
		return err
	}
	st.done("loaded", "name", comp.Name(), "nodes", comp.NodeCount(), "edges", comp.EdgeCount())

	fmt.Fprintln(w, StyleTitle.Render(comp.Name()))
	printStats(w, comp.NodeCount(), comp.EdgeCount(), len(comp.Unconnected()))
	fmt.Fprintln(w)

	for _, k := range []node.Kind{node.KindPort, node.KindSignal, node.KindLiteral, node.KindParameter, node.KindExpression} {
		n := len(comp.NodesOfKind(k))
		if n == 0 {
			continue
		}
		printKeyValue(w, strings.ToLower(k.String())+"s", StyleNumber.Render(fmt.Sprint(n))+kindBreakdown(comp, k))
	}

	if listNodes {
		fmt.Fprintln(w)
		printInfo(w, "nodes in declaration order")
		for _, n := range comp.Nodes() {
			printDetail(w, "%s", describeNode(n))
		}
	}

	fmt.Fprintln(w)
	for _, n := range comp.Unconnected() {
		printWarning(w, "%s %s is not driven", strings.ToLower(n.Kind().String()), n.Name())
	}
	if err := comp.Validate(); err != nil {
		return fmt.Errorf("inconsistent graph: %w", err)
	}
	printSuccess(w, "graph is consistent")
	printNextStep(w, "Render it", fmt.Sprintf("%s export %s -f svg -o %s.svg", appName, input, comp.Name()))
	return nil
}

// kindBreakdown adds per-direction counts for ports and resolved counts for
// parameters.
func kindBreakdown(comp *component.Component, k node.Kind) string {
	switch k {
	case node.KindPort:
		counts := map[node.Dir]int{}
		for _, p := range comp.Ports() {
			counts[p.Dir()]++
		}
		return StyleDim.Render(fmt.Sprintf(" (%d in, %d out, %d none)", counts[node.DirIn], counts[node.DirOut], counts[node.DirNone]))
	case node.KindParameter:
		resolved := 0
		for _, p := range comp.Parameters() {
			if _, ok := p.Value(); ok {
				resolved++
			}
		}
		return StyleDim.Render(fmt.Sprintf(" (%d with a value)", resolved))
	}
	return ""
}

// describeNode renders a one-line summary of n for the node listing.
func describeNode(n node.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %s", strings.ToLower(n.Kind().String()), n.Name())
	if t := n.Type(); t != nil {
		fmt.Fprintf(&b, " : %s", t)
	}
	switch v := n.(type) {
	case *node.Port:
		fmt.Fprintf(&b, " [%s]", v.Dir())
	case *node.Literal:
		fmt.Fprintf(&b, " = %s", v)
	case *node.Parameter:
		if val, ok := v.Value(); ok {
			fmt.Fprintf(&b, " = %s", val)
		}
	case *node.Expression:
		if v.Op() != "" {
			fmt.Fprintf(&b, " (%s)", v.Op())
		}
	}
	if src := n.Sources(); len(src) > 0 {
		fmt.Fprintf(&b, " <- %s", src[0].Src().Name())
	}
	return b.String()
}
