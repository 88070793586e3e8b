package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hwgraph/internal/config"
	"github.com/matzehuels/hwgraph/pkg/component"
	"github.com/matzehuels/hwgraph/pkg/errors"
	hwio "github.com/matzehuels/hwgraph/pkg/io"
	"github.com/matzehuels/hwgraph/pkg/render/nodelink"
)

// exportOptions holds the resolved flags of one export run.
type exportOptions struct {
	format   string
	output   string
	detailed bool
	scale    float64
}

// exportCommand creates the export command for converting a graph document.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export [graph.json|graph.toml]",
		Short: "Convert a graph to another format",
		Long: `Convert a graph to another format.

Supported formats are json and toml (round-trippable documents), dot
(Graphviz source), and svg, pdf or png diagrams. Text formats are written to
stdout unless --output is given; pdf and png need an output file and require
librsvg (rsvg-convert).

Defaults for --format, --detailed and --scale come from the config file and
HWGRAPH_EXPORT_* environment variables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("format") {
				opts.format = c.Config.Export.Format
			}
			if !flags.Changed("detailed") {
				opts.detailed = c.Config.Export.Detailed
			}
			if !flags.Changed("scale") {
				opts.scale = c.Config.Export.Scale
			}
			return c.runExport(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatJSON, "output format: "+strings.Join(config.Formats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for text formats)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include kinds, types and values in diagram labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2.0, "png scale factor")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, w io.Writer, input string, opts exportOptions) error {
	logger := loggerFromContext(ctx)

	opts.format = strings.ToLower(opts.format)
	if !slices.Contains(config.Formats, opts.format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (use %s)", opts.format, strings.Join(config.Formats, ", "))
	}
	binary := opts.format == config.FormatPDF || opts.format == config.FormatPNG
	if binary && opts.output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "%s output needs --output", opts.format)
	}
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}

	comp, err := loadComponent(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded graph", "name", comp.Name(), "nodes", comp.NodeCount(), "edges", comp.EdgeCount())

	st := newStage(logger, "component", comp.Name())
	data, err := encode(comp, opts)
	if err != nil {
		return fmt.Errorf("export %s: %w", opts.format, err)
	}
	st.done("encoded", "format", opts.format, "bytes", len(data))

	if opts.output == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(w, "Exported %s", comp.Name())
	printFile(w, opts.output)
	return nil
}

// encode renders comp in the requested format.
func encode(comp *component.Component, opts exportOptions) ([]byte, error) {
	var buf bytes.Buffer
	switch opts.format {
	case config.FormatJSON:
		if err := hwio.WriteJSON(comp, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case config.FormatTOML:
		if err := hwio.WriteTOML(comp, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	dot := nodelink.ToDOT(comp, nodelink.Options{Detailed: opts.detailed})
	switch opts.format {
	case config.FormatDOT:
		return []byte(dot), nil
	case config.FormatSVG:
		return nodelink.RenderSVG(dot)
	case config.FormatPDF:
		return nodelink.RenderPDF(dot)
	case config.FormatPNG:
		return nodelink.RenderPNG(dot, opts.scale)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", opts.format)
}
