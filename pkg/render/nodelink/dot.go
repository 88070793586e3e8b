package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hwgraph/pkg/component"
	"github.com/matzehuels/hwgraph/pkg/node"
	"github.com/matzehuels/hwgraph/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the kind, type and variant attributes to node labels.
	// When false, ports, signals, parameters and expressions show their name
	// and literals show their value.
	Detailed bool
}

// ToDOT converts a component to Graphviz DOT format. Edges point from the
// driving node to the driven one. The resulting DOT string can be rendered
// using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(c *component.Component, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", c.Name())
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range c.Nodes() {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range c.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Src().Name(), e.Dst().Name())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n node.Node, detailed bool) string {
	if !detailed {
		return n.String()
	}

	parts := []string{"kind: " + strings.ToLower(n.Kind().String())}
	if t := n.Type(); t != nil {
		parts = append(parts, "type: "+t.String())
	}
	switch v := n.(type) {
	case *node.Port:
		parts = append(parts, "dir: "+v.Dir().String())
	case *node.Expression:
		if v.Op() != "" {
			parts = append(parts, "op: "+v.Op())
		}
	case *node.Literal:
		parts = append(parts, "value: "+v.String())
	case *node.Parameter:
		if def, ok := v.Default(); ok {
			parts = append(parts, "default: "+def.String())
		}
	}

	return n.Name() + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n node.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch v := n.(type) {
	case *node.Port:
		switch v.Dir() {
		case node.DirIn:
			attrs = append(attrs, "fillcolor=lightblue")
		case node.DirOut:
			attrs = append(attrs, "fillcolor=palegreen")
		}
	case *node.Signal:
		attrs = append(attrs, "shape=ellipse", "style=filled")
	case *node.Literal:
		attrs = append(attrs, "shape=note", "style=filled", "fillcolor=lightgrey")
	case *node.Parameter:
		attrs = append(attrs, "shape=hexagon", "style=\"filled,dashed\"", "fillcolor=lightyellow")
	case *node.Expression:
		attrs = append(attrs, "shape=diamond", "style=filled")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
