// Package render provides visualization output for hardware graphs.
//
// # Overview
//
// Graph diagrams are produced by the [nodelink] subpackage as Graphviz DOT
// and rendered in-process to SVG. This package holds the format conversion
// shared by all renderers.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(nodelink.ToDOT(c, nodelink.Options{}))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/hwgraph/pkg/render/nodelink
package render
