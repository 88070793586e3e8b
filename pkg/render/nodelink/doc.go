// Package nodelink renders hardware graphs as node-link diagrams.
//
// # Overview
//
// Each node of a component becomes a Graphviz node and each edge an arrow
// from the driver to the driven node. Layout runs left to right so inputs
// sit on the left and outputs on the right.
//
// # Usage
//
//	dot := nodelink.ToDOT(c, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Node Shapes
//
//   - Ports: rounded boxes, blue for inputs and green for outputs
//   - Signals: ellipses
//   - Literals: grey notes labelled with their value
//   - Parameters: dashed yellow hexagons
//   - Expressions: diamonds
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
