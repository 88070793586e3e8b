// Package pkg provides the libraries behind hwgraph, a graph model for
// hardware netlists.
//
// # Overview
//
// A hardware design is described as a graph: typed nodes (ports, signals,
// literals, parameters and expressions) joined by directed edges that run
// from a driver to the node it drives. Every node may drive any number of
// sinks but is driven by at most one source, and literals are never driven.
//
// # Architecture
//
//	JSON / TOML document
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [component] package (named nodes and their edges)
//	         ↓
//	    [node] package (variants, edges, fan-in/fan-out policy)
//	         ↓
//	    [render/nodelink] package (Graphviz DOT, SVG/PDF/PNG)
//
// # Quick Start
//
//	c := component.New("buf")
//	_ = c.Add(
//	    node.NewPort("a", types.Bit(), node.DirIn),
//	    node.NewPort("y", types.Bit(), node.DirOut),
//	)
//	if _, err := c.Connect("y", "a"); err != nil {
//	    // errors.Is(err, errors.ErrCodeRejected) when y already has a driver
//	}
//	_ = io.WriteJSON(c, os.Stdout)
//
// # Main Packages
//
//   - [types]: immutable hardware type descriptors
//   - [node]: graph vertices, edges and [node.Connect]
//   - [component]: a named collection of nodes with edge bookkeeping
//   - [io]: JSON and TOML import/export
//   - [render/nodelink]: node-link diagrams via Graphviz
//   - [errors]: coded errors shared by every package
//   - [buildinfo]: version information set at build time
//
// [types]: github.com/matzehuels/hwgraph/pkg/types
// [node]: github.com/matzehuels/hwgraph/pkg/node
// [component]: github.com/matzehuels/hwgraph/pkg/component
// [io]: github.com/matzehuels/hwgraph/pkg/io
// [render/nodelink]: github.com/matzehuels/hwgraph/pkg/render/nodelink
// [errors]: github.com/matzehuels/hwgraph/pkg/errors
// [buildinfo]: github.com/matzehuels/hwgraph/pkg/buildinfo
package pkg
