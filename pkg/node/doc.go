// Package node provides the vertices and edges of a hardware netlist graph.
//
// # Overview
//
// A graph is made of typed nodes connected by directed edges. An edge goes
// from the node that drives a value (its source) to the node that receives
// it (its destination). The package enforces the basic netlist rule at the
// data-structure level: a node may drive any number of sinks, but it is
// driven by at most one source.
//
// # Node Variants
//
//   - [Port]: a terminal of a component with a [Dir] (in, out or none)
//   - [Signal]: an internal wire
//   - [Literal]: a constant bool, int or string; can never be driven
//   - [Parameter]: a compile-time value with an optional default literal
//   - [Expression]: a computed value; evaluation happens elsewhere
//
// All variants satisfy the sealed [Node] interface. Use a type switch or the
// checked casts [AsPort], [AsSignal], [AsLiteral], [AsParameter] and
// [AsExpression] to recover variant-specific fields.
//
// # Connecting Nodes
//
// [Connect] is the only way to link two nodes:
//
//	a := node.NewSignal("a", types.Bit())
//	b := node.NewPort("b", types.Bit(), node.DirOut)
//	e, err := node.Connect(b, a) // a drives b
//
// [Node.AddSink] and [Node.AddSource] are shorthands for the two argument
// orders. Connect asks both endpoints to accept the edge via [Node.AddEdge].
// If either refuses, the partial registration is undone and a REJECTED error
// from [github.com/matzehuels/hwgraph/pkg/errors] is returned. Driving a
// literal is an invalid operation and yields IMMUTABLE_NODE instead.
//
// A node that already has a driver rejects a second one; remove the first
// with [Disconnect] before connecting another.
//
// # Parameters
//
// [Parameter.Value] resolves to the node driving the parameter, or to its
// default literal when nothing drives it. The lookup is done on every call.
//
// # Copies
//
// [Node.Copy] duplicates a node's value attributes (name, kind, type,
// direction, literal value, parameter default) but never its edges.
//
// # Concurrency
//
// Nodes are not safe for concurrent mutation. The built-in literals returned
// by [BoolTrue] and [BoolFalse] are created once, safely, on first use, and
// never hold edges afterwards: [Connect] drives from a copy, so the shared
// instances can be read from any goroutine.
package node
