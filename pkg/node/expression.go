package node

import "github.com/matzehuels/hwgraph/pkg/types"

// Expression is a computed value. It connects like a signal; how its value
// is derived from Op is up to the evaluator that consumes the graph.
type Expression struct {
	base
	normal
	op string
}

// NewExpression creates an expression node. op is an opaque operator label.
func NewExpression(name string, typ *types.Type, op string) *Expression {
	return &Expression{base: base{name: name, kind: KindExpression, typ: typ}, op: op}
}

// Op returns the operator label given at construction.
func (x *Expression) Op() string { return x.op }

// AddEdge registers e on x. Like signals, an expression has one input
// slot and any number of outputs.
func (x *Expression) AddEdge(e *Edge) bool { return x.addEdge(x, e) }

// RemoveEdge deregisters e from x.
func (x *Expression) RemoveEdge(e *Edge) bool { return x.removeEdge(x, e) }

// AddSink connects x as the driver of sink.
func (x *Expression) AddSink(sink Node) (*Edge, error) { return Connect(sink, x) }

// AddSource connects src as the driver of x.
func (x *Expression) AddSource(src Node) (*Edge, error) { return Connect(x, src) }

// Copy keeps the name, type and operator; edges are dropped.
func (x *Expression) Copy() Node { return NewExpression(x.name, x.typ, x.op) }
