package node

import "github.com/matzehuels/hwgraph/pkg/types"

// Parameter is a compile-time value. Its effective value is whatever drives
// it, or its default literal when nothing does.
type Parameter struct {
	base
	normal
	def *Literal
}

// NewParameter creates a parameter. def may be nil.
func NewParameter(name string, typ *types.Type, def *Literal) *Parameter {
	return &Parameter{base: base{name: name, kind: KindParameter, typ: typ}, def: def}
}

// Default returns the default literal, if one was given.
func (p *Parameter) Default() (*Literal, bool) {
	return p.def, p.def != nil
}

// Value resolves the parameter: the source of the input edge if there is
// one, otherwise the default literal, otherwise nothing. It is evaluated on
// every call, so connecting or disconnecting the input takes effect at once.
func (p *Parameter) Value() (Node, bool) {
	if in, ok := p.Input(); ok && in.src != nil {
		return in.src, true
	}
	if p.def != nil {
		return p.def, true
	}
	return nil, false
}

// AddEdge registers e on p. A driving edge overrides the default in
// [Parameter.Value] until it is removed.
func (p *Parameter) AddEdge(e *Edge) bool { return p.addEdge(p, e) }

// RemoveEdge deregisters e. Removing the driver restores the default.
func (p *Parameter) RemoveEdge(e *Edge) bool { return p.removeEdge(p, e) }

// AddSink connects p as the driver of sink.
func (p *Parameter) AddSink(sink Node) (*Edge, error) { return Connect(sink, p) }

// AddSource connects src as the value of p.
func (p *Parameter) AddSource(src Node) (*Edge, error) { return Connect(p, src) }

// Copy returns a parameter sharing the same default literal, without edges.
func (p *Parameter) Copy() Node { return NewParameter(p.name, p.typ, p.def) }
