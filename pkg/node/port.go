package node

import "github.com/matzehuels/hwgraph/pkg/types"

// Port is a directional terminal of a component. It accepts at most one
// driver and may drive any number of sinks.
type Port struct {
	base
	normal
	Term
}

// NewPort creates a port.
func NewPort(name string, typ *types.Type, dir Dir) *Port {
	return &Port{
		base: base{name: name, kind: KindPort, typ: typ},
		Term: Term{dir: dir},
	}
}

// PortFromType creates a port named after its type.
func PortFromType(typ *types.Type, dir Dir) *Port {
	return NewPort(typ.Name(), typ, dir)
}

// InvertDirection flips the port direction in place and returns the port.
func (p *Port) InvertDirection() *Port {
	p.dir = p.dir.Invert()
	return p
}

// AddEdge registers e on p. A port fans out freely but holds at most one
// driving edge; a second one is refused.
func (p *Port) AddEdge(e *Edge) bool { return p.addEdge(p, e) }

// RemoveEdge deregisters e, checking outputs before the input slot.
func (p *Port) RemoveEdge(e *Edge) bool { return p.removeEdge(p, e) }

// AddSink connects p as the driver of sink.
func (p *Port) AddSink(sink Node) (*Edge, error) { return Connect(sink, p) }

// AddSource connects src as the driver of p. It fails with REJECTED when p
// is already driven.
func (p *Port) AddSource(src Node) (*Edge, error) { return Connect(p, src) }

// Copy returns a port with the same name, type and direction and no edges.
func (p *Port) Copy() Node { return NewPort(p.name, p.typ, p.dir) }
