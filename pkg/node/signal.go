package node

import "github.com/matzehuels/hwgraph/pkg/types"

// Signal is a directionless internal wire.
type Signal struct {
	base
	normal
}

// NewSignal creates a signal.
func NewSignal(name string, typ *types.Type) *Signal {
	return &Signal{base: base{name: name, kind: KindSignal, typ: typ}}
}

// SignalFromType creates a signal named "<type>_signal".
func SignalFromType(typ *types.Type) *Signal {
	return NewSignal(typ.Name()+"_signal", typ)
}

// AddEdge registers e on s, as an output or as the single driver.
func (s *Signal) AddEdge(e *Edge) bool { return s.addEdge(s, e) }

// RemoveEdge deregisters e from s.
func (s *Signal) RemoveEdge(e *Edge) bool { return s.removeEdge(s, e) }

// AddSink connects s as the driver of sink.
func (s *Signal) AddSink(sink Node) (*Edge, error) { return Connect(sink, s) }

// AddSource connects src as the driver of s.
func (s *Signal) AddSource(src Node) (*Edge, error) { return Connect(s, src) }

// Copy returns an unconnected signal with the same name and type.
func (s *Signal) Copy() Node { return NewSignal(s.name, s.typ) }
