package node

import "slices"

// multiOutput implements unrestricted fan-out. Variants pass themselves as
// self so that edge endpoints can be compared by identity.
type multiOutput struct {
	outputs []*Edge
}

// addOutput accepts e iff self is its source and e is not yet registered.
func (m *multiOutput) addOutput(self Node, e *Edge) bool {
	if e == nil || e.src == nil || e.src != self {
		return false
	}
	if slices.Contains(m.outputs, e) {
		return false
	}
	m.outputs = append(m.outputs, e)
	return true
}

func (m *multiOutput) removeOutput(self Node, e *Edge) bool {
	if e == nil || e.src == nil || e.src != self {
		return false
	}
	i := slices.Index(m.outputs, e)
	if i < 0 {
		return false
	}
	m.outputs = slices.Delete(m.outputs, i, i+1)
	return true
}

func (m *multiOutput) Sinks() []*Edge { return slices.Clone(m.outputs) }

// normal adds a single input slot on top of multiOutput.
//
// A held input is never overwritten: a second inbound edge is rejected until
// the first one is removed.
type normal struct {
	multiOutput
	input *Edge
}

func (n *normal) addEdge(self Node, e *Edge) bool {
	if n.addOutput(self, e) {
		return true
	}
	if e == nil || e.dst == nil || e.dst != self {
		return false
	}
	if n.input != nil {
		return false
	}
	n.input = e
	return true
}

func (n *normal) removeEdge(self Node, e *Edge) bool {
	if n.removeOutput(self, e) {
		return true
	}
	if e == nil || e.dst != self || n.input != e {
		return false
	}
	n.input = nil
	return true
}

// Input returns the edge driving this node, if any.
func (n *normal) Input() (*Edge, bool) {
	return n.input, n.input != nil
}

func (n *normal) Sources() []*Edge {
	if n.input == nil {
		return nil
	}
	return []*Edge{n.input}
}
