package node

import (
	"github.com/google/uuid"

	"github.com/matzehuels/hwgraph/pkg/errors"
)

// Edge is a directed connection from a driving node (source) to a driven
// node (destination).
//
// Edges are created by [Connect]. An edge only becomes part of the graph when
// both endpoints have accepted it; Connect never returns an edge that one of
// its endpoints refused.
type Edge struct {
	id  uuid.UUID
	src Node
	dst Node
}

func newEdge(dst, src Node) *Edge {
	return &Edge{id: uuid.New(), src: src, dst: dst}
}

// ID returns the identifier assigned when the edge was created.
func (e *Edge) ID() uuid.UUID { return e.id }

// Src returns the driving node, or nil.
func (e *Edge) Src() Node { return e.src }

// Dst returns the driven node, or nil.
func (e *Edge) Dst() Node { return e.dst }

// String renders the edge as "src -> dst".
func (e *Edge) String() string {
	return endpointName(e.src) + " -> " + endpointName(e.dst)
}

func endpointName(n Node) string {
	if n == nil {
		return "<none>"
	}
	return n.Name()
}

// Connect creates an edge in which src drives dst and registers it with both
// nodes.
//
// Errors:
//   - INVALID_INPUT if either node is nil.
//   - IMMUTABLE_NODE if dst is a literal. This is a builder bug.
//   - REJECTED if dst == src, or if either endpoint refuses the edge under
//     its fan-in/fan-out policy (typically: dst already has a driver).
//
// A shared boolean literal ([BoolTrue], [BoolFalse]) is replaced by a copy
// before connecting, so the returned edge's Src is that copy.
//
// On error the graph is left unchanged.
func Connect(dst, src Node) (*Edge, error) {
	if dst == nil || src == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "connect: source and destination are required")
	}
	if dst.Kind() == KindLiteral {
		return nil, errors.New(errors.ErrCodeImmutableNode, "cannot drive literal %q", dst.Name())
	}
	if dst == src {
		return nil, errors.New(errors.ErrCodeRejected, "%s %q cannot drive itself", dst.Kind(), dst.Name())
	}

	if l, ok := src.(*Literal); ok && l.shared {
		src = l.Copy()
	}

	e := newEdge(dst, src)
	if !src.AddEdge(e) {
		return nil, errors.New(errors.ErrCodeRejected, "%s %q refused edge to %q", src.Kind(), src.Name(), dst.Name())
	}
	if !dst.AddEdge(e) {
		src.RemoveEdge(e)
		if in := dst.Sources(); len(in) > 0 {
			return nil, errors.New(errors.ErrCodeRejected, "%s %q is already driven by %q", dst.Kind(), dst.Name(), endpointName(in[0].src))
		}
		return nil, errors.New(errors.ErrCodeRejected, "%s %q refused edge from %q", dst.Kind(), dst.Name(), src.Name())
	}
	return e, nil
}

// Disconnect removes e from both of its endpoints and reports whether either
// endpoint held it.
func Disconnect(e *Edge) bool {
	if e == nil {
		return false
	}
	removed := false
	if e.src != nil && e.src.RemoveEdge(e) {
		removed = true
	}
	if e.dst != nil && e.dst.RemoveEdge(e) {
		removed = true
	}
	return removed
}
