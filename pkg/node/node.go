package node

import (
	"fmt"
	"strings"

	"github.com/matzehuels/hwgraph/pkg/errors"
	"github.com/matzehuels/hwgraph/pkg/types"
)

// Kind identifies the concrete variant of a node. It is fixed at
// construction and always agrees with the node's Go type.
type Kind int

const (
	// KindPort is a directional terminal of a component.
	KindPort Kind = iota
	// KindSignal is an internal wire.
	KindSignal
	// KindLiteral is a constant value that can never be driven.
	KindLiteral
	// KindParameter is a compile-time value with an optional default.
	KindParameter
	// KindExpression is a computed value evaluated elsewhere.
	KindExpression
)

var kindNames = [...]string{
	KindPort:       "Port",
	KindSignal:     "Signal",
	KindLiteral:    "Literal",
	KindParameter:  "Parameter",
	KindExpression: "Expression",
}

// String returns the kind name, e.g. "Port".
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name (case-insensitive) back to a Kind.
// Unknown names are an invalid operation and yield an UNSUPPORTED_KIND error.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return Kind(k), nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnsupportedKind, "unsupported node kind %q", s)
}

// Node is a vertex of the hardware graph.
//
// Every node can drive any number of edges. Whether and how many inbound
// edges it accepts depends on the variant: ports, signals, parameters and
// expressions take at most one, literals take none.
//
// The interface is sealed; the variants are [Port], [Signal], [Literal],
// [Parameter] and [Expression].
type Node interface {
	Name() string
	Kind() Kind
	Type() *types.Type

	// AddEdge registers e as an output (when this node is its source) or as
	// the input (when this node is its destination and the variant allows
	// it). It reports whether e was accepted. Rejection is a normal outcome.
	AddEdge(e *Edge) bool
	// RemoveEdge deregisters a previously accepted edge and reports whether
	// it was found.
	RemoveEdge(e *Edge) bool

	// Sinks returns the accepted output edges in insertion order.
	Sinks() []*Edge
	// Sources returns the accepted input edge, if any, as a slice of length
	// zero or one.
	Sources() []*Edge

	// AddSink connects this node as the driver of sink.
	AddSink(sink Node) (*Edge, error)
	// AddSource connects src as the driver of this node.
	AddSource(src Node) (*Edge, error)

	// Copy returns an independent node with the same name, kind, type and
	// variant attributes but without any edges.
	Copy() Node

	String() string

	sealed()
}

// base holds the attributes shared by every variant.
type base struct {
	name string
	kind Kind
	typ  *types.Type
}

func (b *base) Name() string      { return b.name }
func (b *base) Kind() Kind        { return b.kind }
func (b *base) Type() *types.Type { return b.typ }
func (b *base) String() string    { return b.name }
func (b *base) sealed()           {}

func as[T Node](n Node, want Kind) (T, error) {
	var zero T
	if n == nil {
		return zero, errors.New(errors.ErrCodeInvalidCast, "cannot cast nil node to %s", want)
	}
	t, ok := n.(T)
	if !ok {
		return zero, errors.New(errors.ErrCodeInvalidCast, "node %q is a %s, not a %s", n.Name(), n.Kind(), want)
	}
	return t, nil
}

// AsPort recovers the *Port behind n, or an INVALID_CAST error.
func AsPort(n Node) (*Port, error) { return as[*Port](n, KindPort) }

// AsSignal recovers the *Signal behind n, or an INVALID_CAST error.
func AsSignal(n Node) (*Signal, error) { return as[*Signal](n, KindSignal) }

// AsLiteral recovers the *Literal behind n, or an INVALID_CAST error.
func AsLiteral(n Node) (*Literal, error) { return as[*Literal](n, KindLiteral) }

// AsParameter recovers the *Parameter behind n, or an INVALID_CAST error.
func AsParameter(n Node) (*Parameter, error) { return as[*Parameter](n, KindParameter) }

// AsExpression recovers the *Expression behind n, or an INVALID_CAST error.
func AsExpression(n Node) (*Expression, error) { return as[*Expression](n, KindExpression) }
