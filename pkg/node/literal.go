package node

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/matzehuels/hwgraph/pkg/errors"
	"github.com/matzehuels/hwgraph/pkg/types"
)

// StorageKind tells which Go value a literal holds.
type StorageKind int

const (
	StorageBool StorageKind = iota
	StorageInt
	StorageString
)

func (s StorageKind) String() string {
	switch s {
	case StorageBool:
		return "bool"
	case StorageInt:
		return "int"
	case StorageString:
		return "string"
	}
	return fmt.Sprintf("StorageKind(%d)", int(s))
}

// Literal is a constant. It can drive any number of sinks but can never be
// driven itself.
type Literal struct {
	base
	multiOutput

	storage StorageKind
	boolVal bool
	intVal  int
	strVal  string

	// shared marks the process-wide boolean literals, which never hold edges.
	shared bool
}

func newLiteral(name string, typ *types.Type, storage StorageKind) *Literal {
	return &Literal{base: base{name: name, kind: KindLiteral, typ: typ}, storage: storage}
}

// NewBool creates a boolean literal.
func NewBool(name string, typ *types.Type, v bool) *Literal {
	l := newLiteral(name, typ, StorageBool)
	l.boolVal = v
	return l
}

// NewInt creates an integer literal.
func NewInt(name string, typ *types.Type, v int) *Literal {
	l := newLiteral(name, typ, StorageInt)
	l.intVal = v
	return l
}

// NewString creates a string literal.
func NewString(name string, typ *types.Type, v string) *Literal {
	l := newLiteral(name, typ, StorageString)
	l.strVal = v
	return l
}

// Int creates an integer literal of the built-in integer type named
// "int<v>".
func Int(v int) *Literal {
	return NewInt("int"+strconv.Itoa(v), types.Integer(), v)
}

// Str creates a string literal of the built-in string type named "str:<v>".
func Str(v string) *Literal {
	return NewString("str:"+v, types.String(), v)
}

func newShared(name string, v bool) *Literal {
	l := NewBool(name, types.Boolean(), v)
	l.shared = true
	return l
}

var (
	boolTrue  = sync.OnceValue(func() *Literal { return newShared("bool_true", true) })
	boolFalse = sync.OnceValue(func() *Literal { return newShared("bool_false", false) })
)

// BoolTrue returns the shared literal for true.
//
// The instance is process-wide and never changes. It refuses edges:
// [Connect] drives from a private copy instead, so the edge's Src is that
// copy, not the shared instance.
func BoolTrue() *Literal { return boolTrue() }

// BoolFalse returns the shared literal for false. See [BoolTrue].
func BoolFalse() *Literal { return boolFalse() }

// Shared reports whether l is one of the process-wide boolean literals.
func (l *Literal) Shared() bool { return l.shared }

// Storage returns the storage kind fixed at construction.
func (l *Literal) Storage() StorageKind { return l.storage }

// BoolValue returns the value of a boolean literal, or a STORAGE_KIND error.
func (l *Literal) BoolValue() (bool, error) {
	if l.storage != StorageBool {
		return false, l.storageErr(StorageBool)
	}
	return l.boolVal, nil
}

// IntValue returns the value of an integer literal, or a STORAGE_KIND error.
func (l *Literal) IntValue() (int, error) {
	if l.storage != StorageInt {
		return 0, l.storageErr(StorageInt)
	}
	return l.intVal, nil
}

// StringValue returns the value of a string literal, or a STORAGE_KIND error.
func (l *Literal) StringValue() (string, error) {
	if l.storage != StorageString {
		return "", l.storageErr(StorageString)
	}
	return l.strVal, nil
}

// Value returns the stored value as bool, int or string.
func (l *Literal) Value() any {
	switch l.storage {
	case StorageBool:
		return l.boolVal
	case StorageInt:
		return l.intVal
	default:
		return l.strVal
	}
}

func (l *Literal) storageErr(want StorageKind) error {
	return errors.New(errors.ErrCodeStorageKind, "literal %q stores %s, not %s", l.name, l.storage, want)
}

// String renders the value: "true"/"false", the decimal integer, or the
// string verbatim.
func (l *Literal) String() string {
	switch l.storage {
	case StorageBool:
		return strconv.FormatBool(l.boolVal)
	case StorageString:
		return l.strVal
	default:
		return strconv.Itoa(l.intVal)
	}
}

// AddEdge registers e as an output when l is its source. Shared literals
// refuse every edge.
func (l *Literal) AddEdge(e *Edge) bool {
	if l.shared {
		return false
	}
	return l.addOutput(l, e)
}

// RemoveEdge deregisters an output edge.
func (l *Literal) RemoveEdge(e *Edge) bool { return l.removeOutput(l, e) }

// Sources always returns nil.
func (l *Literal) Sources() []*Edge { return nil }

// AddSink connects l as the driver of sink. For a shared literal the edge
// starts at a private copy.
func (l *Literal) AddSink(sink Node) (*Edge, error) { return Connect(sink, l) }

// AddSource always fails with an IMMUTABLE_NODE error.
func (l *Literal) AddSource(src Node) (*Edge, error) {
	return nil, errors.New(errors.ErrCodeImmutableNode, "cannot drive literal %q", l.name)
}

// Copy duplicates the value, storage kind and type. The copy has no edges
// and is never shared.
func (l *Literal) Copy() Node {
	c := newLiteral(l.name, l.typ, l.storage)
	c.boolVal, c.intVal, c.strVal = l.boolVal, l.intVal, l.strVal
	return c
}
