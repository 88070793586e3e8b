package types

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Kind classifies a hardware type.
type Kind int

const (
	// KindBoolean is a single-bit truth value used for flags and generics.
	KindBoolean Kind = iota
	// KindInteger is an unbounded integer, typically a generic/parameter value.
	KindInteger
	// KindString is a string value, typically a generic/parameter value.
	KindString
	// KindBit is a single physical wire.
	KindBit
	// KindVector is a bundle of Width bits.
	KindVector
	// KindRecord is a composite of named fields.
	KindRecord
)

var kindNames = map[Kind]string{
	KindBoolean: "boolean",
	KindInteger: "integer",
	KindString:  "string",
	KindBit:     "bit",
	KindVector:  "vector",
	KindRecord:  "record",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name as produced by [Kind.String].
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, true
		}
	}
	return 0, false
}

// Field is a named member of a record type.
type Field struct {
	Name string
	Type *Type
}

// Type is an immutable descriptor of a value's hardware type.
//
// A *Type is shared by every node that carries it and is never modified after
// construction, so it may be referenced freely from any number of nodes.
// Compatibility checks live outside this package; only identity, [Equal]
// and the accessors below are provided.
type Type struct {
	name   string
	kind   Kind
	width  int
	fields []Field
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Kind returns the type classification.
func (t *Type) Kind() Kind { return t.kind }

// Width returns the number of bits for bit and vector types, the sum of the
// field widths for records, and 0 for the generic kinds.
func (t *Type) Width() int {
	if t.kind != KindRecord {
		return t.width
	}
	w := 0
	for _, f := range t.fields {
		w += f.Type.Width()
	}
	return w
}

// Fields returns a copy of the record fields, or nil for non-record types.
func (t *Type) Fields() []Field { return slices.Clone(t.fields) }

// IsGeneric reports whether values of this type are compile-time only
// (booleans, integers and strings).
func (t *Type) IsGeneric() bool {
	return t.kind == KindBoolean || t.kind == KindInteger || t.kind == KindString
}

func (t *Type) String() string {
	switch t.kind {
	case KindVector:
		return fmt.Sprintf("%s[%d]", t.name, t.width)
	case KindRecord:
		names := make([]string, len(t.fields))
		for i, f := range t.fields {
			names[i] = f.Name + ":" + f.Type.Name()
		}
		return fmt.Sprintf("%s{%s}", t.name, strings.Join(names, ", "))
	default:
		return t.name
	}
}

// Equal reports whether a and b describe the same type. Identical pointers are
// always equal; otherwise name, kind, width and fields are compared.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.name != b.name || a.kind != b.kind || a.width != b.width || len(a.fields) != len(b.fields) {
		return false
	}
	for i := range a.fields {
		if a.fields[i].Name != b.fields[i].Name || !Equal(a.fields[i].Type, b.fields[i].Type) {
			return false
		}
	}
	return true
}

var (
	boolean = sync.OnceValue(func() *Type { return &Type{name: "boolean", kind: KindBoolean, width: 1} })
	integer = sync.OnceValue(func() *Type { return &Type{name: "integer", kind: KindInteger} })
	str     = sync.OnceValue(func() *Type { return &Type{name: "string", kind: KindString} })
	bit     = sync.OnceValue(func() *Type { return &Type{name: "bit", kind: KindBit, width: 1} })
)

// Boolean returns the shared boolean type.
func Boolean() *Type { return boolean() }

// Integer returns the shared integer type.
func Integer() *Type { return integer() }

// String returns the shared string type.
func String() *Type { return str() }

// Bit returns the shared single-bit type.
func Bit() *Type { return bit() }

// Vector creates a vector type of the given width. Width must be positive.
func Vector(name string, width int) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("vector type name must not be empty")
	}
	if width <= 0 {
		return nil, fmt.Errorf("vector %q: width must be positive, got %d", name, width)
	}
	return &Type{name: name, kind: KindVector, width: width}, nil
}

// Record creates a composite type. Field names must be unique and non-empty.
func Record(name string, fields ...Field) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("record type name must not be empty")
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" || f.Type == nil {
			return nil, fmt.Errorf("record %q: fields need a name and a type", name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("record %q: duplicate field %q", name, f.Name)
		}
		seen[f.Name] = true
	}
	return &Type{name: name, kind: KindRecord, fields: slices.Clone(fields)}, nil
}

// Lookup returns the built-in type with the given name ("boolean", "bool",
// "integer", "int", "string", "bit").
func Lookup(name string) (*Type, bool) {
	switch strings.ToLower(name) {
	case "boolean", "bool":
		return Boolean(), true
	case "integer", "int":
		return Integer(), true
	case "string":
		return String(), true
	case "bit":
		return Bit(), true
	}
	return nil, false
}
