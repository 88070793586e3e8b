package io

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/hwgraph/pkg/component"
	"github.com/matzehuels/hwgraph/pkg/errors"
	"github.com/matzehuels/hwgraph/pkg/node"
	"github.com/matzehuels/hwgraph/pkg/types"
)

// document is the serialized form shared by the JSON and TOML codecs.
type document struct {
	Name  string     `json:"name" toml:"name" validate:"required"`
	Types []typeDecl `json:"types,omitempty" toml:"types,omitempty" validate:"dive"`
	Nodes []nodeDecl `json:"nodes" toml:"nodes" validate:"dive"`
	Edges []edgeDecl `json:"edges" toml:"edges" validate:"dive"`
}

type typeDecl struct {
	Name   string      `json:"name" toml:"name" validate:"required"`
	Kind   string      `json:"kind" toml:"kind" validate:"required,oneof=vector record"`
	Width  int         `json:"width,omitempty" toml:"width,omitempty" validate:"gte=0"`
	Fields []fieldDecl `json:"fields,omitempty" toml:"fields,omitempty" validate:"dive"`
}

type fieldDecl struct {
	Name string `json:"name" toml:"name" validate:"required"`
	Type string `json:"type" toml:"type" validate:"required"`
}

type nodeDecl struct {
	Name    string     `json:"name" toml:"name" validate:"required"`
	Kind    string     `json:"kind" toml:"kind" validate:"required,oneof=port signal literal parameter expression"`
	Type    string     `json:"type,omitempty" toml:"type,omitempty" validate:"required_unless=Kind literal"`
	Dir     string     `json:"dir,omitempty" toml:"dir,omitempty" validate:"omitempty,oneof=in out none"`
	Op      string     `json:"op,omitempty" toml:"op,omitempty"`
	Value   any        `json:"value,omitempty" toml:"value"`
	Default *valueDecl `json:"default,omitempty" toml:"default,omitempty"`
}

type valueDecl struct {
	Name  string `json:"name,omitempty" toml:"name,omitempty"`
	Type  string `json:"type,omitempty" toml:"type,omitempty"`
	Value any    `json:"value" toml:"value"`
}

type edgeDecl struct {
	ID  string `json:"id,omitempty" toml:"id,omitempty"`
	Src string `json:"src" toml:"src" validate:"required"`
	Dst string `json:"dst" toml:"dst" validate:"required"`
}

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// build validates d and constructs the component it describes.
func (d *document) build() (*component.Component, error) {
	if err := validate().Struct(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid graph document")
	}

	declared, err := resolveTypes(d.Types)
	if err != nil {
		return nil, err
	}
	lookup := func(name string) (*types.Type, error) {
		if t, ok := types.Lookup(name); ok {
			return t, nil
		}
		if t, ok := declared[name]; ok {
			return t, nil
		}
		return nil, errors.New(errors.ErrCodeNotFound, "unknown type %q", name)
	}

	c := component.New(d.Name)
	for _, nd := range d.Nodes {
		n, err := nd.toNode(lookup)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", nd.Name, err)
		}
		if err := c.Add(n); err != nil {
			return nil, fmt.Errorf("node %s: %w", nd.Name, err)
		}
	}
	for _, ed := range d.Edges {
		if _, err := c.Connect(ed.Dst, ed.Src); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", ed.Src, ed.Dst, err)
		}
	}
	return c, nil
}

// resolveTypes builds declared types in order; a record may only refer to
// built-in types and types declared before it.
func resolveTypes(decls []typeDecl) (map[string]*types.Type, error) {
	out := make(map[string]*types.Type, len(decls))
	for _, td := range decls {
		if _, exists := out[td.Name]; exists {
			return nil, errors.New(errors.ErrCodeDuplicate, "type %q declared twice", td.Name)
		}
		if _, builtin := types.Lookup(td.Name); builtin {
			return nil, errors.New(errors.ErrCodeDuplicate, "type %q shadows a built-in type", td.Name)
		}
		kind, ok := types.ParseKind(td.Kind)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "type %s: unknown kind %q", td.Name, td.Kind)
		}
		var (
			t   *types.Type
			err error
		)
		switch kind {
		case types.KindVector:
			t, err = types.Vector(td.Name, td.Width)
		case types.KindRecord:
			fields := make([]types.Field, len(td.Fields))
			for i, f := range td.Fields {
				ft, ok := types.Lookup(f.Type)
				if !ok {
					ft, ok = out[f.Type]
				}
				if !ok {
					return nil, errors.New(errors.ErrCodeNotFound, "type %s: unknown field type %q", td.Name, f.Type)
				}
				fields[i] = types.Field{Name: f.Name, Type: ft}
			}
			t, err = types.Record(td.Name, fields...)
		default:
			err = fmt.Errorf("kind %s cannot be declared", kind)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "type %s", td.Name)
		}
		out[td.Name] = t
	}
	return out, nil
}

func (nd nodeDecl) toNode(lookup func(string) (*types.Type, error)) (node.Node, error) {
	kind, err := node.ParseKind(nd.Kind)
	if err != nil {
		return nil, err
	}

	var typ *types.Type
	if nd.Type != "" {
		if typ, err = lookup(nd.Type); err != nil {
			return nil, err
		}
	}

	switch kind {
	case node.KindPort:
		dir, err := node.ParseDir(nd.Dir)
		if err != nil {
			return nil, err
		}
		return node.NewPort(nd.Name, typ, dir), nil
	case node.KindSignal:
		return node.NewSignal(nd.Name, typ), nil
	case node.KindExpression:
		return node.NewExpression(nd.Name, typ, nd.Op), nil
	case node.KindLiteral:
		return literalFromValue(nd.Name, typ, nd.Value)
	case node.KindParameter:
		var def *node.Literal
		if nd.Default != nil {
			var defType *types.Type
			if nd.Default.Type != "" {
				if defType, err = lookup(nd.Default.Type); err != nil {
					return nil, err
				}
			}
			name := nd.Default.Name
			if name == "" {
				name = nd.Name + "_default"
			}
			if def, err = literalFromValue(name, defType, nd.Default.Value); err != nil {
				return nil, err
			}
		}
		return node.NewParameter(nd.Name, typ, def), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupportedKind, "unsupported node kind %q", nd.Kind)
}

// literalFromValue builds a literal from a decoded value. JSON numbers
// arrive as json.Number, TOML integers as int64 and TOML floats as float64;
// all must be integers that fit in int.
// When typ is nil the built-in type matching the value is used.
//
// Values are checked here rather than with validator tags because
// "required" treats false and 0 as missing.
func literalFromValue(name string, typ *types.Type, v any) (*node.Literal, error) {
	switch x := v.(type) {
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "literal %s: missing value", name)
	case bool:
		return node.NewBool(name, orDefault(typ, types.Boolean()), x), nil
	case string:
		return node.NewString(name, orDefault(typ, types.String()), x), nil
	case int:
		return node.NewInt(name, orDefault(typ, types.Integer()), x), nil
	case int64:
		return intLiteral(name, typ, x)
	case json.Number:
		i, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "literal %s: %s is not an integer in range", name, x)
		}
		return intLiteral(name, typ, i)
	case float64:
		// 2^63 is exactly representable, MaxInt64 is not.
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "literal %s: %v is not an integer in range", name, x)
		}
		return intLiteral(name, typ, int64(x))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "literal %s: unsupported value %v (%T)", name, v, v)
}

func intLiteral(name string, typ *types.Type, v int64) (*node.Literal, error) {
	if int64(int(v)) != v {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "literal %s: %d overflows int", name, v)
	}
	return node.NewInt(name, orDefault(typ, types.Integer()), int(v)), nil
}

func orDefault(t, def *types.Type) *types.Type {
	if t != nil {
		return t
	}
	return def
}

// describe converts a component into its serialized form.
func describe(c *component.Component) document {
	d := document{
		Name:  c.Name(),
		Nodes: make([]nodeDecl, 0, c.NodeCount()),
		Edges: make([]edgeDecl, 0, c.EdgeCount()),
	}

	seen := make(map[string]bool)
	var addType func(t *types.Type)
	addType = func(t *types.Type) {
		if t == nil || seen[t.Name()] {
			return
		}
		if _, builtin := types.Lookup(t.Name()); builtin {
			return
		}
		seen[t.Name()] = true
		td := typeDecl{Name: t.Name(), Kind: t.Kind().String()}
		switch t.Kind() {
		case types.KindVector:
			td.Width = t.Width()
		case types.KindRecord:
			for _, f := range t.Fields() {
				addType(f.Type)
				td.Fields = append(td.Fields, fieldDecl{Name: f.Name, Type: f.Type.Name()})
			}
		}
		d.Types = append(d.Types, td)
	}

	for _, n := range c.Nodes() {
		addType(n.Type())
		nd := nodeDecl{
			Name: n.Name(),
			Kind: strings.ToLower(n.Kind().String()),
			Type: typeName(n.Type()),
		}
		switch v := n.(type) {
		case *node.Port:
			nd.Dir = v.Dir().String()
		case *node.Expression:
			nd.Op = v.Op()
		case *node.Literal:
			nd.Value = v.Value()
		case *node.Parameter:
			if def, ok := v.Default(); ok {
				addType(def.Type())
				nd.Default = &valueDecl{Name: def.Name(), Type: typeName(def.Type()), Value: def.Value()}
			}
		}
		d.Nodes = append(d.Nodes, nd)
	}

	for _, e := range c.Edges() {
		d.Edges = append(d.Edges, edgeDecl{ID: e.ID().String(), Src: e.Src().Name(), Dst: e.Dst().Name()})
	}
	return d
}

func typeName(t *types.Type) string {
	if t == nil {
		return ""
	}
	return t.Name()
}
