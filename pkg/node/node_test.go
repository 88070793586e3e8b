package node

import (
	"testing"

	"github.com/matzehuels/hwgraph/pkg/errors"
	"github.com/matzehuels/hwgraph/pkg/types"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPort, "Port"},
		{KindSignal, "Signal"},
		{KindLiteral, "Literal"},
		{KindParameter, "Parameter"},
		{KindExpression, "Expression"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"Port", "signal", "LITERAL", "Parameter", "expression"} {
		if _, err := ParseKind(name); err != nil {
			t.Errorf("ParseKind(%q) error = %v", name, err)
		}
	}

	_, err := ParseKind("wire")
	if !errors.Is(err, errors.ErrCodeUnsupportedKind) {
		t.Errorf("ParseKind(wire) error = %v, want UNSUPPORTED_KIND", err)
	}
}

func TestDir(t *testing.T) {
	tests := []struct {
		dir    Dir
		str    string
		invert Dir
	}{
		{DirIn, "in", DirOut},
		{DirOut, "out", DirIn},
		{DirNone, "none", DirNone},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.dir.Invert(); got != tt.invert {
			t.Errorf("%s.Invert() = %s, want %s", tt.dir, got, tt.invert)
		}
		if got := tt.dir.Invert().Invert(); got != tt.dir {
			t.Errorf("%s.Invert().Invert() = %s", tt.dir, got)
		}
		parsed, err := ParseDir(tt.str)
		if err != nil || parsed != tt.dir {
			t.Errorf("ParseDir(%q) = %v, %v", tt.str, parsed, err)
		}
	}

	if _, err := ParseDir("inout"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseDir(inout) error = %v", err)
	}
}

func TestConnectEndToEnd(t *testing.T) {
	a := NewSignal("a", types.Bit())
	b := NewPort("b", types.Bit(), DirOut)

	e, err := Connect(b, a)
	if err != nil {
		t.Fatalf("Connect(b, a): %v", err)
	}
	if e.Src() != a || e.Dst() != b {
		t.Errorf("edge = %v, want a -> b", e)
	}
	if got := b.Sources(); len(got) != 1 || got[0] != e {
		t.Errorf("b.Sources() = %v, want [%v]", got, e)
	}
	if got := a.Sinks(); len(got) != 1 || got[0] != e {
		t.Errorf("a.Sinks() = %v, want [%v]", got, e)
	}

	a2 := NewSignal("a2", types.Bit())
	if _, err := Connect(b, a2); !errors.Is(err, errors.ErrCodeRejected) {
		t.Errorf("Connect(b, a2) error = %v, want REJECTED", err)
	}
	if _, err := a2.AddSink(b); !errors.Is(err, errors.ErrCodeRejected) {
		t.Errorf("a2.AddSink(b) error = %v, want REJECTED", err)
	}
	if len(a2.Sinks()) != 0 {
		t.Errorf("rejected connection left %d edges on a2", len(a2.Sinks()))
	}
	if got := b.Sources(); len(got) != 1 || got[0] != e {
		t.Errorf("b.Sources() changed after rejection: %v", got)
	}
}

func TestReconnectAfterDisconnect(t *testing.T) {
	a := NewSignal("a", types.Bit())
	a2 := NewSignal("a2", types.Bit())
	b := NewPort("b", types.Bit(), DirOut)

	e, err := b.AddSource(a)
	if err != nil {
		t.Fatalf("AddSource: %v", err)
	}
	if !Disconnect(e) {
		t.Fatal("Disconnect returned false")
	}
	if len(a.Sinks()) != 0 || len(b.Sources()) != 0 {
		t.Fatal("Disconnect left edges behind")
	}
	if Disconnect(e) {
		t.Error("second Disconnect should report nothing removed")
	}

	e2, err := b.AddSource(a2)
	if err != nil {
		t.Fatalf("AddSource after disconnect: %v", err)
	}
	if in, ok := b.Input(); !ok || in != e2 {
		t.Errorf("b.Input() = %v, %v, want %v", in, ok, e2)
	}
}

func TestConnectErrors(t *testing.T) {
	sig := NewSignal("s", types.Bit())

	tests := []struct {
		name string
		dst  Node
		src  Node
		code errors.Code
	}{
		{"nil destination", nil, sig, errors.ErrCodeInvalidInput},
		{"nil source", sig, nil, errors.ErrCodeInvalidInput},
		{"literal destination", Int(1), sig, errors.ErrCodeImmutableNode},
		{"self loop", sig, sig, errors.ErrCodeRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Connect(tt.dst, tt.src)
			if e != nil {
				t.Errorf("Connect returned edge %v", e)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}

	if len(sig.Sinks()) != 0 || len(sig.Sources()) != 0 {
		t.Error("failed connections must not register edges")
	}
}

func TestAddEdgeDuplicateSuppression(t *testing.T) {
	src := NewSignal("src", types.Bit())
	dst := NewSignal("dst", types.Bit())

	e, err := Connect(dst, src)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if src.AddEdge(e) {
		t.Error("re-adding an edge to its source must fail")
	}
	if len(src.Sinks()) != 1 {
		t.Errorf("src.Sinks() has %d entries, want 1", len(src.Sinks()))
	}
	if dst.AddEdge(e) {
		t.Error("re-adding an edge to its destination must fail")
	}
	if len(dst.Sources()) != 1 {
		t.Errorf("dst.Sources() has %d entries, want 1", len(dst.Sources()))
	}
	if in, ok := dst.Input(); !ok || in != e {
		t.Error("refused re-add must leave the input slot holding the edge")
	}
}

func TestAddEdgeUnrelated(t *testing.T) {
	a := NewSignal("a", types.Bit())
	b := NewSignal("b", types.Bit())
	c := NewSignal("c", types.Bit())

	e := newEdge(b, a)
	if c.AddEdge(e) {
		t.Error("node accepted an edge it is not an endpoint of")
	}
	if c.RemoveEdge(e) {
		t.Error("node removed an edge it never held")
	}
	if c.AddEdge(nil) || c.RemoveEdge(nil) {
		t.Error("nil edge must be rejected")
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		lit     *Literal
		storage StorageKind
		str     string
	}{
		{"bool true", NewBool("t", types.Boolean(), true), StorageBool, "true"},
		{"bool false", NewBool("f", types.Boolean(), false), StorageBool, "false"},
		{"int", NewInt("n", types.Integer(), 42), StorageInt, "42"},
		{"negative int", Int(-7), StorageInt, "-7"},
		{"string", NewString("s", types.String(), "foo"), StorageString, "foo"},
		{"string shorthand", Str("foo"), StorageString, "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lit.Storage() != tt.storage {
				t.Errorf("Storage() = %s, want %s", tt.lit.Storage(), tt.storage)
			}
			if got := tt.lit.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if tt.lit.Kind() != KindLiteral {
				t.Errorf("Kind() = %s", tt.lit.Kind())
			}
			c := tt.lit.Copy().(*Literal)
			if c == tt.lit || c.String() != tt.str || c.Storage() != tt.storage || c.Type() != tt.lit.Type() {
				t.Errorf("Copy() = %v, want an independent equal literal", c)
			}
		})
	}
}

func TestLiteralShorthandNames(t *testing.T) {
	if got := Int(42).Name(); got != "int42" {
		t.Errorf("Int(42).Name() = %q", got)
	}
	if got := Str("foo").Name(); got != "str:foo" {
		t.Errorf("Str(foo).Name() = %q", got)
	}
	if Int(1).Type() != types.Integer() || Str("x").Type() != types.String() {
		t.Error("shorthand literals use the built-in types")
	}
}

func TestLiteralAccessors(t *testing.T) {
	n := NewInt("n", types.Integer(), 42)

	if v, err := n.IntValue(); err != nil || v != 42 {
		t.Errorf("IntValue() = %d, %v", v, err)
	}
	if _, err := n.BoolValue(); !errors.Is(err, errors.ErrCodeStorageKind) {
		t.Errorf("BoolValue() error = %v, want STORAGE_KIND", err)
	}
	if _, err := n.StringValue(); !errors.Is(err, errors.ErrCodeStorageKind) {
		t.Errorf("StringValue() error = %v, want STORAGE_KIND", err)
	}
	if n.Value() != 42 {
		t.Errorf("Value() = %v", n.Value())
	}

	b := BoolTrue()
	if v, err := b.BoolValue(); err != nil || !v {
		t.Errorf("BoolTrue().BoolValue() = %v, %v", v, err)
	}
	s := Str("foo")
	if v, err := s.StringValue(); err != nil || v != "foo" {
		t.Errorf("StringValue() = %q, %v", v, err)
	}
}

func TestLiteralCannotBeDriven(t *testing.T) {
	lit := Int(3)
	sig := NewSignal("s", types.Integer())

	for i := 0; i < 3; i++ {
		if _, err := lit.AddSource(sig); !errors.Is(err, errors.ErrCodeImmutableNode) {
			t.Fatalf("AddSource #%d error = %v, want IMMUTABLE_NODE", i, err)
		}
		if _, err := sig.AddSink(lit); !errors.Is(err, errors.ErrCodeImmutableNode) {
			t.Fatalf("AddSink #%d error = %v, want IMMUTABLE_NODE", i, err)
		}
	}
	if lit.AddEdge(newEdge(lit, sig)) {
		t.Error("literal accepted an inbound edge")
	}
	if len(lit.Sources()) != 0 || len(sig.Sinks()) != 0 {
		t.Error("literal drive must leave the graph unchanged")
	}

	if _, err := lit.AddSink(sig); err != nil {
		t.Errorf("literal should drive a signal: %v", err)
	}
}

func TestBoolSingletons(t *testing.T) {
	if BoolTrue() != BoolTrue() || BoolFalse() != BoolFalse() {
		t.Error("bool singletons must be shared")
	}
	if BoolTrue() == BoolFalse() {
		t.Error("true and false must be distinct")
	}
	if BoolTrue().Name() != "bool_true" || BoolFalse().Name() != "bool_false" {
		t.Errorf("names = %q, %q", BoolTrue().Name(), BoolFalse().Name())
	}
	if BoolTrue().Type() != types.Boolean() {
		t.Error("bool singletons use the boolean type")
	}
	if !BoolTrue().Shared() || BoolTrue().Copy().(*Literal).Shared() {
		t.Error("only the singleton itself is shared")
	}
}

func TestBoolSingletonsStayUnconnected(t *testing.T) {
	sig := NewSignal("en", types.Boolean())

	e, err := Connect(sig, BoolTrue())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if e.Src() == Node(BoolTrue()) {
		t.Error("edge must start at a copy, not the shared literal")
	}
	lit, ok := e.Src().(*Literal)
	if !ok || lit.Name() != "bool_true" {
		t.Fatalf("edge source = %v, want the bool_true literal", e.Src())
	}
	if v, err := lit.BoolValue(); err != nil || !v {
		t.Errorf("copy BoolValue() = %v, %v", v, err)
	}
	if len(BoolTrue().Sinks()) != 0 {
		t.Errorf("BoolTrue().Sinks() has %d entries, want 0", len(BoolTrue().Sinks()))
	}

	if _, err := BoolFalse().AddSink(NewSignal("rst", types.Boolean())); err != nil {
		t.Fatalf("AddSink: %v", err)
	}
	if len(BoolFalse().Sinks()) != 0 {
		t.Error("AddSink must not register edges on the shared literal")
	}
	if BoolFalse().AddEdge(newEdge(sig, BoolFalse())) {
		t.Error("shared literal accepted an edge")
	}
}

func TestParameterValue(t *testing.T) {
	def := Int(8)

	t.Run("no input no default", func(t *testing.T) {
		p := NewParameter("width", types.Integer(), nil)
		if v, ok := p.Value(); ok || v != nil {
			t.Errorf("Value() = %v, %v, want absent", v, ok)
		}
		if _, ok := p.Default(); ok {
			t.Error("Default() should be absent")
		}
	})

	t.Run("default only", func(t *testing.T) {
		p := NewParameter("width", types.Integer(), def)
		if v, ok := p.Value(); !ok || v != def {
			t.Errorf("Value() = %v, %v, want %v", v, ok, def)
		}
	})

	t.Run("input takes precedence", func(t *testing.T) {
		p := NewParameter("width", types.Integer(), def)
		override := Int(16)
		e, err := p.AddSource(override)
		if err != nil {
			t.Fatalf("AddSource: %v", err)
		}
		if v, ok := p.Value(); !ok || v != override {
			t.Errorf("Value() = %v, %v, want %v", v, ok, override)
		}

		Disconnect(e)
		if v, ok := p.Value(); !ok || v != def {
			t.Errorf("after disconnect Value() = %v, %v, want default", v, ok)
		}
	})

	t.Run("input from parameter", func(t *testing.T) {
		outer := NewParameter("outer", types.Integer(), Int(4))
		inner := NewParameter("inner", types.Integer(), nil)
		if _, err := inner.AddSource(outer); err != nil {
			t.Fatalf("AddSource: %v", err)
		}
		if v, ok := inner.Value(); !ok || v != outer {
			t.Errorf("Value() = %v, %v, want %v", v, ok, outer)
		}
	})
}

func TestCopyDropsEdges(t *testing.T) {
	def := Int(8)
	nodes := []Node{
		NewPort("p", types.Bit(), DirIn),
		NewSignal("s", types.Bit()),
		NewParameter("w", types.Integer(), def),
		NewExpression("x", types.Bit(), "and"),
	}

	for _, n := range nodes {
		t.Run(n.Kind().String(), func(t *testing.T) {
			src := NewSignal("src", n.Type())
			sink := NewSignal("sink", n.Type())
			if _, err := Connect(n, src); err != nil {
				t.Fatalf("Connect(n, src): %v", err)
			}
			if _, err := Connect(sink, n); err != nil {
				t.Fatalf("Connect(sink, n): %v", err)
			}

			c := n.Copy()
			if c == n {
				t.Fatal("Copy returned the same node")
			}
			if c.Name() != n.Name() || c.Kind() != n.Kind() || c.Type() != n.Type() {
				t.Errorf("Copy() = %s %q %v", c.Kind(), c.Name(), c.Type())
			}
			if len(c.Sources()) != 0 || len(c.Sinks()) != 0 {
				t.Error("Copy() must not carry edges")
			}
			if len(n.Sources()) != 1 || len(n.Sinks()) != 1 {
				t.Error("Copy() must not disturb the original")
			}
		})
	}
}

func TestCopyVariantAttributes(t *testing.T) {
	p := NewPort("p", types.Bit(), DirIn)
	if c := p.Copy().(*Port); c.Dir() != DirIn {
		t.Errorf("port copy dir = %s", c.Dir())
	}

	def := Int(8)
	param := NewParameter("w", types.Integer(), def)
	if d, ok := param.Copy().(*Parameter).Default(); !ok || d != def {
		t.Error("parameter copy must share the default literal")
	}

	x := NewExpression("x", types.Bit(), "xor")
	if c := x.Copy().(*Expression); c.Op() != "xor" {
		t.Errorf("expression copy op = %q", c.Op())
	}
}

func TestInvertDirection(t *testing.T) {
	p := NewPort("p", types.Bit(), DirIn)
	if p.InvertDirection() != p {
		t.Error("InvertDirection must return the port")
	}
	if p.Dir() != DirOut {
		t.Errorf("Dir() = %s, want out", p.Dir())
	}
	if p.InvertDirection().InvertDirection().Dir() != DirOut {
		t.Error("double inversion must restore direction")
	}

	n := NewPort("n", types.Bit(), DirNone)
	if n.InvertDirection().Dir() != DirNone {
		t.Error("inverting none must stay none")
	}
}

func TestFromTypeNames(t *testing.T) {
	data, _ := types.Vector("data", 8)
	if got := PortFromType(data, DirIn).Name(); got != "data" {
		t.Errorf("PortFromType name = %q", got)
	}
	if got := SignalFromType(data).Name(); got != "data_signal" {
		t.Errorf("SignalFromType name = %q", got)
	}
}

func TestCasts(t *testing.T) {
	nodes := map[Kind]Node{
		KindPort:       NewPort("p", types.Bit(), DirIn),
		KindSignal:     NewSignal("s", types.Bit()),
		KindLiteral:    Int(1),
		KindParameter:  NewParameter("w", types.Integer(), nil),
		KindExpression: NewExpression("x", types.Bit(), "not"),
	}
	casts := map[Kind]func(Node) error{
		KindPort:       func(n Node) error { _, err := AsPort(n); return err },
		KindSignal:     func(n Node) error { _, err := AsSignal(n); return err },
		KindLiteral:    func(n Node) error { _, err := AsLiteral(n); return err },
		KindParameter:  func(n Node) error { _, err := AsParameter(n); return err },
		KindExpression: func(n Node) error { _, err := AsExpression(n); return err },
	}

	for have, n := range nodes {
		for want, cast := range casts {
			err := cast(n)
			if have == want && err != nil {
				t.Errorf("cast %s to %s: %v", have, want, err)
			}
			if have != want && !errors.Is(err, errors.ErrCodeInvalidCast) {
				t.Errorf("cast %s to %s error = %v, want INVALID_CAST", have, want, err)
			}
		}
	}

	if _, err := AsPort(nil); !errors.Is(err, errors.ErrCodeInvalidCast) {
		t.Errorf("AsPort(nil) error = %v", err)
	}
}

func TestEdgeString(t *testing.T) {
	a := NewSignal("a", types.Bit())
	b := NewSignal("b", types.Bit())
	e, _ := Connect(b, a)
	if e.String() != "a -> b" {
		t.Errorf("String() = %q", e.String())
	}
	if (&Edge{}).String() != "<none> -> <none>" {
		t.Errorf("empty edge String() = %q", (&Edge{}).String())
	}

	e2, _ := Connect(NewSignal("c", types.Bit()), a)
	if e.ID() == e2.ID() {
		t.Error("edges must get distinct IDs")
	}
}

func TestFanOut(t *testing.T) {
	for _, n := range []int{0, 1, 100} {
		src := NewSignal("src", types.Bit())
		edges := make(map[*Edge]bool, n)
		for i := 0; i < n; i++ {
			e, err := src.AddSink(NewPort("sink", types.Bit(), DirOut))
			if err != nil {
				t.Fatalf("n=%d: AddSink #%d: %v", n, i, err)
			}
			edges[e] = true
		}
		sinks := src.Sinks()
		if len(sinks) != n || len(edges) != n {
			t.Errorf("n=%d: got %d sinks, %d distinct edges", n, len(sinks), len(edges))
		}
		for _, e := range sinks {
			if !edges[e] {
				t.Errorf("n=%d: unexpected edge %v", n, e)
			}
		}
	}
}
