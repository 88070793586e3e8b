// Package types provides the type handles carried by graph nodes.
//
// A [Type] is an opaque, immutable descriptor of a hardware value: its name,
// [Kind], bit width and, for records, its fields. Nodes only hold a pointer
// to a Type and never modify it, so one Type is typically shared by many
// ports, signals and literals.
//
// # Built-in Types
//
// [Boolean], [Integer], [String] and [Bit] return process-wide singletons
// that are created on first use. [Lookup] resolves them by name, which is how
// graph description files refer to them.
//
// # Composite Types
//
// [Vector] and [Record] build user-defined types:
//
//	data, _ := types.Vector("data", 8)
//	stream, _ := types.Record("stream",
//	    types.Field{Name: "valid", Type: types.Bit()},
//	    types.Field{Name: "data", Type: data},
//	)
//
// Type compatibility and inference are not part of this package; [Equal]
// only answers structural equality.
package types
