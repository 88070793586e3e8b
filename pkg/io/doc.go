// Package io provides JSON and TOML import and export for hardware graph
// components.
//
// # Overview
//
// A [component.Component] is serialized as a document with a name, an
// optional list of declared types, the nodes, and the edges between them.
// Both codecs share the same schema, so a graph can be written as JSON and
// read back as TOML and the other way around.
//
// # JSON Format
//
//	{
//	  "name": "top",
//	  "types": [
//	    {"name": "byte", "kind": "vector", "width": 8}
//	  ],
//	  "nodes": [
//	    {"name": "din", "kind": "port", "type": "byte", "dir": "in"},
//	    {"name": "dout", "kind": "port", "type": "byte", "dir": "out"},
//	    {"name": "WIDTH", "kind": "parameter", "type": "integer",
//	     "default": {"value": 8}}
//	  ],
//	  "edges": [
//	    {"src": "din", "dst": "dout"}
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - name: unique within the component
//   - kind: "port", "signal", "literal", "parameter" or "expression"
//   - type: a built-in type ("bit", "boolean", "integer", "string") or a
//     declared one; optional for literals, which infer it from the value
//
// Optional:
//   - dir: port direction, "in", "out" or "none"
//   - op: expression operator
//   - value: literal value (bool, integer or string)
//   - default: parameter default, an object with "value" and optionally
//     "name" and "type"
//
// # Declared Types
//
// Vectors carry a "width"; records carry "fields", each with a "name" and
// "type". A record may only reference built-in types and types declared
// before it.
//
// # Validation
//
// Documents are checked with go-playground/validator before any node is
// built. Structural failures are reported with code INVALID_FORMAT; graph
// errors keep the code of the operation that failed, so a second driver on
// the same node is still REJECTED.
package io
