package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/hwgraph/pkg/component"
)

// ReadJSON decodes a JSON graph document from r into a component.
//
// The input must be a JSON object with a "name" and "nodes" and "edges"
// arrays:
//
//	{
//	  "name": "top",
//	  "nodes": [
//	    {"name": "a", "kind": "signal", "type": "bit"},
//	    {"name": "b", "kind": "port", "type": "bit", "dir": "out"}
//	  ],
//	  "edges": [{"src": "a", "dst": "b"}]
//	}
//
// ReadJSON returns an error if:
//   - The JSON is malformed or fails document validation
//   - A node or type name is declared twice
//   - A declared type reuses a built-in type name
//   - A node references an unknown type
//   - A literal value is not an integer that fits in int
//   - An edge references an unknown node or is refused by the connection
//     policy (for example a second driver of the same node)
//
// Errors are wrapped with context describing which node or edge caused
// the problem; the code of the underlying error is preserved, so
// [errors.GetCode] still reports REJECTED or NOT_FOUND. Edge IDs in the
// input are informational; fresh IDs are assigned on import.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*component.Component, error) {
	var data document
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.build()
}

// ImportJSON reads a JSON file at path and returns the decoded component.
func ImportJSON(path string) (*component.Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
