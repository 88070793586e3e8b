package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/hwgraph/pkg/component"
)

// WriteJSON encodes a component as JSON and writes it to w.
// The output includes declared types, every node with its variant
// attributes, and every edge in connection order. It can be re-imported
// with [ReadJSON].
func WriteJSON(c *component.Component, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(describe(c)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a component to a JSON file at path.
func ExportJSON(c *component.Component, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(c, f)
}
