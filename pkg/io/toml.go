package io

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hwgraph/pkg/component"
)

// ReadTOML decodes a TOML graph document from r. The layout mirrors the
// JSON format with arrays of tables:
//
//	name = "top"
//
//	[[nodes]]
//	name = "a"
//	kind = "signal"
//	type = "bit"
//
//	[[nodes]]
//	name = "b"
//	kind = "port"
//	type = "bit"
//	dir = "out"
//
//	[[edges]]
//	src = "a"
//	dst = "b"
//
// Keys the document does not define are rejected.
func ReadTOML(r io.Reader) (*component.Component, error) {
	var data document
	md, err := toml.NewDecoder(r).Decode(&data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode: unknown key %q", undecoded[0].String())
	}
	return data.build()
}

// LoadTOML reads a TOML file at path and returns the decoded component.
func LoadTOML(path string) (*component.Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTOML(f)
}

// WriteTOML encodes a component as TOML and writes it to w.
func WriteTOML(c *component.Component, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(describe(c)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
