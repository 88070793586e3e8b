package node

import (
	"strings"

	"github.com/matzehuels/hwgraph/pkg/errors"
)

// Dir is the direction of a terminal relative to its enclosing component.
type Dir int

const (
	// DirNone marks a terminal without a direction.
	DirNone Dir = iota
	// DirIn marks a terminal driven from outside the component.
	DirIn
	// DirOut marks a terminal driven from inside the component.
	DirOut
)

// String returns "in", "out" or "none".
func (d Dir) String() string {
	switch d {
	case DirIn:
		return "in"
	case DirOut:
		return "out"
	default:
		return "none"
	}
}

// Invert maps in to out and out to in. DirNone is returned unchanged.
func (d Dir) Invert() Dir {
	switch d {
	case DirIn:
		return DirOut
	case DirOut:
		return DirIn
	default:
		return DirNone
	}
}

// ParseDir converts "in", "out" or "none" (case-insensitive) to a Dir.
// An empty string yields DirNone.
func ParseDir(s string) (Dir, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in":
		return DirIn, nil
	case "out":
		return DirOut, nil
	case "none", "":
		return DirNone, nil
	}
	return DirNone, errors.New(errors.ErrCodeInvalidInput, "unknown direction %q", s)
}

// Term gives a node a direction. It is embedded by [Port].
type Term struct {
	dir Dir
}

// Dir returns the terminal direction.
func (t Term) Dir() Dir { return t.dir }
