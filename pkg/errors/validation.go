package errors

import (
	"regexp"
	"unicode"
)

const maxNameLength = 256

// ValidateName validates a node name for use as a container key and in
// diagnostic output. Literal names such as "str:foo" are accepted.
//
// The validation rules are:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "node name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "node name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "node name contains invalid control characters")
		}
	}

	return nil
}

// identifierRegex matches names that are legal identifiers in the usual
// hardware description languages.
var identifierRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateIdentifier validates a name that ends up as an identifier in
// emitted HDL (ports, signals, parameters).
func ValidateIdentifier(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if !identifierRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid identifier: %q", name)
	}

	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
