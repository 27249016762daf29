package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSchema is the sentinel wrapped by every ConfigurationError.
var ErrInvalidSchema = errors.New("invalid schema")

// ConfigurationError reports a malformed schema definition.
type ConfigurationError struct {
	BaseName string
	Problems []string
}

func (e *ConfigurationError) Error() string {
	name := e.BaseName
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("schema %s: %s", name, strings.Join(e.Problems, "; "))
}

// Unwrap allows errors.Is(err, ErrInvalidSchema).
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidSchema
}
