package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record has never been written.
var ErrNotFound = errors.New("record not found")

// ParseError is returned when a persisted record cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
