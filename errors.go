package unpick

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrParse indicates that the raw input was not well formed structured data.
// It is surfaced before any Decoding logic runs.
var ErrParse = errors.New("malformed input")

// ErrTypeMismatch indicates a value that is present but can not be
// represented as the requested type or shape.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrKeyNotFound indicates a missing key in keyed access.
var ErrKeyNotFound = errors.New("key not found")

// ErrEndOfSequence indicates an exhausted sequential cursor.
var ErrEndOfSequence = errors.New("end of sequence")

// NotSupportedError indicates a target type that scalar extraction has no
// support for. It unwraps to ErrTypeMismatch.
type NotSupportedError struct {
	Type reflect.Type
}

func (n NotSupportedError) Error() string {
	return fmt.Sprintf("type %q is not supported", n.Type)
}

func (n NotSupportedError) Unwrap() error {
	return ErrTypeMismatch
}

// PathError decorates a failure with the path of keys and indices traversed
// up to the point of failure. Primitives and combinators prepend their own
// segment as the failure bubbles up, so the outermost PathError holds the
// full path from the root.
type PathError struct {
	Path []string
	Err  error
}

func (p *PathError) Error() string {
	var path strings.Builder
	for idx, segment := range p.Path {
		if idx > 0 && !strings.HasPrefix(segment, "[") {
			path.WriteByte('.')
		}

		path.WriteString(segment)
	}

	return fmt.Sprintf("at %s: %v", path.String(), p.Err)
}

func (p *PathError) Unwrap() error {
	return p.Err
}

// withPath prepends segment to the path carried by err, starting a new
// PathError if err does not carry one yet.
func withPath(err error, segment string) error {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		path := append([]string{segment}, pathErr.Path...)
		return &PathError{Path: path, Err: pathErr.Err}
	}

	return &PathError{Path: []string{segment}, Err: err}
}
