package procedural

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a generator parameter outside its valid
	// range (non-positive size, segment count or radius).
	ErrInvalidParameter = errors.New("procedural: invalid generator parameter")

	// ErrNoInputBuffer indicates a modifier was run before an input
	// triangle buffer was attached.
	ErrNoInputBuffer = errors.New("procedural: input triangle buffer must be set")

	// ErrIndexOutOfRange indicates a triangle index referring past the last vertex.
	ErrIndexOutOfRange = errors.New("procedural: triangle index out of range")

	// ErrIncompleteTriangle indicates an index count that is not a multiple of 3.
	ErrIncompleteTriangle = errors.New("procedural: index count is not a multiple of 3")
)

// invalidParam builds an ErrInvalidParameter error naming the generator and field.
func invalidParam(generator, field string, value any) error {
	return fmt.Errorf("%w: %s.%s must be positive, got %v", ErrInvalidParameter, generator, field, value)
}

// mustValid panics with err when it is non-nil. Generators call it before
// emitting anything so that a bad parameter set never yields a partial buffer.
func mustValid(err error) {
	if err != nil {
		panic(err)
	}
}
