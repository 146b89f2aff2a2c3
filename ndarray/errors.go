// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All constructors and kernels return these sentinels (optionally wrapped
// with an operation tag); tests match them via errors.Is. No function in
// this package panics on user-triggered conditions.

package ndarray

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "ndarray: ..." for consistent grepping.
// Wrap with arrayErrorf(op, err) at the detection site; callers still
// match the sentinel with errors.Is.
var (
	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrBadShape is returned for negative dimensions or when the data length
	// does not equal the product of the shape.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index or slice bound outside the valid range.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// including shapes that cannot be broadcast together.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrBadAxis indicates an axis outside [-rank, rank).
	ErrBadAxis = errors.New("ndarray: axis out of range")

	// ErrNotScalar is returned by Item when the array holds more than one value.
	ErrNotScalar = errors.New("ndarray: array is not a scalar")

	// ErrRagged indicates nested rows of unequal length.
	ErrRagged = errors.New("ndarray: ragged rows")
)

// arrayErrorf wraps err with an operation tag: "<op>: <err>".
func arrayErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// shapeErrorf wraps err with an operation tag and both offending shapes.
func shapeErrorf(op string, a, b []int, err error) error {
	return fmt.Errorf("%s: shapes %v and %v: %w", op, a, b, err)
}
