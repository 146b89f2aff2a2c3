// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer for arrays of any rank, with the
//     offset formula Σ idx[d]*stride[d].
//   - Guarantee safety at the public surface: At/Set/Item return errors
//     instead of panicking.
//   - Keep ownership explicit: constructors copy their inputs and accessors
//     return copies, so callers can never alias an Array's buffer.
//
// Complexity quicksheet:
//   - New/Zeros/Full: O(n); At/Set: O(rank); Clone/Data: O(n).

package ndarray

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxItem     = "Item"
)

// Array is a dense n-dimensional array of float64 values.
//   - shape holds the dimension sizes; an empty shape is a rank-0 scalar.
//   - data is a flat buffer of length Π shape in row-major order.
type Array struct {
	shape []int
	data  []float64
}

var _ fmt.Stringer = (*Array)(nil)

// New creates an array with the given shape, copying data.
// len(data) must equal the product of shape; every dimension must be ≥ 0.
// Errors: ErrBadShape.
func New(shape []int, data []float64) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	if len(data) != n {
		return nil, arrayErrorf(ctxNew, fmt.Errorf("%w: %d values for shape %v", ErrBadShape, len(data), shape))
	}
	buf := make([]float64, n)
	copy(buf, data)

	return &Array{shape: cloneInts(shape), data: buf}, nil
}

// Zeros creates a zero-filled array of the given shape.
func Zeros(shape ...int) (*Array, error) {
	return Full(0, shape...)
}

// Ones creates an array of the given shape filled with 1.
func Ones(shape ...int) (*Array, error) {
	return Full(1, shape...)
}

// Full creates an array of the given shape with every element set to v.
func Full(v float64, shape ...int) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	buf := make([]float64, n)
	if v != 0 {
		for i := range buf {
			buf[i] = v
		}
	}

	return &Array{shape: cloneInts(shape), data: buf}, nil
}

// Scalar wraps a single value as a rank-0 array.
func Scalar(v float64) *Array {
	return &Array{shape: []int{}, data: []float64{v}}
}

// FromSlice creates a 1-D array holding a copy of values.
func FromSlice(values []float64) *Array {
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Array{shape: []int{len(values)}, data: buf}
}

// FromRows creates a 2-D array from nested rows.
// All rows must have the same length; otherwise ErrRagged is returned.
// A nil or empty rows slice yields a 0×0 array.
func FromRows(rows [][]float64) (*Array, error) {
	r := len(rows)
	if r == 0 {
		return &Array{shape: []int{0, 0}, data: []float64{}}, nil
	}
	c := len(rows[0])
	buf := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf(ctxFromRows, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(row), c))
		}
		buf = append(buf, row...)
	}

	return &Array{shape: []int{r, c}, data: buf}, nil
}

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return cloneInts(a.shape) }

// Rank returns the number of dimensions (0 for a scalar).
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Dim returns the size of axis (negative axes count from the end).
func (a *Array) Dim(axis int) (int, error) {
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return 0, err
	}

	return a.shape[ax], nil
}

// Data returns a copy of the flat row-major buffer.
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return &Array{shape: cloneInts(a.shape), data: a.Data()}
}

// offsetOf bounds-checks idx and returns the flat offset.
func (a *Array) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: %d indices for rank %d", ErrOutOfRange, len(idx), len(a.shape))
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			return 0, fmt.Errorf("%w: index %v for shape %v", ErrOutOfRange, idx, a.shape)
		}
		off = off*a.shape[d] + i // Horner form of Σ idx[d]*stride[d]
	}

	return off, nil
}

// At returns the element at idx. A rank-0 array is read with no indices.
// Errors: ErrOutOfRange.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return 0, arrayErrorf(ctxAt, err)
	}

	return a.data[off], nil
}

// Set assigns v at idx.
// Errors: ErrOutOfRange.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offsetOf(idx)
	if err != nil {
		return arrayErrorf(ctxSet, err)
	}
	a.data[off] = v

	return nil
}

// Item returns the single value of a size-1 array of any rank.
// Errors: ErrNotScalar.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, arrayErrorf(ctxItem, fmt.Errorf("%w: shape %v", ErrNotScalar, a.shape))
	}

	return a.data[0], nil
}

// String renders the array with nested brackets, e.g. [[1, 2], [3, 4]].
func (a *Array) String() string {
	var sb strings.Builder
	if len(a.shape) == 0 {
		fmt.Fprintf(&sb, "%g", a.data[0])
		return sb.String()
	}
	a.writeBlock(&sb, 0, 0)

	return sb.String()
}

// writeBlock renders the sub-array starting at flat offset off for dimension d.
func (a *Array) writeBlock(sb *strings.Builder, d, off int) {
	sb.WriteString("[")
	inner := 1
	for _, s := range a.shape[d+1:] {
		inner *= s
	}
	for i := 0; i < a.shape[d]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if d == len(a.shape)-1 {
			fmt.Fprintf(sb, "%g", a.data[off+i])
			continue
		}
		a.writeBlock(sb, d+1, off+i*inner)
	}
	sb.WriteString("]")
}
