// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Shape arithmetic (size, strides, axis normalization).
//   - Copying shape transforms: Reshape, ExpandDims, Repeat, SliceAxis.
//   - Lanes: the 1-D slices along one axis that every axis reduction walks.
//
// Every transform returns a fresh Array; the receiver is never modified.

package ndarray

import "fmt"

const (
	ctxReshape    = "Reshape"
	ctxExpandDims = "ExpandDims"
	ctxRepeat     = "Repeat"
	ctxSliceAxis  = "SliceAxis"
	ctxLanes      = "Lanes"
)

// sizeOf returns Π shape or ErrBadShape on a negative dimension.
// The empty shape (rank 0) has size 1.
func sizeOf(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", ErrBadShape, shape)
		}
		n *= d
	}

	return n, nil
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// stridesOf returns row-major element strides for shape.
func stridesOf(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		st[d] = acc
		acc *= shape[d]
	}

	return st
}

// SameShape reports whether a and b describe the same shape.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// NormalizeAxis maps axis in [-rank, rank) to [0, rank).
// Errors: ErrBadAxis.
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return 0, fmt.Errorf("%w: axis %d for rank %d", ErrBadAxis, axis, rank)
	}
	if axis < 0 {
		axis += rank
	}

	return axis, nil
}

// splitAt returns (outer, n, inner) for a row-major shape split at axis:
// outer = Π shape[:axis], n = shape[axis], inner = Π shape[axis+1:].
func splitAt(shape []int, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for _, d := range shape[:axis] {
		outer *= d
	}
	for _, d := range shape[axis+1:] {
		inner *= d
	}

	return outer, shape[axis], inner
}

// Reshape returns a copy with a new shape of the same size.
// Errors: ErrBadShape.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxReshape, err)
	}
	if n != len(a.data) {
		return nil, arrayErrorf(ctxReshape, fmt.Errorf("%w: cannot reshape %v into %v", ErrBadShape, a.shape, shape))
	}

	return &Array{shape: cloneInts(shape), data: a.Data()}, nil
}

// ExpandDims inserts a size-1 axis at position axis, which may range over
// [-(rank+1), rank]; -1 appends a trailing axis.
// The flat buffer is unchanged, only the shape gains a dimension.
// Errors: ErrBadAxis.
func (a *Array) ExpandDims(axis int) (*Array, error) {
	ax, err := NormalizeAxis(axis, len(a.shape)+1)
	if err != nil {
		return nil, arrayErrorf(ctxExpandDims, err)
	}
	shape := make([]int, 0, len(a.shape)+1)
	shape = append(shape, a.shape[:ax]...)
	shape = append(shape, 1)
	shape = append(shape, a.shape[ax:]...)

	return &Array{shape: shape, data: a.Data()}, nil
}

// Repeat repeats every element n times along axis, so a length-k axis
// becomes length k*n with each entry duplicated consecutively.
// Repeating a size-1 axis is the explicit broadcast used to align an
// array with an added trailing dimension.
// Errors: ErrBadAxis, ErrBadShape (n < 0).
// Complexity: O(size*n).
func (a *Array) Repeat(n, axis int) (*Array, error) {
	if n < 0 {
		return nil, arrayErrorf(ctxRepeat, fmt.Errorf("%w: negative repeat count %d", ErrBadShape, n))
	}
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, arrayErrorf(ctxRepeat, err)
	}
	outer, k, inner := splitAt(a.shape, ax)
	shape := cloneInts(a.shape)
	shape[ax] = k * n
	out := make([]float64, 0, outer*k*n*inner)

	for o := 0; o < outer; o++ {
		for j := 0; j < k; j++ {
			block := a.data[(o*k+j)*inner : (o*k+j+1)*inner] // one slab of the repeated axis
			for r := 0; r < n; r++ {
				out = append(out, block...)
			}
		}
	}

	return &Array{shape: shape, data: out}, nil
}

// SliceAxis copies the half-open range [start, end) along axis.
// Errors: ErrBadAxis, ErrOutOfRange.
func (a *Array) SliceAxis(axis, start, end int) (*Array, error) {
	ax, err := NormalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, arrayErrorf(ctxSliceAxis, err)
	}
	outer, k, inner := splitAt(a.shape, ax)
	if start < 0 || end > k || start > end {
		return nil, arrayErrorf(ctxSliceAxis, fmt.Errorf("%w: [%d:%d] on axis of length %d", ErrOutOfRange, start, end, k))
	}
	shape := cloneInts(a.shape)
	shape[ax] = end - start
	out := make([]float64, 0, outer*(end-start)*inner)
	for o := 0; o < outer; o++ {
		out = append(out, a.data[(o*k+start)*inner:(o*k+end)*inner]...)
	}

	return &Array{shape: shape, data: out}, nil
}

// Lanes describes the 1-D slices of a row-major shape along one axis.
// Lane j holds Len elements; element k of lane j lives at Offset(j, k).
// Shape is the shape that remains once the axis is collapsed.
type Lanes struct {
	Shape []int // result shape (the input shape without the reduced axis)
	Count int   // number of lanes (Π Shape)
	Len   int   // elements per lane
	inner int   // stride of the reduced axis
}

// NewLanes splits shape along axis (negative axes count from the end).
// Errors: ErrBadAxis, ErrBadShape.
func NewLanes(shape []int, axis int) (Lanes, error) {
	if _, err := sizeOf(shape); err != nil {
		return Lanes{}, arrayErrorf(ctxLanes, err)
	}
	ax, err := NormalizeAxis(axis, len(shape))
	if err != nil {
		return Lanes{}, arrayErrorf(ctxLanes, err)
	}
	outer, n, inner := splitAt(shape, ax)
	rest := make([]int, 0, len(shape)-1)
	rest = append(rest, shape[:ax]...)
	rest = append(rest, shape[ax+1:]...)

	return Lanes{Shape: rest, Count: outer * inner, Len: n, inner: inner}, nil
}

// AllLanes treats the whole shape as one lane, for reductions to a scalar.
func AllLanes(shape []int) Lanes {
	n, err := sizeOf(shape)
	if err != nil {
		n = 0
	}

	return Lanes{Shape: []int{}, Count: 1, Len: n, inner: 1}
}

// Offset returns the flat offset of element k in lane j.
func (l Lanes) Offset(j, k int) int {
	o, i := j/l.inner, j%l.inner

	return (o*l.Len+k)*l.inner + i
}
