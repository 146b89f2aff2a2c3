// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Elementwise kernels (Map, Map2) with explicit, shape-checked broadcasting.
//
// Broadcast rule (NumPy-compatible): shapes are right-aligned; two
// dimensions are compatible when equal or when one of them is 1; a missing
// leading dimension counts as 1. Anything else is ErrDimensionMismatch.
//
// Determinism & Performance:
//   - Equal shapes take a flat single-pass fast path.
//   - Otherwise one odometer walk over the output, O(size*rank) worst case.

package ndarray

const (
	ctxBroadcast = "BroadcastShapes"
	ctxMap2      = "Map2"
)

// BroadcastShapes returns the shape two operands broadcast to.
// Errors: ErrDimensionMismatch (message carries both shapes).
func BroadcastShapes(a, b []int) ([]int, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make([]int, rank)
	for i := 1; i <= rank; i++ {
		da, db := 1, 1
		if i <= len(a) {
			da = a[len(a)-i]
		}
		if i <= len(b) {
			db = b[len(b)-i]
		}
		switch {
		case da == db, db == 1:
			out[rank-i] = da
		case da == 1:
			out[rank-i] = db
		default:
			return nil, shapeErrorf(ctxBroadcast, a, b, ErrDimensionMismatch)
		}
	}

	return out, nil
}

// broadcastStrides returns strides of shape as seen from the broadcast
// shape out: broadcast (size-1 or missing) dimensions get stride 0.
func broadcastStrides(shape, out []int) []int {
	src := stridesOf(shape)
	st := make([]int, len(out))
	lead := len(out) - len(shape)
	for i, d := range shape {
		if d != 1 {
			st[lead+i] = src[i]
		}
	}

	return st
}

// Map applies fn to every element and returns a new array of the same shape.
func Map(a *Array, fn func(float64) float64) *Array {
	out := make([]float64, len(a.data))
	for i, v := range a.data {
		out[i] = fn(v)
	}

	return &Array{shape: cloneInts(a.shape), data: out}
}

// Map2 applies fn pairwise over a and b broadcast to a common shape.
// Errors: ErrNilArray, ErrDimensionMismatch.
func Map2(a, b *Array, fn func(x, y float64) float64) (*Array, error) {
	if a == nil || b == nil {
		return nil, arrayErrorf(ctxMap2, ErrNilArray)
	}

	// Fast path: identical shapes, one flat pass.
	if SameShape(a.shape, b.shape) {
		out := make([]float64, len(a.data))
		for i := range out {
			out[i] = fn(a.data[i], b.data[i])
		}
		return &Array{shape: cloneInts(a.shape), data: out}, nil
	}

	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, arrayErrorf(ctxMap2, err)
	}
	n, _ := sizeOf(shape)
	sa, sb := broadcastStrides(a.shape, shape), broadcastStrides(b.shape, shape)
	out := make([]float64, n)
	idx := make([]int, len(shape)) // odometer over the output shape
	oa, ob := 0, 0                  // running offsets into a and b

	for k := 0; k < n; k++ {
		out[k] = fn(a.data[oa], b.data[ob])
		// Advance the odometer from the last dimension, carrying leftwards.
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			oa += sa[d]
			ob += sb[d]
			if idx[d] < shape[d] {
				break
			}
			oa -= sa[d] * shape[d]
			ob -= sb[d] * shape[d]
			idx[d] = 0
		}
	}

	return &Array{shape: shape, data: out}, nil
}
