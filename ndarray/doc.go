// SPDX-License-Identifier: MIT

// Package ndarray provides a small dense n-dimensional float64 array used as
// the numeric substrate for the forecast losses.
//
// The package provides:
//
//   - Array: a contiguous row-major buffer of any rank (rank 0 is a scalar),
//     with bounds-checked At/Set/Item that return errors instead of panicking.
//   - Explicit broadcasting: BroadcastShapes, Map2, ExpandDims and Repeat.
//     Nothing broadcasts implicitly; every aligned operation states its rule.
//   - Lanes: the 1-D slices along an axis, walked by axis reductions.
//   - gonum interop: FromMatrix, ToDense, ToVecDense.
//
// Ownership: constructors copy their inputs and every operation returns a
// fresh Array. An Array handed to this package is never modified, so shared
// read-only arrays are safe to use from multiple goroutines.
//
// Example:
//
//	y, _ := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	yq, _ := y.ExpandDims(-1) // shape [2 3 1]
//	w, _ := yq.Repeat(3, -1)  // shape [2 3 3]
//
// Errors are package sentinels (ErrBadShape, ErrDimensionMismatch, ...)
// wrapped with an operation tag; match them with errors.Is.
package ndarray
