// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Interop with gonum/mat so panels held as mat.Matrix (rows = series,
//     cols = time) can be fed to reductions, and 2-D results handed back.

package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromMatrix = "FromMatrix"
	ctxToDense    = "ToDense"
)

// FromMatrix copies any mat.Matrix into a 2-D array.
// Errors: ErrNilArray.
// Complexity: O(r*c).
func FromMatrix(m mat.Matrix) (*Array, error) {
	if m == nil {
		return nil, arrayErrorf(ctxFromMatrix, ErrNilArray)
	}
	r, c := m.Dims()
	buf := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf = append(buf, m.At(i, j))
		}
	}

	return &Array{shape: []int{r, c}, data: buf}, nil
}

// ToDense copies a rank-2 array into a new *mat.Dense.
// gonum forbids zero-length dimensions, so both must be positive.
// Errors: ErrBadShape.
func (a *Array) ToDense() (*mat.Dense, error) {
	if len(a.shape) != 2 || a.shape[0] == 0 || a.shape[1] == 0 {
		return nil, arrayErrorf(ctxToDense, fmt.Errorf("%w: need a non-empty rank-2 array, got %v", ErrBadShape, a.shape))
	}

	return mat.NewDense(a.shape[0], a.shape[1], a.Data()), nil
}

// ToVecDense copies a non-empty rank-1 array into a new *mat.VecDense.
// Errors: ErrBadShape.
func (a *Array) ToVecDense() (*mat.VecDense, error) {
	if len(a.shape) != 1 || a.shape[0] == 0 {
		return nil, arrayErrorf(ctxToDense, fmt.Errorf("%w: need a non-empty rank-1 array, got %v", ErrBadShape, a.shape))
	}

	return mat.NewVecDense(a.shape[0], a.Data()), nil
}
