// SPDX-License-Identifier: MIT
// Package losses_test contains shared fixtures for the metric tests.

package losses_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvloss/ndarray"
)

// tol is the absolute tolerance for float comparisons in this package.
const tol = 1e-12

// vec builds a rank-1 array.
func vec(values ...float64) *ndarray.Array { return ndarray.FromSlice(values) }

// rows builds a rank-2 array or fails the test.
func rows(t *testing.T, r [][]float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromRows(r)
	require.NoError(t, err)

	return a
}

// item returns a reader for rank-0 metric results that fails the test on
// an error or a non-scalar result. Use as item(t)(losses.MAE(y, yHat)).
func item(t *testing.T) func(*ndarray.Array, error) float64 {
	t.Helper()

	return func(a *ndarray.Array, err error) float64 {
		t.Helper()
		require.NoError(t, err)
		require.Equal(t, 0, a.Rank(), "full reduction must be rank 0")
		v, err := a.Item()
		require.NoError(t, err)

		return v
	}
}
