// SPDX-License-Identifier: MIT

package losses_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvloss/losses"
	"github.com/katalvlaran/lvloss/ndarray"
)

func TestMASE(t *testing.T) {
	t.Parallel()

	y, yHat := vec(3, 5), vec(2, 7)
	train := vec(1, 2, 4, 7)
	tests := []struct {
		name string
		s    int
		opts []losses.Option
		want float64
	}{
		// numerator 1.5; lag-1 diffs 1, 2, 3
		{"lag 1", 1, nil, 0.75},
		// lag-2 diffs 3, 5
		{"lag 2", 2, nil, 0.375},
		// weighted numerator (1 + 3·2)/4; scale stays unweighted
		{"weighted numerator", 1, []losses.Option{losses.WithWeights(vec(1, 3))}, 0.875},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := item(t)(losses.MASE(y, yHat, train, tc.s, tc.opts...))
			assert.InDelta(t, tc.want, got, tol)
		})
	}
}

func TestMASE_DegenerateScale(t *testing.T) {
	got := item(t)(losses.MASE(vec(3, 5), vec(2, 7), vec(5, 5, 5), 1))
	assert.True(t, math.IsInf(got, 1), "constant training series")

	got = item(t)(losses.MASE(vec(3, 5), vec(3, 5), vec(5, 5, 5), 1))
	assert.True(t, math.IsNaN(got), "0/0")
}

func TestMASE_InvalidSeasonality(t *testing.T) {
	t.Parallel()

	for _, s := range []int{0, -1, 5, 10} {
		_, err := losses.MASE(vec(1), vec(1), vec(1, 2, 3, 4), s)
		assert.ErrorIsf(t, err, losses.ErrInvalidSeasonality, "seasonality %d", s)
		assert.ErrorIs(t, err, losses.ErrPrecondition)
	}

	_, err := losses.MASE(vec(1), vec(1), ndarray.Scalar(1), 1)
	assert.ErrorIs(t, err, losses.ErrInvalidSeasonality, "scalar training series")

	_, err = losses.MASE(vec(1), vec(1), nil, 1)
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}

// TestMASE_LagsAlongFirstAxis pins the time-first layout: the naive scale
// differences rows of yTrain.
func TestMASE_LagsAlongFirstAxis(t *testing.T) {
	y := rows(t, [][]float64{{3, 5}, {1, 1}})
	yHat := rows(t, [][]float64{{2, 7}, {2, 2}})
	train := rows(t, [][]float64{{1, 2, 4, 7}, {0, 2, 4, 6}})

	// numerator mean(1, 2, 1, 1) = 1.25; scale mean|row0 - row1| = 0.5
	got := item(t)(losses.MASE(y, yHat, train, 1))
	assert.InDelta(t, 2.5, got, tol)
}

func TestMASE_PerSeries(t *testing.T) {
	// time × series: column j is series j.
	y := rows(t, [][]float64{{3, 1}, {5, 1}})
	yHat := rows(t, [][]float64{{2, 2}, {7, 2}})
	train := rows(t, [][]float64{{1, 0}, {2, 2}, {4, 4}, {7, 6}})

	got, err := losses.MASE(y, yHat, train, 1, losses.WithAxis(0))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got.Shape())
	assert.InDeltaSlice(t, []float64{0.75, 0.5}, got.Data(), tol)

	got, err = losses.MASE(y, yHat, train, 2, losses.WithAxis(0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.375, 0.25}, got.Data(), tol)
}

func TestMASE_LagEqualToTrainingLength(t *testing.T) {
	got := item(t)(losses.MASE(vec(3, 5), vec(2, 7), vec(1, 2, 4, 7), 4))
	assert.True(t, math.IsNaN(got), "no lagged pairs left")
}

func TestMASE_NaNPropagates(t *testing.T) {
	got := item(t)(losses.MASE(vec(math.NaN(), 5), vec(2, 7), vec(1, 2, 4, 7), 1))
	assert.True(t, math.IsNaN(got))
}

func TestRMAE(t *testing.T) {
	y := vec(1, 2, 3)

	got := item(t)(losses.RMAE(y, vec(1, 2, 4), vec(2, 3, 4)))
	assert.InDelta(t, 1.0/3, got, tol)

	got = item(t)(losses.RMAE(y, vec(2, 3, 4), vec(2, 3, 4)))
	assert.Equal(t, 1.0, got)

	got = item(t)(losses.RMAE(y, vec(1, 2, 4), y.Clone()))
	assert.True(t, math.IsInf(got, 1), "perfect baseline")

	_, err := losses.RMAE(y, vec(1, 2), y)
	assert.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
}

func TestRMAE_Axis(t *testing.T) {
	y := rows(t, [][]float64{{1, 2}, {3, 4}})
	yHat1 := rows(t, [][]float64{{1, 3}, {3, 4}})
	yHat2 := rows(t, [][]float64{{2, 3}, {5, 6}})

	got, err := losses.RMAE(y, yHat1, yHat2, losses.WithAxis(1))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0}, got.Data(), tol)
}
