// SPDX-License-Identifier: MIT

package losses_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvloss/losses"
	"github.com/katalvlaran/lvloss/ndarray"
)

// TestValidateWeights covers the nil pass-through, the positive-sum rule
// and the shape rule, in that order.
func TestValidateWeights(t *testing.T) {
	t.Parallel()

	y := vec(1, 2, 3)
	tests := []struct {
		name    string
		w       *ndarray.Array
		wantErr error
	}{
		{"nil weights", nil, nil},
		{"positive matching", vec(1, 0, 2), nil},
		{"negative entries, positive sum", vec(2, -1, 0), nil},
		{"zero sum", vec(0, 0, 0), losses.ErrDegenerateWeights},
		{"negative sum", vec(-1, -1, 1), losses.ErrDegenerateWeights},
		{"NaN sum", vec(1, math.NaN(), 1), losses.ErrDegenerateWeights},
		{"degenerate wins over shape", vec(0, 0), losses.ErrDegenerateWeights},
		{"wrong length", vec(1, 1), losses.ErrWeightShape},
		{"wrong rank", rows(t, [][]float64{{1, 1, 1}}), losses.ErrWeightShape},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := losses.ValidateWeights(y, tc.w)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			assert.ErrorIs(t, err, losses.ErrPrecondition)
		})
	}
}

func TestValidateWeights_MessageCarriesShapes(t *testing.T) {
	err := losses.ValidateWeights(vec(1, 2, 3), vec(1, 1))
	require.ErrorIs(t, err, losses.ErrWeightShape)
	assert.Contains(t, err.Error(), "[2]")
	assert.Contains(t, err.Error(), "[3]")
}

func TestValidateWeights_NilTarget(t *testing.T) {
	err := losses.ValidateWeights(nil, vec(1))
	assert.ErrorIs(t, err, ndarray.ErrNilArray)
}
