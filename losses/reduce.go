// SPDX-License-Identifier: MIT
// Package: losses
//
// Purpose:
//   - One parameterized reducer behind every metric. Metrics differ in how
//     they treat NaN and weights, and those differences are kept visible at
//     the call sites through the filterNaN flag:
//
//	metric                       filterNaN  weights
//	MAE, MSE, RMSE, QuantileLoss true       NaN positions dropped from sum and normalization
//	MAPE, SMAPE                  false      plain weighted average (quotients are already NaN-free)
//	MASE numerator and scale     false      plain weighted / unweighted average
//	MQLoss, ScaledCRPS           false      weights repeated over the quantile axis
//
// Lane policy:
//   - A lane left empty (all NaN under filterNaN, or a zero-length axis) is NaN.
//   - A non-empty weighted lane whose weights sum to 0 is ErrDegenerateWeights.

package losses

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvloss/ndarray"
)

// average reduces values under o (axis or whole array), optionally weighted.
// weights, when non-nil, must have the shape of values.
// The result has the shape of values without the reduced axis (rank 0 when
// no axis is set).
// Complexity: O(n) time, O(lane length) scratch.
func average(values, weights *ndarray.Array, o Options, filterNaN bool) (*ndarray.Array, error) {
	shape := values.Shape()
	if weights != nil && !ndarray.SameShape(shape, weights.Shape()) {
		return nil, lossErrorf("average", ErrWeightShape)
	}
	lanes, err := o.lanes(shape)
	if err != nil {
		return nil, err
	}

	vals := values.Data()
	var ws []float64
	if weights != nil {
		ws = weights.Data()
	}

	out := make([]float64, lanes.Count)
	xs := make([]float64, 0, lanes.Len) // lane scratch: values
	wl := make([]float64, 0, lanes.Len) // lane scratch: weights
	for j := 0; j < lanes.Count; j++ {
		xs, wl = xs[:0], wl[:0]
		for k := 0; k < lanes.Len; k++ {
			off := lanes.Offset(j, k)
			if filterNaN && math.IsNaN(vals[off]) {
				continue // excluded from both the sum and the normalization
			}
			xs = append(xs, vals[off])
			if ws != nil {
				wl = append(wl, ws[off])
			}
		}
		m, err := laneMean(xs, wl, ws != nil)
		if err != nil {
			return nil, err
		}
		out[j] = m
	}

	return ndarray.New(lanes.Shape, out)
}

// laneMean is the (weighted) arithmetic mean of one gathered lane.
func laneMean(xs, ws []float64, weighted bool) (float64, error) {
	if len(xs) == 0 {
		return math.NaN(), nil
	}
	if !weighted {
		return stat.Mean(xs, nil), nil
	}
	if floats.Sum(ws) == 0 {
		return 0, lossErrorf("average", ErrDegenerateWeights)
	}

	return stat.Mean(xs, ws), nil
}
