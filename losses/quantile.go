// SPDX-License-Identifier: MIT
// Package: losses
//
// Probabilistic metrics built on the pinball loss
//
//	ρ_q(e) = max(q·e, (q-1)·e),  e = y - ŷ
//
// QuantileLoss scores one quantile forecast, MQLoss averages ρ over a
// trailing quantile axis, and ScaledCRPS rescales MQLoss by the magnitude
// of the observations.

package losses

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvloss/ndarray"
)

const (
	opQuantileLoss = "QuantileLoss"
	opMQLoss       = "MQLoss"
	opScaledCRPS   = "ScaledCRPS"
)

// machineEpsilon is float64 spacing at 1.0 (2^-52); it keeps the CRPS
// normalization finite for an all-zero y.
const machineEpsilon = 0x1p-52

// pinball is ρ_q(e). NaN in e stays NaN.
func pinball(q, e float64) float64 {
	return math.Max(q*e, (q-1)*e)
}

// QuantileLoss is the mean pinball loss of yHat read as the q-th quantile
// forecast of y. It penalizes under-prediction by q and over-prediction by
// 1-q; q = 0.5 gives half the MAE.
//
// NaN positions are filtered exactly as in MAE.
// Errors: ErrInvalidQuantile (q outside (0,1)), plus those of MAE.
func QuantileLoss(y, yHat *ndarray.Array, q float64, opts ...Option) (*ndarray.Array, error) {
	o, err := prepare(opQuantileLoss, y, yHat, opts)
	if err != nil {
		return nil, err
	}
	if err = validateQuantile(q); err != nil {
		return nil, lossErrorf(opQuantileLoss, err)
	}

	loss, err := ndarray.Map2(y, yHat, func(a, b float64) float64 { return pinball(q, a-b) })
	if err != nil {
		return nil, lossErrorf(opQuantileLoss, err)
	}
	res, err := average(loss, o.weights, o, true)
	if err != nil {
		return nil, lossErrorf(opQuantileLoss, err)
	}

	return res, nil
}

// MQLoss is the multi-quantile loss: the pinball loss averaged over every
// observation and every requested level.
//
//	MQL = 1/(H·Q) · Σ_τ Σ_i ρ_{q_i}(y_τ - ŷ_τ^{(q_i)})
//
// yHat carries one extra trailing axis of length len(quantiles):
// yHat[..., i] is the forecast for quantiles[i]. Weights are shaped like y
// (default all ones) and are repeated across the quantile axis. WithAxis
// indexes into yHat's shape. NaN is not filtered.
//
// Errors: ErrInvalidQuantile, ndarray.ErrDimensionMismatch (yHat not
// y.shape + [Q]), ErrDegenerateWeights, ErrWeightShape.
// Complexity: O(H·Q).
func MQLoss(y, yHat *ndarray.Array, quantiles []float64, opts ...Option) (*ndarray.Array, error) {
	if err := ndarray.ValidateNotNil(y, yHat); err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}
	if err := validateQuantiles(quantiles); err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}
	if err := validateQuantileShape(y, yHat, len(quantiles)); err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}

	o := gatherOptions(opts...)
	w := o.weights
	if w == nil {
		var err error
		if w, err = ndarray.Ones(y.Shape()...); err != nil {
			return nil, lossErrorf(opMQLoss, err)
		}
	}
	if err := ValidateWeights(y, w); err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}

	nq := len(quantiles)
	yCol, err := y.ExpandDims(-1)
	if err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}
	e, err := ndarray.Sub(yCol, yHat) // broadcasts y over the quantile axis
	if err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}
	loss, err := ndarray.Map2(e, ndarray.FromSlice(quantiles), func(d, q float64) float64 { return pinball(q, d) })
	if err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}

	wCol, err := w.ExpandDims(-1)
	if err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}
	wRep, err := wCol.Repeat(nq, -1)
	if err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}

	res, err := average(loss, wRep, o, false)
	if err != nil {
		return nil, lossErrorf(opMQLoss, err)
	}

	return res, nil
}

// validateQuantileShape requires yHat.shape == y.shape + [nq].
func validateQuantileShape(y, yHat *ndarray.Array, nq int) error {
	ys, hs := y.Shape(), yHat.Shape()
	want := append(ys, nq)
	if !ndarray.SameShape(want, hs) {
		return fmt.Errorf("%w: y.shape %v with %d quantiles needs yHat.shape %v, got %v",
			ndarray.ErrDimensionMismatch, ys, nq, want, hs)
	}

	return nil
}

// ScaledCRPS approximates the continuous ranked probability score by the
// multi-quantile loss, normalized by the total absolute magnitude of y so
// that series of different scale can be compared:
//
//	sCRPS = 2 · MQL · N / (Σ|y| + ε)
//
// where N is the number of elements in y and ε = 2^-52. Inputs, options
// and errors are those of MQLoss. NaN in y propagates.
func ScaledCRPS(y, yHat *ndarray.Array, quantiles []float64, opts ...Option) (*ndarray.Array, error) {
	mql, err := MQLoss(y, yHat, quantiles, opts...)
	if err != nil {
		return nil, lossErrorf(opScaledCRPS, err)
	}
	n := float64(y.Size())
	norm := ndarray.Sum(ndarray.Abs(y))

	return ndarray.Map(mql, func(v float64) float64 { return 2 * v * n / (norm + machineEpsilon) }), nil
}
