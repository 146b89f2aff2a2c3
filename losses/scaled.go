// SPDX-License-Identifier: MIT
// Package: losses
//
// Relative (scale-free) metrics. Both divide one reduced error by another
// and deliberately skip SafeDivide: a zero denominator surfaces as ±Inf or
// NaN so that a degenerate benchmark is visible to the caller.

package losses

import (
	"github.com/katalvlaran/lvloss/ndarray"
)

const (
	opMASE = "MASE"
	opRMAE = "RMAE"
)

// MASE is the mean absolute scaled error: the MAE of yHat divided by the
// in-sample MAE of the seasonal naive forecast on yTrain.
//
//	MASE = mean|y - ŷ| / mean|yTrain[t] - yTrain[t-s]|
//
// The lag s = seasonality runs along axis 0 of yTrain (time first) and
// must satisfy 0 < s <= len(axis 0), else ErrInvalidSeasonality. WithWeights
// applies to the numerator only; WithAxis applies to both terms, so with a
// time × series layout WithAxis(0) gives one MASE per series.
//
// Neither term filters NaN. A constant training series gives a zero scale
// and the result is +Inf (or NaN when the numerator is also 0); s equal to
// the training length leaves no differences and the result is NaN.
func MASE(y, yHat, yTrain *ndarray.Array, seasonality int, opts ...Option) (*ndarray.Array, error) {
	o, err := prepare(opMASE, y, yHat, opts)
	if err != nil {
		return nil, err
	}
	if err = validateSeasonality(yTrain, seasonality); err != nil {
		return nil, lossErrorf(opMASE, err)
	}

	delta, err := ndarray.Sub(y, yHat)
	if err != nil {
		return nil, lossErrorf(opMASE, err)
	}
	num, err := average(ndarray.Abs(delta), o.weights, o, false)
	if err != nil {
		return nil, lossErrorf(opMASE, err)
	}

	scale, err := naiveScale(yTrain, seasonality, o)
	if err != nil {
		return nil, lossErrorf(opMASE, err)
	}

	res, err := ndarray.Map2(num, scale, func(a, b float64) float64 { return a / b })
	if err != nil {
		return nil, lossErrorf(opMASE, err)
	}

	return res, nil
}

// naiveScale is the unweighted mean of |yTrain[t] - yTrain[t+s]| over
// axis 0, reduced the same way as the numerator.
func naiveScale(yTrain *ndarray.Array, s int, o Options) (*ndarray.Array, error) {
	n, err := yTrain.Dim(0)
	if err != nil {
		return nil, err
	}
	head, err := yTrain.SliceAxis(0, 0, n-s)
	if err != nil {
		return nil, err
	}
	tail, err := yTrain.SliceAxis(0, s, n)
	if err != nil {
		return nil, err
	}
	diff, err := ndarray.Sub(head, tail)
	if err != nil {
		return nil, err
	}

	return average(ndarray.Abs(diff), nil, o, false)
}

// RMAE is the relative mean absolute error of yHat1 against a baseline
// yHat2:
//
//	RMAE = MAE(y, ŷ1) / MAE(y, ŷ2)
//
// Both MAEs share the options, so NaN positions are filtered on each side
// independently. A perfect baseline makes the ratio +Inf (or NaN when
// both are perfect); no guard is applied.
func RMAE(y, yHat1, yHat2 *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	num, err := MAE(y, yHat1, opts...)
	if err != nil {
		return nil, lossErrorf(opRMAE, err)
	}
	den, err := MAE(y, yHat2, opts...)
	if err != nil {
		return nil, lossErrorf(opRMAE, err)
	}

	res, err := ndarray.Map2(num, den, func(a, b float64) float64 { return a / b })
	if err != nil {
		return nil, lossErrorf(opRMAE, err)
	}

	return res, nil
}
