// SPDX-License-Identifier: MIT
// Package: losses
//
// Point-forecast metrics. Each one validates its inputs, builds an
// elementwise error array and hands it to the shared reducer:
//
//	MAE    |y - ŷ|                       NaN-aware mean
//	MSE    (y - ŷ)²                      NaN-aware mean
//	RMSE   √MSE                          elementwise on the reduced array
//	MAPE   |y - ŷ| / |y|          (safe) mean × 100
//	SMAPE  |y - ŷ| / (|y| + |ŷ|)  (safe) mean × 200, must stay ≤ 200

package losses

import (
	"fmt"

	"github.com/katalvlaran/lvloss/ndarray"
)

// Operation tags used in error wrapping.
const (
	opMAE   = "MAE"
	opMSE   = "MSE"
	opRMSE  = "RMSE"
	opMAPE  = "MAPE"
	opSMAPE = "SMAPE"
)

const (
	percentScale    = 100.0
	smapeScale      = 200.0
	smapeUpperBound = 200.0
)

// prepare resolves options and runs the pair and weight guards shared by
// every two-array metric.
func prepare(op string, y, yHat *ndarray.Array, opts []Option) (Options, error) {
	o := gatherOptions(opts...)
	if err := validatePair(y, yHat); err != nil {
		return o, lossErrorf(op, err)
	}
	if err := ValidateWeights(y, o.weights); err != nil {
		return o, lossErrorf(op, err)
	}

	return o, nil
}

// MAE is the mean absolute error between y and yHat:
//
//	MAE = 1/H · Σ |y_τ - ŷ_τ|
//
// NaN errors (from NaN in either input) are excluded from the average,
// with and without weights; a lane that is entirely NaN yields NaN.
//
// Options: WithWeights, WithAxis.
// Errors: ndarray.ErrNilArray, ndarray.ErrDimensionMismatch,
// ErrDegenerateWeights, ErrWeightShape, ndarray.ErrBadAxis.
func MAE(y, yHat *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o, err := prepare(opMAE, y, yHat, opts)
	if err != nil {
		return nil, err
	}
	delta, err := ndarray.Sub(y, yHat)
	if err != nil {
		return nil, lossErrorf(opMAE, err)
	}
	res, err := average(ndarray.Abs(delta), o.weights, o, true)
	if err != nil {
		return nil, lossErrorf(opMAE, err)
	}

	return res, nil
}

// MSE is the mean squared error between y and yHat:
//
//	MSE = 1/H · Σ (y_τ - ŷ_τ)²
//
// NaN handling, options and errors are those of MAE.
func MSE(y, yHat *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o, err := prepare(opMSE, y, yHat, opts)
	if err != nil {
		return nil, err
	}
	sq, err := ndarray.Map2(y, yHat, func(a, b float64) float64 {
		d := a - b
		return d * d
	})
	if err != nil {
		return nil, lossErrorf(opMSE, err)
	}
	res, err := average(sq, o.weights, o, true)
	if err != nil {
		return nil, lossErrorf(opMSE, err)
	}

	return res, nil
}

// RMSE is the square root of MSE, in the scale of the series. When an axis
// leaves a residual array the root is taken elementwise.
func RMSE(y, yHat *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	mse, err := MSE(y, yHat, opts...)
	if err != nil {
		return nil, lossErrorf(opRMSE, err)
	}

	return ndarray.Sqrt(mse), nil
}

// MAPE is the mean absolute percentage error:
//
//	MAPE = 100/H · Σ |y_τ - ŷ_τ| / |y_τ|
//
// Positions where the quotient is undefined (y = 0, or NaN inputs) count as
// 0 through SafeDivide. Weights go straight into the average without NaN
// filtering, unlike MAE. The result is ≥ 0 and unbounded above.
func MAPE(y, yHat *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o, err := prepare(opMAPE, y, yHat, opts)
	if err != nil {
		return nil, err
	}
	delta, err := ndarray.Sub(y, yHat)
	if err != nil {
		return nil, lossErrorf(opMAPE, err)
	}
	ratio, err := SafeDivide(ndarray.Abs(delta), ndarray.Abs(y))
	if err != nil {
		return nil, lossErrorf(opMAPE, err)
	}
	res, err := average(ratio, o.weights, o, false)
	if err != nil {
		return nil, lossErrorf(opMAPE, err)
	}

	return ndarray.Scale(res, percentScale), nil
}

// SMAPE is the symmetric mean absolute percentage error:
//
//	SMAPE = 200/H · Σ |y_τ - ŷ_τ| / (|y_τ| + |ŷ_τ|)
//
// Undefined quotients count as 0 and weights are applied as in MAPE. Every
// entry of a valid result lies in [0, 200]; anything above 200 means the
// inputs were not a valid (y, ŷ) pair and fails with ErrSMAPEOutOfRange.
func SMAPE(y, yHat *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	o, err := prepare(opSMAPE, y, yHat, opts)
	if err != nil {
		return nil, err
	}
	delta, err := ndarray.Sub(y, yHat)
	if err != nil {
		return nil, lossErrorf(opSMAPE, err)
	}
	scale, err := ndarray.Add(ndarray.Abs(y), ndarray.Abs(yHat))
	if err != nil {
		return nil, lossErrorf(opSMAPE, err)
	}
	ratio, err := SafeDivide(ndarray.Abs(delta), scale)
	if err != nil {
		return nil, lossErrorf(opSMAPE, err)
	}
	res, err := average(ratio, o.weights, o, false)
	if err != nil {
		return nil, lossErrorf(opSMAPE, err)
	}
	res = ndarray.Scale(res, smapeScale)

	if m := ndarray.Max(res); m > smapeUpperBound {
		return nil, lossErrorf(opSMAPE, fmt.Errorf("%w: got %g", ErrSMAPEOutOfRange, m))
	}

	return res, nil
}
