// SPDX-License-Identifier: MIT

// Package lvloss is a library of forecast-accuracy metrics: how far a
// forecast is from what actually happened, for point, interval and
// quantile forecasts over one series or a whole panel.
//
// The module is organized in three packages:
//
//	ndarray/   dense N-D float64 arrays with explicit broadcasting,
//	            axis lanes and gonum/mat interop
//	losses/    the metrics: MAE, MSE, RMSE, MAPE, SMAPE, MASE, RMAE,
//	            QuantileLoss, MQLoss, ScaledCRPS, Coverage, Calibration,
//	            plus SafeDivide and ValidateWeights
//	evaluate/  per-series scoring of several models on a gonum panel,
//	            with summaries and ranking
//
// Every metric takes observations y and forecasts ŷ of the same shape,
// optional weights (losses.WithWeights) and an optional reduction axis
// (losses.WithAxis):
//
//	y := ndarray.FromSlice([]float64{1, 2, 3, 4})
//	yHat := ndarray.FromSlice([]float64{2, 2, 1, 4})
//	mae, err := losses.MAE(y, yHat) // rank-0 array holding 0.75
//
// Metrics are pure functions: inputs are never modified and there is no
// shared state, so they may run concurrently on shared arrays. Failures are
// reported as wrapped sentinel errors (losses.ErrPrecondition,
// losses.ErrRange, ndarray.ErrDimensionMismatch, ...).
//
// See examples/ for a complete store-demand evaluation.
//
//	go get github.com/katalvlaran/lvloss
package lvloss
