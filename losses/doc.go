// SPDX-License-Identifier: MIT

// Package losses implements forecast-accuracy metrics over ndarray arrays.
//
// Families:
//
//   - Point metrics: MAE, MSE, RMSE, MAPE, SMAPE.
//   - Scaled metrics: MASE (seasonal-naive scale) and RMAE (against a
//     baseline forecast).
//   - Probabilistic metrics: QuantileLoss, MQLoss and ScaledCRPS.
//   - Interval diagnostics: Coverage and Calibration.
//
// Support: SafeDivide (non-finite quotients become 0) and ValidateWeights.
//
// Reduction. Every metric except the interval diagnostics reduces through
// one weighted average controlled by two options:
//
//	WithWeights(w)  per-element weights shaped like y, Σw > 0
//	WithAxis(a)     reduce one axis instead of the whole array
//
// Without WithAxis the result is a rank-0 array (read it with Item); with
// it, the reduced axis is dropped from the shape.
//
// NaN policy. MAE, MSE, RMSE and QuantileLoss ignore NaN positions in both
// the sum and the weight normalization; a lane that is all NaN yields NaN.
// MAPE and SMAPE have no NaN after SafeDivide. MASE, RMAE's ratio, MQLoss and
// ScaledCRPS do not filter, and MASE/RMAE let a zero denominator surface as
// +Inf or NaN.
//
// Inputs are never modified and no package state exists, so metrics may be
// called concurrently on shared arrays.
//
// Example:
//
//	y := ndarray.FromSlice([]float64{1, 2, 3, 4})
//	yHat := ndarray.FromSlice([]float64{2, 2, 1, 4})
//	mae, _ := losses.MAE(y, yHat)
//	v, _ := mae.Item() // 0.75
//
// Errors wrap the sentinels in errors.go (ErrPrecondition, ErrRange and their
// children) or ndarray's shape sentinels; match them with errors.Is.
package losses
