// SPDX-License-Identifier: MIT

// Package evaluate scores competing forecasts of a panel of series.
//
// A panel is a gonum mat.Matrix with one row per series and one column per
// forecast step. Evaluate runs the requested metrics from package losses
// along the horizon of every row and collects the results in a Report:
//
//	rep, err := evaluate.Evaluate(y, map[string]mat.Matrix{
//		"naive": naive,
//		"ets":   ets,
//	}, evaluate.WithTrain(train, 7), evaluate.WithBaseline("naive"))
//	mase, _ := rep.Score("ets", evaluate.MASE) // one value per series
//	best, _, _ := rep.Best(evaluate.MASE)
//
// Without WithMetrics the point metrics are computed; WithTrain adds MASE
// and WithBaseline adds RMAE. Report.Summary averages over series and
// skips NaN, so a series with no usable observations does not poison the
// model's headline number.
package evaluate
