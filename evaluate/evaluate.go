// SPDX-License-Identifier: MIT
// Package: evaluate
//
// Purpose:
//   - Score several forecasting models on one panel of series in a single
//     call, one value per (model, metric, series).
//   - Panels are gonum matrices with rows = series and cols = horizon. They
//     are transposed to time × series, the layout package losses lags MASE
//     along, and every metric reduces over time (axis 0).

package evaluate

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvloss/losses"
	"github.com/katalvlaran/lvloss/ndarray"
)

// Metric names a per-series accuracy metric.
type Metric string

// Registered metrics.
const (
	MAE   Metric = "mae"
	MSE   Metric = "mse"
	RMSE  Metric = "rmse"
	MAPE  Metric = "mape"
	SMAPE Metric = "smape"
	MASE  Metric = "mase"
	RMAE  Metric = "rmae"
)

// pointMetrics is the default metric set.
var pointMetrics = []Metric{MAE, MSE, RMSE, MAPE, SMAPE}

// panel bundles the converted inputs shared by every scorer.
type panel struct {
	y           *ndarray.Array
	train       *ndarray.Array
	baseline    *ndarray.Array
	seasonality int
}

// scorer computes one metric per series (column of the time-major yHat).
type scorer func(p panel, yHat *ndarray.Array) (*ndarray.Array, error)

var perSeries = losses.WithAxis(0)

func pointScorer(fn func(y, yHat *ndarray.Array, opts ...losses.Option) (*ndarray.Array, error)) scorer {
	return func(p panel, yHat *ndarray.Array) (*ndarray.Array, error) {
		return fn(p.y, yHat, perSeries)
	}
}

var scorers = map[Metric]scorer{
	MAE:   pointScorer(losses.MAE),
	MSE:   pointScorer(losses.MSE),
	RMSE:  pointScorer(losses.RMSE),
	MAPE:  pointScorer(losses.MAPE),
	SMAPE: pointScorer(losses.SMAPE),
	MASE: func(p panel, yHat *ndarray.Array) (*ndarray.Array, error) {
		return losses.MASE(p.y, yHat, p.train, p.seasonality, perSeries)
	},
	RMAE: func(p panel, yHat *ndarray.Array) (*ndarray.Array, error) {
		return losses.RMAE(p.y, yHat, p.baseline, perSeries)
	},
}

// Metrics lists every registered metric name in sorted order.
func Metrics() []Metric {
	out := make([]Metric, 0, len(scorers))
	for m := range scorers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Evaluate scores every forecast in forecasts against the observed panel y.
//
// Each forecast must have the dimensions of y. Models are processed in
// name order, so the Report is deterministic for a given input.
//
// Errors:
//   - ErrNoForecasts, ErrUnknownMetric, ErrMissingTrain, ErrMissingBaseline,
//     ErrSeriesIDs for an invalid request, detected before any scoring.
//   - ndarray.ErrNilArray for a nil panel.
//   - Any losses/ndarray error from a metric, wrapped with "model/metric".
func Evaluate(y mat.Matrix, forecasts map[string]mat.Matrix, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	if len(forecasts) == 0 {
		return nil, ErrNoForecasts
	}
	metrics := o.resolvedMetrics()
	if err := checkRequest(metrics, forecasts, o); err != nil {
		return nil, err
	}

	yArr, err := timeMajor(y)
	if err != nil {
		return nil, fmt.Errorf("evaluate: observations: %w", err)
	}
	nSeries, _ := yArr.Dim(1)
	ids, err := seriesIDs(o.seriesIDs, nSeries)
	if err != nil {
		return nil, err
	}

	p := panel{y: yArr, seasonality: o.seasonality}
	if o.train != nil {
		if p.train, err = timeMajor(o.train); err != nil {
			return nil, fmt.Errorf("evaluate: train: %w", err)
		}
	}

	models := make([]string, 0, len(forecasts))
	for name := range forecasts {
		models = append(models, name)
	}
	sort.Strings(models)

	arrays := make(map[string]*ndarray.Array, len(models))
	for _, name := range models {
		a, err := timeMajor(forecasts[name])
		if err != nil {
			return nil, fmt.Errorf("evaluate: forecast %q: %w", name, err)
		}
		arrays[name] = a
	}
	if o.baseline != "" {
		p.baseline = arrays[o.baseline]
	}

	rep := newReport(models, metrics, ids)
	for _, name := range models {
		for _, m := range metrics {
			res, err := scorers[m](p, arrays[name])
			if err != nil {
				return nil, evalErrorf(name, m, err)
			}
			rep.scores[name][m] = res.Data()
		}
	}

	return rep, nil
}

// timeMajor copies a series × time panel into a time × series array.
func timeMajor(m mat.Matrix) (*ndarray.Array, error) {
	if m == nil {
		return nil, ndarray.ErrNilArray
	}

	return ndarray.FromMatrix(m.T())
}

// checkRequest validates metric names and their prerequisites.
func checkRequest(metrics []Metric, forecasts map[string]mat.Matrix, o Options) error {
	for _, m := range metrics {
		if _, ok := scorers[m]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMetric, m)
		}
		switch m {
		case MASE:
			if o.train == nil {
				return ErrMissingTrain
			}
		case RMAE:
			if _, ok := forecasts[o.baseline]; !ok || o.baseline == "" {
				return fmt.Errorf("%w: %q", ErrMissingBaseline, o.baseline)
			}
		}
	}

	return nil
}

// seriesIDs returns the row labels, defaulting to row indices.
func seriesIDs(ids []string, n int) ([]string, error) {
	if ids == nil {
		out := make([]string, n)
		for i := range out {
			out[i] = strconv.Itoa(i)
		}
		return out, nil
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%w: %d IDs for %d series", ErrSeriesIDs, len(ids), n)
	}

	return ids, nil
}
