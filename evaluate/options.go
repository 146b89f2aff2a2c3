// SPDX-License-Identifier: MIT

// Package evaluate: functional options for Evaluate.
//
// Defaults: the point metrics (MAE, MSE, RMSE, MAPE, SMAPE), no training
// panel, no baseline, series labelled by row index. WithTrain adds MASE
// and WithBaseline adds RMAE to the default set; an explicit WithMetrics
// list replaces the default set entirely.
package evaluate

import "gonum.org/v1/gonum/mat"

// Option mutates Options. The last setter of each kind wins.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	metrics     []Metric   // nil ⇒ point metrics plus MASE/RMAE when enabled
	train       mat.Matrix // in-sample panel for MASE
	seasonality int        // MASE lag
	baseline    string     // model name for RMAE
	seriesIDs   []string   // row labels; nil ⇒ "0", "1", ...
}

// WithMetrics selects the metrics to compute, in report order.
// Names are validated by Evaluate (ErrUnknownMetric).
func WithMetrics(metrics ...Metric) Option {
	return func(o *Options) { o.metrics = append([]Metric(nil), metrics...) }
}

// WithTrain supplies the in-sample panel (rows aligned with y) and the
// seasonal lag used by MASE.
func WithTrain(train mat.Matrix, seasonality int) Option {
	return func(o *Options) {
		o.train = train
		o.seasonality = seasonality
	}
}

// WithBaseline names the forecast that RMAE compares every model against.
func WithBaseline(model string) Option {
	return func(o *Options) { o.baseline = model }
}

// WithSeriesIDs labels the panel rows. The count must equal the number of
// rows (ErrSeriesIDs).
func WithSeriesIDs(ids ...string) Option {
	return func(o *Options) { o.seriesIDs = append([]string(nil), ids...) }
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolvedMetrics returns the metric list Evaluate will run.
func (o Options) resolvedMetrics() []Metric {
	if o.metrics != nil {
		return o.metrics
	}
	ms := append([]Metric(nil), pointMetrics...)
	if o.train != nil {
		ms = append(ms, MASE)
	}
	if o.baseline != "" {
		ms = append(ms, RMAE)
	}

	return ms
}
