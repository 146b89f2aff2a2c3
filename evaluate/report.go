// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Report holds per-series scores for every (model, metric) pair.
// A Report is immutable once returned; accessors return copies.
type Report struct {
	models    []string
	metrics   []Metric
	seriesIDs []string
	scores    map[string]map[Metric][]float64
}

func newReport(models []string, metrics []Metric, ids []string) *Report {
	r := &Report{
		models:    append([]string(nil), models...),
		metrics:   append([]Metric(nil), metrics...),
		seriesIDs: append([]string(nil), ids...),
		scores:    make(map[string]map[Metric][]float64, len(models)),
	}
	for _, m := range models {
		r.scores[m] = make(map[Metric][]float64, len(metrics))
	}

	return r
}

// Models returns the evaluated model names in sorted order.
func (r *Report) Models() []string { return append([]string(nil), r.models...) }

// Metrics returns the computed metrics in request order.
func (r *Report) Metrics() []Metric { return append([]Metric(nil), r.metrics...) }

// SeriesIDs returns the row labels.
func (r *Report) SeriesIDs() []string { return append([]string(nil), r.seriesIDs...) }

// Score returns the per-series values of metric for model, in row order.
// ok is false when the pair was not computed.
func (r *Report) Score(model string, metric Metric) (values []float64, ok bool) {
	s, ok := r.scores[model][metric]
	if !ok {
		return nil, false
	}

	return append([]float64(nil), s...), true
}

// Summary averages every (model, metric) over series. NaN scores (series
// with no usable observations) are skipped; a pair with no finite-or-Inf
// score left is NaN. ±Inf scores are kept and dominate the mean.
func (r *Report) Summary() map[string]map[Metric]float64 {
	out := make(map[string]map[Metric]float64, len(r.models))
	for _, model := range r.models {
		row := make(map[Metric]float64, len(r.metrics))
		for _, m := range r.metrics {
			row[m] = nanMean(r.scores[model][m])
		}
		out[model] = row
	}

	return out
}

// Best returns the model with the lowest summary value for metric.
// Models whose summary is NaN are ignored; ties keep the first model in
// name order. ok is false when metric was not computed or every summary is
// NaN.
func (r *Report) Best(metric Metric) (model string, value float64, ok bool) {
	if !r.has(metric) {
		return "", math.NaN(), false
	}
	sums := make([]float64, 0, len(r.models))
	names := make([]string, 0, len(r.models))
	for _, name := range r.models {
		v := nanMean(r.scores[name][metric])
		if math.IsNaN(v) {
			continue
		}
		sums = append(sums, v)
		names = append(names, name)
	}
	if len(sums) == 0 {
		return "", math.NaN(), false
	}
	i := floats.MinIdx(sums)

	return names[i], sums[i], true
}

// Table returns metric as a series × model matrix, columns in Models order.
// Errors: ErrUnknownMetric when metric was not computed.
func (r *Report) Table(metric Metric) (*mat.Dense, error) {
	if !r.has(metric) {
		return nil, fmt.Errorf("%w: %q not in report", ErrUnknownMetric, metric)
	}
	t := mat.NewDense(len(r.seriesIDs), len(r.models), nil)
	for j, name := range r.models {
		t.SetCol(j, r.scores[name][metric])
	}

	return t, nil
}

func (r *Report) has(metric Metric) bool {
	for _, m := range r.metrics {
		if m == metric {
			return true
		}
	}

	return false
}

// nanMean is the mean of the non-NaN entries of xs, or NaN if none remain.
func nanMean(xs []float64) float64 {
	kept := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			kept = append(kept, x)
		}
	}
	if len(kept) == 0 {
		return math.NaN()
	}

	return stat.Mean(kept, nil)
}
