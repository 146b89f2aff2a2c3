// SPDX-License-Identifier: MIT
// Package evaluate: sentinel error set.
// Metric failures from package losses are passed through wrapped with the
// model and metric they came from, so errors.Is still matches the losses
// and ndarray sentinels.

package evaluate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoForecasts indicates an empty forecast set.
	ErrNoForecasts = errors.New("evaluate: no forecasts to evaluate")

	// ErrUnknownMetric indicates a metric name that is not registered.
	ErrUnknownMetric = errors.New("evaluate: unknown metric")

	// ErrMissingTrain indicates MASE was requested without WithTrain.
	ErrMissingTrain = errors.New("evaluate: MASE needs a training panel")

	// ErrMissingBaseline indicates RMAE was requested without a baseline
	// model present in the forecast set.
	ErrMissingBaseline = errors.New("evaluate: RMAE needs a baseline model")

	// ErrSeriesIDs indicates a series-ID list whose length differs from the
	// number of panel rows.
	ErrSeriesIDs = errors.New("evaluate: series IDs do not match panel rows")
)

// evalErrorf tags err with the model and metric being scored.
func evalErrorf(model string, metric Metric, err error) error {
	return fmt.Errorf("evaluate %s/%s: %w", model, metric, err)
}
