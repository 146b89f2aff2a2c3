// SPDX-License-Identifier: MIT
// Package losses: sentinel error set.
//
// Two families, both fatal to the call that raises them:
//   - ErrPrecondition: invalid weights, quantile levels or seasonality,
//     detected before any computation runs.
//   - ErrRange: a result outside its theoretical bounds, which signals a
//     caller bug (e.g. misaligned arrays).
//
// Shape mismatches between observations and forecasts surface as
// ndarray.ErrDimensionMismatch. Degenerate MASE/RMAE denominators are not
// errors: they propagate as ±Inf/NaN in the result.

package losses

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is the parent of every input-contract violation.
	ErrPrecondition = errors.New("losses: precondition violated")

	// ErrDegenerateWeights signals weights that do not sum to a positive value,
	// either over the whole array or over one reduction lane.
	ErrDegenerateWeights = fmt.Errorf("%w: sum of weights must be positive", ErrPrecondition)

	// ErrWeightShape signals a weight array shaped differently from its target.
	ErrWeightShape = fmt.Errorf("%w: wrong weight dimension", ErrPrecondition)

	// ErrInvalidQuantile signals a quantile level outside the open interval (0,1)
	// or an empty quantile list.
	ErrInvalidQuantile = fmt.Errorf("%w: quantile must lie in (0,1)", ErrPrecondition)

	// ErrInvalidSeasonality signals a seasonal lag that is not positive or is
	// longer than the training series.
	ErrInvalidSeasonality = fmt.Errorf("%w: invalid seasonality", ErrPrecondition)
)

var (
	// ErrRange is the parent of result-bound violations.
	ErrRange = errors.New("losses: result out of range")

	// ErrSMAPEOutOfRange signals an SMAPE value above 200.
	ErrSMAPEOutOfRange = fmt.Errorf("%w: SMAPE should be lower than 200", ErrRange)
)

// lossErrorf tags err with the metric that raised it: "<op>: <err>".
func lossErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
