// SPDX-License-Identifier: MIT
// Package: losses
//
// Purpose:
//   - Input guards run at the top of every metric, before any arithmetic.
//   - ValidateWeights is the public weight contract; the unexported helpers
//     cover observation/forecast pairs, quantile levels and seasonality.

package losses

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvloss/ndarray"
)

// ValidateWeights checks weights against the array y they will be applied to.
// A nil weights array always passes.
//
// Rules, in order:
//   - Σ weights must be > 0, else ErrDegenerateWeights.
//   - weights.Shape() must equal y.Shape(), else ErrWeightShape; the message
//     carries both shapes.
//
// Both sentinels wrap ErrPrecondition. The check is pure and O(n).
func ValidateWeights(y, weights *ndarray.Array) error {
	if weights == nil {
		return nil
	}
	if y == nil {
		return fmt.Errorf("ValidateWeights: %w", ndarray.ErrNilArray)
	}
	if !(floats.Sum(weights.Data()) > 0) {
		return fmt.Errorf("ValidateWeights: %w", ErrDegenerateWeights)
	}
	if !ndarray.SameShape(weights.Shape(), y.Shape()) {
		return fmt.Errorf("ValidateWeights: %w: weights.shape %v, y.shape %v",
			ErrWeightShape, weights.Shape(), y.Shape())
	}

	return nil
}

// validatePair checks that y and yHat are present and equally shaped.
func validatePair(y, yHat *ndarray.Array) error {
	return ndarray.ValidateBinarySameShape(y, yHat)
}

// validateQuantile rejects levels outside (0,1), including NaN.
func validateQuantile(q float64) error {
	if !(q > 0 && q < 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidQuantile, q)
	}

	return nil
}

// validateQuantiles requires a non-empty list of levels in (0,1).
// Unsorted and repeated levels are allowed.
func validateQuantiles(qs []float64) error {
	if len(qs) == 0 {
		return fmt.Errorf("%w: empty quantile list", ErrInvalidQuantile)
	}
	for _, q := range qs {
		if err := validateQuantile(q); err != nil {
			return err
		}
	}

	return nil
}

// validateSeasonality requires 0 < seasonality <= length of axis 0.
// A lag equal to the length is allowed and leaves an empty scale.
func validateSeasonality(yTrain *ndarray.Array, seasonality int) error {
	if yTrain == nil {
		return ndarray.ErrNilArray
	}
	if yTrain.Rank() == 0 {
		return fmt.Errorf("%w: training series must have a time axis", ErrInvalidSeasonality)
	}
	n, _ := yTrain.Dim(0)
	if seasonality <= 0 || seasonality > n {
		return fmt.Errorf("%w: lag %d for a training series of length %d", ErrInvalidSeasonality, seasonality, n)
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
