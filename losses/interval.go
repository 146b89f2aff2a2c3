// SPDX-License-Identifier: MIT

package losses

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvloss/ndarray"
)

const (
	opCoverage    = "Coverage"
	opCalibration = "Calibration"
)

// Coverage is the percentage of observations inside the closed prediction
// interval [yLo, yHi]:
//
//	coverage = 100 · mean(yLo ≤ y ≤ yHi)
//
// NaN compares false, so a NaN in any operand counts as a miss. The result
// lies in [0, 100]; an empty y gives NaN. Bounds are not checked for
// yLo ≤ yHi; an inverted interval simply covers nothing.
// Errors: ndarray.ErrNilArray, ndarray.ErrDimensionMismatch.
func Coverage(y, yLo, yHi *ndarray.Array) (float64, error) {
	if err := ndarray.ValidateNotNil(y, yLo, yHi); err != nil {
		return 0, lossErrorf(opCoverage, err)
	}
	if err := sameShapes(y, yLo, yHi); err != nil {
		return 0, lossErrorf(opCoverage, err)
	}

	above, err := ndarray.Map2(y, yLo, notBelow)
	if err != nil {
		return 0, lossErrorf(opCoverage, err)
	}
	below, err := ndarray.Map2(y, yHi, notAbove)
	if err != nil {
		return 0, lossErrorf(opCoverage, err)
	}
	inside, err := ndarray.Mul(above, below)
	if err != nil {
		return 0, lossErrorf(opCoverage, err)
	}

	return percentScale * hitRate(inside), nil
}

// Calibration is the fraction of observations at or below the upper
// forecast yHi, in [0, 1]. NaN counts as a miss; an empty y gives NaN.
// Errors: ndarray.ErrNilArray, ndarray.ErrDimensionMismatch.
func Calibration(y, yHi *ndarray.Array) (float64, error) {
	if err := validatePair(y, yHi); err != nil {
		return 0, lossErrorf(opCalibration, err)
	}

	below, err := ndarray.Map2(y, yHi, notAbove)
	if err != nil {
		return 0, lossErrorf(opCalibration, err)
	}

	return hitRate(below), nil
}

// notAbove and notBelow are 0/1 indicators of v ≤ bound and v ≥ bound.
// Comparisons with NaN are false, so NaN scores 0.
func notAbove(v, bound float64) float64 {
	if v <= bound {
		return 1
	}

	return 0
}

func notBelow(v, bound float64) float64 {
	if v >= bound {
		return 1
	}

	return 0
}

// hitRate is the mean of a 0/1 indicator array, NaN when it is empty.
func hitRate(hits *ndarray.Array) float64 {
	if hits.Size() == 0 {
		return math.NaN()
	}

	return stat.Mean(hits.Data(), nil)
}

// sameShapes requires every array to share the shape of the first.
func sameShapes(first *ndarray.Array, rest ...*ndarray.Array) error {
	for _, a := range rest {
		if err := ndarray.ValidateSameShape(first, a); err != nil {
			return fmt.Errorf("interval bounds: %w", err)
		}
	}

	return nil
}
