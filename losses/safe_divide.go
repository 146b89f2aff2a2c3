// SPDX-License-Identifier: MIT

package losses

import "github.com/katalvlaran/lvloss/ndarray"

// SafeDivide returns numerator/denominator elementwise, broadcasting as
// ndarray.Map2 does, with every NaN or ±Inf quotient replaced by 0.
//
// So 0/0 → 0 and x/0 → 0 regardless of sign, and a NaN operand also
// yields 0. Zero denominators never raise; the only error is a pair of
// shapes that cannot broadcast (ndarray.ErrDimensionMismatch).
func SafeDivide(numerator, denominator *ndarray.Array) (*ndarray.Array, error) {
	q, err := ndarray.Map2(numerator, denominator, divideNoNaN)
	if err != nil {
		return nil, lossErrorf("SafeDivide", err)
	}

	return q, nil
}

func divideNoNaN(a, b float64) float64 {
	d := a / b
	if isNonFinite(d) {
		return 0
	}

	return d
}
