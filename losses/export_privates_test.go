// SPDX-License-Identifier: MIT

package losses

import "github.com/katalvlaran/lvloss/ndarray"

// Average exposes the shared reducer to the external test package.
func Average(values, weights *ndarray.Array, filterNaN bool, opts ...Option) (*ndarray.Array, error) {
	return average(values, weights, gatherOptions(opts...), filterNaN)
}

// Pinball exposes ρ_q(e).
func Pinball(q, e float64) float64 { return pinball(q, e) }
