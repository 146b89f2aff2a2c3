// SPDX-License-Identifier: MIT

// Package losses: functional options shared by every weighted, axis-aware
// metric. Defaults are "no weights" and "reduce over the whole array".
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes the reduction and is tested.
//   - Options fields are unexported; public entry points accept ...Option and
//     resolve them through gatherOptions.
package losses

import "github.com/katalvlaran/lvloss/ndarray"

// Option mutates Options. Applying the same option twice is idempotent;
// the last WithAxis / WithWeights wins.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	weights *ndarray.Array // nil ⇒ unweighted
	axis    int            // meaningful only when hasAxis
	hasAxis bool           // false ⇒ reduce to a scalar
}

// WithWeights sets per-element weights for the weighted average.
// The array must match the shape of the observations (checked by
// ValidateWeights) and must sum to a positive value. A nil array is the
// same as no weights.
func WithWeights(w *ndarray.Array) Option {
	return func(o *Options) { o.weights = w }
}

// WithAxis reduces along one axis instead of the whole array; negative
// values count from the last axis. The result drops that axis.
func WithAxis(axis int) Option {
	return func(o *Options) {
		o.axis = axis
		o.hasAxis = true
	}
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

// lanes returns the reduction lanes for shape under o.
func (o Options) lanes(shape []int) (ndarray.Lanes, error) {
	if !o.hasAxis {
		return ndarray.AllLanes(shape), nil
	}

	return ndarray.NewLanes(shape, o.axis)
}
