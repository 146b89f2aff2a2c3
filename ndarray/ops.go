// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Thin elementwise wrappers over Map/Map2 (Abs, Sqrt, Scale, Add, Sub, Mul).
//   - Whole-array aggregates delegated to gonum/floats (Sum, Max, HasNaN).
//   - Comparison helpers for tests and callers (Equal, AllClose).

package ndarray

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Abs returns |a| elementwise.
func Abs(a *Array) *Array { return Map(a, math.Abs) }

// Sqrt returns √a elementwise; negative entries become NaN.
func Sqrt(a *Array) *Array { return Map(a, math.Sqrt) }

// Scale returns f·a elementwise.
func Scale(a *Array, f float64) *Array {
	return Map(a, func(v float64) float64 { return f * v })
}

// Add returns a+b with broadcasting.
func Add(a, b *Array) (*Array, error) {
	return Map2(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a-b with broadcasting.
func Sub(a, b *Array) (*Array, error) {
	return Map2(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a·b elementwise with broadcasting.
func Mul(a, b *Array) (*Array, error) {
	return Map2(a, b, func(x, y float64) float64 { return x * y })
}

// Sum returns the sum of all elements (NaN if any element is NaN).
func Sum(a *Array) float64 { return floats.Sum(a.data) }

// Max returns the largest element, or NaN for an empty array.
// NaN entries are ignored unless every entry is NaN.
func Max(a *Array) float64 {
	if len(a.data) == 0 {
		return math.NaN()
	}
	m := math.Inf(-1)
	seen := false
	for _, v := range a.data {
		if math.IsNaN(v) {
			continue
		}
		seen = true
		if v > m {
			m = v
		}
	}
	if !seen {
		return math.NaN()
	}

	return m
}

// HasNaN reports whether any element is NaN.
func HasNaN(a *Array) bool { return floats.HasNaN(a.data) }

// Equal reports whether a and b have the same shape and identical
// elements; NaN compares equal to NaN.
func Equal(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}

	return SameShape(a.shape, b.shape) && floats.Same(a.data, b.data)
}

// AllClose reports whether a and b have the same shape and every pair of
// elements is within tol (absolute or relative). NaN pairs compare equal;
// infinities must match exactly.
func AllClose(a, b *Array, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !SameShape(a.shape, b.shape) {
		return false
	}
	for i, x := range a.data {
		y := b.data[i]
		switch {
		case math.IsNaN(x) || math.IsNaN(y):
			if !(math.IsNaN(x) && math.IsNaN(y)) {
				return false
			}
		case math.IsInf(x, 0) || math.IsInf(y, 0):
			if x != y {
				return false
			}
		case !scalar.EqualWithinAbsOrRel(x, y, tol, tol):
			return false
		}
	}

	return true
}
