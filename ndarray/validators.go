// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Single source of truth for nil/shape guards shared by kernels and by
//     packages built on top of ndarray.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with their own operation tag.
//
// All checks are pure and O(rank).

package ndarray

import "fmt"

// validatorErrorf tags a sentinel violation with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every argument is non-nil.
// Errors: ErrNilArray.
func ValidateNotNil(arrays ...*Array) error {
	for i, a := range arrays {
		if a == nil {
			return validatorErrorf("ValidateNotNil", fmt.Errorf("%w: argument %d", ErrNilArray, i))
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have identical shapes (no broadcasting).
// Assumes both are non-nil.
// Errors: ErrDimensionMismatch (message carries both shapes).
func ValidateSameShape(a, b *Array) error {
	if !SameShape(a.shape, b.shape) {
		return shapeErrorf("ValidateSameShape", a.shape, b.shape, ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Array) error {
	if err := ValidateNotNil(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}
