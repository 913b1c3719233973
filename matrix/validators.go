// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One place for the shape, length and numeric checks shared by kernels.
//   - Return sentinel errors tagged with the validator name; call sites add
//     their operation tag on top.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j]-A[j,i]| <= tol on the strict upper triangle.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVecLen ensures x is non-nil with length n.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateVecLen(x []complex128, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries. Errors: ErrNaNInf.
func ValidateFinite(xs ...[]float64) error {
	for _, x := range xs {
		for i, v := range x {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFiniteComplex rejects entries with a NaN or infinite part.
// Errors: ErrNaNInf.
func ValidateFiniteComplex(x []complex128) error {
	for i, v := range x {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return validatorErrorf("ValidateFiniteComplex", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}
