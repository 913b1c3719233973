// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel returns these sentinels (wrapped with an operation tag via
// matrixErrorf) and tests match them with errors.Is. Panics are reserved for
// invalid option values.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (n <= 0, or an
	// empty tridiagonal).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g. a
	// vector whose length differs from the operator dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals a matrix expected to be symmetric that is not,
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil matrix or vector argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed indicates that an eigen routine failed to converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags for matrixErrorf.
const (
	opNewDense    = "NewDense"
	opEigen       = "Eigen"
	opTridiag     = "TridiagEigen"
	opMulVec      = "CSR.MulVec"
	opMulVecAdd   = "CSR.MulVecAdd"
	opBuilderAdd  = "Builder.Add"
	opNewBuilder  = "NewBuilder"
	opRandomize   = "Randomize"
	opOrthonormal = "Orthonormalize"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
