// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
//
// All constructors and arithmetic helpers return these sentinels (optionally
// wrapped with call-site context via opErrorf); tests match them with errors.Is.
// Nothing in this package panics on user input.

package operator

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is returned when an operator matrix has an invalid shape:
	// empty input, a non-square dense matrix, or a negative site/orbital.
	ErrDimension = errors.New("operator: invalid operator dimension")

	// ErrIncompatibleOperand is returned by arithmetic on operators whose
	// site, orbital, dimension or fermionic flag do not match.
	ErrIncompatibleOperand = errors.New("operator: incompatible operands")
)

// Operation tags used with opErrorf.
const (
	opNewDense    = "NewDense"
	opNewDiagonal = "NewDiagonal"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTimes       = "Times"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
