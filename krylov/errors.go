// SPDX-License-Identifier: MIT
// Package krylov: sentinel error set.
//
// Solver entry points return these sentinels wrapped with an operation tag
// via krylovErrorf. Reaching the iteration cap is not an error; it is the
// MaxIterReached status.

package krylov

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOperator is returned when the operator argument is nil.
	ErrNilOperator = errors.New("krylov: nil operator")

	// ErrBadDimension is returned when the operator dimension is not positive.
	ErrBadDimension = errors.New("krylov: operator dimension must be positive")

	// ErrBadStart is returned when the start vector has the wrong length or
	// zero norm.
	ErrBadStart = errors.New("krylov: invalid start vector")

	// ErrNotReady is returned by Extract before Run has finished, and by Run
	// when called twice.
	ErrNotReady = errors.New("krylov: solver not in the required state")

	// ErrBadScale is returned by EnergyScale for iters < 2 or a negative or
	// non-finite extension.
	ErrBadScale = errors.New("krylov: invalid energy scale arguments")
)

// Operation tags for krylovErrorf.
const (
	opNew         = "New"
	opRun         = "Solver.Run"
	opExtract     = "Solver.Extract"
	opLanczos     = "Lanczos"
	opEnergyScale = "EnergyScale"
)

// krylovErrorf wraps err with an operation tag. Call only with a non-nil err.
func krylovErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
