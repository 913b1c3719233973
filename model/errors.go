// SPDX-License-Identifier: MIT
// Package model: sentinel error set.

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBasis is returned when an operation needs EnumerateBasis first.
	ErrNoBasis = errors.New("model: basis not enumerated")

	// ErrNoSector is returned when an operation needs InitSector first.
	ErrNoSector = errors.New("model: symmetry sector not initialized")
)

// Operation tags for modelErrorf.
const (
	opEnumerate   = "Model.EnumerateBasis"
	opInitSector  = "Model.InitSector"
	opBuild       = "Model.BuildHamiltonian"
	opLocateE0    = "Model.LocateE0"
	opEnergyScale = "Model.EnergyScale"
	opMulVecAdd   = "Model.MulVecAdd"
	opAssemble    = "Assemble"
)

// modelErrorf wraps err with an operation tag. Call only with a non-nil err.
func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
