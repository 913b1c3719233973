// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBasis is returned when no state satisfies every constraint.
	ErrEmptyBasis = errors.New("basis: no state satisfies the constraints")

	// ErrSelectionRule is returned when a state produced by an operator string
	// is not a member of the basis it was built from (a conserved quantity
	// was violated).
	ErrSelectionRule = errors.New("basis: selection rule violated")

	// ErrStateOverflow is returned when a layout needs more than 64 bits.
	ErrStateOverflow = errors.New("basis: layout does not fit into 64 bits")

	// ErrUnknownSpecies is returned by ParseSpecies for an unknown name.
	ErrUnknownSpecies = errors.New("basis: unknown species")
)

// basisErrorf wraps err with an operation tag.
func basisErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
