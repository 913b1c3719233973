// SPDX-License-Identifier: MIT

package presets

import (
	"errors"
	"fmt"
)

var (
	// ErrTargets is returned when the number of conserved-quantity targets
	// differs from the number of conserved operators.
	ErrTargets = errors.New("presets: wrong number of conserved targets")

	// ErrNilLattice is returned by builders given a nil lattice.
	ErrNilLattice = errors.New("presets: nil lattice")
)

func presetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
