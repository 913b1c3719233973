// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrOutOfRange indicates a coordinate outside an open dimension, or a
	// site/sublattice index outside the lattice.
	ErrOutOfRange = errors.New("lattice: coordinate out of range")
	// ErrBadShape indicates extents/boundaries that do not match the kind.
	ErrBadShape = errors.New("lattice: extents and boundaries do not match the lattice kind")
	// ErrUnknownKind indicates an unknown lattice kind or boundary name.
	ErrUnknownKind = errors.New("lattice: unknown lattice kind")
)
