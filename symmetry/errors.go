// SPDX-License-Identifier: MIT

package symmetry

import "errors"

var (
	// ErrBadMomentum indicates a momentum that is not a valid label of the
	// group's characters.
	ErrBadMomentum = errors.New("symmetry: invalid momentum")

	// ErrGroupMismatch indicates a group whose permutations do not act on
	// the sites of the basis layout.
	ErrGroupMismatch = errors.New("symmetry: group does not match the basis layout")
)
