// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"
)

// Kind selects the lattice geometry.
type Kind int

const (
	// Chain is a 1D chain.
	Chain Kind = iota
	// Square is a 2D square lattice.
	Square
	// Triangular is a 2D triangular lattice with primitive vectors a1, a2;
	// nearest neighbours sit at a1, a2 and a2-a1.
	Triangular
	// Cubic is a 3D simple cubic lattice.
	Cubic
	// Honeycomb is a 2D triangular Bravais lattice with two sites per cell.
	Honeycomb
)

var kindNames = map[Kind]string{
	Chain:      "chain",
	Square:     "square",
	Triangular: "triangular",
	Cubic:      "cubic",
	Honeycomb:  "honeycomb",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a name such as "square" to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// Boundary is the boundary condition along one dimension.
type Boundary int

const (
	// Periodic wraps coordinates and makes the dimension translation invariant.
	Periodic Boundary = iota
	// Open rejects coordinates outside [0, L).
	Open
)

// String returns "pbc" or "obc".
func (b Boundary) String() string {
	if b == Open {
		return "obc"
	}

	return "pbc"
}

// ParseBoundary accepts "pbc"/"periodic" and "obc"/"open".
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(name) {
	case "pbc", "periodic":
		return Periodic, nil
	case "obc", "open":
		return Open, nil
	}

	return 0, fmt.Errorf("ParseBoundary(%q): %w", name, ErrUnknownKind)
}

// Bond is a directed nearest-neighbour pair of site indices.
type Bond struct {
	I, J int
}

// bondVector is a neighbour offset from sublattice From in cell x to
// sublattice To in cell x+Delta.
type bondVector struct {
	from, to int
	delta    []int
}

// geometry holds the per-kind constants.
type geometry struct {
	dims  int
	nsub  int
	bonds []bondVector
}

var geometries = map[Kind]geometry{
	Chain:  {dims: 1, nsub: 1, bonds: []bondVector{{0, 0, []int{1}}}},
	Square: {dims: 2, nsub: 1, bonds: []bondVector{{0, 0, []int{1, 0}}, {0, 0, []int{0, 1}}}},
	Triangular: {dims: 2, nsub: 1, bonds: []bondVector{
		{0, 0, []int{1, 0}}, {0, 0, []int{0, 1}}, {0, 0, []int{-1, 1}},
	}},
	Cubic: {dims: 3, nsub: 1, bonds: []bondVector{
		{0, 0, []int{1, 0, 0}}, {0, 0, []int{0, 1, 0}}, {0, 0, []int{0, 0, 1}},
	}},
	Honeycomb: {dims: 2, nsub: 2, bonds: []bondVector{
		{0, 1, []int{0, 0}}, {0, 1, []int{-1, 0}}, {0, 1, []int{0, -1}},
	}},
}
