// SPDX-License-Identifier: MIT

// Package lattice - Bravais lattices with per-dimension boundary conditions.
//
// Site numbering:
//
//	site = sub + nsub·(x0 + L0·(x1 + L1·x2))
//
// so the first coordinate runs fastest and the sublattice index fastest of all.

package lattice

import (
	"fmt"
	"slices"
)

// Lattice is an immutable finite lattice.
type Lattice struct {
	kind       Kind
	extents    []int
	boundaries []Boundary
	nsub       int
	bonds      []bondVector
	perms      [][]int // site permutation of every translation element
	periodic   []int   // indices of periodic dimensions
}

// New builds a lattice of the given kind. extents and boundaries need one entry
// per dimension of kind (1 for chain, 2 for square/triangular/honeycomb, 3 for
// cubic). Errors: ErrUnknownKind, ErrBadShape.
// Complexity: O(|G|·N) time and memory for the translation tables, where |G|
// is the product of the periodic extents.
func New(kind Kind, extents []int, boundaries []Boundary) (*Lattice, error) {
	geo, ok := geometries[kind]
	if !ok {
		return nil, fmt.Errorf("New(%v): %w", kind, ErrUnknownKind)
	}
	if len(extents) != geo.dims || len(boundaries) != geo.dims {
		return nil, fmt.Errorf("New(%v): %d extents, %d boundaries, want %d: %w",
			kind, len(extents), len(boundaries), geo.dims, ErrBadShape)
	}
	for d, l := range extents {
		if l < 1 {
			return nil, fmt.Errorf("New(%v): extent[%d]=%d: %w", kind, d, l, ErrBadShape)
		}
	}
	lat := &Lattice{
		kind:       kind,
		extents:    slices.Clone(extents),
		boundaries: slices.Clone(boundaries),
		nsub:       geo.nsub,
		bonds:      geo.bonds,
	}
	for d, b := range boundaries {
		if b == Periodic {
			lat.periodic = append(lat.periodic, d)
		}
	}
	lat.buildTranslations()

	return lat, nil
}

// Kind returns the lattice kind.
func (l *Lattice) Kind() Kind { return l.kind }

// Dims returns the number of spatial dimensions.
func (l *Lattice) Dims() int { return len(l.extents) }

// Extents returns a copy of the extents.
func (l *Lattice) Extents() []int { return slices.Clone(l.extents) }

// Boundaries returns a copy of the boundary conditions.
func (l *Lattice) Boundaries() []Boundary { return slices.Clone(l.boundaries) }

// Sublattices returns the number of sites per unit cell.
func (l *Lattice) Sublattices() int { return l.nsub }

// Cells returns the number of unit cells.
func (l *Lattice) Cells() int {
	n := 1
	for _, e := range l.extents {
		n *= e
	}

	return n
}

// TotalSites returns Cells()·Sublattices().
func (l *Lattice) TotalSites() int { return l.Cells() * l.nsub }

// Coor2Site maps cell coordinates and a sublattice index to a site index.
// Coordinates wrap along periodic dimensions; along open dimensions a
// coordinate outside [0, L) is ErrOutOfRange. ErrBadShape for a coordinate
// vector of the wrong length.
// Complexity: O(dims).
func (l *Lattice) Coor2Site(coords []int, sub int) (int, error) {
	if len(coords) != len(l.extents) {
		return 0, fmt.Errorf("Coor2Site(%v): %w", coords, ErrBadShape)
	}
	if sub < 0 || sub >= l.nsub {
		return 0, fmt.Errorf("Coor2Site(%v, sub %d): %w", coords, sub, ErrOutOfRange)
	}
	cell := 0
	for d := len(coords) - 1; d >= 0; d-- {
		x, ext := coords[d], l.extents[d]
		if x < 0 || x >= ext {
			if l.boundaries[d] == Open {
				return 0, fmt.Errorf("Coor2Site(%v): dim %d open: %w", coords, d, ErrOutOfRange)
			}
			x = ((x % ext) + ext) % ext
		}
		cell = cell*ext + x
	}

	return sub + l.nsub*cell, nil
}

// Site2Coor is the inverse of Coor2Site. Errors: ErrOutOfRange.
func (l *Lattice) Site2Coor(site int) ([]int, int, error) {
	if site < 0 || site >= l.TotalSites() {
		return nil, 0, fmt.Errorf("Site2Coor(%d): %w", site, ErrOutOfRange)
	}
	sub, cell := site%l.nsub, site/l.nsub
	coords := make([]int, len(l.extents))
	for d, ext := range l.extents {
		coords[d] = cell % ext
		cell /= ext
	}

	return coords, sub, nil
}

// NearestNeighbors returns every nearest-neighbour bond, one per (site, bond
// vector) pair whose target exists. Under periodic boundaries on short
// extents the same pair can appear more than once; the multiplicity is kept
// so that Hamiltonians built from the list match the lattice connectivity.
// Complexity: O(N·z).
func (l *Lattice) NearestNeighbors() []Bond {
	out := make([]Bond, 0, l.Cells()*len(l.bonds))
	coords := make([]int, len(l.extents))
	target := make([]int, len(l.extents))
	for cell := 0; cell < l.Cells(); cell++ {
		c := cell
		for d, ext := range l.extents {
			coords[d] = c % ext
			c /= ext
		}
		for _, bv := range l.bonds {
			for d := range coords {
				target[d] = coords[d] + bv.delta[d]
			}
			j, err := l.Coor2Site(target, bv.to)
			if err != nil {
				continue
			}
			i := bv.from + l.nsub*cell
			out = append(out, Bond{I: i, J: j})
		}
	}

	return out
}

// String implements fmt.Stringer.
func (l *Lattice) String() string {
	return fmt.Sprintf("%v %v %v", l.kind, l.extents, l.boundaries)
}
