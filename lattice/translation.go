// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qbasis/symmetry"
)

// Lattice implements symmetry.Group with its translations.
var _ symmetry.Group = (*Lattice)(nil)

// buildTranslations precomputes the site permutation of every element.
func (l *Lattice) buildTranslations() {
	n := l.TotalSites()
	order := l.Order()
	l.perms = make([][]int, order)
	for g := 0; g < order; g++ {
		t := l.Translation(g)
		perm := make([]int, n)
		shifted := make([]int, len(l.extents))
		for site := 0; site < n; site++ {
			coords, sub, _ := l.Site2Coor(site)
			for d := range coords {
				shifted[d] = coords[d] + t[d]
			}
			perm[site], _ = l.Coor2Site(shifted, sub)
		}
		l.perms[g] = perm
	}
}

// Order returns the number of translations: the product of the periodic
// extents (1 when every dimension is open).
func (l *Lattice) Order() int {
	n := 1
	for _, d := range l.periodic {
		n *= l.extents[d]
	}

	return n
}

// Translation returns the displacement of element g, one entry per dimension
// (0 along open dimensions). Elements are numbered with the first periodic
// dimension slowest.
func (l *Lattice) Translation(g int) []int {
	t := make([]int, len(l.extents))
	for i := len(l.periodic) - 1; i >= 0; i-- {
		d := l.periodic[i]
		t[d] = g % l.extents[d]
		g /= l.extents[d]
	}

	return t
}

// SitePermutation returns the image of every site under translation g.
// The returned slice is shared and must not be modified.
func (l *Lattice) SitePermutation(g int) []int { return l.perms[g] }

// Character returns exp(i·2π·Σ_d k_d·t_d/L_d) for the displacement t of g.
func (l *Lattice) Character(g int, momentum []int) complex128 {
	t := l.Translation(g)
	var phase float64
	for _, d := range l.periodic {
		phase += float64(momentum[d]*t[d]) / float64(l.extents[d])
	}

	return cmplx.Exp(complex(0, 2*math.Pi*phase))
}

// ValidateMomentum checks 0 <= k_d < L_d along periodic dimensions and
// k_d == 0 along open ones. Errors: symmetry.ErrBadMomentum.
func (l *Lattice) ValidateMomentum(momentum []int) error {
	if len(momentum) != len(l.extents) {
		return fmt.Errorf("momentum %v for %d dims: %w", momentum, len(l.extents), symmetry.ErrBadMomentum)
	}
	for d, k := range momentum {
		limit := l.extents[d]
		if l.boundaries[d] == Open {
			limit = 1
		}
		if k < 0 || k >= limit {
			return fmt.Errorf("momentum %v: k[%d]=%d outside [0,%d): %w", momentum, d, k, limit, symmetry.ErrBadMomentum)
		}
	}

	return nil
}

// Momenta lists every valid momentum, first dimension slowest.
func (l *Lattice) Momenta() [][]int {
	limits := make([]int, len(l.extents))
	total := 1
	for d, b := range l.boundaries {
		limits[d] = 1
		if b == Periodic {
			limits[d] = l.extents[d]
		}
		total *= limits[d]
	}
	out := make([][]int, total)
	for i := range out {
		k := make([]int, len(limits))
		r := i
		for d := len(limits) - 1; d >= 0; d-- {
			k[d] = r % limits[d]
			r /= limits[d]
		}
		out[i] = k
	}

	return out
}
