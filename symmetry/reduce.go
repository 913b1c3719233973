// SPDX-License-Identifier: MIT

// Package symmetry - representative bases of one symmetry sector.
//
// Conventions:
//
//	T_g|s> = σ_g(s)·|s_g>                  (Layout.Permute, σ = fermionic sign)
//	|r~> = Σ_g χ(g)·T_g|r>                 (unnormalized sector state)
//	<r~|r~> = |G|·F,  F = Σ_{h: T_h r ∝ r} χ(h)·σ_h(r)
//
// F is |stab| for orbits compatible with χ and 0 otherwise, so
// N = (|G|/|stab|)·|F|² is the squared norm of |r~>. A state s with
// T_{g*}|s> = σ*·|rep> satisfies Σ_g χ(g)·T_g|s> = σ*·χ(g*)·|rep~>, which is
// the phase the assembler multiplies into every matrix element.

package symmetry

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/qbasis/basis"
)

// CompatibilityTolerance is the threshold on |F| below which an orbit is
// incompatible with the requested character.
const CompatibilityTolerance = 1e-8

// Link maps one full-basis state to its representative.
type Link struct {
	Rep     int     // index into the sector's representatives, -1 for an incompatible orbit
	Element int     // g* with T_{g*}|s> = Sign·|rep>
	Sign    float64 // σ*
}

// Orbit summarises one orbit of the full basis.
type Orbit struct {
	Rep        basis.State
	Size       int
	Compatible bool
}

// Sector is the representative basis of one symmetry sector.
// Immutable; rebuilt by Reduce whenever the momentum changes.
type Sector struct {
	full     *basis.Basis
	group    Group
	momentum []int
	chars    []complex128 // χ(g) for every element

	reps   []basis.State // strictly increasing
	norms  []float64
	links  []Link // one per full-basis state
	orbits []Orbit
}

// orbitInfo is the per-orbit record collected during the sweep.
type orbitInfo struct {
	size int
	f    complex128
}

// Reduce builds the representative basis of full for the sector of g labelled
// by momentum.
//
// Errors: ErrBadMomentum (from g.ValidateMomentum), ErrGroupMismatch when a
// permutation does not cover the layout's sites, basis.ErrSelectionRule when
// the full basis is not closed under g, basis.ErrEmptyBasis when no orbit is
// compatible.
// Complexity: O(D·|G|·N²) for fermionic layouts (O(D·|G|·N) otherwise), where
// D is the full dimension and N the number of sites.
func Reduce(full *basis.Basis, g Group, momentum []int) (*Sector, error) {
	if err := g.ValidateMomentum(momentum); err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}
	layout := full.Layout()
	order := g.Order()
	perms := make([][]int, order)
	chars := make([]complex128, order)
	for e := 0; e < order; e++ {
		perms[e] = g.SitePermutation(e)
		if len(perms[e]) != layout.Sites() {
			return nil, fmt.Errorf("Reduce: element %d permutes %d sites, layout has %d: %w",
				e, len(perms[e]), layout.Sites(), ErrGroupMismatch)
		}
		chars[e] = g.Character(e, momentum)
	}

	type pending struct {
		rep     basis.State
		element int
		sign    float64
	}
	marks := make([]pending, full.Len())
	registry := btree.NewMap[basis.State, orbitInfo](0)
	for i := 0; i < full.Len(); i++ {
		s := full.At(i)
		best := pending{rep: s, element: 0, sign: 1}
		var f complex128
		stab := 0
		for e := 0; e < order; e++ {
			img, sign := layout.Permute(s, perms[e])
			if full.Index(img) < 0 {
				return nil, fmt.Errorf("Reduce: image %s of %s under element %d: %w",
					layout.Format(img), layout.Format(s), e, basis.ErrSelectionRule)
			}
			if img == s {
				stab++
				f += chars[e] * complex(sign, 0)
			}
			if img < best.rep {
				best = pending{rep: img, element: e, sign: sign}
			}
		}
		marks[i] = best
		if best.rep != s {
			continue
		}
		registry.Set(s, orbitInfo{size: order / stab, f: f})
	}

	sec := &Sector{
		full:     full,
		group:    g,
		momentum: slices.Clone(momentum),
		chars:    chars,
		links:    make([]Link, full.Len()),
		orbits:   make([]Orbit, 0, registry.Len()),
	}
	repIndex := btree.NewMap[basis.State, int](0)
	registry.Scan(func(rep basis.State, info orbitInfo) bool {
		ok := cmplx.Abs(info.f) > CompatibilityTolerance
		sec.orbits = append(sec.orbits, Orbit{Rep: rep, Size: info.size, Compatible: ok})
		if ok {
			stab := order / info.size
			repIndex.Set(rep, len(sec.reps))
			sec.reps = append(sec.reps, rep)
			sec.norms = append(sec.norms, float64(order)/float64(stab)*real(info.f*cmplx.Conj(info.f)))
		}
		return true
	})

	for i, m := range marks {
		idx, ok := repIndex.Get(m.rep)
		if !ok {
			idx = -1
		}
		sec.links[i] = Link{Rep: idx, Element: m.element, Sign: m.sign}
	}
	if len(sec.reps) == 0 {
		return nil, fmt.Errorf("Reduce: momentum %v: %w", momentum, basis.ErrEmptyBasis)
	}

	return sec, nil
}

// Dim returns the number of representatives.
func (s *Sector) Dim() int { return len(s.reps) }

// Rep returns representative i.
func (s *Sector) Rep(i int) basis.State { return s.reps[i] }

// Reps returns a copy of the representatives.
func (s *Sector) Reps() []basis.State { return slices.Clone(s.reps) }

// Norm returns N_i, the squared norm of the unnormalized sector state of
// representative i.
func (s *Sector) Norm(i int) float64 { return s.norms[i] }

// Index returns the position of rep among the representatives, or -1.
func (s *Sector) Index(rep basis.State) int {
	i, ok := slices.BinarySearch(s.reps, rep)
	if !ok {
		return -1
	}

	return i
}

// Lookup returns the link of a full-basis state.
// Errors: basis.ErrSelectionRule when st is not in the full basis.
// Complexity: O(log D).
func (s *Sector) Lookup(st basis.State) (Link, error) {
	i := s.full.Index(st)
	if i < 0 {
		return Link{}, fmt.Errorf("Lookup %s: %w", s.full.Layout().Format(st), basis.ErrSelectionRule)
	}

	return s.links[i], nil
}

// Character returns χ(g) for the sector's momentum.
func (s *Sector) Character(g int) complex128 { return s.chars[g] }

// Weight returns σ·χ(g)·√(N_i/N_j): the factor turning an amplitude from
// representative j into the matrix element (i, j), where link resolves the
// image state to representative i.
func (s *Sector) Weight(link Link, j int) complex128 {
	ratio := math.Sqrt(s.norms[link.Rep] / s.norms[j])

	return complex(link.Sign*ratio, 0) * s.chars[link.Element]
}

// Orbits returns every orbit of the full basis, compatible or not, in
// increasing representative order.
func (s *Sector) Orbits() []Orbit { return slices.Clone(s.orbits) }

// Full returns the full basis the sector was reduced from.
func (s *Sector) Full() *basis.Basis { return s.full }

// Group returns the symmetry group.
func (s *Sector) Group() Group { return s.group }

// Momentum returns a copy of the sector label.
func (s *Sector) Momentum() []int { return slices.Clone(s.momentum) }
