// SPDX-License-Identifier: MIT

// Package basis - bit-packed many-body states.
//
// A State stores one local state index per (site, orbital) slot. Slot
// k = site*orbitals + orbital occupies a fixed bit field, slot 0 in the lowest
// bits, so all orbitals of one site are contiguous. Integer order of States is
// the canonical order used for sorting and binary search.
//
// Fermionic order: the many-body state is the product of site-local creation
// strings in increasing slot order acting on the vacuum. Every sign below
// follows from that convention.

package basis

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/qbasis/operator"
)

// State is a bit-packed occupation pattern.
type State uint64

// Layout is the codec between States and per-slot local state indices.
// Immutable after NewLayout.
type Layout struct {
	sites     int
	species   []Species // one per orbital
	width     []uint    // bits per orbital field
	shift     []uint    // bit offset of each orbital inside a site block
	siteBits  uint      // bits per site block
	fermionic bool      // any orbital can hold fermions
}

// NewLayout returns a layout for sites sites, each holding one orbital per
// species argument. Errors: operator.ErrDimension for sites < 1 or no species,
// ErrStateOverflow when the encoding needs more than 64 bits.
func NewLayout(sites int, species ...Species) (*Layout, error) {
	if sites < 1 || len(species) == 0 {
		return nil, basisErrorf("NewLayout", operator.ErrDimension)
	}
	l := &Layout{
		sites:   sites,
		species: append([]Species(nil), species...),
		width:   make([]uint, len(species)),
		shift:   make([]uint, len(species)),
	}
	for i, sp := range species {
		if sp.Dim < 1 || len(sp.Fermions) != sp.Dim {
			return nil, basisErrorf("NewLayout", fmt.Errorf("species %q: %w", sp.Name, operator.ErrDimension))
		}
		w := uint(bits.Len(uint(sp.Dim - 1)))
		if w == 0 {
			w = 1
		}
		l.width[i] = w
		l.shift[i] = l.siteBits
		l.siteBits += w
		l.fermionic = l.fermionic || sp.IsFermionic()
	}
	if l.siteBits*uint(sites) > 64 {
		return nil, basisErrorf("NewLayout", fmt.Errorf("%d sites x %d bits: %w", sites, l.siteBits, ErrStateOverflow))
	}

	return l, nil
}

// Sites returns the number of sites.
func (l *Layout) Sites() int { return l.sites }

// Orbitals returns the number of orbitals per site.
func (l *Layout) Orbitals() int { return len(l.species) }

// Slots returns sites*orbitals.
func (l *Layout) Slots() int { return l.sites * len(l.species) }

// Species returns the species of orbital orb.
func (l *Layout) Species(orb int) Species { return l.species[orb] }

// Slot returns the slot index of (site, orbital).
func (l *Layout) Slot(site, orbital int) int { return site*len(l.species) + orbital }

// Fermionic reports whether any orbital can hold fermions.
func (l *Layout) Fermionic() bool { return l.fermionic }

// offset returns the bit offset and mask of slot.
func (l *Layout) offset(slot int) (uint, uint64) {
	site, orb := slot/len(l.species), slot%len(l.species)
	return uint(site)*l.siteBits + l.shift[orb], uint64(1)<<l.width[orb] - 1
}

// Value returns the local state index held by slot.
func (l *Layout) Value(s State, slot int) int {
	off, mask := l.offset(slot)

	return int(uint64(s) >> off & mask)
}

// With returns s with slot set to local state v.
func (l *Layout) With(s State, slot, v int) State {
	off, mask := l.offset(slot)

	return State(uint64(s)&^(mask<<off) | uint64(v)<<off)
}

// Encode packs one local state index per slot. Errors: operator.ErrDimension
// on a length mismatch or an index outside its species.
func (l *Layout) Encode(values []int) (State, error) {
	if len(values) != l.Slots() {
		return 0, basisErrorf("Encode", operator.ErrDimension)
	}
	var s State
	for k, v := range values {
		if v < 0 || v >= l.species[k%len(l.species)].Dim {
			return 0, basisErrorf("Encode", fmt.Errorf("slot %d value %d: %w", k, v, operator.ErrDimension))
		}
		s = l.With(s, k, v)
	}

	return s, nil
}

// Decode unpacks s into one local state index per slot.
func (l *Layout) Decode(s State) []int {
	out := make([]int, l.Slots())
	for k := range out {
		out[k] = l.Value(s, k)
	}

	return out
}

// fermionsAt returns the fermion count held by slot.
func (l *Layout) fermionsAt(s State, slot int) int {
	return l.species[slot%len(l.species)].Fermions[l.Value(s, slot)]
}

// JordanWigner returns (-1)^(number of fermions in slots before slot).
// This is the sign picked up by a fermionic operator on slot when it is
// commuted past the creation strings of the preceding slots.
func (l *Layout) JordanWigner(s State, slot int) float64 {
	if !l.fermionic {
		return 1
	}
	n := 0
	for k := 0; k < slot; k++ {
		n += l.fermionsAt(s, k)
	}
	if n&1 == 1 {
		return -1
	}

	return 1
}

// Permute moves the contents of site i to site perm[i] and returns the new
// state with the sign of reordering the site creation strings back into
// increasing site order. perm must be a permutation of [0, Sites()).
// Complexity: O(Sites²) for fermionic layouts, O(Sites) otherwise.
func (l *Layout) Permute(s State, perm []int) (State, float64) {
	var out uint64
	blockMask := uint64(1)<<l.siteBits - 1
	for i, p := range perm {
		block := uint64(s) >> (uint(i) * l.siteBits) & blockMask
		out |= block << (uint(p) * l.siteBits)
	}
	if !l.fermionic {
		return State(out), 1
	}
	odd := make([]bool, l.sites)
	for i := range odd {
		n := 0
		for orb := range l.species {
			n += l.fermionsAt(s, l.Slot(i, orb))
		}
		odd[i] = n&1 == 1
	}
	sign := 1.0
	for i := 0; i < l.sites; i++ {
		if !odd[i] {
			continue
		}
		for j := i + 1; j < l.sites; j++ {
			if odd[j] && perm[i] > perm[j] {
				sign = -sign
			}
		}
	}

	return State(out), sign
}

// Validate checks that every factor of sum acts on a slot of l with the
// matching local dimension. Errors: operator.ErrDimension.
func (l *Layout) Validate(sum operator.Sum) error {
	var err error
	sum.Each(func(i int, p operator.Product) {
		if err != nil {
			return
		}
		for _, f := range p {
			switch {
			case f.Site() >= l.sites:
				err = fmt.Errorf("term %d: site %d >= %d: %w", i, f.Site(), l.sites, operator.ErrDimension)
			case f.Orbital() >= len(l.species):
				err = fmt.Errorf("term %d: orbital %d >= %d: %w", i, f.Orbital(), len(l.species), operator.ErrDimension)
			case f.Dim() != l.species[f.Orbital()].Dim:
				err = fmt.Errorf("term %d: dim %d, species %q wants %d: %w",
					i, f.Dim(), l.species[f.Orbital()].Name, l.species[f.Orbital()].Dim, operator.ErrDimension)
			}
			if err != nil {
				return
			}
		}
	})
	if err != nil {
		return basisErrorf("Validate", err)
	}

	return nil
}

// Format renders s as site blocks, e.g. "[1 0|0 1]" for two sites with two
// orbitals each.
func (l *Layout) Format(s State) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k := 0; k < l.Slots(); k++ {
		if k > 0 {
			if k%len(l.species) == 0 {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%d", l.Value(s, k))
	}
	sb.WriteByte(']')

	return sb.String()
}
