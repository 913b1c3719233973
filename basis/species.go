// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"strings"
)

// Species describes the local Hilbert space of one orbital.
// Local state v (0 <= v < Dim) holds Fermions[v] fermions; its parity drives
// the Jordan–Wigner sign.
type Species struct {
	Name     string
	Dim      int
	Fermions []int
}

// Built-in species. Local state order:
//
//	spin-1/2          0=up 1=down
//	spin-1            0=+1 1=0 2=-1
//	electron          0=empty 1=up 2=down 3=up+down (c†↑c†↓|0>)
//	spinless-fermion  0=empty 1=occupied
//	tJ                0=empty 1=up 2=down
var (
	SpinHalf        = Species{Name: "spin-1/2", Dim: 2, Fermions: []int{0, 0}}
	SpinOne         = Species{Name: "spin-1", Dim: 3, Fermions: []int{0, 0, 0}}
	Electron        = Species{Name: "electron", Dim: 4, Fermions: []int{0, 1, 1, 2}}
	SpinlessFermion = Species{Name: "spinless-fermion", Dim: 2, Fermions: []int{0, 1}}
	TJ              = Species{Name: "tJ", Dim: 3, Fermions: []int{0, 1, 1}}
)

var catalog = []Species{SpinHalf, SpinOne, Electron, SpinlessFermion, TJ}

// ParseSpecies returns the built-in species with the given name
// (case-insensitive). Errors: ErrUnknownSpecies.
func ParseSpecies(name string) (Species, error) {
	for _, s := range catalog {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}

	return Species{}, fmt.Errorf("ParseSpecies(%q): %w", name, ErrUnknownSpecies)
}

// IsFermionic reports whether any local state carries fermions.
func (s Species) IsFermionic() bool {
	for _, n := range s.Fermions {
		if n != 0 {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer.
func (s Species) String() string { return s.Name }
