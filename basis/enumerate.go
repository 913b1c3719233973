// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/qbasis/operator"
)

// ConstraintTolerance is the absolute tolerance on <s|Op|s> - Target.
const ConstraintTolerance = 1e-8

// Constraint fixes the expectation value of a conserved operator.
type Constraint struct {
	Op     operator.Sum
	Target float64
}

// Satisfied reports whether <s|c.Op|s> equals c.Target within
// ConstraintTolerance.
func (c Constraint) Satisfied(l *Layout, s State) bool {
	v := l.ExpectSum(c.Op, s)

	return cmplx.Abs(v-complex(c.Target, 0)) < ConstraintTolerance
}

// Basis is a sorted, duplicate-free list of states over one Layout.
type Basis struct {
	layout *Layout
	states []State
}

// Enumerate generates every state of layout satisfying all constraints.
//
// Generation is an odometer over slot values, slot 0 fastest, which visits
// encodings in increasing integer order: the result is sorted and
// duplicate-free by construction and no intermediate set is kept.
//
// Errors: operator.ErrDimension when a constraint does not fit the layout,
// ErrEmptyBasis when no state survives.
// Complexity: O(Π dims · Σ constraint terms).
func Enumerate(layout *Layout, constraints ...Constraint) (*Basis, error) {
	for i, c := range constraints {
		if err := layout.Validate(c.Op); err != nil {
			return nil, basisErrorf("Enumerate", fmt.Errorf("constraint %d: %w", i, err))
		}
	}
	slots := layout.Slots()
	values := make([]int, slots)
	var (
		s      State
		states []State
	)
	for {
		keep := true
		for _, c := range constraints {
			if !c.Satisfied(layout, s) {
				keep = false
				break
			}
		}
		if keep {
			states = append(states, s)
		}

		k := 0
		for ; k < slots; k++ {
			values[k]++
			if values[k] < layout.species[k%len(layout.species)].Dim {
				s = layout.With(s, k, values[k])
				break
			}
			values[k] = 0
			s = layout.With(s, k, 0)
		}
		if k == slots {
			break
		}
	}
	if len(states) == 0 {
		return nil, basisErrorf("Enumerate", ErrEmptyBasis)
	}

	return &Basis{layout: layout, states: states}, nil
}

// FromStates builds a basis from arbitrary states (sorted and deduplicated).
// Errors: ErrEmptyBasis for an empty list.
func FromStates(layout *Layout, states []State) (*Basis, error) {
	if len(states) == 0 {
		return nil, basisErrorf("FromStates", ErrEmptyBasis)
	}
	out := slices.Clone(states)
	slices.Sort(out)

	return &Basis{layout: layout, states: slices.Compact(out)}, nil
}

// Layout returns the codec the basis was built over.
func (b *Basis) Layout() *Layout { return b.layout }

// Len returns the number of states.
func (b *Basis) Len() int { return len(b.states) }

// At returns state i.
func (b *Basis) At(i int) State { return b.states[i] }

// States returns a copy of the state list.
func (b *Basis) States() []State { return slices.Clone(b.states) }

// Index returns the position of s, or -1 when s is not in the basis.
// Complexity: O(log n).
func (b *Basis) Index(s State) int {
	i, ok := slices.BinarySearch(b.states, s)
	if !ok {
		return -1
	}

	return i
}

// Diagonal returns <s|sum|s> for every state, rounded to zero below
// operator.Precision. Used for observables and quick checks.
func (b *Basis) Diagonal(sum operator.Sum) []float64 {
	out := make([]float64, len(b.states))
	for i, s := range b.states {
		v := real(b.layout.ExpectSum(sum, s))
		if math.Abs(v) < operator.Precision {
			v = 0
		}
		out[i] = v
	}

	return out
}
