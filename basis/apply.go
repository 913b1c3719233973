// SPDX-License-Identifier: MIT

package basis

import (
	"github.com/katalvlaran/qbasis/operator"
)

// Amplitude is one component Coef·|State> of an operator image.
type Amplitude struct {
	State State
	Coef  complex128
}

// Apply returns term|s> as a list of amplitudes. Factors act right-to-left;
// a fermionic factor on slot k contributes JordanWigner(state, k) evaluated on
// the state it acts on. Components are not merged, so a dense factor with
// several non-zeros in one column may produce repeated states.
// term must have passed Validate for l.
func (l *Layout) Apply(term operator.Product, s State) []Amplitude {
	cur := []Amplitude{{State: s, Coef: 1}}
	for k := len(term) - 1; k >= 0; k-- {
		f := term[k]
		slot := l.Slot(f.Site(), f.Orbital())
		next := make([]Amplitude, 0, len(cur))
		for _, a := range cur {
			coef := a.Coef
			if f.IsFermionic() {
				coef *= complex(l.JordanWigner(a.State, slot), 0)
			}
			from := a.State
			f.EachInColumn(l.Value(from, slot), func(row int, v complex128) {
				next = append(next, Amplitude{State: l.With(from, slot, row), Coef: coef * v})
			})
		}
		if len(next) == 0 {
			return nil
		}
		cur = next
	}

	return cur
}

// Expect returns <s|term|s>.
func (l *Layout) Expect(term operator.Product, s State) complex128 {
	var acc complex128
	for _, a := range l.Apply(term, s) {
		if a.State == s {
			acc += a.Coef
		}
	}

	return acc
}

// ExpectSum returns <s|sum|s>.
func (l *Layout) ExpectSum(sum operator.Sum, s State) complex128 {
	var acc complex128
	sum.Each(func(_ int, p operator.Product) {
		acc += l.Expect(p, s)
	})

	return acc
}
