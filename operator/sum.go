// SPDX-License-Identifier: MIT

// Package operator - sums of operator products.
//
// A Sum is an ordered list of terms; every term is a Product, an ordered list
// of Local factors applied right-to-left (the rightmost factor acts first).
// Coefficients live inside the factors' entries: Scale multiplies the leftmost
// factor of each term.
//
// Accumulation (AddLocal/AddSum/Plus) is plain concatenation. No deduplication
// or simplification happens here; Canonical does that on demand and the model
// layer calls it before assembly.

package operator

import "fmt"

// Product is an ordered string of local operators, applied right-to-left.
type Product []Local

// Sum is a linear combination of Products. The zero value is the zero operator.
type Sum struct {
	terms []Product
}

// FromLocal returns a Sum with one single-factor term.
func FromLocal(o Local) Sum {
	var s Sum
	s.AddLocal(o)

	return s
}

// AddLocal appends o as a new single-factor term. Zero operators are skipped.
func (s *Sum) AddLocal(o Local) *Sum {
	if o.mat == nil {
		return s
	}
	s.terms = append(s.terms, Product{o.Clone()})

	return s
}

// AddSum appends every term of t (deep-copied).
func (s *Sum) AddSum(t Sum) *Sum {
	for _, p := range t.terms {
		s.terms = append(s.terms, p.Clone())
	}

	return s
}

// Plus returns the concatenation a + b without modifying either operand.
func Plus(a, b Sum) Sum {
	var out Sum
	out.AddSum(a)
	out.AddSum(b)

	return out
}

// Len returns the number of terms.
func (s Sum) Len() int { return len(s.terms) }

// IsZero reports whether s has no terms.
func (s Sum) IsZero() bool { return len(s.terms) == 0 }

// Term returns a deep copy of term i.
func (s Sum) Term(i int) Product { return s.terms[i].Clone() }

// Terms returns a deep copy of all terms.
func (s Sum) Terms() []Product {
	out := make([]Product, len(s.terms))
	for i, p := range s.terms {
		out[i] = p.Clone()
	}

	return out
}

// Each calls fn for every term without copying. fn must not modify the term.
func (s Sum) Each(fn func(i int, p Product)) {
	for i, p := range s.terms {
		fn(i, p)
	}
}

// Times returns the product a·b as a Sum.
// Same slot: the factors collapse into one Local via Mul.
// Different slots: one two-factor term [a, b] (b acts first).
// A zero operand yields the zero Sum.
func Times(a, b Local) (Sum, error) {
	if a.mat == nil || b.mat == nil {
		return Sum{}, nil
	}
	if sameSlot(a, b) {
		m, err := Mul(a, b)
		if err != nil {
			return Sum{}, opErrorf(opTimes, err)
		}
		return FromLocal(m), nil
	}

	return Sum{terms: []Product{{a.Clone(), b.Clone()}}}, nil
}

// MulSum distributes a·b over all term pairs: for every term ta of a and tb of
// b the result holds the concatenation ta ++ tb, in a-major order.
// Complexity: O(len(a)·len(b)) terms.
func MulSum(a, b Sum) Sum {
	out := Sum{terms: make([]Product, 0, len(a.terms)*len(b.terms))}
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			p := make(Product, 0, len(ta)+len(tb))
			p = append(p, ta.Clone()...)
			p = append(p, tb.Clone()...)
			out.terms = append(out.terms, p)
		}
	}

	return out
}

// Scale returns c·s (the leftmost factor of each term is scaled).
func (s Sum) Scale(c complex128) Sum {
	out := Sum{terms: make([]Product, len(s.terms))}
	for i, p := range s.terms {
		q := p.Clone()
		q[0] = Scale(c, q[0])
		out.terms[i] = q
	}

	return out
}

// Dagger returns the adjoint of s: every term reversed with each factor adjointed.
func (s Sum) Dagger() Sum {
	out := Sum{terms: make([]Product, len(s.terms))}
	for i, p := range s.terms {
		out.terms[i] = p.Dagger()
	}

	return out
}

// Canonical returns s with every term in canonical form (see Product.Canonical)
// and zero terms removed.
func (s Sum) Canonical() (Sum, error) {
	out := Sum{terms: make([]Product, 0, len(s.terms))}
	for i, p := range s.terms {
		q, err := p.Canonical()
		if err != nil {
			return Sum{}, fmt.Errorf("term %d: %w", i, err)
		}
		if q != nil {
			out.terms = append(out.terms, q)
		}
	}

	return out, nil
}

// String implements fmt.Stringer with one line per term.
func (s Sum) String() string {
	out := fmt.Sprintf("Sum{%d terms}", len(s.terms))
	for i, p := range s.terms {
		out += fmt.Sprintf("\n  #%d:", i)
		for _, f := range p {
			out += fmt.Sprintf(" (site=%d orb=%d f=%t)", f.site, f.orbital, f.fermion)
		}
	}

	return out
}

// Clone returns a deep copy of p.
func (p Product) Clone() Product {
	if p == nil {
		return nil
	}
	out := make(Product, len(p))
	for i, f := range p {
		out[i] = f.Clone()
	}

	return out
}

// Dagger returns the adjoint of p: (AB)† = B†A†.
func (p Product) Dagger() Product {
	out := make(Product, len(p))
	for i, f := range p {
		out[len(p)-1-i] = f.Dagger()
	}

	return out
}

// Canonical reorders the factors of p by (site, orbital) ascending and merges
// factors sharing a slot. Swapping two fermionic factors on different slots
// contributes -1 (anticommutation); the accumulated sign is folded into the
// leftmost factor. Factors on the same slot keep their relative order.
// Returns nil when the product vanishes.
// Errors: ErrIncompatibleOperand when same-slot factors differ in dimension.
func (p Product) Canonical() (Product, error) {
	if len(p) == 0 {
		return nil, nil
	}
	q := p.Clone()
	for _, f := range q {
		if f.IsZero() {
			return nil, nil
		}
	}
	sign := complex128(1)
	// Insertion sort: every adjacent swap is a transposition with a known sign.
	for i := 1; i < len(q); i++ {
		for j := i; j > 0 && slotLess(q[j], q[j-1]); j-- {
			if q[j].fermion && q[j-1].fermion {
				sign = -sign
			}
			q[j], q[j-1] = q[j-1], q[j]
		}
	}
	merged := make(Product, 0, len(q))
	for _, f := range q {
		last := len(merged) - 1
		if last >= 0 && sameSlot(merged[last], f) {
			m, err := Mul(merged[last], f)
			if err != nil {
				return nil, err
			}
			if m.IsZero() {
				return nil, nil
			}
			merged[last] = *m.Simplify()
			continue
		}
		merged = append(merged, f)
	}
	merged[0] = Scale(sign, merged[0])

	return merged, nil
}

// slotLess orders factors by (site, orbital).
func slotLess(a, b Local) bool {
	if a.site != b.site {
		return a.site < b.site
	}

	return a.orbital < b.orbital
}
