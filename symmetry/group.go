// SPDX-License-Identifier: MIT

package symmetry

import "fmt"

// Group is a finite abelian group acting on lattice sites by permutation.
// Element 0 must be the identity, and Character must be a one-dimensional
// representation: Character(g·h) == Character(g)·Character(h).
type Group interface {
	// Order returns the number of elements.
	Order() int
	// SitePermutation returns the image of every site under element g.
	SitePermutation(g int) []int
	// Character returns the value of the character labelled by momentum on g.
	Character(g int, momentum []int) complex128
	// ValidateMomentum reports ErrBadMomentum for labels the group does not have.
	ValidateMomentum(momentum []int) error
}

// Trivial is the one-element group on Sites sites. Reducing by it yields the
// full basis with unit norms.
type Trivial struct {
	Sites int
}

// Order returns 1.
func (t Trivial) Order() int { return 1 }

// SitePermutation returns the identity.
func (t Trivial) SitePermutation(int) []int {
	p := make([]int, t.Sites)
	for i := range p {
		p[i] = i
	}

	return p
}

// Character returns 1.
func (t Trivial) Character(int, []int) complex128 { return 1 }

// ValidateMomentum accepts only all-zero labels (an empty label included).
func (t Trivial) ValidateMomentum(momentum []int) error {
	for _, k := range momentum {
		if k != 0 {
			return fmt.Errorf("trivial group, momentum %v: %w", momentum, ErrBadMomentum)
		}
	}

	return nil
}
