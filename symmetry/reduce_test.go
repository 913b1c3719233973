// SPDX-License-Identifier: MIT
package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbasis/basis"
	"github.com/katalvlaran/qbasis/lattice"
	"github.com/katalvlaran/qbasis/operator"
	"github.com/katalvlaran/qbasis/symmetry"
)

// fillingBasis returns the basis of sites sites of sp with sum_i diag_i == target.
func fillingBasis(t *testing.T, sites int, sp basis.Species, diag []complex128, target float64) *basis.Basis {
	t.Helper()
	l, err := basis.NewLayout(sites, sp)
	require.NoError(t, err)
	var op operator.Sum
	for i := 0; i < sites; i++ {
		o, err := operator.NewDiagonal(i, 0, false, diag)
		require.NoError(t, err)
		op.AddLocal(o)
	}
	b, err := basis.Enumerate(l, basis.Constraint{Op: op, Target: target})
	require.NoError(t, err)

	return b
}

func chain(t *testing.T, n int) *lattice.Lattice {
	t.Helper()
	lat, err := lattice.New(lattice.Chain, []int{n}, []lattice.Boundary{lattice.Periodic})
	require.NoError(t, err)

	return lat
}

func orbitTotal(orbits []symmetry.Orbit) int {
	n := 0
	for _, o := range orbits {
		n += o.Size
	}

	return n
}

func TestReduce_Trivial(t *testing.T) {
	full := fillingBasis(t, 4, basis.SpinHalf, []complex128{0.5, -0.5}, 0)
	sec, err := symmetry.Reduce(full, symmetry.Trivial{Sites: 4}, nil)
	require.NoError(t, err)

	require.Equal(t, full.Len(), sec.Dim())
	for i := 0; i < sec.Dim(); i++ {
		assert.Equal(t, full.At(i), sec.Rep(i))
		assert.Equal(t, 1.0, sec.Norm(i))
		link, err := sec.Lookup(full.At(i))
		require.NoError(t, err)
		assert.Equal(t, symmetry.Link{Rep: i, Element: 0, Sign: 1}, link)
	}
}

func TestReduce_SpinChainSectors(t *testing.T) {
	full := fillingBasis(t, 4, basis.SpinHalf, []complex128{0.5, -0.5}, 0)
	lat := chain(t, 4)

	// orbits: {0101, 1010} (size 2) and {0011, 0110, 1100, 1001} (size 4)
	wantDim := map[int]int{0: 2, 1: 1, 2: 2, 3: 1}
	for k, dim := range wantDim {
		sec, err := symmetry.Reduce(full, lat, []int{k})
		require.NoError(t, err, "k=%d", k)
		assert.Equal(t, dim, sec.Dim(), "k=%d", k)

		orbits := sec.Orbits()
		assert.Len(t, orbits, 2)
		assert.Equal(t, full.Len(), orbitTotal(orbits), "orbit sizes cover the full basis")

		reps := sec.Reps()
		for i, r := range reps {
			assert.GreaterOrEqual(t, full.Index(r), 0, "representative lies in the full basis")
			if i > 0 {
				assert.Less(t, uint64(reps[i-1]), uint64(r), "strictly sorted")
			}
			assert.Equal(t, i, sec.Index(r))
		}
	}
}

func TestReduce_NormsAndLinks(t *testing.T) {
	full := fillingBasis(t, 4, basis.SpinHalf, []complex128{0.5, -0.5}, 0)
	sec, err := symmetry.Reduce(full, chain(t, 4), []int{0})
	require.NoError(t, err)
	layout := full.Layout()

	for i := 0; i < sec.Dim(); i++ {
		// N = |G|·|stab|: 4·2 for the Néel orbit, 4·1 otherwise
		assert.Contains(t, []float64{4, 8}, sec.Norm(i))
	}
	for i := 0; i < full.Len(); i++ {
		s := full.At(i)
		link, err := sec.Lookup(s)
		require.NoError(t, err)
		require.GreaterOrEqual(t, link.Rep, 0)
		img, sign := layout.Permute(s, sec.Group().SitePermutation(link.Element))
		assert.Equal(t, sec.Rep(link.Rep), img, "g* maps the state onto its representative")
		assert.Equal(t, sign, link.Sign)
	}
}

func TestReduce_FermionicTranslationSign(t *testing.T) {
	// Two spinless fermions on four sites. For c†0 c†2|0> the translation by
	// two sites gives c†2 c†0|0> = -c†0 c†2|0>, so that orbit is incompatible
	// with k=0 and compatible with k=1.
	full := fillingBasis(t, 4, basis.SpinlessFermion, []complex128{0, 1}, 2)
	lat := chain(t, 4)

	k0, err := symmetry.Reduce(full, lat, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 1, k0.Dim())

	k1, err := symmetry.Reduce(full, lat, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 2, k1.Dim())

	for _, sec := range []*symmetry.Sector{k0, k1} {
		assert.Equal(t, full.Len(), orbitTotal(sec.Orbits()))
	}

	layout := full.Layout()
	alt, err := layout.Encode([]int{1, 0, 1, 0})
	require.NoError(t, err)
	link, err := k0.Lookup(alt)
	require.NoError(t, err)
	assert.Equal(t, -1, link.Rep, "incompatible orbit")
}

func TestReduce_Errors(t *testing.T) {
	full := fillingBasis(t, 4, basis.SpinHalf, []complex128{0.5, -0.5}, 0)

	_, err := symmetry.Reduce(full, chain(t, 4), []int{4})
	assert.ErrorIs(t, err, symmetry.ErrBadMomentum)

	_, err = symmetry.Reduce(full, symmetry.Trivial{Sites: 4}, []int{1})
	assert.ErrorIs(t, err, symmetry.ErrBadMomentum)

	_, err = symmetry.Reduce(full, symmetry.Trivial{Sites: 3}, nil)
	assert.ErrorIs(t, err, symmetry.ErrGroupMismatch)

	// a single state is not closed under translations
	partial, err := basis.FromStates(full.Layout(), []basis.State{full.At(0)})
	require.NoError(t, err)
	_, err = symmetry.Reduce(partial, chain(t, 4), []int{0})
	assert.ErrorIs(t, err, basis.ErrSelectionRule)

	// two orbit minima without the rest of their orbits
	two, err := basis.FromStates(full.Layout(), []basis.State{full.At(0), full.At(1)})
	require.NoError(t, err)
	_, err = symmetry.Reduce(two, chain(t, 4), []int{1})
	assert.ErrorIs(t, err, basis.ErrSelectionRule)

	// the polarized state is fixed by every translation, so only k=0 survives
	polar := fillingBasis(t, 2, basis.SpinHalf, []complex128{0.5, -0.5}, 1)
	_, err = symmetry.Reduce(polar, chain(t, 2), []int{1})
	assert.ErrorIs(t, err, basis.ErrEmptyBasis)
}

func TestLookup_OutsideFullBasis(t *testing.T) {
	full := fillingBasis(t, 4, basis.SpinHalf, []complex128{0.5, -0.5}, 0)
	sec, err := symmetry.Reduce(full, chain(t, 4), []int{0})
	require.NoError(t, err)

	_, err = sec.Lookup(0) // all spins up, Sz=2
	assert.ErrorIs(t, err, basis.ErrSelectionRule)
}

func TestWeight_TrivialIsSign(t *testing.T) {
	full := fillingBasis(t, 2, basis.SpinHalf, []complex128{0.5, -0.5}, 0)
	sec, err := symmetry.Reduce(full, symmetry.Trivial{Sites: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), sec.Weight(symmetry.Link{Rep: 1, Element: 0, Sign: 1}, 0))
	assert.Equal(t, complex128(-1), sec.Weight(symmetry.Link{Rep: 0, Element: 0, Sign: -1}, 1))
}
