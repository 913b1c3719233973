// SPDX-License-Identifier: MIT
package basis_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbasis/basis"
	"github.com/katalvlaran/qbasis/operator"
)

var (
	szDiag  = []complex128{0.5, -0.5}
	cLocal  = [][]complex128{{0, 1}, {0, 0}} // spinless annihilator
	nUpDiag = []complex128{0, 1, 0, 1}
	nDnDiag = []complex128{0, 0, 1, 1}
)

// totalDiag sums one diagonal operator over all sites.
func totalDiag(t *testing.T, sites int, d []complex128) operator.Sum {
	t.Helper()
	var s operator.Sum
	for i := 0; i < sites; i++ {
		o, err := operator.NewDiagonal(i, 0, false, d)
		require.NoError(t, err)
		s.AddLocal(o)
	}

	return s
}

func mustLayout(t *testing.T, sites int, sp ...basis.Species) *basis.Layout {
	t.Helper()
	l, err := basis.NewLayout(sites, sp...)
	require.NoError(t, err)

	return l
}

func TestNewLayout_Errors(t *testing.T) {
	_, err := basis.NewLayout(0, basis.SpinHalf)
	assert.ErrorIs(t, err, operator.ErrDimension)

	_, err = basis.NewLayout(3)
	assert.ErrorIs(t, err, operator.ErrDimension)

	_, err = basis.NewLayout(33, basis.Electron)
	assert.ErrorIs(t, err, basis.ErrStateOverflow, "33 sites x 2 bits")

	l, err := basis.NewLayout(32, basis.Electron)
	require.NoError(t, err)
	assert.Equal(t, 32, l.Slots())

	l, err = basis.NewLayout(4, basis.SpinHalf, basis.SpinOne)
	require.NoError(t, err)
	assert.Equal(t, 8, l.Slots())
	assert.Equal(t, 2, l.Orbitals())
}

func TestEncodeDecode(t *testing.T) {
	l := mustLayout(t, 3, basis.SpinOne, basis.Electron)
	want := []int{2, 3, 0, 1, 1, 2}
	s, err := l.Encode(want)
	require.NoError(t, err)
	assert.Equal(t, want, l.Decode(s))
	assert.Equal(t, "[2 3|0 1|1 2]", l.Format(s))

	_, err = l.Encode([]int{3, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, operator.ErrDimension, "spin-1 has 3 local states")
	_, err = l.Encode([]int{0})
	assert.ErrorIs(t, err, operator.ErrDimension)
}

func TestParseSpecies(t *testing.T) {
	sp, err := basis.ParseSpecies("Electron")
	require.NoError(t, err)
	assert.Equal(t, 4, sp.Dim)
	assert.True(t, sp.IsFermionic())

	sp, err = basis.ParseSpecies("spin-1/2")
	require.NoError(t, err)
	assert.False(t, sp.IsFermionic())

	_, err = basis.ParseSpecies("quark")
	assert.ErrorIs(t, err, basis.ErrUnknownSpecies)
}

func TestEnumerate_SpinHalfSzZero(t *testing.T) {
	l := mustLayout(t, 4, basis.SpinHalf)
	sz := totalDiag(t, 4, szDiag)
	b, err := basis.Enumerate(l, basis.Constraint{Op: sz, Target: 0})
	require.NoError(t, err)
	require.Equal(t, 6, b.Len(), "C(4,2)")

	states := b.States()
	assert.True(t, slices.IsSorted(states))
	for i := 1; i < len(states); i++ {
		assert.NotEqual(t, states[i-1], states[i])
	}
	for _, v := range b.Diagonal(sz) {
		assert.Equal(t, 0.0, v)
	}
}

func TestEnumerate_NoConstraints(t *testing.T) {
	l := mustLayout(t, 2, basis.SpinOne)
	b, err := basis.Enumerate(l)
	require.NoError(t, err)
	assert.Equal(t, 9, b.Len(), "3^2 states, unused encodings skipped")
	for i := 0; i < b.Len(); i++ {
		assert.Equal(t, i, b.Index(b.At(i)))
	}
}

func TestEnumerate_ElectronFillings(t *testing.T) {
	l := mustLayout(t, 3, basis.Electron)
	b, err := basis.Enumerate(l,
		basis.Constraint{Op: totalDiag(t, 3, nUpDiag), Target: 2},
		basis.Constraint{Op: totalDiag(t, 3, nDnDiag), Target: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, 9, b.Len(), "C(3,2)·C(3,1)")
}

func TestEnumerate_Errors(t *testing.T) {
	l := mustLayout(t, 2, basis.SpinHalf)

	_, err := basis.Enumerate(l, basis.Constraint{Op: totalDiag(t, 2, szDiag), Target: 3})
	assert.ErrorIs(t, err, basis.ErrEmptyBasis)

	_, err = basis.Enumerate(l, basis.Constraint{Op: totalDiag(t, 5, szDiag), Target: 0})
	assert.ErrorIs(t, err, operator.ErrDimension, "site outside the layout")

	wrongDim := totalDiag(t, 2, []complex128{1, 2, 3})
	_, err = basis.Enumerate(l, basis.Constraint{Op: wrongDim, Target: 0})
	assert.ErrorIs(t, err, operator.ErrDimension, "dimension mismatch")
}

func TestIndex_Missing(t *testing.T) {
	l := mustLayout(t, 4, basis.SpinHalf)
	b, err := basis.Enumerate(l, basis.Constraint{Op: totalDiag(t, 4, szDiag), Target: 0})
	require.NoError(t, err)

	allUp, err := l.Encode([]int{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, -1, b.Index(allUp))
}

func TestFromStates(t *testing.T) {
	l := mustLayout(t, 2, basis.SpinHalf)
	b, err := basis.FromStates(l, []basis.State{3, 1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []basis.State{1, 2, 3}, b.States())

	_, err = basis.FromStates(l, nil)
	assert.ErrorIs(t, err, basis.ErrEmptyBasis)
}

func TestJordanWigner(t *testing.T) {
	l := mustLayout(t, 4, basis.SpinlessFermion)
	s, err := l.Encode([]int{1, 1, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, 1.0, l.JordanWigner(s, 0))
	assert.Equal(t, -1.0, l.JordanWigner(s, 1))
	assert.Equal(t, 1.0, l.JordanWigner(s, 2))
	assert.Equal(t, 1.0, l.JordanWigner(s, 3))

	spins := mustLayout(t, 4, basis.SpinHalf)
	assert.Equal(t, 1.0, spins.JordanWigner(s, 3), "bosonic layouts never pick up a sign")
}

func TestApply_Hopping(t *testing.T) {
	l := mustLayout(t, 3, basis.SpinlessFermion)
	c2, err := operator.NewDense(2, 0, true, cLocal)
	require.NoError(t, err)
	c0, err := operator.NewDense(0, 0, true, cLocal)
	require.NoError(t, err)

	hop, err := operator.Times(c0.Dagger(), c2)
	require.NoError(t, err)
	require.NoError(t, l.Validate(hop))

	s, _ := l.Encode([]int{0, 1, 1})
	want, _ := l.Encode([]int{1, 1, 0})

	// c†0 c2 c†1 c†2|0> = -c†0 c†1|0>
	amps := l.Apply(hop.Term(0), s)
	require.Len(t, amps, 1)
	assert.Equal(t, want, amps[0].State)
	assert.Equal(t, complex128(-1), amps[0].Coef)

	empty, _ := l.Encode([]int{0, 1, 0})
	assert.Nil(t, l.Apply(hop.Term(0), empty), "c2 annihilates an empty slot")
}

func TestApply_ElectronOnsiteOrder(t *testing.T) {
	l := mustLayout(t, 1, basis.Electron)
	cDn, err := operator.NewDense(0, 0, true, [][]complex128{
		{0, 0, 1, 0},
		{0, 0, 0, -1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	// c↓ c†↑c†↓|0> = -c†↑|0>
	amps := l.Apply(operator.Product{cDn}, basis.State(3))
	require.Len(t, amps, 1)
	assert.Equal(t, 1, l.Value(amps[0].State, 0))
	assert.Equal(t, complex128(-1), amps[0].Coef)
}

func TestApply_DenseBranches(t *testing.T) {
	l := mustLayout(t, 1, basis.SpinHalf)
	sx, err := operator.NewDense(0, 0, false, [][]complex128{{0.5, 0.5}, {0.5, 0.5}})
	require.NoError(t, err)
	amps := l.Apply(operator.Product{sx}, 0)
	assert.Len(t, amps, 2)
	assert.Equal(t, complex128(0.5), l.Expect(operator.Product{sx}, 0))
}

func TestPermute(t *testing.T) {
	l := mustLayout(t, 3, basis.SpinlessFermion)
	shift := []int{1, 2, 0}

	// T c†0 c†2|0> = c†1 c†0|0> = -c†0 c†1|0>
	s, _ := l.Encode([]int{1, 0, 1})
	got, sign := l.Permute(s, shift)
	assert.Equal(t, []int{1, 1, 0}, l.Decode(got))
	assert.Equal(t, -1.0, sign)

	s, _ = l.Encode([]int{1, 1, 0})
	got, sign = l.Permute(s, shift)
	assert.Equal(t, []int{0, 1, 1}, l.Decode(got))
	assert.Equal(t, 1.0, sign)

	spins := mustLayout(t, 3, basis.SpinHalf, basis.SpinOne)
	s, _ = spins.Encode([]int{1, 2, 0, 0, 1, 1})
	got, sign = spins.Permute(s, shift)
	assert.Equal(t, []int{1, 1, 1, 2, 0, 0}, spins.Decode(got), "orbitals travel with their site")
	assert.Equal(t, 1.0, sign)
}

func TestPermute_ElectronEvenSitesCommute(t *testing.T) {
	l := mustLayout(t, 2, basis.Electron)
	s, _ := l.Encode([]int{3, 1})
	got, sign := l.Permute(s, []int{1, 0})
	assert.Equal(t, []int{1, 3}, l.Decode(got))
	assert.Equal(t, 1.0, sign, "a doubly occupied site is a bosonic block")
}
