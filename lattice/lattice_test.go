// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbasis/lattice"
	"github.com/katalvlaran/qbasis/symmetry"
)

func pbc(n int) []lattice.Boundary {
	out := make([]lattice.Boundary, n)
	for i := range out {
		out[i] = lattice.Periodic
	}

	return out
}

func TestNew_Errors(t *testing.T) {
	_, err := lattice.New(lattice.Kind(42), []int{2}, pbc(1))
	assert.ErrorIs(t, err, lattice.ErrUnknownKind)

	_, err = lattice.New(lattice.Square, []int{2}, pbc(1))
	assert.ErrorIs(t, err, lattice.ErrBadShape, "square needs two extents")

	_, err = lattice.New(lattice.Square, []int{2, 0}, pbc(2))
	assert.ErrorIs(t, err, lattice.ErrBadShape, "zero extent")
}

func TestParse(t *testing.T) {
	k, err := lattice.ParseKind("Triangular")
	require.NoError(t, err)
	assert.Equal(t, lattice.Triangular, k)
	assert.Equal(t, "triangular", k.String())

	_, err = lattice.ParseKind("kagome")
	assert.ErrorIs(t, err, lattice.ErrUnknownKind)

	b, err := lattice.ParseBoundary("obc")
	require.NoError(t, err)
	assert.Equal(t, lattice.Open, b)
	b, err = lattice.ParseBoundary("periodic")
	require.NoError(t, err)
	assert.Equal(t, "pbc", b.String())
}

func TestCoor2Site(t *testing.T) {
	lat, err := lattice.New(lattice.Square, []int{3, 2}, []lattice.Boundary{lattice.Periodic, lattice.Open})
	require.NoError(t, err)
	assert.Equal(t, 6, lat.TotalSites())

	site, err := lat.Coor2Site([]int{2, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, site, "x runs fastest")

	site, err = lat.Coor2Site([]int{-1, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, site, "x wraps under pbc")

	site, err = lat.Coor2Site([]int{4, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, site)

	_, err = lat.Coor2Site([]int{0, 2}, 0)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange, "y is open")

	_, err = lat.Coor2Site([]int{0, 0}, 1)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange, "one sublattice only")

	_, err = lat.Coor2Site([]int{0}, 0)
	assert.ErrorIs(t, err, lattice.ErrBadShape)
}

func TestSite2Coor_Inverse(t *testing.T) {
	lat, err := lattice.New(lattice.Honeycomb, []int{3, 2}, pbc(2))
	require.NoError(t, err)
	require.Equal(t, 12, lat.TotalSites())

	for site := 0; site < lat.TotalSites(); site++ {
		coords, sub, err := lat.Site2Coor(site)
		require.NoError(t, err)
		back, err := lat.Coor2Site(coords, sub)
		require.NoError(t, err)
		assert.Equal(t, site, back)
	}

	_, _, err = lat.Site2Coor(12)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
}

func TestNearestNeighbors(t *testing.T) {
	cases := []struct {
		name  string
		kind  lattice.Kind
		ext   []int
		bc    []lattice.Boundary
		bonds int
	}{
		{"chain pbc", lattice.Chain, []int{5}, pbc(1), 5},
		{"chain obc", lattice.Chain, []int{5}, []lattice.Boundary{lattice.Open}, 4},
		{"square 3x3 pbc", lattice.Square, []int{3, 3}, pbc(2), 18},
		{"square 3x3 obc", lattice.Square, []int{3, 3}, []lattice.Boundary{lattice.Open, lattice.Open}, 12},
		{"triangular 4x2 pbc keeps multiplicity", lattice.Triangular, []int{4, 2}, pbc(2), 24},
		{"cubic 2x2x2 pbc", lattice.Cubic, []int{2, 2, 2}, pbc(3), 24},
		{"honeycomb 2x2 pbc", lattice.Honeycomb, []int{2, 2}, pbc(2), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lat, err := lattice.New(tc.kind, tc.ext, tc.bc)
			require.NoError(t, err)
			bonds := lat.NearestNeighbors()
			assert.Len(t, bonds, tc.bonds)
			for _, b := range bonds {
				assert.NotEqual(t, b.I, b.J)
				assert.Less(t, b.I, lat.TotalSites())
				assert.Less(t, b.J, lat.TotalSites())
			}
		})
	}
}

func TestTranslations(t *testing.T) {
	lat, err := lattice.New(lattice.Triangular, []int{4, 2}, pbc(2))
	require.NoError(t, err)
	require.Equal(t, 8, lat.Order())
	assert.Equal(t, []int{0, 0}, lat.Translation(0), "element 0 is the identity")
	assert.Equal(t, []int{1, 0}, lat.Translation(2))
	assert.Equal(t, []int{3, 1}, lat.Translation(7))

	for g := 0; g < lat.Order(); g++ {
		perm := lat.SitePermutation(g)
		seen := make([]bool, len(perm))
		for _, p := range perm {
			require.False(t, seen[p], "g=%d is a permutation", g)
			seen[p] = true
		}
	}

	// χ(g)·χ(h) == χ(g+h)
	k := []int{1, 1}
	g, h := 3, 6 // (1,1) + (3,0) = (0,1) -> element 1
	assert.InDelta(t, 0, cmplx.Abs(lat.Character(g, k)*lat.Character(h, k)-lat.Character(1, k)), 1e-12)

	// positive phase: a unit shift at k=1 on a ring of 4 gives +i
	ring, err := lattice.New(lattice.Chain, []int{4}, pbc(1))
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(ring.Character(1, []int{1})-1i), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(ring.Character(3, []int{1})+1i), 1e-12)
}

func TestMomenta(t *testing.T) {
	lat, err := lattice.New(lattice.Square, []int{3, 2}, []lattice.Boundary{lattice.Periodic, lattice.Open})
	require.NoError(t, err)
	assert.Equal(t, 3, lat.Order())
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {2, 0}}, lat.Momenta())

	sq, err := lattice.New(lattice.Square, []int{2, 2}, pbc(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, sq.Momenta(), "first dimension slowest")

	for _, k := range lat.Momenta() {
		assert.NoError(t, lat.ValidateMomentum(k))
	}
	assert.ErrorIs(t, lat.ValidateMomentum([]int{0, 1}), symmetry.ErrBadMomentum, "open dimension")
	assert.ErrorIs(t, lat.ValidateMomentum([]int{3, 0}), symmetry.ErrBadMomentum)
	assert.ErrorIs(t, lat.ValidateMomentum([]int{0}), symmetry.ErrBadMomentum)
}
