// SPDX-License-Identifier: MIT
package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbasis/basis"
	"github.com/katalvlaran/qbasis/lattice"
	"github.com/katalvlaran/qbasis/presets"
)

func periodic(t *testing.T, kind lattice.Kind, extents ...int) *lattice.Lattice {
	t.Helper()
	bc := make([]lattice.Boundary, len(extents))
	for i := range bc {
		bc[i] = lattice.Periodic
	}
	lat, err := lattice.New(kind, extents, bc)
	require.NoError(t, err)

	return lat
}

func TestHeisenberg_Triangular4x2(t *testing.T) {
	sys, err := presets.Heisenberg(periodic(t, lattice.Triangular, 4, 2), 1)
	require.NoError(t, err)
	require.NoError(t, sys.Enumerate(0))
	assert.Equal(t, 70, sys.Model.Basis().Len(), "C(8,4)")

	var seen int
	results, err := sys.Sweep(func(presets.SectorResult) { seen++ })
	require.NoError(t, err)
	require.Len(t, results, 8)
	assert.Equal(t, 8, seen)

	want := []float64{-6, -4, -4, -4, -4, -4}
	dims := 0
	for i, r := range results {
		if i < len(want) {
			assert.InDelta(t, want[i], r.Energies[0], 1e-8, "sector %v", r.Momentum)
		}
		dims += r.Dim
	}
	assert.Equal(t, []int{0, 0}, results[0].Momentum)
	assert.Equal(t, []int{0, 1}, results[1].Momentum, "second dimension fastest")
	assert.Equal(t, 70, dims, "every orbit contributes to as many sectors as its size")
}

func TestHubbard_Square3x3(t *testing.T) {
	if testing.Short() {
		t.Skip("nine sectors of dimension ~1.7k")
	}
	sys, err := presets.Hubbard(periodic(t, lattice.Square, 3, 3), 1, 1.1)
	require.NoError(t, err)
	require.NoError(t, sys.Enumerate(5, 4))
	assert.Equal(t, 126*126, sys.Model.Basis().Len(), "C(9,5)·C(9,4)")

	results, err := sys.Sweep(nil)
	require.NoError(t, err)
	require.Len(t, results, 9)

	want := []float64{
		-10.146749232, -12.683981731, -12.683981731,
		-12.683981731, -10.101817578, -10.101817578,
		-12.683981731, -10.101817578, -10.101817578,
	}
	for i, r := range results {
		assert.InDelta(t, want[i], r.Energies[0], 1e-8, "sector %v", r.Momentum)
	}
}

func TestHubbard_TwoSiteAtomicLimit(t *testing.T) {
	// Open two-site chain at half filling, one electron per spin: the ground
	// state energy is (U - sqrt(U² + 16t²))/2.
	lat, err := lattice.New(lattice.Chain, []int{2}, []lattice.Boundary{lattice.Open})
	require.NoError(t, err)
	sys, err := presets.Hubbard(lat, 1, 4)
	require.NoError(t, err)
	require.NoError(t, sys.Enumerate(1, 1))
	assert.Equal(t, 4, sys.Model.Basis().Len())

	results, err := sys.Sweep(nil)
	require.NoError(t, err)
	require.Len(t, results, 1, "open boundaries leave only k=0")
	assert.InDelta(t, (4-2*2.8284271247461903)/2, results[0].Energies[0], 1e-10)
}

func TestSweepBounds(t *testing.T) {
	sys, err := presets.Heisenberg(periodic(t, lattice.Chain, 6), 1)
	require.NoError(t, err)
	require.NoError(t, sys.Enumerate(0))

	bounds, err := sys.SweepBounds(0.05, 30)
	require.NoError(t, err)
	require.NotEmpty(t, bounds)
	for _, b := range bounds {
		assert.Less(t, b.Lo, b.Hi, "k=%v", b.Momentum)
		assert.Positive(t, b.Dim)
	}
}

func TestPresets_Errors(t *testing.T) {
	_, err := presets.Heisenberg(nil, 1)
	assert.ErrorIs(t, err, presets.ErrNilLattice)
	_, err = presets.Hubbard(nil, 1, 1)
	assert.ErrorIs(t, err, presets.ErrNilLattice)

	sys, err := presets.Hubbard(periodic(t, lattice.Chain, 4), 1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, sys.Enumerate(2), presets.ErrTargets)
	assert.ErrorIs(t, sys.Enumerate(9, 0), basis.ErrEmptyBasis)
	assert.Equal(t, []basis.Species{basis.Electron}, sys.Species)
}

func TestSweep_MatrixFree(t *testing.T) {
	sys, err := presets.Heisenberg(periodic(t, lattice.Chain, 4), 1)
	require.NoError(t, err)
	require.NoError(t, sys.Enumerate(0))
	sys.MatrixFree = true

	results, err := sys.Sweep(nil)
	require.NoError(t, err)
	best := results[0].Energies[0]
	for _, r := range results {
		assert.Zero(t, r.NNZ, "no CSR is assembled")
		assert.Zero(t, r.Timings.Assemble, "k=%v", r.Momentum)
		assert.Zero(t, r.Timings.Enumerate, "enumeration is shared by all sectors")
		assert.Positive(t, r.Timings.Solve)
		best = min(best, r.Energies[0])
	}
	assert.InDelta(t, -2.0, best, 1e-10)
}
