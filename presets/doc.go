// Package presets builds complete lattice Hamiltonians (Heisenberg,
// Fermi–Hubbard) and sweeps them over every momentum sector of their
// lattice.
//
//	lat, _ := lattice.New(lattice.Triangular, []int{4, 2}, pbc)
//	sys, _ := presets.Heisenberg(lat, 1)
//	_ = sys.Enumerate(0)                 // Sᶻ = 0
//	results, _ := sys.Sweep(nil)         // one SectorResult per momentum
package presets
