// SPDX-License-Identifier: MIT

// Package qbasis is a toolkit for exact diagonalization of quantum lattice
// Hamiltonians in symmetry-reduced bases.
//
// A Hamiltonian is written as sums of products of local operators, the
// many-body basis is enumerated under conserved quantities, translation
// symmetry folds it into momentum sectors, and each sector is solved with
// Lanczos either from an assembled CSR matrix or matrix-free.
//
// Packages:
//
//	operator/   local operators, products and sums; fermionic signs
//	basis/      bit-packed many-body states, enumeration under constraints
//	lattice/    Bravais lattices, nearest-neighbour bonds, translations
//	symmetry/   orbits, representatives, momentum sectors
//	matrix/     complex CSR, a sorted builder, tridiagonal eigensolvers
//	krylov/     Lanczos with periodic reorthogonalization, EnergyScale
//	model/      the pipeline: basis → sector → Hamiltonian → eigenvalues
//	presets/    ready Heisenberg and Hubbard systems with momentum sweeps
//	cmd/qbasis  YAML-driven CLI with zap logging and Prometheus export
//
// Quick example, the spin-1/2 Heisenberg ring of 4 sites:
//
//	lat, _ := lattice.New(lattice.Chain, []int{4}, []lattice.Boundary{lattice.Periodic})
//	sys, _ := presets.Heisenberg(lat, 1)
//	_ = sys.Enumerate(0) // Sz = 0
//	results, _ := sys.Sweep(nil)
//	// min over results[i].Energies[0] is -2
//
// Run the CLI with:
//
//	go run ./cmd/qbasis run --config config/heisenberg.yaml
package qbasis
