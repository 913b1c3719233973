// Package model ties operators, bases, symmetry sectors and solvers into one
// Hamiltonian workflow:
//
//	m := model.New(model.WithLogger(log))
//	m.AddDiagonal(d)
//	m.AddOffDiagonal(o)
//	m.EnumerateBasis(sites, species, constraints...)
//	m.InitSector(lat, momentum)
//	m.BuildHamiltonian()          // optional: without it Lanczos runs matrix-free
//	res, _ := m.LocateE0()
//
// Assemble is the standalone sparse assembler used by BuildHamiltonian.
package model
