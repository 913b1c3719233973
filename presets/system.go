// SPDX-License-Identifier: MIT
// Package presets - ready-made lattice models and the momentum sweep.

package presets

import (
	"fmt"

	"github.com/katalvlaran/qbasis/basis"
	"github.com/katalvlaran/qbasis/krylov"
	"github.com/katalvlaran/qbasis/lattice"
	"github.com/katalvlaran/qbasis/model"
	"github.com/katalvlaran/qbasis/operator"
)

// System is a Model together with the lattice it lives on, the local
// species, and the conserved operators used to fix the filling.
type System struct {
	Name      string
	Model     *model.Model
	Lattice   *lattice.Lattice
	Species   []basis.Species
	Conserved []operator.Sum // e.g. total Sz, or (N↑, N↓)

	// MatrixFree skips CSR assembly; Lanczos then multiplies through the
	// model directly.
	MatrixFree bool
}

// SectorResult summarizes one momentum sector.
type SectorResult struct {
	Momentum   []int
	Dim        int
	NNZ        int
	Energies   []float64
	Iterations int
	Status     krylov.Status
	Timings    model.Timings // this sector only; Enumerate is zero
}

// Bounds is the spectral range of one momentum sector.
type Bounds struct {
	Momentum []int
	Dim      int
	Lo, Hi   float64
	Timings  model.Timings // reduce and solve of this sector
}

// Enumerate builds the full basis with Conserved[i] fixed to targets[i].
// Errors: ErrTargets and the errors of model.EnumerateBasis.
func (s *System) Enumerate(targets ...float64) error {
	if len(targets) != len(s.Conserved) {
		return presetErrorf("System.Enumerate",
			fmt.Errorf("%d targets for %d operators: %w", len(targets), len(s.Conserved), ErrTargets))
	}
	cs := make([]basis.Constraint, len(targets))
	for i, t := range targets {
		cs[i] = basis.Constraint{Op: s.Conserved[i], Target: t}
	}

	return s.Model.EnumerateBasis(s.Lattice.TotalSites(), s.Species, cs...)
}

// Sweep diagonalizes every momentum sector of the lattice, first dimension
// slowest. Each sector is assembled as CSR (unless MatrixFree) and solved
// with Lanczos.
// A sector without compatible states is skipped. The callback, when non-nil,
// sees every result as soon as it is ready.
func (s *System) Sweep(each func(SectorResult), opts ...krylov.Option) ([]SectorResult, error) {
	var out []SectorResult
	for _, k := range s.Lattice.Momenta() {
		if err := s.Model.InitSector(s.Lattice, k); err != nil {
			if isEmpty(err) {
				continue
			}
			return nil, presetErrorf("System.Sweep", err)
		}
		if !s.MatrixFree {
			if err := s.Model.BuildHamiltonian(); err != nil {
				return nil, presetErrorf("System.Sweep", err)
			}
		}
		res, err := s.Model.LocateE0(opts...)
		if err != nil {
			return nil, presetErrorf("System.Sweep", err)
		}
		r := SectorResult{
			Momentum:   k,
			Dim:        s.Model.Dim(),
			Energies:   res.Values,
			Iterations: res.Iterations,
			Status:     res.Status,
			Timings:    s.sectorTimings(),
		}
		if h := s.Model.Hamiltonian(); h != nil {
			r.NNZ = h.NNZ()
		}
		if each != nil {
			each(r)
		}
		out = append(out, r)
	}

	return out, nil
}

// SweepBounds runs EnergyScale on every momentum sector, matrix-free.
func (s *System) SweepBounds(extend float64, iters int, opts ...krylov.Option) ([]Bounds, error) {
	var out []Bounds
	for _, k := range s.Lattice.Momenta() {
		if err := s.Model.InitSector(s.Lattice, k); err != nil {
			if isEmpty(err) {
				continue
			}
			return nil, presetErrorf("System.SweepBounds", err)
		}
		lo, hi, err := s.Model.EnergyScale(extend, iters, opts...)
		if err != nil {
			return nil, presetErrorf("System.SweepBounds", err)
		}
		out = append(out, Bounds{Momentum: k, Dim: s.Model.Dim(), Lo: lo, Hi: hi, Timings: s.sectorTimings()})
	}

	return out, nil
}

// sectorTimings returns the model timings without the shared enumeration.
func (s *System) sectorTimings() model.Timings {
	t := s.Model.Timings()
	t.Enumerate = 0

	return t
}
