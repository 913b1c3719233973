// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/qbasis/basis"
	"github.com/katalvlaran/qbasis/krylov"
	"github.com/katalvlaran/qbasis/matrix"
	"github.com/katalvlaran/qbasis/operator"
	"github.com/katalvlaran/qbasis/symmetry"
)

var _ matrix.LinearOperator = (*Model)(nil)

// Timings records the wall time of the last run of each pipeline stage.
// InitSector clears Assemble and Solve, so after a sector change they only
// cover that sector; a zero duration means the stage has not run.
type Timings struct {
	Enumerate time.Duration
	Reduce    time.Duration
	Assemble  time.Duration
	Solve     time.Duration
}

// Model holds one Hamiltonian and the state derived from it:
//
//	terms → full basis → sector → CSR → eigenvalues
//
// Each stage invalidates everything downstream of it. Fields are assigned
// only on success, so a failed step leaves the previous state intact.
// A Model is not safe for concurrent use; independent sectors need
// independent Models.
type Model struct {
	id   uuid.UUID
	log  *zap.Logger
	opts Options

	diag    operator.Sum
	offdiag operator.Sum

	full   *basis.Basis
	sector *symmetry.Sector
	gen    *generator // matrix-free element generator, built lazily
	ham    *matrix.CSR
	eigen  *krylov.Result

	timings Timings
}

// New returns an empty model.
func New(opts ...Option) *Model {
	o := gatherOptions(opts...)

	return &Model{
		id:   o.id,
		log:  o.logger.With(zap.String("model", o.id.String())),
		opts: o,
	}
}

// ID returns the model identity used in log records.
func (m *Model) ID() uuid.UUID { return m.id }

// AddDiagonal appends terms diagonal in the occupation basis.
func (m *Model) AddDiagonal(s operator.Sum) {
	m.diag.AddSum(s)
	m.dropOperator()
}

// AddOffDiagonal appends terms that move particles or flip spins.
func (m *Model) AddOffDiagonal(s operator.Sum) {
	m.offdiag.AddSum(s)
	m.dropOperator()
}

// Diagonal returns a copy of the diagonal terms.
func (m *Model) Diagonal() operator.Sum { return operator.Plus(m.diag, operator.Sum{}) }

// OffDiagonal returns a copy of the off-diagonal terms.
func (m *Model) OffDiagonal() operator.Sum { return operator.Plus(m.offdiag, operator.Sum{}) }

// dropOperator forgets everything derived from the terms.
func (m *Model) dropOperator() {
	m.gen, m.ham, m.eigen = nil, nil, nil
}

// EnumerateBasis builds the full basis of sites × species restricted by the
// constraints. Any sector and Hamiltonian built before are dropped.
// Errors: operator.ErrDimension, basis.ErrStateOverflow, basis.ErrEmptyBasis.
func (m *Model) EnumerateBasis(sites int, species []basis.Species, constraints ...basis.Constraint) error {
	began := time.Now()
	layout, err := basis.NewLayout(sites, species...)
	if err != nil {
		return modelErrorf(opEnumerate, err)
	}
	full, err := basis.Enumerate(layout, constraints...)
	if err != nil {
		return modelErrorf(opEnumerate, err)
	}
	m.full = full
	m.sector = nil
	m.dropOperator()
	m.timings.Enumerate = time.Since(began)
	m.log.Info("basis enumerated",
		zap.Int("sites", sites),
		zap.Int("slots", layout.Slots()),
		zap.Int("dim", full.Len()),
		zap.Duration("elapsed", m.timings.Enumerate))

	return nil
}

// Basis returns the full basis, nil before EnumerateBasis.
func (m *Model) Basis() *basis.Basis { return m.full }

// InitSector reduces the full basis to the momentum sector of g.
// Errors: ErrNoBasis, symmetry.ErrBadMomentum, symmetry.ErrGroupMismatch,
// basis.ErrSelectionRule, basis.ErrEmptyBasis.
func (m *Model) InitSector(g symmetry.Group, momentum []int) error {
	if m.full == nil {
		return modelErrorf(opInitSector, ErrNoBasis)
	}
	began := time.Now()
	sec, err := symmetry.Reduce(m.full, g, momentum)
	if err != nil {
		return modelErrorf(opInitSector, err)
	}
	m.sector = sec
	m.dropOperator()
	m.timings.Reduce = time.Since(began)
	m.timings.Assemble, m.timings.Solve = 0, 0
	m.log.Info("sector initialized",
		zap.Ints("momentum", momentum),
		zap.Int("dim", sec.Dim()),
		zap.Int("orbits", len(sec.Orbits())),
		zap.Duration("elapsed", m.timings.Reduce))

	return nil
}

// Sector returns the current sector, nil before InitSector.
func (m *Model) Sector() *symmetry.Sector { return m.sector }

// BuildHamiltonian assembles the sector Hamiltonian as a CSR matrix.
// Errors: ErrNoSector and the errors of Assemble.
func (m *Model) BuildHamiltonian() error {
	if m.sector == nil {
		return modelErrorf(opBuild, ErrNoSector)
	}
	began := time.Now()
	h, err := Assemble(m.diag, m.offdiag, m.sector, m.opts.matrixOpts...)
	if err != nil {
		return modelErrorf(opBuild, err)
	}
	m.ham = h
	m.eigen = nil
	m.timings.Assemble = time.Since(began)
	m.log.Info("hamiltonian assembled",
		zap.Int("dim", h.Dim()),
		zap.Int("nnz", h.NNZ()),
		zap.Duration("elapsed", m.timings.Assemble))

	return nil
}

// Hamiltonian returns the assembled CSR, nil before BuildHamiltonian.
func (m *Model) Hamiltonian() *matrix.CSR { return m.ham }

// linearOperator returns the assembled CSR when present, otherwise the model
// itself as a matrix-free operator.
func (m *Model) linearOperator() matrix.LinearOperator {
	if m.ham != nil {
		return m.ham
	}

	return m
}

// LocateE0 runs Lanczos on the sector Hamiltonian and caches the result.
// The model logger is installed first so opts may replace it.
// Errors: ErrNoSector and the errors of krylov.Lanczos.
func (m *Model) LocateE0(opts ...krylov.Option) (*krylov.Result, error) {
	if m.sector == nil {
		return nil, modelErrorf(opLocateE0, ErrNoSector)
	}
	began := time.Now()
	all := append([]krylov.Option{krylov.WithLogger(m.log)}, opts...)
	res, err := krylov.Lanczos(m.linearOperator(), all...)
	if err != nil {
		return nil, modelErrorf(opLocateE0, err)
	}
	m.eigen = res
	m.timings.Solve = time.Since(began)

	return res, nil
}

// Energies returns the eigenvalues of the last LocateE0, nil if none.
func (m *Model) Energies() []float64 {
	if m.eigen == nil {
		return nil
	}

	return append([]float64(nil), m.eigen.Values...)
}

// EnergyScale bounds the sector spectrum; see krylov.EnergyScale.
func (m *Model) EnergyScale(extend float64, iters int, opts ...krylov.Option) (lo, hi float64, err error) {
	if m.sector == nil {
		return 0, 0, modelErrorf(opEnergyScale, ErrNoSector)
	}
	began := time.Now()
	all := append([]krylov.Option{krylov.WithLogger(m.log)}, opts...)
	lo, hi, err = krylov.EnergyScale(m.linearOperator(), extend, iters, all...)
	if err != nil {
		return 0, 0, modelErrorf(opEnergyScale, err)
	}
	m.timings.Solve = time.Since(began)

	return lo, hi, nil
}

// Timings returns the durations of the last pipeline stages.
func (m *Model) Timings() Timings { return m.timings }

// Dim returns the sector dimension, 0 before InitSector.
func (m *Model) Dim() int {
	if m.sector == nil {
		return 0
	}

	return m.sector.Dim()
}

// MulVecAdd computes y ← H·x + y without storing H, generating the matrix
// elements column by column.
// Errors: ErrNoSector, matrix.ErrDimensionMismatch, matrix.ErrNilMatrix,
// basis.ErrSelectionRule.
// Complexity: the cost of Assemble per call, O(D) memory.
func (m *Model) MulVecAdd(x, y []complex128) error {
	if m.sector == nil {
		return modelErrorf(opMulVecAdd, ErrNoSector)
	}
	n := m.sector.Dim()
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return modelErrorf(opMulVecAdd, err)
	}
	if err := matrix.ValidateVecLen(y, n); err != nil {
		return modelErrorf(opMulVecAdd, err)
	}
	if m.gen == nil {
		g, err := newGenerator(m.diag, m.offdiag, m.sector)
		if err != nil {
			return modelErrorf(opMulVecAdd, err)
		}
		m.gen = g
	}
	for j := 0; j < n; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		if err := m.gen.column(j, func(i int, v complex128) { y[i] += v * xj }); err != nil {
			return modelErrorf(opMulVecAdd, err)
		}
	}

	return nil
}

// String implements fmt.Stringer.
func (m *Model) String() string {
	full := 0
	if m.full != nil {
		full = m.full.Len()
	}

	return fmt.Sprintf("Model{id=%s terms=%d+%d full=%d sector=%d}",
		m.id, m.diag.Len(), m.offdiag.Len(), full, m.Dim())
}
