// SPDX-License-Identifier: MIT
// Package krylov - Lanczos iteration for Hermitian linear operators.
//
// Recurrence (v₀ random or user-given, β₋₁ = 0):
//
//	u   = H·v_k − β_{k−1}·v_{k−1}
//	α_k = <v_k, u>
//	u  −= α_k·v_k            (optionally CGS twice against all v_j)
//	β_k = ‖u‖, v_{k+1} = u/β_k
//
// The α, β define a real symmetric tridiagonal T whose eigenvalues (Ritz
// values) approximate the extremal spectrum of H.
//
// Determinism: for a fixed operator, seed and options the result is
// bit-for-bit reproducible.

package krylov

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/qbasis/matrix"
)

// Result is the outcome of Lanczos.
type Result struct {
	Values     []float64      // tracked eigenvalues: ascending for Smallest, descending for Largest
	Vectors    [][]complex128 // Ritz vectors matching Values; nil unless WithVectors
	Iterations int            // Lanczos steps taken
	Status     Status         // Converged or MaxIterReached
	Alpha      []float64      // tridiagonal diagonal
	Beta       []float64      // tridiagonal off-diagonal, len(Alpha)-1
	Elapsed    time.Duration
}

// Solver runs the Lanczos recurrence on one operator.
// Not safe for concurrent use.
type Solver struct {
	op     matrix.LinearOperator
	opts   Options
	n      int
	status Status
	start  []complex128
	win    *window
	alpha  []float64
	beta   []float64
	ritz   []float64
	fixed  bool // no convergence checks (EnergyScale)
}

// New prepares a solver for op.
// Errors: ErrNilOperator, ErrBadDimension.
func New(op matrix.LinearOperator, opts ...Option) (*Solver, error) {
	if op == nil {
		return nil, krylovErrorf(opNew, ErrNilOperator)
	}
	n := op.Dim()
	if n <= 0 {
		return nil, krylovErrorf(opNew, fmt.Errorf("dim %d: %w", n, ErrBadDimension))
	}

	return &Solver{op: op, opts: gatherOptions(opts...), n: n, status: Uninitialized}, nil
}

// Status returns the current lifecycle state.
func (s *Solver) Status() Status { return s.status }

// Iterations returns the number of completed Lanczos steps.
func (s *Solver) Iterations() int { return len(s.alpha) }

// Values returns a copy of the tracked Ritz values from the last check.
func (s *Solver) Values() []float64 { return append([]float64(nil), s.ritz...) }

// Tridiagonal returns copies of the diagonal and off-diagonal of T.
func (s *Solver) Tridiagonal() (alpha, beta []float64) {
	m := len(s.alpha)
	if m == 0 {
		return nil, nil
	}

	return append([]float64(nil), s.alpha...), append([]float64(nil), s.beta[:m-1]...)
}

// initStart builds the normalized start vector.
func (s *Solver) initStart() error {
	v := make([]complex128, s.n)
	if s.opts.start == nil {
		rng := rand.New(rand.NewPCG(s.opts.seed, s.opts.seed^seedMix))
		if err := matrix.Randomize(v, rng); err != nil {
			return err
		}
		s.start = v
		return nil
	}
	if len(s.opts.start) != s.n {
		return fmt.Errorf("len %d, want %d: %w", len(s.opts.start), s.n, ErrBadStart)
	}
	copy(v, s.opts.start)
	nrm := matrix.Nrm2(v)
	if nrm == 0 || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
		return fmt.Errorf("norm %g: %w", nrm, ErrBadStart)
	}
	matrix.Scal(1/nrm, v)
	s.start = v

	return nil
}

// Run extends the Krylov subspace until convergence or the iteration cap.
// Reaching the cap sets MaxIterReached and returns nil.
// Errors: ErrNotReady (second call), ErrBadStart, operator errors, and
// matrix.ErrEigenFailed from the tridiagonal solve.
// Complexity: per step one operator product plus O(n) work, plus O(k·n)
// when re-orthogonalizing against k stored vectors.
func (s *Solver) Run() error {
	if s.status != Uninitialized {
		return krylovErrorf(opRun, fmt.Errorf("status %s: %w", s.status, ErrNotReady))
	}
	if err := s.initStart(); err != nil {
		return krylovErrorf(opRun, err)
	}
	s.status = Building
	began := time.Now()
	log := s.opts.logger

	maxIter := min(s.opts.maxIter, s.n)
	capacity := 2
	if s.opts.vectors || s.opts.reorthEvery > 0 {
		capacity = 0
	}
	s.win = newWindow(s.n, capacity)
	s.win.push(s.start)
	nev := min(s.opts.nev, s.n)

	u := make([]complex128, s.n)
	var prevBeta float64
	for k := 0; k < maxIter; k++ {
		v := s.win.at(k)
		clear(u)
		if k > 0 {
			matrix.Axpy(complex(-prevBeta, 0), s.win.at(k-1), u)
		}
		if err := s.op.MulVecAdd(v, u); err != nil {
			return krylovErrorf(opRun, err)
		}
		a := real(matrix.Dotc(v, u))
		matrix.Axpy(complex(-a, 0), v, u)
		s.alpha = append(s.alpha, a)
		m := k + 1

		thresh := BreakdownTolerance * math.Max(1, math.Max(math.Abs(a), prevBeta))
		var (
			nrm    float64
			broken bool
		)
		if s.opts.reorthEvery > 0 && m%s.opts.reorthEvery == 0 {
			var err error
			nrm, err = matrix.Orthonormalize(u, s.win.history(), thresh)
			broken = err != nil
		} else {
			nrm = matrix.Nrm2(u)
			broken = nrm < thresh
			if !broken {
				matrix.Scal(1/nrm, u)
			}
		}

		done := broken || m == s.n
		step := Step{Iteration: m, Alpha: a, Beta: nrm}
		if !s.fixed && (done || m%s.opts.checkEvery == 0 || m == maxIter) {
			ritz, err := s.extremal(nev)
			if err != nil {
				return krylovErrorf(opRun, err)
			}
			step.Ritz = ritz
			if len(s.ritz) == nev && len(ritz) == nev {
				step.Delta = maxDelta(ritz, s.ritz)
				if step.Delta <= s.opts.tol*maxAbs(ritz) {
					done = true
				}
			}
			s.ritz = ritz
			log.Debug("lanczos check",
				zap.Int("iter", m), zap.Float64s("ritz", ritz), zap.Float64("delta", step.Delta))
		}
		if done {
			s.status = Converged
		}
		step.Status = s.status
		if s.opts.onStep != nil {
			s.opts.onStep(step)
		}
		if done {
			break
		}
		s.beta = append(s.beta, nrm)
		prevBeta = nrm
		s.win.push(u)
	}
	if s.status == Building {
		s.status = MaxIterReached
	}
	log.Info("lanczos finished",
		zap.Int("dim", s.n),
		zap.Int("iterations", len(s.alpha)),
		zap.Stringer("status", s.status),
		zap.Float64s("values", s.ritz),
		zap.Duration("elapsed", time.Since(began)))

	return nil
}

// extremal returns the nev tracked Ritz values of the current T.
func (s *Solver) extremal(nev int) ([]float64, error) {
	m := len(s.alpha)
	vals, _, err := matrix.TridiagEigen(s.alpha, s.beta[:m-1], matrix.WithSolver(s.opts.solver))
	if err != nil {
		return nil, err
	}
	idx := s.selection(m, nev)
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = vals[j]
	}

	return out, nil
}

// selection maps tracked positions to indices into the ascending Ritz values.
func (s *Solver) selection(m, nev int) []int {
	cnt := min(m, nev)
	idx := make([]int, cnt)
	for i := range idx {
		if s.opts.which == Largest {
			idx[i] = m - 1 - i
		} else {
			idx[i] = i
		}
	}

	return idx
}

// Extract assembles the Ritz vectors of the tracked values. With the full
// history kept they are direct sums over stored vectors; in rolling mode the
// recurrence is replayed from the saved start vector with the stored α, β.
// Errors: ErrNotReady unless the status is Converged or MaxIterReached.
// Complexity: O(m·n·nev), plus m operator products when replaying.
func (s *Solver) Extract() ([][]complex128, error) {
	if s.status != Converged && s.status != MaxIterReached {
		return nil, krylovErrorf(opExtract, fmt.Errorf("status %s: %w", s.status, ErrNotReady))
	}
	m := len(s.alpha)
	_, z, err := matrix.TridiagEigen(s.alpha, s.beta[:m-1],
		matrix.WithSolver(s.opts.solver), matrix.WithEigenvectors())
	if err != nil {
		return nil, krylovErrorf(opExtract, err)
	}
	idx := s.selection(m, min(s.opts.nev, s.n))
	vecs := make([][]complex128, len(idx))
	for i := range vecs {
		vecs[i] = make([]complex128, s.n)
	}
	accumulate := func(j int, v []complex128) {
		for c, col := range idx {
			zj, _ := z.At(j, col)
			matrix.Axpy(complex(zj, 0), v, vecs[c])
		}
	}

	if s.win.holds(0) {
		for j := 0; j < m; j++ {
			accumulate(j, s.win.at(j))
		}
	} else if err := s.replay(m, accumulate); err != nil {
		return nil, krylovErrorf(opExtract, err)
	}
	for _, v := range vecs {
		if nrm := matrix.Nrm2(v); nrm > 0 {
			matrix.Scal(1/nrm, v)
		}
	}
	s.status = Extracted

	return vecs, nil
}

// replay regenerates v_0..v_{m-1} from the start vector.
func (s *Solver) replay(m int, visit func(j int, v []complex128)) error {
	prev := make([]complex128, s.n)
	cur := append([]complex128(nil), s.start...)
	next := make([]complex128, s.n)
	for j := 0; j < m; j++ {
		visit(j, cur)
		if j == m-1 {
			break
		}
		clear(next)
		if j > 0 {
			matrix.Axpy(complex(-s.beta[j-1], 0), prev, next)
		}
		if err := s.op.MulVecAdd(cur, next); err != nil {
			return err
		}
		matrix.Axpy(complex(-s.alpha[j], 0), cur, next)
		matrix.Scal(1/s.beta[j], next)
		prev, cur, next = cur, next, prev
	}

	return nil
}

// Lanczos computes the extremal eigenvalues (and optionally Ritz vectors) of
// the Hermitian operator op.
//
// Options: WithNEV, WithMaxIter, WithTol, WithCheckEvery, WithWhich,
// WithVectors, WithReorthEvery, WithSeed, WithStart, WithLogger, WithOnStep,
// WithSolver.
//
// Errors: see New, Solver.Run and Solver.Extract. MaxIterReached is reported
// in Result.Status, never as an error.
func Lanczos(op matrix.LinearOperator, opts ...Option) (*Result, error) {
	began := time.Now()
	s, err := New(op, opts...)
	if err != nil {
		return nil, krylovErrorf(opLanczos, err)
	}
	if err = s.Run(); err != nil {
		return nil, krylovErrorf(opLanczos, err)
	}
	res := &Result{
		Values:     s.Values(),
		Iterations: s.Iterations(),
		Status:     s.Status(),
	}
	res.Alpha, res.Beta = s.Tridiagonal()
	if s.opts.vectors {
		if res.Vectors, err = s.Extract(); err != nil {
			return nil, krylovErrorf(opLanczos, err)
		}
	}
	res.Elapsed = time.Since(began)

	return res, nil
}

func maxDelta(a, b []float64) float64 {
	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}

	return d
}

func maxAbs(a []float64) float64 {
	m := 1.0
	for _, v := range a {
		m = math.Max(m, math.Abs(v))
	}

	return m
}
