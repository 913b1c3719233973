// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse assembly and the
// tridiagonal eigensolver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the drop tolerance of Builder.Build and the symmetry
	// tolerance of the Jacobi path. Matches operator.Precision.
	DefaultEpsilon = 1e-12

	// DefaultSolver is the tridiagonal eigensolver used by TridiagEigen.
	DefaultSolver = SolverLAPACK

	// DefaultJacobiRotationsPerN2 bounds Jacobi rotations at this many per n².
	DefaultJacobiRotationsPerN2 = 100
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSolverInvalid    = "matrix: WithSolver: unknown solver"
	panicRotationsInvalid = "matrix: WithMaxRotations: n must be > 0"
)

// TridiagSolver selects the algorithm behind TridiagEigen.
type TridiagSolver int

const (
	// SolverLAPACK uses gonum LAPACK: Dsterf for eigenvalues only, Dsteqr
	// when eigenvectors are requested.
	SolverLAPACK TridiagSolver = iota
	// SolverJacobi expands the tridiagonal into a Dense and runs Eigen.
	SolverJacobi
)

// String implements fmt.Stringer.
func (s TridiagSolver) String() string {
	switch s {
	case SolverLAPACK:
		return "lapack"
	case SolverJacobi:
		return "jacobi"
	}

	return "unknown"
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps          float64       // >= 0; DefaultEpsilon
	solver       TridiagSolver // DefaultSolver
	vectors      bool          // compute eigenvectors in TridiagEigen
	maxRotations int           // 0 = DefaultJacobiRotationsPerN2·n²
}

// WithEpsilon sets the numeric tolerance eps (drop tolerance for Builder,
// symmetry/convergence tolerance for Jacobi). Panics on NaN, Inf or eps < 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSolver selects the tridiagonal eigensolver. Panics on unknown values.
func WithSolver(s TridiagSolver) Option {
	if s != SolverLAPACK && s != SolverJacobi {
		panic(panicSolverInvalid)
	}

	return func(o *Options) { o.solver = s }
}

// WithEigenvectors asks TridiagEigen for eigenvectors as well.
func WithEigenvectors() Option {
	return func(o *Options) { o.vectors = true }
}

// WithMaxRotations caps the Jacobi rotations. Panics on n <= 0.
func WithMaxRotations(n int) Option {
	if n <= 0 {
		panic(panicRotationsInvalid)
	}

	return func(o *Options) { o.maxRotations = n }
}

// NewMatrixOptions resolves opts on top of the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Solver returns the effective tridiagonal solver.
func (o Options) Solver() TridiagSolver { return o.solver }

// gatherOptions applies user setters on top of defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		solver: DefaultSolver,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
