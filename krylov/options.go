// SPDX-License-Identifier: MIT

// Package krylov: functional configuration for Lanczos and EnergyScale.
//
// Option setters validate eagerly and panic on nonsensical values
// (programmer error); the resolved Options are immutable for one solve.
package krylov

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/qbasis/matrix"
)

// ---------- Defaults ----------

const (
	// DefaultNEV is the number of extremal eigenvalues requested.
	DefaultNEV = 1

	// DefaultMaxIter caps the Krylov subspace size.
	DefaultMaxIter = 300

	// DefaultTol is the relative change of the tracked Ritz values below
	// which the iteration is declared converged.
	DefaultTol = 1e-12

	// DefaultCheckEvery is the number of steps between convergence checks.
	DefaultCheckEvery = 1

	// DefaultReorthEvery re-orthogonalizes every step against the history.
	DefaultReorthEvery = 1

	// DefaultSeed seeds the PCG generator of the random start vector.
	DefaultSeed uint64 = 1

	// BreakdownTolerance is the relative residual norm treated as an exact
	// invariant subspace.
	BreakdownTolerance = 1e-12
)

// seedMix decorrelates the two PCG words derived from one seed.
const seedMix uint64 = 0x9e3779b97f4a7c15

const (
	panicNEV        = "krylov: WithNEV: nev must be >= 1"
	panicMaxIter    = "krylov: WithMaxIter: n must be >= 1"
	panicTol        = "krylov: WithTol: tol must be finite and >= 0"
	panicCheckEvery = "krylov: WithCheckEvery: k must be >= 1"
	panicWhich      = "krylov: WithWhich: unknown end of the spectrum"
	panicReorth     = "krylov: WithReorthEvery: k must be >= 0"
	panicStart      = "krylov: WithStart: empty start vector"
	panicLogger     = "krylov: WithLogger: nil logger"
	panicOnStep     = "krylov: WithOnStep: nil hook"
	panicSolver     = "krylov: WithSolver: unknown tridiagonal solver"
)

// Which selects the end of the spectrum Lanczos tracks.
type Which int

const (
	// Smallest tracks the algebraically smallest eigenvalues (ground states).
	Smallest Which = iota
	// Largest tracks the algebraically largest eigenvalues.
	Largest
)

// String implements fmt.Stringer.
func (w Which) String() string {
	switch w {
	case Smallest:
		return "smallest"
	case Largest:
		return "largest"
	}

	return "unknown"
}

// Option mutates Options.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	nev         int
	maxIter     int
	tol         float64
	checkEvery  int
	which       Which
	vectors     bool
	reorthEvery int // 0 disables re-orthogonalization
	seed        uint64
	start       []complex128 // nil = random
	logger      *zap.Logger
	onStep      func(Step)
	solver      matrix.TridiagSolver
}

// WithNEV sets how many extremal eigenvalues are tracked. Panics on nev < 1.
func WithNEV(nev int) Option {
	if nev < 1 {
		panic(panicNEV)
	}

	return func(o *Options) { o.nev = nev }
}

// WithMaxIter caps the number of Lanczos steps. Panics on n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIter)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTol sets the relative convergence tolerance. Panics on NaN, Inf or tol < 0.
func WithTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTol)
	}

	return func(o *Options) { o.tol = tol }
}

// WithCheckEvery runs the convergence test every k steps. Panics on k < 1.
func WithCheckEvery(k int) Option {
	if k < 1 {
		panic(panicCheckEvery)
	}

	return func(o *Options) { o.checkEvery = k }
}

// WithWhich selects the tracked end of the spectrum.
func WithWhich(w Which) Option {
	if w != Smallest && w != Largest {
		panic(panicWhich)
	}

	return func(o *Options) { o.which = w }
}

// WithVectors requests Ritz vectors alongside the eigenvalues.
func WithVectors() Option {
	return func(o *Options) { o.vectors = true }
}

// WithReorthEvery re-orthogonalizes against the stored history every k steps;
// 0 disables it. Panics on k < 0.
func WithReorthEvery(k int) Option {
	if k < 0 {
		panic(panicReorth)
	}

	return func(o *Options) { o.reorthEvery = k }
}

// WithSeed seeds the random start vector.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithStart uses a copy of v (normalized by the solver) as the start vector.
// Panics on an empty v; a length mismatch is reported by Run as ErrBadStart.
func WithStart(v []complex128) Option {
	if len(v) == 0 {
		panic(panicStart)
	}
	cp := append([]complex128(nil), v...)

	return func(o *Options) { o.start = cp }
}

// WithLogger routes progress (Debug) and summaries (Info) to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithOnStep installs a hook called after every Lanczos step.
func WithOnStep(fn func(Step)) Option {
	if fn == nil {
		panic(panicOnStep)
	}

	return func(o *Options) { o.onStep = fn }
}

// WithSolver picks the tridiagonal eigensolver for the Ritz values.
func WithSolver(s matrix.TridiagSolver) Option {
	if s != matrix.SolverLAPACK && s != matrix.SolverJacobi {
		panic(panicSolver)
	}

	return func(o *Options) { o.solver = s }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// NEV returns the number of tracked eigenvalues.
func (o Options) NEV() int { return o.nev }

// MaxIter returns the iteration cap.
func (o Options) MaxIter() int { return o.maxIter }

// Tol returns the convergence tolerance.
func (o Options) Tol() float64 { return o.tol }

// ReorthEvery returns the re-orthogonalization period (0 = off).
func (o Options) ReorthEvery() int { return o.reorthEvery }

// gatherOptions applies user setters on top of defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		nev:         DefaultNEV,
		maxIter:     DefaultMaxIter,
		tol:         DefaultTol,
		checkEvery:  DefaultCheckEvery,
		which:       Smallest,
		reorthEvery: DefaultReorthEvery,
		seed:        DefaultSeed,
		logger:      zap.NewNop(),
		solver:      matrix.DefaultSolver,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
