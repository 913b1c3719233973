// SPDX-License-Identifier: MIT

package krylov

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/qbasis/matrix"
)

// EnergyScale estimates spectral bounds of op with a fixed iters−1 Lanczos
// steps on a rolling window of two vectors and no convergence checks. The
// extreme Ritz values lo, hi are widened by extend·(hi−lo) on each side.
//
// Only WithSeed, WithStart, WithLogger, WithOnStep and WithSolver are
// meaningful here; the other options are overridden.
//
// Errors: ErrBadScale (iters < 2, extend negative or non-finite), plus the
// errors of New and Solver.Run.
// Complexity: iters−1 operator products, O(n) memory beyond the operator.
func EnergyScale(op matrix.LinearOperator, extend float64, iters int, opts ...Option) (lo, hi float64, err error) {
	if iters < 2 || math.IsNaN(extend) || math.IsInf(extend, 0) || extend < 0 {
		return 0, 0, krylovErrorf(opEnergyScale,
			fmt.Errorf("iters=%d extend=%g: %w", iters, extend, ErrBadScale))
	}
	forced := append(append([]Option(nil), opts...), WithMaxIter(iters-1), WithReorthEvery(0))
	s, err := New(op, forced...)
	if err != nil {
		return 0, 0, krylovErrorf(opEnergyScale, err)
	}
	s.opts.vectors = false
	s.fixed = true
	if err = s.Run(); err != nil {
		return 0, 0, krylovErrorf(opEnergyScale, err)
	}

	alpha, beta := s.Tridiagonal()
	vals, _, err := matrix.TridiagEigen(alpha, beta, matrix.WithSolver(s.opts.solver))
	if err != nil {
		return 0, 0, krylovErrorf(opEnergyScale, err)
	}
	lo, hi = vals[0], vals[len(vals)-1]
	slack := extend * (hi - lo)
	lo -= slack
	hi += slack
	s.opts.logger.Info("energy scale",
		zap.Int("steps", len(alpha)),
		zap.Float64("lo", lo),
		zap.Float64("hi", hi),
		zap.Float64("extend", extend))

	return lo, hi, nil
}
