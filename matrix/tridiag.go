// SPDX-License-Identifier: MIT
// Package matrix - symmetric tridiagonal eigenproblems.
//
// The Lanczos projection of a Hermitian operator is a real symmetric
// tridiagonal matrix T (diagonal alpha, off-diagonal beta). TridiagEigen
// returns its eigenvalues in ascending order and, on request, the
// eigenvectors as the columns of a Dense.

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

// lapackEngine is the pure-Go LAPACK implementation.
var lapackEngine = lapackgonum.Implementation{}

// TridiagEigen solves the symmetric tridiagonal eigenproblem with diagonal d
// and off-diagonal e (len(e) == len(d)-1). Inputs are not modified.
//
// Options: WithSolver (LAPACK by default), WithEigenvectors, WithEpsilon and
// WithMaxRotations (Jacobi only).
//
// Errors: ErrBadShape (empty d), ErrDimensionMismatch (len(e)), ErrNaNInf,
// ErrEigenFailed.
// Complexity: LAPACK O(n²) values, O(n³) with vectors; Jacobi O(rotations·n²).
func TridiagEigen(d, e []float64, opts ...Option) ([]float64, *Dense, error) {
	n := len(d)
	if n == 0 {
		return nil, nil, matrixErrorf(opTridiag, ErrBadShape)
	}
	if len(e) != n-1 {
		return nil, nil, matrixErrorf(opTridiag, fmt.Errorf("len(e)=%d, want %d: %w", len(e), n-1, ErrDimensionMismatch))
	}
	if err := ValidateFinite(d, e); err != nil {
		return nil, nil, matrixErrorf(opTridiag, err)
	}
	o := gatherOptions(opts...)
	if o.solver == SolverJacobi {
		return tridiagJacobi(d, e, o)
	}

	dd := append([]float64(nil), d...)
	ee := append([]float64(nil), e...)
	if !o.vectors {
		if !lapackEngine.Dsterf(n, dd, ee) {
			return nil, nil, matrixErrorf(opTridiag, ErrEigenFailed)
		}
		return dd, nil, nil
	}
	z := make([]float64, n*n)
	work := make([]float64, max(1, 2*n-2))
	if !lapackEngine.Dsteqr(lapack.EVTridiag, n, dd, ee, z, n, work) {
		return nil, nil, matrixErrorf(opTridiag, ErrEigenFailed)
	}

	return dd, &Dense{r: n, c: n, data: z}, nil
}

// tridiagJacobi runs Eigen on the expanded matrix and sorts the result.
func tridiagJacobi(d, e []float64, o Options) ([]float64, *Dense, error) {
	n := len(d)
	m, err := NewSymTridiag(d, e)
	if err != nil {
		return nil, nil, matrixErrorf(opTridiag, err)
	}
	scale := 1.0
	for _, v := range d {
		scale = math.Max(scale, math.Abs(v))
	}
	for _, v := range e {
		scale = math.Max(scale, math.Abs(v))
	}
	rot := o.maxRotations
	if rot == 0 {
		rot = DefaultJacobiRotationsPerN2*n*n + 1
	}
	vals, q, err := Eigen(m, o.eps*scale, rot)
	if err != nil {
		return nil, nil, matrixErrorf(opTridiag, err)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })
	sorted := make([]float64, n)
	for k, idx := range order {
		sorted[k] = vals[idx]
	}
	if !o.vectors {
		return sorted, nil, nil
	}
	vecs, _ := NewDense(n, n)
	for k, idx := range order {
		for i := 0; i < n; i++ {
			vecs.data[i*n+k] = q.data[i*n+idx]
		}
	}

	return sorted, vecs, nil
}
