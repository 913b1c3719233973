// SPDX-License-Identifier: MIT
// Package matrix - Jacobi eigensolver for small real symmetric matrices.
//
// Purpose:
//   - Reference solver independent of LAPACK, selectable for the Lanczos
//     tridiagonal problem (SolverJacobi) and used to cross-check it in tests.
//
// AI-Hints:
//   - Good defaults: tol≈1e-14·scale, maxIter≈100·n² for n ≤ 300.
//   - Eigenvalues come back unsorted; TridiagEigen sorts them.

package matrix

import (
	"math"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi
// rotations, always rotating the largest off-diagonal pivot.
//
// Returns the diagonal of the rotated matrix (unsorted) and Q whose columns
// are the eigenvectors.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry (not
// symmetric within tol), ErrEigenFailed (max off-diagonal ≥ tol after maxIter
// rotations).
// Determinism: fixed i→j pivot search and update order.
// Complexity: O(maxIter·n²) time, O(n²) space.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := m.r
	a := m.Clone()
	q, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		p, r          int
		maxOff, off   float64
		app, arr, apr float64
		theta, t      float64
		c, s          float64
	)
	for iter := 0; iter < maxIter; iter++ {
		// pivot (p,r) maximizing |A[p,r]|
		maxOff = 0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]

		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip := a.data[i*n+p]
			air := a.data[i*n+r]
			nip := c*aip - s*air
			nir := s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = nip, nip
			a.data[i*n+r], a.data[r*n+i] = nir, nir
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qir := q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// final convergence check
	maxOff = 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
