// SPDX-License-Identifier: MIT
// Package matrix - complex level-1 vector kernels.
//
// Thin wrappers over the gonum BLAS engine with unit strides. All kernels
// operate on the first len(x) elements; callers pass equally sized vectors.

package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"

	blasgonum "gonum.org/v1/gonum/blas/gonum"
)

// blasEngine is the pure-Go BLAS implementation used by every kernel.
var blasEngine = blasgonum.Implementation{}

// Dotc returns the conjugated inner product Σ conj(x_i)·y_i.
func Dotc(x, y []complex128) complex128 {
	return blasEngine.Zdotc(len(x), x, 1, y, 1)
}

// Axpy computes y ← alpha·x + y.
func Axpy(alpha complex128, x, y []complex128) {
	blasEngine.Zaxpy(len(x), alpha, x, 1, y, 1)
}

// Nrm2 returns the Euclidean norm of x.
func Nrm2(x []complex128) float64 {
	return blasEngine.Dznrm2(len(x), x, 1)
}

// Scal computes x ← alpha·x for a real alpha.
func Scal(alpha float64, x []complex128) {
	blasEngine.Zdscal(len(x), alpha, x, 1)
}

// Copy copies src into dst (len(dst) >= len(src)).
func Copy(dst, src []complex128) {
	blasEngine.Zcopy(len(src), src, 1, dst, 1)
}

// Randomize fills x with entries uniform in the unit square [-1,1)² and
// normalizes it. Deterministic for a given rng state.
// Errors: ErrBadShape for an empty x.
func Randomize(x []complex128, rng *rand.Rand) error {
	if len(x) == 0 {
		return matrixErrorf(opRandomize, ErrBadShape)
	}
	for i := range x {
		x[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}
	Scal(1/Nrm2(x), x)

	return nil
}

// Orthonormalize makes x orthogonal to every vector of basis (assumed
// orthonormal) with two passes of classical Gram–Schmidt, then normalizes it.
// Returns the norm of x after projection and before normalization; when that
// norm is below tol, x is left unnormalized and ErrBadShape is returned.
func Orthonormalize(x []complex128, basis [][]complex128, tol float64) (float64, error) {
	for pass := 0; pass < 2; pass++ {
		for _, b := range basis {
			Axpy(-Dotc(b, x), b, x)
		}
	}
	nrm := Nrm2(x)
	if nrm < tol || math.IsNaN(nrm) {
		return nrm, matrixErrorf(opOrthonormal, fmt.Errorf("residual norm %g: %w", nrm, ErrBadShape))
	}
	Scal(1/nrm, x)

	return nrm, nil
}
