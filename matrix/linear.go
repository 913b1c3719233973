// SPDX-License-Identifier: MIT

package matrix

// LinearOperator is a square complex operator known only through its action.
// Both an assembled *CSR and a matrix-free model implement it, so Krylov
// solvers never need to know which one they got.
type LinearOperator interface {
	// Dim returns the dimension n of the operator.
	Dim() int
	// MulVecAdd computes y ← M·x + y. len(x) and len(y) must equal Dim().
	MulVecAdd(x, y []complex128) error
}

// Apply computes y ← M·x for any LinearOperator by zeroing y first.
func Apply(m LinearOperator, x, y []complex128) error {
	if err := ValidateVecLen(y, m.Dim()); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	clear(y)

	return m.MulVecAdd(x, y)
}
