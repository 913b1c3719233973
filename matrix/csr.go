// SPDX-License-Identifier: MIT
// Package matrix - compressed sparse row matrices.
//
// Purpose:
//   - Store a square complex matrix by rows: rowPtr[i]..rowPtr[i+1] index the
//     column indices (strictly increasing) and values of row i.
//   - Provide the y ← M·x [+ y] contract of LinearOperator.
//
// CSR values are immutable; build them with Builder.

package matrix

import (
	"fmt"
	"math/cmplx"
	"sort"
)

// CSR is a square compressed sparse row matrix.
type CSR struct {
	n      int
	rowPtr []int        // len n+1
	colIdx []int        // len nnz, increasing within a row
	vals   []complex128 // len nnz
}

// Dim returns the dimension n.
func (m *CSR) Dim() int { return m.n }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.vals) }

// At returns entry (i, j), zero when it is not stored.
// Errors: ErrOutOfRange. Complexity: O(log row length).
func (m *CSR) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.vals[k], nil
	}

	return 0, nil
}

// Row returns the column indices and values of row i. The slices alias the
// matrix storage and must not be modified.
func (m *CSR) Row(i int) ([]int, []complex128) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.colIdx[lo:hi], m.vals[lo:hi]
}

// Diagonal returns the diagonal entries.
func (m *CSR) Diagonal() []complex128 {
	out := make([]complex128, m.n)
	for i := range out {
		out[i], _ = m.At(i, i)
	}

	return out
}

// MulVec computes y ← M·x. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz).
func (m *CSR) MulVec(x, y []complex128) error {
	if err := m.checkVecs(x, y); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	m.mulInto(x, y, false)

	return nil
}

// MulVecAdd computes y ← M·x + y. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz).
func (m *CSR) MulVecAdd(x, y []complex128) error {
	if err := m.checkVecs(x, y); err != nil {
		return matrixErrorf(opMulVecAdd, err)
	}
	m.mulInto(x, y, true)

	return nil
}

func (m *CSR) checkVecs(x, y []complex128) error {
	if err := ValidateVecLen(x, m.n); err != nil {
		return err
	}

	return ValidateVecLen(y, m.n)
}

// mulInto is the row-major kernel shared by MulVec and MulVecAdd.
func (m *CSR) mulInto(x, y []complex128, accumulate bool) {
	for i := 0; i < m.n; i++ {
		var acc complex128
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			acc += m.vals[k] * x[m.colIdx[k]]
		}
		if accumulate {
			y[i] += acc
		} else {
			y[i] = acc
		}
	}
}

// Hermitian reports whether |M[i,j] - conj(M[j,i])| <= tol for every stored
// entry, which also covers a real diagonal.
// Complexity: O(nnz·log row length).
func (m *CSR) Hermitian(tol float64) bool {
	for i := 0; i < m.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			j := m.colIdx[k]
			vji, _ := m.At(j, i)
			if cmplx.Abs(m.vals[k]-cmplx.Conj(vji)) > tol {
				return false
			}
		}
	}

	return true
}
