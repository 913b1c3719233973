// Package matrix provides the numerical kernels behind exact diagonalization.
//
// The matrix package provides:
//
//   - CSR, an immutable square complex sparse matrix with y ← M·x [+ y]
//     products, built from (row, col, value) triplets by Builder.
//   - LinearOperator, the interface Krylov solvers consume; both CSR and
//     matrix-free models satisfy it.
//   - Complex level-1 kernels (Dotc, Axpy, Nrm2, Scal, Copy) over gonum BLAS,
//     plus Randomize and Gram–Schmidt Orthonormalize.
//   - TridiagEigen for the real symmetric tridiagonal problems produced by
//     Lanczos, backed by gonum LAPACK or by the in-package Jacobi solver.
//   - Dense, a small row-major real matrix carrying eigenvectors.
//
// Options follow the functional pattern: Option setters validated eagerly
// (panicking on nonsense), resolved on top of documented Default* constants.
//
// Errors are sentinels (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
