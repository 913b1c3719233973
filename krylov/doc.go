// Package krylov finds extremal eigenvalues of large Hermitian operators.
//
// Lanczos builds an orthonormal Krylov basis v₀, H·v₀, H²·v₀, ... through a
// three-term recurrence and diagonalizes the projected tridiagonal matrix with
// matrix.TridiagEigen. The operator is any matrix.LinearOperator: an assembled
// *matrix.CSR or a matrix-free model.
//
// Memory modes (chosen automatically):
//   - full history, when Ritz vectors are requested or re-orthogonalization
//     is on (the default, every step);
//   - a rolling window of two vectors otherwise, with Ritz vectors recovered
//     by replaying the recurrence from the saved start vector.
//
// EnergyScale runs a short fixed-length recurrence to bound the spectrum.
//
// Reaching the iteration cap is reported as the MaxIterReached status, not an
// error. Logging goes through zap (WithLogger, default no-op); per-step
// progress is exposed through the WithOnStep hook.
package krylov
