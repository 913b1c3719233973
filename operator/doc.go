// SPDX-License-Identifier: MIT

// Package operator is the algebra layer of qbasis: single-slot operators and
// their sums of products.
//
// What:
//
//   - Local: one operator on a (site, orbital) slot, dense or diagonal, with a
//     fermionic tag. Value semantics with owned storage.
//   - Product: an ordered string of Locals, applied right-to-left.
//   - Sum: a linear combination of Products (Hamiltonian terms, conserved
//     quantities, observables).
//
// Why:
//
//   - Hamiltonians are written the way they are on paper:
//     Scale(-t, Times(cdag_i, c_j)), Plus(...), MulSum(...).
//   - Fermionic signs are NOT resolved here. Factors keep their written order;
//     the basis layer applies Jordan–Wigner signs when a string acts on a state.
//     Canonical is the only place that reorders factors, and it tracks the
//     anticommutation sign when it does.
//
// Errors:
//
//   - ErrDimension: empty or non-square input matrices.
//   - ErrIncompatibleOperand: arithmetic across slots, dimensions or parity.
//
// Complexity:
//
//   - Add/Sub/Scale/Dagger: O(dim²) (O(dim) diagonal).
//   - Mul: O(dim³) dense×dense, O(dim) diagonal×diagonal.
//   - MulSum: O(|a|·|b|) terms.
package operator
