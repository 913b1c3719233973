// SPDX-License-Identifier: MIT

// Package basis enumerates quantum-number-constrained many-body bases.
//
// A Layout fixes the sites, the species of every orbital and the bit-packed
// State encoding. Enumerate walks every encoding in increasing order and keeps
// the states whose conserved quantities (Constraint) match their targets; the
// resulting Basis is sorted, so Index is a binary search.
//
// Fermionic signs are pure functions of the occupation pattern:
// JordanWigner for a single operator and Permute for a site relabelling.
// Apply evaluates an operator.Product on a State with those signs.
package basis
