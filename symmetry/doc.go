// SPDX-License-Identifier: MIT

// Package symmetry reduces a full basis to the representatives of one
// symmetry sector.
//
// A Group acts on sites by permutation (lattice.Lattice provides the
// translations; Trivial is the one-element group). Reduce sweeps the full
// basis once, picks the smallest encoding of every orbit as its
// representative, keeps the orbits compatible with the requested character
// and records, for every full-basis state, the element and fermionic sign that
// map it onto its representative. Sector.Weight turns that record into the
// phase and normalization ratio of a matrix element.
package symmetry
