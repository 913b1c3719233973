// SPDX-License-Identifier: MIT

// Package lattice provides finite Bravais lattices for model construction.
//
// What:
//
//   - Lattice: chain, square, triangular, cubic or honeycomb geometry with a
//     periodic or open boundary per dimension.
//   - Coor2Site / Site2Coor: coordinate indexing, wrapping along periodic
//     dimensions.
//   - NearestNeighbors: the bond list Hamiltonians are built from.
//   - Translations: Lattice implements symmetry.Group, one element per
//     displacement along the periodic dimensions, with momentum characters.
//
// Complexity:
//
//   - New: O(|G|·N) time and memory (translation tables).
//   - Coor2Site, Site2Coor: O(dims).
//   - NearestNeighbors: O(N·z), z = bonds per cell.
//
// Errors:
//
//   - ErrOutOfRange: coordinate outside an open dimension, bad site/sublattice.
//   - ErrBadShape: extents/boundaries inconsistent with the kind.
//   - ErrUnknownKind: unknown kind or boundary name.
//   - symmetry.ErrBadMomentum: momentum outside the Brillouin zone grid.
package lattice
