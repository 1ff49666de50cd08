// SPDX-License-Identifier: MIT

// Package lattice classifies the integer points of a rotated surface code
// grid into qubit roles and assigns every occupied point a stable index.
//
// What:
//
//   - Lattice is built once from a code distance d and never mutated.
//   - The grid spans (0,0)…(2d,2d); every point receives exactly one Role:
//     Data, XAncilla, ZAncilla or Unused.
//   - Each occupied role keeps its coordinates sorted by (X, Y); a point's
//     index is its position in that sorted list.
//   - A combined Coord → Site map answers "what lives here" in O(1).
//
// Classification (bx: x∈{0,2d}, by: y∈{0,2d}, qx: x%4==0, qy: y%4==0):
//
//  1. x odd and y odd            → Data
//  2. exactly one of x, y odd    → Unused
//  3. both even:
//     a. bx and by (corner)      → Unused
//     b. qx != qy and not bx     → XAncilla
//     c. qx != qy and not by     → Unused (left/right boundary gaps)
//     d. by                      → Unused
//     e. otherwise               → ZAncilla
//
// Example, d = 3 (d: data, x/z: ancilla):
//
//	. . x . . . .
//	. d . d . d .
//	. . z . x . z
//	. d . d . d .
//	z . x . z . .
//	. d . d . d .
//	. . . . x . .
//
// Complexity:
//
//   - New:      O(d² log d) time (scan plus per-role sort), O(d²) memory.
//   - Lookups:  O(1).
//
// Errors:
//
//   - ErrInvalidParameter: distance < 1 or above the configured maximum.
//   - ErrEvenDistance: even distance without WithEvenDistance (wraps ErrInvalidParameter).
//   - ErrNotFound: coordinate or index not present for the requested role.
//   - ErrUnknownRole: role value outside the four defined roles.
//
// A *Lattice is safe for concurrent use by any number of readers.
package lattice
