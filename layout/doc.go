// SPDX-License-Identifier: MIT

// Package layout carries the lattice/stabilizer contract to circuit builders
// as a self-describing document.
//
// A Layout records the distance, the qubit counts, the coordinates of every
// qubit in index order, and the X and Z stabilizer supports in the binding
// X-then-Z order. It can be written and read as JSON, YAML or MessagePack.
// Decoded layouts are validated against the placement rule, so a consumer
// never trusts a file whose indices disagree with the lattice it claims.
package layout
