// SPDX-License-Identifier: MIT

// Package stabilizer derives the X- and Z-type parity checks of a rotated
// surface code from its classified lattice.
//
// Every ancilla owns one stabilizer. Its support is found by probing the four
// diagonal neighbors in the fixed order (+1,+1), (+1,-1), (-1,+1), (-1,-1),
// keeping those that hold a data qubit, and sorting their indices.
// Interior checks have weight 4, boundary checks weight 2.
//
// Ordering contract: X stabilizers come first in X-ancilla index order, then
// Z stabilizers in Z-ancilla index order. Z stabilizer i has global index
// NumX()+i. Circuit builders correlate measurement records through this order.
//
// A *Set is immutable and safe for concurrent readers.
package stabilizer
