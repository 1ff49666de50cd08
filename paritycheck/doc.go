// SPDX-License-Identifier: MIT

// Package paritycheck turns stabilizer supports into binary parity-check
// matrices and verifies the algebraic conditions a CSS code must satisfy.
//
// What:
//
//   - Matrix is a row-major matrix over GF(2) with bounds-checked access.
//   - FromSet builds Hx (one row per X check) and Hz (one row per Z check),
//     both with one column per data qubit.
//   - CheckCommutation verifies Hx·Hzᵀ = 0 (mod 2): every X check overlaps
//     every Z check on an even number of data qubits.
//   - LogicalQubits returns k = n − rank(Hx) − rank(Hz); a rotated surface
//     code encodes exactly one logical qubit.
//
// Complexity:
//
//   - FromSet:          O(r·n) for r checks over n data qubits.
//   - Mul:              O(r·k·c).
//   - Rank:             O(r²·c) Gaussian elimination.
package paritycheck
