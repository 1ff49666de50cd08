// SPDX-License-Identifier: MIT

// Package lvqec lays out rotated surface codes: where the data qubits and
// ancillas of a distance-d patch sit, how they are numbered, and which data
// qubits each stabilizer measurement touches.
//
// 🚀 What is lvqec?
//
//	A small, deterministic, dependency-light toolkit that brings together:
//		• Lattice: classify every point of the (2d+1)×(2d+1) grid, index roles
//		• Stabilizers: X and Z supports of weight 2 (boundary) or 4 (bulk)
//		• Parity checks: GF(2) matrices Hx, Hz, commutation and rank checks
//		• Layout: the whole picture as JSON, YAML or msgpack for circuit builders
//		• CLI: lvqec grid | coords | indices | stabilizers | check | export | verify
//
// ✨ Why lvqec?
//
//   - Deterministic: same distance, same indices, every time
//   - Immutable values: build once, share across goroutines
//   - Explicit errors: sentinels for errors.Is, no silent defaults
//
// Packages:
//
//	lattice/     Coord, Role, Lattice: classification, index assignment, queries, rendering
//	stabilizer/  Build and Set: X block first, then Z block
//	paritycheck/ GF(2) Matrix, FromSet, CheckCommutation, LogicalQubits
//	layout/      exported document, Encode/Decode in three formats
//	cmd/lvqec    command-line front end
//
// The d=3 patch as drawn by lvqec grid, one row per y (mx/mz: X/Z ancillas):
//
//	        mx0
//	    d0      d3      d6
//	        mz1     mx2     mz3
//	    d1      d4      d7
//	mz0     mx1     mz2
//	    d2      d5      d8
//	                mx3
//
//	go get github.com/katalvlaran/lvqec
package lvqec
