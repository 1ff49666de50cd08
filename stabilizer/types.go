// SPDX-License-Identifier: MIT

package stabilizer

import "fmt"

// Kind is the Pauli type of a stabilizer.
type Kind int

const (
	// X checks are measured by X ancillas.
	X Kind = iota
	// Z checks are measured by Z ancillas.
	Z
)

// String returns "X" or "Z".
func (k Kind) String() string {
	switch k {
	case X:
		return "X"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Allowed stabilizer weights.
const (
	BoundaryWeight = 2
	InteriorWeight = 4
)

// probeOffsets is the diagonal probing order, matching the CNOT order used
// when the checks are compiled into a circuit.
var probeOffsets = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// Stabilizer is one parity check in the global X-then-Z order.
type Stabilizer struct {
	Kind    Kind
	Index   int   // index within its Kind block, equal to the ancilla index
	Global  int   // position in the combined X-then-Z sequence
	Support []int // ascending data-qubit indices
}

// Weight returns the number of data qubits in the support.
func (s Stabilizer) Weight() int {
	return len(s.Support)
}

// Set holds the supports of all X and Z stabilizers of a lattice.
type Set struct {
	numData int
	x       [][]int
	z       [][]int
}
