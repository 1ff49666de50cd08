// SPDX-License-Identifier: MIT

package stabilizer

import "errors"

var (
	// ErrNilLattice indicates a nil *lattice.Lattice was passed to Build.
	ErrNilLattice = errors.New("stabilizer: lattice is nil")

	// ErrUnknownKind indicates a Kind other than X or Z.
	ErrUnknownKind = errors.New("stabilizer: unknown kind")

	// ErrIndexOutOfRange indicates a stabilizer index outside its block.
	ErrIndexOutOfRange = errors.New("stabilizer: index out of range")

	// ErrUnsortedSupport indicates a support that is not strictly ascending.
	ErrUnsortedSupport = errors.New("stabilizer: support not strictly ascending")

	// ErrBadWeight indicates a support whose weight is neither 2 nor 4.
	ErrBadWeight = errors.New("stabilizer: unexpected weight")
)
