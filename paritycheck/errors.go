// SPDX-License-Identifier: MIT

package paritycheck

import "errors"

var (
	// ErrBadShape indicates negative matrix dimensions.
	ErrBadShape = errors.New("paritycheck: invalid shape")

	// ErrOutOfRange indicates a row, column or support index outside the matrix.
	ErrOutOfRange = errors.New("paritycheck: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes do not compose.
	ErrDimensionMismatch = errors.New("paritycheck: dimension mismatch")

	// ErrNilSet indicates a nil stabilizer set.
	ErrNilSet = errors.New("paritycheck: stabilizer set is nil")

	// ErrAnticommute indicates an X check and a Z check sharing an odd number of qubits.
	ErrAnticommute = errors.New("paritycheck: stabilizers anticommute")
)
