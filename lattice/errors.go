// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a distance outside the accepted range.
	ErrInvalidParameter = errors.New("lattice: invalid parameter")

	// ErrEvenDistance indicates an even distance was requested without WithEvenDistance.
	// It matches ErrInvalidParameter under errors.Is.
	ErrEvenDistance = fmt.Errorf("%w: distance must be odd", ErrInvalidParameter)

	// ErrNotFound indicates that a coordinate or index has no entry for the requested role.
	ErrNotFound = errors.New("lattice: not found")

	// ErrUnknownRole indicates a Role value outside Data, XAncilla, ZAncilla and Unused.
	ErrUnknownRole = errors.New("lattice: unknown role")
)

// Method names used as error context prefixes.
const (
	methodNew     = "New"
	methodIndexOf = "IndexOf"
	methodCoordOf = "CoordOf"
	methodCoords  = "Coords"
)
