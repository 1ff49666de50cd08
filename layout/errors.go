// SPDX-License-Identifier: MIT

package layout

import "errors"

var (
	// ErrUnknownFormat indicates an unsupported encoding name or value.
	ErrUnknownFormat = errors.New("layout: unknown format")

	// ErrSchema indicates a schema version this package cannot read.
	ErrSchema = errors.New("layout: unsupported schema version")

	// ErrInconsistent indicates counts, coordinates or supports that disagree.
	ErrInconsistent = errors.New("layout: inconsistent layout")

	// ErrNilInput indicates a nil lattice, stabilizer set or layout.
	ErrNilInput = errors.New("layout: nil input")
)
