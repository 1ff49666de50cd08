// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/stabilizer"
)

// FromLattice captures l and its stabilizers s as a Layout.
// Returns ErrNilInput for nil arguments and ErrInconsistent when s was not
// built from a lattice with l's qubit counts.
func FromLattice(l *lattice.Lattice, s *stabilizer.Set) (*Layout, error) {
	if l == nil || s == nil {
		return nil, fmt.Errorf("FromLattice: %w", ErrNilInput)
	}
	if s.NumData() != l.NumData() || s.NumX() != l.NumXAncillas() || s.NumZ() != l.NumZAncillas() {
		return nil, fmt.Errorf("FromLattice: set (%d data, %d X, %d Z) vs lattice (%d data, %d X, %d Z): %w",
			s.NumData(), s.NumX(), s.NumZ(), l.NumData(), l.NumXAncillas(), l.NumZAncillas(), ErrInconsistent)
	}

	out := &Layout{
		Schema:       SchemaVersion,
		Distance:     l.Distance(),
		DataQubits:   l.NumData(),
		XAncillas:    l.NumXAncillas(),
		ZAncillas:    l.NumZAncillas(),
		XStabilizers: s.X(),
		ZStabilizers: s.Z(),
	}
	var err error
	if out.DataCoords, err = points(l, lattice.Data); err != nil {
		return nil, err
	}
	if out.XCoords, err = points(l, lattice.XAncilla); err != nil {
		return nil, err
	}
	if out.ZCoords, err = points(l, lattice.ZAncilla); err != nil {
		return nil, err
	}

	return out, nil
}

// Build constructs the lattice and stabilizers for d and captures them.
// Even distances are accepted here; policy belongs to the caller.
func Build(d int) (*Layout, error) {
	return BuildWith(d, lattice.WithEvenDistance())
}

// BuildWith is Build with the caller's lattice options applied as given.
func BuildWith(d int, opts ...lattice.Option) (*Layout, error) {
	l, err := lattice.New(d, opts...)
	if err != nil {
		return nil, err
	}
	s, err := stabilizer.Build(l)
	if err != nil {
		return nil, err
	}

	return FromLattice(l, s)
}

// points converts the sorted coordinates of role r.
func points(l *lattice.Lattice, r lattice.Role) ([]Point, error) {
	coords, err := l.Coords(r)
	if err != nil {
		return nil, fmt.Errorf("FromLattice: %w", err)
	}
	out := make([]Point, len(coords))
	for i, c := range coords {
		out[i] = Point{X: c.X, Y: c.Y}
	}

	return out, nil
}

// Validate checks the schema version, that the declared counts match the
// lists, and that coordinates and supports equal those the placement rule
// produces for Distance. Even distances are accepted.
func (ly *Layout) Validate() error {
	return ly.ValidateWith(lattice.WithEvenDistance())
}

// ValidateWith is Validate with the reference lattice built under opts, so
// distance policy (parity, maximum) follows the caller. The reference is
// only built once the declared counts agree with Distance, so the work is
// bounded by the size of the document.
func (ly *Layout) ValidateWith(opts ...lattice.Option) error {
	if ly == nil {
		return fmt.Errorf("Validate: %w", ErrNilInput)
	}
	if ly.Schema != SchemaVersion {
		return fmt.Errorf("Validate: schema %d (want %d): %w", ly.Schema, SchemaVersion, ErrSchema)
	}

	counts := []struct {
		name     string
		declared int
		actual   int
	}{
		{"data_coords", ly.DataQubits, len(ly.DataCoords)},
		{"x_coords", ly.XAncillas, len(ly.XCoords)},
		{"z_coords", ly.ZAncillas, len(ly.ZCoords)},
		{"x_stabilizers", ly.XAncillas, len(ly.XStabilizers)},
		{"z_stabilizers", ly.ZAncillas, len(ly.ZStabilizers)},
	}
	for _, c := range counts {
		if c.declared != c.actual {
			return fmt.Errorf("Validate: %s has %d entries, declared %d: %w",
				c.name, c.actual, c.declared, ErrInconsistent)
		}
	}

	// d ≤ DataQubits keeps d*d from overflowing.
	d := ly.Distance
	if d < lattice.MinDistance || d > ly.DataQubits ||
		ly.DataQubits != d*d || ly.XAncillas+ly.ZAncillas != d*d-1 {
		return fmt.Errorf("Validate: counts (%d, %d, %d) do not fit distance %d: %w",
			ly.DataQubits, ly.XAncillas, ly.ZAncillas, d, ErrInconsistent)
	}

	ref, err := BuildWith(d, opts...)
	if err != nil {
		return fmt.Errorf("Validate: distance %d: %w: %w", ly.Distance, ErrInconsistent, err)
	}
	if ly.DataQubits != ref.DataQubits || ly.XAncillas != ref.XAncillas || ly.ZAncillas != ref.ZAncillas {
		return fmt.Errorf("Validate: counts (%d, %d, %d) for distance %d, want (%d, %d, %d): %w",
			ly.DataQubits, ly.XAncillas, ly.ZAncillas, ly.Distance,
			ref.DataQubits, ref.XAncillas, ref.ZAncillas, ErrInconsistent)
	}

	sections := []struct {
		name      string
		got, want []Point
	}{
		{"data_coords", ly.DataCoords, ref.DataCoords},
		{"x_coords", ly.XCoords, ref.XCoords},
		{"z_coords", ly.ZCoords, ref.ZCoords},
	}
	for _, sec := range sections {
		if i := firstPointMismatch(sec.got, sec.want); i >= 0 {
			return fmt.Errorf("Validate: %s[%d] = %v, want %v: %w",
				sec.name, i, sec.got[i], sec.want[i], ErrInconsistent)
		}
	}

	supports := []struct {
		name      string
		got, want [][]int
	}{
		{"x_stabilizers", ly.XStabilizers, ref.XStabilizers},
		{"z_stabilizers", ly.ZStabilizers, ref.ZStabilizers},
	}
	for _, sec := range supports {
		for i := range sec.want {
			if !slices.Equal(sec.got[i], sec.want[i]) {
				return fmt.Errorf("Validate: %s[%d] = %v, want %v: %w",
					sec.name, i, sec.got[i], sec.want[i], ErrInconsistent)
			}
		}
	}

	return nil
}

// Stabilizers returns the supports as a stabilizer.Set.
func (ly *Layout) Stabilizers() (*stabilizer.Set, error) {
	if ly == nil {
		return nil, fmt.Errorf("Stabilizers: %w", ErrNilInput)
	}

	return stabilizer.NewSet(ly.DataQubits, ly.XStabilizers, ly.ZStabilizers)
}

// firstPointMismatch returns the first differing index of equal-length lists, or -1.
func firstPointMismatch(got, want []Point) int {
	for i := range want {
		if got[i] != want[i] {
			return i
		}
	}

	return -1
}
