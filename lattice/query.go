// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"slices"
)

// Distance returns the code distance the lattice was built for.
func (l *Lattice) Distance() int {
	return l.distance
}

// Size returns the side length of the coordinate grid, 2d+1.
func (l *Lattice) Size() int {
	return 2*l.distance + 1
}

// NumData returns the number of data qubits (d²).
func (l *Lattice) NumData() int {
	return len(l.coords[slotOf(Data)])
}

// NumXAncillas returns the number of X-type ancillas.
func (l *Lattice) NumXAncillas() int {
	return len(l.coords[slotOf(XAncilla)])
}

// NumZAncillas returns the number of Z-type ancillas.
func (l *Lattice) NumZAncillas() int {
	return len(l.coords[slotOf(ZAncilla)])
}

// Count returns the population of role r. For Unused it counts the grid
// points without a qubit. Invalid roles count zero.
func (l *Lattice) Count(r Role) int {
	if r == Unused {
		n := l.Size()
		return n*n - len(l.sites)
	}
	if s := slotOf(r); s >= 0 {
		return len(l.coords[s])
	}
	return 0
}

// InBounds reports whether c lies inside the coordinate grid.
func (l *Lattice) InBounds(c Coord) bool {
	edge := 2 * l.distance
	return c.X >= 0 && c.X <= edge && c.Y >= 0 && c.Y <= edge
}

// RoleAt returns the role at c; points outside the grid are Unused.
func (l *Lattice) RoleAt(c Coord) Role {
	if s, ok := l.sites[c]; ok {
		return s.Role
	}
	return Unused
}

// SiteAt returns the occupant of c. The boolean is false when c is Unused
// or outside the grid.
func (l *Lattice) SiteAt(c Coord) (Site, bool) {
	s, ok := l.sites[c]
	return s, ok
}

// IndexOf returns the index of c within role r.
// Returns ErrNotFound if c does not hold a qubit of role r and
// ErrUnknownRole if r is not an occupied role.
func (l *Lattice) IndexOf(r Role, c Coord) (int, error) {
	s := slotOf(r)
	if s < 0 {
		return 0, fmt.Errorf("%s: %s: %w", methodIndexOf, r, ErrUnknownRole)
	}
	i, ok := l.indices[s][c]
	if !ok {
		return 0, fmt.Errorf("%s: %s at %s: %w", methodIndexOf, r, c, ErrNotFound)
	}

	return i, nil
}

// DataIndex is IndexOf(Data, c).
func (l *Lattice) DataIndex(c Coord) (int, error) {
	return l.IndexOf(Data, c)
}

// XIndex is IndexOf(XAncilla, c).
func (l *Lattice) XIndex(c Coord) (int, error) {
	return l.IndexOf(XAncilla, c)
}

// ZIndex is IndexOf(ZAncilla, c).
func (l *Lattice) ZIndex(c Coord) (int, error) {
	return l.IndexOf(ZAncilla, c)
}

// CoordOf returns the coordinate of the i-th qubit of role r.
// Returns ErrNotFound if i is out of range and ErrUnknownRole for
// roles without qubits.
func (l *Lattice) CoordOf(r Role, i int) (Coord, error) {
	s := slotOf(r)
	if s < 0 {
		return Coord{}, fmt.Errorf("%s: %s: %w", methodCoordOf, r, ErrUnknownRole)
	}
	if i < 0 || i >= len(l.coords[s]) {
		return Coord{}, fmt.Errorf("%s: %s[%d] (count %d): %w",
			methodCoordOf, r, i, len(l.coords[s]), ErrNotFound)
	}

	return l.coords[s][i], nil
}

// Coords returns a copy of the sorted coordinates of role r.
func (l *Lattice) Coords(r Role) ([]Coord, error) {
	s := slotOf(r)
	if s < 0 {
		return nil, fmt.Errorf("%s: %s: %w", methodCoords, r, ErrUnknownRole)
	}

	return slices.Clone(l.coords[s]), nil
}

// Equal reports whether l and o describe the same classified grid.
func (l *Lattice) Equal(o *Lattice) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.distance != o.distance {
		return false
	}
	for s := range l.coords {
		if !slices.Equal(l.coords[s], o.coords[s]) {
			return false
		}
	}

	return true
}
