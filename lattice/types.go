// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Role is the part a grid point plays in the surface code.
type Role int

const (
	// Unused marks lattice gaps, corners and boundary points without a qubit.
	Unused Role = iota
	// Data marks a data qubit (both coordinates odd).
	Data
	// XAncilla marks an ancilla measuring an X-type stabilizer.
	XAncilla
	// ZAncilla marks an ancilla measuring a Z-type stabilizer.
	ZAncilla
)

// occupiedRoles lists the roles that carry a qubit, in storage order.
var occupiedRoles = [...]Role{Data, XAncilla, ZAncilla}

// String returns a short lowercase name for r.
func (r Role) String() string {
	switch r {
	case Unused:
		return "unused"
	case Data:
		return "data"
	case XAncilla:
		return "x-ancilla"
	case ZAncilla:
		return "z-ancilla"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Label returns the diagnostic prefix used in listings: "d", "mx", "mz".
// Unused and invalid roles have an empty label.
func (r Role) Label() string {
	switch r {
	case Data:
		return "d"
	case XAncilla:
		return "mx"
	case ZAncilla:
		return "mz"
	default:
		return ""
	}
}

// Glyph returns the single-character cell used by WriteRoles:
// 'd', 'x', 'z', or a blank for Unused and invalid roles.
func (r Role) Glyph() byte {
	switch r {
	case Data:
		return 'd'
	case XAncilla:
		return 'x'
	case ZAncilla:
		return 'z'
	default:
		return ' '
	}
}

// Occupied reports whether r carries a qubit.
func (r Role) Occupied() bool {
	return r == Data || r == XAncilla || r == ZAncilla
}

// Coord is an integer grid point. Coordinates order by X, then Y.
type Coord struct {
	X, Y int
}

// Add returns c shifted by the offset (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Less reports whether c sorts before o.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Compare returns -1, 0 or +1 comparing c to o in (X, Y) order.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	default:
		return 0
	}
}

// String formats c as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Site is the occupant of an occupied grid point: its role and the index
// within that role's sorted coordinate list.
type Site struct {
	Role  Role
	Index int
}

// String formats s the way listings do, e.g. "mx3".
func (s Site) String() string {
	return fmt.Sprintf("%s%d", s.Role.Label(), s.Index)
}

// Lattice is the classified grid of a rotated surface code of a given distance.
// It is immutable once built; accessors hand out copies.
type Lattice struct {
	distance int

	// coords[r] holds the sorted coordinates of occupiedRoles[r].
	coords [len(occupiedRoles)][]Coord
	// indices[r] maps a coordinate of occupiedRoles[r] to its index.
	indices [len(occupiedRoles)]map[Coord]int
	// sites covers every occupied coordinate.
	sites map[Coord]Site
}
