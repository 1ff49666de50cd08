// SPDX-License-Identifier: MIT

package lattice

import (
	"slices"
)

// New classifies every point of the (2d+1)×(2d+1) grid for distance d and
// assigns indices in (X, Y) order within each occupied role.
//
// Returns ErrInvalidParameter if d < MinDistance or d exceeds the configured
// maximum, and ErrEvenDistance for even d unless WithEvenDistance is given.
// Complexity: O(d² log d) time, O(d²) memory.
func New(d int, opts ...Option) (*Lattice, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(d); err != nil {
		return nil, err
	}

	l := &Lattice{distance: d}
	l.coords[slotOf(Data)] = make([]Coord, 0, d*d)
	l.coords[slotOf(XAncilla)] = make([]Coord, 0, d*d/2+d)
	l.coords[slotOf(ZAncilla)] = make([]Coord, 0, d*d/2+d)

	// Scan row by row; discovery order is discarded by the sort below.
	edge := 2 * d
	for y := 0; y <= edge; y++ {
		for x := 0; x <= edge; x++ {
			r := classify(edge, x, y)
			if !r.Occupied() {
				continue
			}
			s := slotOf(r)
			l.coords[s] = append(l.coords[s], Coord{X: x, Y: y})
		}
	}

	l.assignIndices()

	return l, nil
}

// Classify returns the role of (x, y) in the distance-d grid.
// Points outside [0, 2d]² and non-positive d yield Unused.
func Classify(d, x, y int) Role {
	edge := 2 * d
	if d < MinDistance || x < 0 || y < 0 || x > edge || y > edge {
		return Unused
	}
	return classify(edge, x, y)
}

// classify applies the placement rule for a point inside [0, edge]².
func classify(edge, x, y int) Role {
	oddX, oddY := x%2 == 1, y%2 == 1
	switch {
	case oddX && oddY:
		return Data
	case oddX || oddY:
		return Unused
	}

	boundaryX := x == 0 || x == edge
	boundaryY := y == 0 || y == edge
	quadX, quadY := x%4 == 0, y%4 == 0
	switch {
	case boundaryX && boundaryY:
		return Unused
	case quadX != quadY && !boundaryX:
		return XAncilla
	case quadX != quadY && !boundaryY:
		// Only left/right boundary points reach here.
		return Unused
	case boundaryY:
		return Unused
	default:
		return ZAncilla
	}
}

// assignIndices sorts each role list and builds the per-role and combined maps.
func (l *Lattice) assignIndices() {
	total := 0
	for s := range l.coords {
		slices.SortFunc(l.coords[s], Coord.Compare)
		total += len(l.coords[s])
	}

	l.sites = make(map[Coord]Site, total)
	for s, role := range occupiedRoles {
		idx := make(map[Coord]int, len(l.coords[s]))
		for i, c := range l.coords[s] {
			idx[c] = i
			l.sites[c] = Site{Role: role, Index: i}
		}
		l.indices[s] = idx
	}
}

// slotOf maps an occupied role to its storage slot, or -1.
func slotOf(r Role) int {
	switch r {
	case Data:
		return 0
	case XAncilla:
		return 1
	case ZAncilla:
		return 2
	default:
		return -1
	}
}
