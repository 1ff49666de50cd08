// SPDX-License-Identifier: MIT

package stabilizer

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvqec/lattice"
)

const methodBuild = "Build"

// Build derives the stabilizer supports of l: all X ancillas in index order,
// then all Z ancillas in index order.
// Returns ErrNilLattice for a nil lattice.
// Complexity: O(A) lookups for A ancillas, O(d²) overall.
func Build(l *lattice.Lattice) (*Set, error) {
	if l == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilLattice)
	}

	x, err := buildBlock(l, lattice.XAncilla)
	if err != nil {
		return nil, err
	}
	z, err := buildBlock(l, lattice.ZAncilla)
	if err != nil {
		return nil, err
	}

	return &Set{numData: l.NumData(), x: x, z: z}, nil
}

// buildBlock computes the supports for every ancilla of role r.
func buildBlock(l *lattice.Lattice, r lattice.Role) ([][]int, error) {
	ancillas, err := l.Coords(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	block := make([][]int, len(ancillas))
	for i, a := range ancillas {
		support := make([]int, 0, InteriorWeight)
		for _, off := range probeOffsets {
			site, ok := l.SiteAt(a.Add(off[0], off[1]))
			if ok && site.Role == lattice.Data {
				support = append(support, site.Index)
			}
		}
		slices.Sort(support)
		block[i] = support
	}

	return block, nil
}
