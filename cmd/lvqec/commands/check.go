// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/paritycheck"
	"github.com/katalvlaran/lvqec/stabilizer"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the lattice partition, stabilizer weights and commutation",
		Long: `check builds the lattice and its stabilizers and verifies that

  - every grid point has exactly one role,
  - there is one stabilizer per ancilla, each of weight 2 or 4,
  - every X stabilizer commutes with every Z stabilizer,

then reports the number of encoded logical qubits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, s, err := a.buildAll()
			if err != nil {
				return err
			}
			return a.check(l, s)
		},
	}
}

func (a *app) check(l *lattice.Lattice, s *stabilizer.Set) error {
	a.p.Step("distance %d: %d data qubits, %d X ancillas, %d Z ancillas",
		l.Distance(), l.NumData(), l.NumXAncillas(), l.NumZAncillas())

	points := l.Size() * l.Size()
	total := 0
	for _, r := range []lattice.Role{lattice.Unused, lattice.Data, lattice.XAncilla, lattice.ZAncilla} {
		total += l.Count(r)
	}
	if total != points {
		return a.p.Error("Check failed: grid partition",
			fmt.Sprintf("roles cover %d of %d grid points", total, points))
	}
	a.p.Success("grid partition (%d points)", points)

	if s.NumX() != l.NumXAncillas() || s.NumZ() != l.NumZAncillas() {
		return a.p.Error("Check failed: stabilizer count",
			fmt.Sprintf("%d X and %d Z stabilizers for %d X and %d Z ancillas",
				s.NumX(), s.NumZ(), l.NumXAncillas(), l.NumZAncillas()))
	}
	if err := s.Validate(); err != nil {
		return a.p.Error("Check failed: stabilizer supports", err.Error())
	}
	w := s.WeightCounts()
	a.p.Success("%d stabilizers: %d of weight %d, %d of weight %d",
		s.Len(), w[stabilizer.BoundaryWeight], stabilizer.BoundaryWeight,
		w[stabilizer.InteriorWeight], stabilizer.InteriorWeight)

	if err := paritycheck.CheckCommutation(s); err != nil {
		return a.p.Error("Check failed: commutation", err.Error())
	}
	a.p.Success("X and Z stabilizers commute")

	k, err := paritycheck.LogicalQubits(s)
	if err != nil {
		return a.p.Error("Check failed: rank", err.Error())
	}
	a.p.Success("%d logical qubit(s)", k)

	return nil
}
