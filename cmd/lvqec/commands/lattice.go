// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
)

func (a *app) gridCommand() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Draw the lattice with data qubits and ancillas labeled",
		Example: `  lvqec grid -d 5
  lvqec grid -d 4 --allow-even --color off
  lvqec grid -d 7 --compact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildLattice()
			if err != nil {
				return err
			}
			if compact {
				return l.WriteRoles(a.p.Out())
			}
			return a.p.Grid(l)
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "one character per point (d, x, z), no indices")

	return cmd
}

func (a *app) coordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coords",
		Short: "List every qubit's coordinate in index order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildLattice()
			if err != nil {
				return err
			}
			return l.WriteCoords(a.p.Out())
		},
	}
}

func (a *app) indicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "indices",
		Short: "List the coordinate to index maps in coordinate order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildLattice()
			if err != nil {
				return err
			}
			return l.WriteIndices(a.p.Out())
		},
	}
}

func (a *app) stabilizersCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stabilizers",
		Aliases: []string{"stab"},
		Short:   "List X then Z stabilizer supports",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := a.buildAll()
			if err != nil {
				return err
			}
			_, err = s.WriteTo(a.p.Out())
			return err
		},
	}
}
