// SPDX-License-Identifier: MIT

// Package commands implements the lvqec command tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqec/internal/config"
	"github.com/katalvlaran/lvqec/internal/printer"
	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/stabilizer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo records build metadata for the version command.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute runs the command tree against the process streams.
func Execute() error {
	return newRootCommand(os.Stdout, os.Stderr, ".").Execute()
}

// app carries flag values and resolved settings between the root hook and
// the subcommands.
type app struct {
	stdout, stderr io.Writer
	workDir        string

	configPath string
	colorFlag  string
	verbose    bool
	distance   int
	allowEven  bool

	cfg config.Config
	p   *printer.Printer
	log *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer, workDir string) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, workDir: workDir}

	root := &cobra.Command{
		Use:   "lvqec",
		Short: "Rotated surface code lattices and their stabilizers",
		Long: `lvqec lays out a distance-d rotated surface code on a (2d+1)×(2d+1)
grid, assigns indices to data qubits and X/Z ancillas, and derives the
stabilizer supports a circuit builder needs.

Defaults are read from lvqec.toml in the working directory or any parent;
flags override the file.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to lvqec.toml (default: search upward from the working directory)")
	pf.StringVar(&a.colorFlag, "color", "auto", "colorize output: auto|on|off")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")
	pf.IntVarP(&a.distance, "distance", "d", 3, "code distance")
	pf.BoolVar(&a.allowEven, "allow-even", false, "accept even code distances")

	root.AddCommand(
		a.gridCommand(),
		a.coordsCommand(),
		a.indicesCommand(),
		a.stabilizersCommand(),
		a.checkCommand(),
		a.exportCommand(),
		a.verifyCommand(),
		a.versionCommand(),
	)

	return root
}

// setup resolves the config file, applies flag overrides and builds the
// printer and logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("component", "lvqec"))

	// Errors before the printer exists go out uncolored.
	a.p = printer.New(a.stdout, a.stderr, printer.ColorOff)

	cfg, err := config.Resolve(a.configPath, a.workDir)
	if err != nil {
		return a.p.Error("Failed to load configuration", err.Error(),
			fmt.Sprintf("Fix or remove %s", config.FileName))
	}
	if cfg.Path != "" {
		a.log.Debug("loaded config", slog.String("path", cfg.Path))
	}

	if changed(cmd, "distance") {
		cfg.Lattice.Distance = a.distance
	}
	if changed(cmd, "allow-even") {
		cfg.Lattice.AllowEven = a.allowEven
	}
	if changed(cmd, "color") {
		cfg.Output.Color = a.colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return a.p.Error("Invalid settings", err.Error())
	}

	mode, err := printer.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return a.p.Error("Invalid settings", err.Error())
	}
	a.cfg = cfg
	a.p = printer.New(a.stdout, a.stderr, mode)

	return nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// buildLattice constructs the lattice for the resolved distance, turning
// parameter errors into printed guidance.
func (a *app) buildLattice() (*lattice.Lattice, error) {
	d := a.cfg.Lattice.Distance
	l, err := lattice.New(d, a.cfg.LatticeOptions()...)
	switch {
	case err == nil:
		a.log.Debug("built lattice",
			slog.Int("distance", d),
			slog.Int("data", l.NumData()),
			slog.Int("x_ancillas", l.NumXAncillas()),
			slog.Int("z_ancillas", l.NumZAncillas()))
		return l, nil
	case errors.Is(err, lattice.ErrEvenDistance):
		return nil, a.p.Error(
			fmt.Sprintf("Even distance %d", d),
			"The rotated surface code is normally run at odd distance.",
			fmt.Sprintf("Use an odd distance: --distance %d", d+1),
			"Pass --allow-even to build it anyway",
		)
	case errors.Is(err, lattice.ErrInvalidParameter):
		return nil, a.p.Error(
			fmt.Sprintf("Invalid distance %d", d),
			err.Error(),
			fmt.Sprintf("Choose a distance between %d and %d", lattice.MinDistance, a.cfg.Lattice.MaxDistance),
		)
	default:
		return nil, a.p.Error("Failed to build lattice", err.Error())
	}
}

// buildAll constructs the lattice and its stabilizers.
func (a *app) buildAll() (*lattice.Lattice, *stabilizer.Set, error) {
	l, err := a.buildLattice()
	if err != nil {
		return nil, nil, err
	}
	s, err := stabilizer.Build(l)
	if err != nil {
		return nil, nil, a.p.Error("Failed to build stabilizers", err.Error())
	}
	a.log.Debug("built stabilizers", slog.Int("x", s.NumX()), slog.Int("z", s.NumZ()))

	return l, s, nil
}
