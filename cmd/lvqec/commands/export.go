// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqec/internal/config"
	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/layout"
)

func (a *app) exportCommand() *cobra.Command {
	var (
		formatName string
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the qubit layout and stabilizers as JSON, YAML or msgpack",
		Example: `  lvqec export -d 5
  lvqec export -d 7 --format yaml -o d7.yaml
  lvqec export -d 3 -o d3.msgpack`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := a.exportFormat(cmd, formatName, outPath)
			if err != nil {
				return err
			}
			l, s, err := a.buildAll()
			if err != nil {
				return err
			}
			ly, err := layout.FromLattice(l, s)
			if err != nil {
				return a.p.Error("Failed to capture layout", err.Error())
			}

			if outPath == "" {
				if err := layout.Encode(a.p.Out(), ly, f); err != nil {
					return a.p.Error("Failed to encode layout", err.Error())
				}
				return nil
			}

			file, err := os.Create(outPath)
			if err != nil {
				return a.p.Error("Failed to create output file", err.Error())
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = a.p.Error("Failed to close output file", cerr.Error())
				}
			}()
			if err := layout.Encode(file, ly, f); err != nil {
				return a.p.Error("Failed to encode layout", err.Error())
			}
			a.log.Debug("wrote layout", slog.String("path", outPath), slog.String("format", f.String()))
			a.p.Success("wrote %s (%s, distance %d)", outPath, f, ly.Distance)

			return nil
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "", "json|yaml|msgpack (default: from -o extension, then config)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// exportFormat picks the format from --format, then the output extension,
// then the config file.
func (a *app) exportFormat(cmd *cobra.Command, name, path string) (layout.Format, error) {
	switch {
	case changed(cmd, "format"):
	case path != "" && formatFromPath(path) != "":
		name = formatFromPath(path)
	default:
		name = a.cfg.Output.Format
	}
	f, err := layout.ParseFormat(name)
	if err != nil {
		return 0, a.p.Error(fmt.Sprintf("Unknown format %q", name), err.Error(),
			"Use --format json, yaml or msgpack")
	}

	return f, nil
}

// formatFromPath returns the format name implied by path's extension, or "".
func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if _, err := layout.ParseFormat(ext); err != nil {
		return ""
	}
	return ext
}

func (a *app) verifyCommand() *cobra.Command {
	var formatName string
	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Decode an exported layout and check it against a fresh build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			name := formatName
			if !changed(cmd, "format") {
				if name = formatFromPath(path); name == "" {
					name = a.cfg.Output.Format
				}
			}
			f, err := layout.ParseFormat(name)
			if err != nil {
				return a.p.Error(fmt.Sprintf("Unknown format %q", name), err.Error())
			}

			file, err := os.Open(path)
			if err != nil {
				return a.p.Error("Failed to open layout", err.Error())
			}
			defer file.Close()

			ly, err := layout.DecodeWith(file, f, a.cfg.LatticeOptions()...)
			switch {
			case err == nil:
			case errors.Is(err, lattice.ErrEvenDistance):
				return a.p.Error(fmt.Sprintf("%s has an even distance", path), err.Error(),
					"Pass --allow-even to accept it")
			case errors.Is(err, lattice.ErrInvalidParameter):
				return a.p.Error(fmt.Sprintf("%s has a distance outside the allowed range", path), err.Error(),
					fmt.Sprintf("Raise lattice.max_distance (now %d) in %s", a.cfg.Lattice.MaxDistance, config.FileName))
			case errors.Is(err, layout.ErrInconsistent), errors.Is(err, layout.ErrSchema):
				return a.p.Error(fmt.Sprintf("%s does not describe a valid lattice", path), err.Error())
			case errors.Is(err, io.EOF):
				return a.p.Error(fmt.Sprintf("%s is empty", path), err.Error())
			default:
				return a.p.Error(fmt.Sprintf("Failed to decode %s", path), err.Error())
			}
			a.p.Success("%s: distance %d, %d data qubits, %d stabilizers",
				path, ly.Distance, ly.DataQubits, len(ly.XStabilizers)+len(ly.ZStabilizers))

			return nil
		},
	}
	cmd.Flags().StringVar(&formatName, "format", "", "json|yaml|msgpack (default: from the file extension)")

	return cmd
}
