// SPDX-License-Identifier: MIT

// Package config loads lvqec.toml, the optional defaults file for the CLI.
//
//	[lattice]
//	distance   = 5
//	allow_even = false
//
//	[output]
//	color  = "auto"   # auto | on | off
//	format = "yaml"   # json | yaml | msgpack
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/layout"
)

// FileName is the config file searched for from the working directory upward.
const FileName = "lvqec.toml"

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded file.
type Config struct {
	Lattice LatticeConfig `toml:"lattice"`
	Output  OutputConfig  `toml:"output"`

	// Path is the file the values came from; empty for defaults.
	Path string `toml:"-"`
}

// LatticeConfig holds construction defaults.
type LatticeConfig struct {
	Distance    int  `toml:"distance"`
	AllowEven   bool `toml:"allow_even"`
	MaxDistance int  `toml:"max_distance"`
}

// OutputConfig holds presentation defaults.
type OutputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lattice: LatticeConfig{
			Distance:    3,
			AllowEven:   false,
			MaxDistance: lattice.DefaultMaxDistance,
		},
		Output: OutputConfig{
			Color:  "auto",
			Format: layout.FormatJSON.String(),
		},
	}
}

// Find walks from startDir toward the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalid)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Resolve loads explicit if set, else the nearest FileName above startDir,
// else the defaults.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks enumerated values and numeric ranges. Distance policy
// (odd/even) is left to lattice.New.
func (c Config) Validate() error {
	if c.Lattice.Distance < lattice.MinDistance {
		return fmt.Errorf("lattice.distance = %d: %w", c.Lattice.Distance, ErrInvalid)
	}
	if c.Lattice.MaxDistance < lattice.MinDistance {
		return fmt.Errorf("lattice.max_distance = %d: %w", c.Lattice.MaxDistance, ErrInvalid)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("output.color = %q (want auto, on or off): %w", c.Output.Color, ErrInvalid)
	}
	if _, err := layout.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w: %w", ErrInvalid, err)
	}

	return nil
}

// LatticeOptions converts the lattice section to construction options.
func (c Config) LatticeOptions() []lattice.Option {
	opts := []lattice.Option{lattice.WithMaxDistance(c.Lattice.MaxDistance)}
	if c.Lattice.AllowEven {
		opts = append(opts, lattice.WithEvenDistance())
	}

	return opts
}
