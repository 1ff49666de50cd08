// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"strings"
)

// SchemaVersion is written into every Layout; bump it when fields change.
const SchemaVersion = 1

// Format selects an encoding.
type Format int

const (
	// FormatJSON is indented JSON.
	FormatJSON Format = iota
	// FormatYAML is YAML with flow-style coordinate and support lists.
	FormatYAML
	// FormatMsgpack is MessagePack with unsigned 32-bit integers.
	FormatMsgpack
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a case-insensitive name to a Format.
// Accepted: json, yaml, yml, msgpack, mp.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Point is a grid coordinate.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Layout is the exported contract between the lattice core and circuit builders.
type Layout struct {
	Schema       int     `json:"schema" yaml:"schema"`
	Distance     int     `json:"distance" yaml:"distance"`
	DataQubits   int     `json:"data_qubits" yaml:"data_qubits"`
	XAncillas    int     `json:"x_ancillas" yaml:"x_ancillas"`
	ZAncillas    int     `json:"z_ancillas" yaml:"z_ancillas"`
	DataCoords   []Point `json:"data_coords" yaml:"data_coords,flow"`
	XCoords      []Point `json:"x_coords" yaml:"x_coords,flow"`
	ZCoords      []Point `json:"z_coords" yaml:"z_coords,flow"`
	XStabilizers [][]int `json:"x_stabilizers" yaml:"x_stabilizers,flow"`
	ZStabilizers [][]int `json:"z_stabilizers" yaml:"z_stabilizers,flow"`
}
