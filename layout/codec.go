// SPDX-License-Identifier: MIT

package layout

import (
	"encoding/json"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvqec/lattice"
)

// wireLayout is the MessagePack payload. Coordinates are flattened to
// x0, y0, x1, y1, ... and every integer is unsigned 32-bit.
type wireLayout struct {
	Schema   uint16     `msgpack:"schema"`
	Distance uint32     `msgpack:"distance"`
	Data     []uint32   `msgpack:"data"`
	XAnc     []uint32   `msgpack:"x_anc"`
	ZAnc     []uint32   `msgpack:"z_anc"`
	XStab    [][]uint32 `msgpack:"x_stab"`
	ZStab    [][]uint32 `msgpack:"z_stab"`
}

// Encode validates ly and writes it to w in format f.
func Encode(w io.Writer, ly *Layout, f Format) error {
	if err := ly.Validate(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ly); err != nil {
			return fmt.Errorf("Encode: json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ly); err != nil {
			return fmt.Errorf("Encode: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("Encode: yaml: %w", err)
		}
	case FormatMsgpack:
		wire, err := toWire(ly)
		if err != nil {
			return fmt.Errorf("Encode: msgpack: %w", err)
		}
		if err := msgpack.NewEncoder(w).Encode(wire); err != nil {
			return fmt.Errorf("Encode: msgpack: %w", err)
		}
	default:
		return fmt.Errorf("Encode: %v: %w", f, ErrUnknownFormat)
	}

	return nil
}

// Decode reads a Layout in format f from r and validates it.
func Decode(r io.Reader, f Format) (*Layout, error) {
	return DecodeWith(r, f, lattice.WithEvenDistance())
}

// DecodeWith is Decode with validation run under the given lattice options.
func DecodeWith(r io.Reader, f Format, opts ...lattice.Option) (*Layout, error) {
	var ly Layout
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ly); err != nil {
			return nil, fmt.Errorf("Decode: json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&ly); err != nil {
			return nil, fmt.Errorf("Decode: yaml: %w", err)
		}
	case FormatMsgpack:
		var wire wireLayout
		if err := msgpack.NewDecoder(r).Decode(&wire); err != nil {
			return nil, fmt.Errorf("Decode: msgpack: %w", err)
		}
		out, err := fromWire(&wire)
		if err != nil {
			return nil, fmt.Errorf("Decode: msgpack: %w", err)
		}
		ly = *out
	default:
		return nil, fmt.Errorf("Decode: %v: %w", f, ErrUnknownFormat)
	}

	if err := ly.ValidateWith(opts...); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return &ly, nil
}

// toWire narrows every integer to uint32, rejecting negative values.
func toWire(ly *Layout) (*wireLayout, error) {
	schema, err := safecast.Conv[uint16](ly.Schema)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	dist, err := safecast.Conv[uint32](ly.Distance)
	if err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}
	w := &wireLayout{Schema: schema, Distance: dist}
	if w.Data, err = flattenPoints(ly.DataCoords); err != nil {
		return nil, fmt.Errorf("data_coords: %w", err)
	}
	if w.XAnc, err = flattenPoints(ly.XCoords); err != nil {
		return nil, fmt.Errorf("x_coords: %w", err)
	}
	if w.ZAnc, err = flattenPoints(ly.ZCoords); err != nil {
		return nil, fmt.Errorf("z_coords: %w", err)
	}
	if w.XStab, err = narrowBlock(ly.XStabilizers); err != nil {
		return nil, fmt.Errorf("x_stabilizers: %w", err)
	}
	if w.ZStab, err = narrowBlock(ly.ZStabilizers); err != nil {
		return nil, fmt.Errorf("z_stabilizers: %w", err)
	}

	return w, nil
}

// fromWire widens the payload back to a Layout; counts are derived from the lists.
func fromWire(w *wireLayout) (*Layout, error) {
	dist, err := safecast.Conv[int](w.Distance)
	if err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}
	ly := &Layout{Schema: int(w.Schema), Distance: dist}
	if ly.DataCoords, err = unflattenPoints(w.Data); err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	if ly.XCoords, err = unflattenPoints(w.XAnc); err != nil {
		return nil, fmt.Errorf("x_anc: %w", err)
	}
	if ly.ZCoords, err = unflattenPoints(w.ZAnc); err != nil {
		return nil, fmt.Errorf("z_anc: %w", err)
	}
	if ly.XStabilizers, err = widenBlock(w.XStab); err != nil {
		return nil, fmt.Errorf("x_stab: %w", err)
	}
	if ly.ZStabilizers, err = widenBlock(w.ZStab); err != nil {
		return nil, fmt.Errorf("z_stab: %w", err)
	}
	ly.DataQubits = len(ly.DataCoords)
	ly.XAncillas = len(ly.XCoords)
	ly.ZAncillas = len(ly.ZCoords)

	return ly, nil
}

func flattenPoints(pts []Point) ([]uint32, error) {
	out := make([]uint32, 0, 2*len(pts))
	for _, p := range pts {
		x, err := safecast.Conv[uint32](p.X)
		if err != nil {
			return nil, err
		}
		y, err := safecast.Conv[uint32](p.Y)
		if err != nil {
			return nil, err
		}
		out = append(out, x, y)
	}

	return out, nil
}

func unflattenPoints(flat []uint32) ([]Point, error) {
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d: %w", len(flat), ErrInconsistent)
	}
	out := make([]Point, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		x, err := safecast.Conv[int](flat[i])
		if err != nil {
			return nil, err
		}
		y, err := safecast.Conv[int](flat[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, Point{X: x, Y: y})
	}

	return out, nil
}

func narrowBlock(block [][]int) ([][]uint32, error) {
	out := make([][]uint32, len(block))
	for i, sup := range block {
		row := make([]uint32, len(sup))
		for j, v := range sup {
			n, err := safecast.Conv[uint32](v)
			if err != nil {
				return nil, fmt.Errorf("[%d][%d]: %w", i, j, err)
			}
			row[j] = n
		}
		out[i] = row
	}

	return out, nil
}

func widenBlock(block [][]uint32) ([][]int, error) {
	out := make([][]int, len(block))
	for i, sup := range block {
		row := make([]int, len(sup))
		for j, v := range sup {
			n, err := safecast.Conv[int](v)
			if err != nil {
				return nil, fmt.Errorf("[%d][%d]: %w", i, j, err)
			}
			row[j] = n
		}
		out[i] = row
	}

	return out, nil
}
