// SPDX-License-Identifier: MIT

package layout_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/layout"
	"github.com/katalvlaran/lvqec/stabilizer"
)

// TestFromLattice_Distance3 checks the captured contract.
func TestFromLattice_Distance3(t *testing.T) {
	ly, err := layout.Build(3)
	require.NoError(t, err)

	assert.Equal(t, layout.SchemaVersion, ly.Schema)
	assert.Equal(t, 3, ly.Distance)
	assert.Equal(t, 9, ly.DataQubits)
	assert.Equal(t, 4, ly.XAncillas)
	assert.Equal(t, 4, ly.ZAncillas)
	assert.Equal(t, []layout.Point{{2, 0}, {2, 4}, {4, 2}, {4, 6}}, ly.XCoords)
	assert.Equal(t, [][]int{{0, 3}, {1, 2, 4, 5}, {3, 4, 6, 7}, {5, 8}}, ly.XStabilizers)
	assert.Equal(t, [][]int{{1, 2}, {0, 1, 3, 4}, {4, 5, 7, 8}, {6, 7}}, ly.ZStabilizers)
	require.NoError(t, ly.Validate())

	s, err := ly.Stabilizers()
	require.NoError(t, err)
	assert.Equal(t, 8, s.Len())
}

// TestFromLattice_Errors covers nil and mismatched inputs.
func TestFromLattice_Errors(t *testing.T) {
	l3, err := lattice.New(3)
	require.NoError(t, err)
	l5, err := lattice.New(5)
	require.NoError(t, err)
	s5, err := stabilizer.Build(l5)
	require.NoError(t, err)

	_, err = layout.FromLattice(nil, s5)
	require.ErrorIs(t, err, layout.ErrNilInput)
	_, err = layout.FromLattice(l3, nil)
	require.ErrorIs(t, err, layout.ErrNilInput)
	_, err = layout.FromLattice(l3, s5)
	require.ErrorIs(t, err, layout.ErrInconsistent)

	_, err = layout.Build(0)
	require.ErrorIs(t, err, lattice.ErrInvalidParameter)
}

// TestValidate_Tampering checks that every kind of edit is caught.
func TestValidate_Tampering(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*layout.Layout)
		err    error
	}{
		{"Schema", func(ly *layout.Layout) { ly.Schema = 99 }, layout.ErrSchema},
		{"CountVsList", func(ly *layout.Layout) { ly.XAncillas = 3 }, layout.ErrInconsistent},
		{"DroppedStabilizer", func(ly *layout.Layout) { ly.ZStabilizers = ly.ZStabilizers[:3] }, layout.ErrInconsistent},
		{"MovedAncilla", func(ly *layout.Layout) { ly.XCoords[0] = layout.Point{X: 4, Y: 0} }, layout.ErrInconsistent},
		{"SwappedSupport", func(ly *layout.Layout) { ly.XStabilizers[0] = []int{0, 6} }, layout.ErrInconsistent},
		{"ZeroDistance", func(ly *layout.Layout) { ly.Distance = 0 }, layout.ErrInconsistent},
		{"WrongDistance", func(ly *layout.Layout) { ly.Distance = 5 }, layout.ErrInconsistent},
		{"InflatedDistanceEmptyLists", func(ly *layout.Layout) {
			*ly = layout.Layout{Schema: layout.SchemaVersion, Distance: 2001}
		}, layout.ErrInconsistent},
		{"HugeDistance", func(ly *layout.Layout) { ly.Distance = 1 << 30 }, layout.ErrInconsistent},
		{"AncillaSplit", func(ly *layout.Layout) {
			ly.XAncillas, ly.XCoords, ly.XStabilizers = 3, ly.XCoords[:3], ly.XStabilizers[:3]
		}, layout.ErrInconsistent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ly, err := layout.Build(3)
			require.NoError(t, err)
			tc.mutate(ly)
			require.ErrorIs(t, ly.Validate(), tc.err)
		})
	}

	var nilLayout *layout.Layout
	require.ErrorIs(t, nilLayout.Validate(), layout.ErrNilInput)
	_, err := nilLayout.Stabilizers()
	require.ErrorIs(t, err, layout.ErrNilInput)
}

// TestDecode_InflatedDistance rejects a tiny document claiming a large
// distance from its counts alone, before any lattice is built.
func TestDecode_InflatedDistance(t *testing.T) {
	doc := `{"schema":1,"distance":2001,"data_qubits":0,"x_ancillas":0,"z_ancillas":0,` +
		`"data_coords":[],"x_coords":[],"z_coords":[],"x_stabilizers":[],"z_stabilizers":[]}`
	_, err := layout.Decode(strings.NewReader(doc), layout.FormatJSON)
	require.ErrorIs(t, err, layout.ErrInconsistent)
	assert.Contains(t, err.Error(), "do not fit distance 2001")
	assert.NotErrorIs(t, err, lattice.ErrInvalidParameter)
}

// TestValidateWith_Policy applies the caller's distance policy to the
// reference build.
func TestValidateWith_Policy(t *testing.T) {
	even, err := layout.Build(4)
	require.NoError(t, err)
	require.NoError(t, even.Validate())
	require.NoError(t, even.ValidateWith(lattice.WithEvenDistance()))

	err = even.ValidateWith()
	require.ErrorIs(t, err, layout.ErrInconsistent)
	require.ErrorIs(t, err, lattice.ErrEvenDistance)

	big, err := layout.Build(7)
	require.NoError(t, err)
	err = big.ValidateWith(lattice.WithMaxDistance(5))
	require.ErrorIs(t, err, lattice.ErrInvalidParameter)

	var buf bytes.Buffer
	require.NoError(t, layout.Encode(&buf, big, layout.FormatMsgpack))
	_, err = layout.DecodeWith(bytes.NewReader(buf.Bytes()), layout.FormatMsgpack, lattice.WithMaxDistance(5))
	require.ErrorIs(t, err, lattice.ErrInvalidParameter)
	got, err := layout.DecodeWith(&buf, layout.FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Distance)

	_, err = layout.BuildWith(4)
	require.ErrorIs(t, err, lattice.ErrEvenDistance)
}

// TestEncodeDecode_RoundTrip checks every format reproduces the layout, for
// an odd, an even and the degenerate distance.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, f := range []layout.Format{layout.FormatJSON, layout.FormatYAML, layout.FormatMsgpack} {
		for _, d := range []int{1, 4, 7} {
			want, err := layout.Build(d)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, layout.Encode(&buf, want, f), "%v d=%d", f, d)
			got, err := layout.Decode(&buf, f)
			require.NoError(t, err, "%v d=%d", f, d)

			require.Equal(t, want.Distance, got.Distance)
			require.Equal(t, want.DataCoords, got.DataCoords)
			require.Equal(t, want.XStabilizers, got.XStabilizers, "%v d=%d", f, d)
			require.Equal(t, want.ZStabilizers, got.ZStabilizers, "%v d=%d", f, d)
		}
	}
}

// TestEncode_Text spot-checks the human-readable encodings.
func TestEncode_Text(t *testing.T) {
	ly, err := layout.Build(3)
	require.NoError(t, err)

	var js bytes.Buffer
	require.NoError(t, layout.Encode(&js, ly, layout.FormatJSON))
	assert.Contains(t, js.String(), `"data_qubits": 9`)
	assert.Contains(t, js.String(), `"x_stabilizers": [`)

	var ym bytes.Buffer
	require.NoError(t, layout.Encode(&ym, ly, layout.FormatYAML))
	assert.Contains(t, ym.String(), "distance: 3\n")
	assert.Contains(t, ym.String(), "x_stabilizers: [[0, 3], [1, 2, 4, 5], [3, 4, 6, 7], [5, 8]]")
}

// TestEncode_RejectsInvalid refuses to write a broken layout.
func TestEncode_RejectsInvalid(t *testing.T) {
	ly, err := layout.Build(3)
	require.NoError(t, err)
	ly.Schema = 0

	var buf bytes.Buffer
	require.ErrorIs(t, layout.Encode(&buf, ly, layout.FormatJSON), layout.ErrSchema)
	assert.Zero(t, buf.Len())

	ly.Schema = layout.SchemaVersion
	require.ErrorIs(t, layout.Encode(&buf, ly, layout.Format(9)), layout.ErrUnknownFormat)
}

// TestDecode_Errors covers malformed and tampered input.
func TestDecode_Errors(t *testing.T) {
	_, err := layout.Decode(strings.NewReader(`{"schema": 1, "bogus": true}`), layout.FormatJSON)
	require.Error(t, err)

	_, err = layout.Decode(strings.NewReader("schema: 1\ndistance: 3\nextra: 1\n"), layout.FormatYAML)
	require.Error(t, err)

	// Well-formed YAML whose support disagrees with the lattice.
	ly, err := layout.Build(3)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, layout.Encode(&buf, ly, layout.FormatYAML))
	tampered := strings.Replace(buf.String(), "[0, 3]", "[0, 4]", 1)
	_, err = layout.Decode(strings.NewReader(tampered), layout.FormatYAML)
	require.ErrorIs(t, err, layout.ErrInconsistent)

	_, err = layout.Decode(strings.NewReader("\x01"), layout.FormatMsgpack)
	require.Error(t, err)

	_, err = layout.Decode(strings.NewReader("{}"), layout.Format(7))
	require.ErrorIs(t, err, layout.ErrUnknownFormat)
}

// TestParseFormat maps names to formats.
func TestParseFormat(t *testing.T) {
	cases := map[string]layout.Format{
		"json": layout.FormatJSON, "YAML": layout.FormatYAML, "yml": layout.FormatYAML,
		"msgpack": layout.FormatMsgpack, " mp ": layout.FormatMsgpack,
	}
	for name, want := range cases {
		got, err := layout.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		if name == "json" || name == "msgpack" {
			assert.Equal(t, name, got.String())
		}
	}

	_, err := layout.ParseFormat("xml")
	require.ErrorIs(t, err, layout.ErrUnknownFormat)
	assert.Equal(t, "format(5)", layout.Format(5).String())
}
