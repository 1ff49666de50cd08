// SPDX-License-Identifier: MIT

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqec/lattice"
	"github.com/katalvlaran/lvqec/layout"
)

// run executes the command tree in an isolated working directory.
func run(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	var out, errOut bytes.Buffer
	root := newRootCommand(&out, &errOut, dir)
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func TestGrid(t *testing.T) {
	out, _, err := run(t, "", "grid", "-d", "3")
	require.NoError(t, err)

	l, err := lattice.New(3)
	require.NoError(t, err)
	assert.Equal(t, l.String(), out)
}

func TestGrid_EvenDistance(t *testing.T) {
	_, errOut, err := run(t, "", "grid", "-d", "4")
	require.EqualError(t, err, "Even distance 4")
	assert.Contains(t, errOut, "--distance 5")
	assert.Contains(t, errOut, "--allow-even")

	out, _, err := run(t, "", "grid", "-d", "4", "--allow-even")
	require.NoError(t, err)
	assert.Contains(t, out, "d15")
}

func TestGrid_Compact(t *testing.T) {
	out, _, err := run(t, "", "grid", "-d", "3", "--compact")
	require.NoError(t, err)
	assert.Equal(t, "  x\n d d d\n  z x z\n d d d\nz x z\n d d d\n    x\n", out)
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := run(t, "", "grid", "--no-such-flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestGrid_InvalidDistance(t *testing.T) {
	_, errOut, err := run(t, "", "grid", "-d", "0")
	require.Error(t, err)
	assert.Contains(t, errOut, "Invalid settings")
}

func TestCoordsAndIndices(t *testing.T) {
	out, _, err := run(t, "", "coords")
	require.NoError(t, err)
	assert.Contains(t, out, "9 data qubits:\nd[0] @ (1, 1)\n")
	assert.Contains(t, out, "amx[0] @ (2, 0)\n")
	assert.Contains(t, out, "amz[3] @ (6, 2)\n")

	out, _, err = run(t, "", "indices")
	require.NoError(t, err)
	assert.Contains(t, out, "@(5,5): d[8]\n")
	assert.Contains(t, out, "@(4,6): amx[3]\n")
}

func TestStabilizers(t *testing.T) {
	out, _, err := run(t, "", "stabilizers", "-d", "3")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"s[0]: X0 X3\n"+
		"s[1]: X1 X2 X4 X5\n"+
		"s[2]: X3 X4 X6 X7\n"+
		"s[3]: X5 X8\n"+
		"s[4]: Z1 Z2\n"+
		"s[5]: Z0 Z1 Z3 Z4\n"+
		"s[6]: Z4 Z5 Z7 Z8\n"+
		"s[7]: Z6 Z7\n", out)
}

func TestCheck(t *testing.T) {
	for _, args := range [][]string{
		{"check", "-d", "1"},
		{"check", "-d", "5"},
		{"check", "-d", "6", "--allow-even"},
	} {
		out, errOut, err := run(t, "", args...)
		require.NoError(t, err, args)
		assert.Empty(t, errOut, args)
		assert.Contains(t, out, "X and Z stabilizers commute", args)
		assert.Contains(t, out, "1 logical qubit(s)", args)
	}

	out, _, err := run(t, "", "check", "-d", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "→ distance 3: 9 data qubits, 4 X ancillas, 4 Z ancillas\n")
	assert.Contains(t, out, "✓ grid partition (49 points)\n")
	assert.Contains(t, out, "✓ 8 stabilizers: 4 of weight 2, 4 of weight 4\n")
}

func TestExport_Stdout(t *testing.T) {
	out, _, err := run(t, "", "export", "-d", "3", "--format", "json")
	require.NoError(t, err)

	ly, err := layout.Decode(bytes.NewBufferString(out), layout.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, ly.Distance)
	assert.Equal(t, []int{0, 3}, ly.XStabilizers[0])
}

func TestExport_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"d5.json", "d5.yaml", "d5.msgpack"} {
		path := filepath.Join(dir, name)
		out, _, err := run(t, dir, "export", "-d", "5", "-o", path)
		require.NoError(t, err, name)
		assert.Contains(t, out, "wrote "+path, name)

		out, _, err = run(t, dir, "verify", path)
		require.NoError(t, err, name)
		assert.Contains(t, out, "distance 5, 25 data qubits, 24 stabilizers", name)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, errOut, err := run(t, "", "export", "--format", "xml")
	require.EqualError(t, err, `Unknown format "xml"`)
	assert.Contains(t, errOut, "json, yaml or msgpack")
}

func TestVerify_Tampered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	doc := "schema: 1\ndistance: 3\ndata_qubits: 9\nx_ancillas: 4\nz_ancillas: 4\n" +
		"data_coords: []\nx_coords: []\nz_coords: []\nx_stabilizers: []\nz_stabilizers: []\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, errOut, err := run(t, dir, "verify", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "does not describe a valid lattice")
}

func TestVerify_InflatedDistance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.json")
	doc := `{"schema":1,"distance":2001,"data_qubits":0,"x_ancillas":0,"z_ancillas":0,` +
		`"data_coords":[],"x_coords":[],"z_coords":[],"x_stabilizers":[],"z_stabilizers":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, errOut, err := run(t, dir, "verify", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "do not fit distance 2001")
}

func TestVerify_HonorsDistancePolicy(t *testing.T) {
	dir := t.TempDir()
	even := filepath.Join(dir, "d4.json")
	_, _, err := run(t, dir, "export", "-d", "4", "--allow-even", "-o", even)
	require.NoError(t, err)

	_, errOut, err := run(t, dir, "verify", even)
	require.EqualError(t, err, even+" has an even distance")
	assert.Contains(t, errOut, "--allow-even")

	out, _, err := run(t, dir, "verify", even, "--allow-even")
	require.NoError(t, err)
	assert.Contains(t, out, "distance 4, 16 data qubits, 15 stabilizers")

	big := filepath.Join(dir, "d7.yaml")
	_, _, err = run(t, dir, "export", "-d", "7", "-o", big)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvqec.toml"), []byte("[lattice]\nmax_distance = 5\n"), 0o600))

	_, errOut, err = run(t, dir, "verify", big)
	require.EqualError(t, err, big+" has a distance outside the allowed range")
	assert.Contains(t, errOut, "max_distance (now 5)")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := "[lattice]\ndistance = 5\n\n[output]\ncolor = \"off\"\nformat = \"yaml\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvqec.toml"), []byte(cfg), 0o600))

	out, _, err := run(t, dir, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "distance 5: 25 data qubits")

	// Flags override the file.
	out, _, err = run(t, dir, "check", "-d", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "distance 7: 49 data qubits")

	out, _, err = run(t, dir, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "distance: 5\n")
}

func TestConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lvqec.toml"), []byte("[lattice]\ncolour = 1\n"), 0o600))

	_, errOut, err := run(t, dir, "grid")
	require.EqualError(t, err, "Failed to load configuration")
	assert.Contains(t, errOut, "colour")
}

func TestVersion(t *testing.T) {
	SetVersionInfo("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "lvqec v1.2.3 (commit: abc123, built: 2026-01-01)\n", out)
}
