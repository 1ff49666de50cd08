// SPDX-License-Identifier: MIT

package lattice

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decorator styles the label of an occupied cell in a grid rendering,
// e.g. to add terminal colors. It must not change the visible width.
type Decorator func(s Site, label string) string

// listing names per occupied role, in storage order.
var listingNames = [len(occupiedRoles)]struct{ plural, prefix string }{
	{"data qubits", "d"},
	{"mx ancilla qubits", "amx"},
	{"mz ancilla qubits", "amz"},
}

// cellWidth returns the column width that fits the longest label plus one space.
func (l *Lattice) cellWidth() int {
	widest := 0
	for s := range l.coords {
		if n := len(l.coords[s]); n > widest {
			widest = n
		}
	}
	digits := 1
	if widest > 1 {
		digits = len(strconv.Itoa(widest - 1))
	}

	return len("mx") + digits + 1
}

// WriteGrid renders the lattice row by row (y ascending), one fixed-width cell
// per point: "d<i>", "mx<i>", "mz<i>" for occupied points, blanks for Unused.
// Trailing blanks are trimmed. decorate may be nil.
// Complexity: O(d²).
func (l *Lattice) WriteGrid(w io.Writer, decorate Decorator) error {
	bw := bufio.NewWriter(w)
	width := l.cellWidth()
	blank := strings.Repeat(" ", width)
	edge := 2 * l.distance

	var line strings.Builder
	for y := 0; y <= edge; y++ {
		line.Reset()
		for x := 0; x <= edge; x++ {
			site, ok := l.sites[Coord{X: x, Y: y}]
			if !ok {
				line.WriteString(blank)
				continue
			}
			label := site.String()
			if decorate != nil {
				line.WriteString(decorate(site, label))
			} else {
				line.WriteString(label)
			}
			line.WriteString(blank[:width-len(label)])
		}
		if _, err := bw.WriteString(strings.TrimRight(line.String(), " ") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteRoles renders the lattice one character per point, row by row
// (y ascending), with no indices. Trailing blanks are trimmed.
//
//	  x
//	 d d d
//	  z x z
//
// Complexity: O(d²).
func (l *Lattice) WriteRoles(w io.Writer) error {
	bw := bufio.NewWriter(w)
	edge := 2 * l.distance
	row := make([]byte, edge+1)
	for y := 0; y <= edge; y++ {
		for x := range row {
			row[x] = l.sites[Coord{X: x, Y: y}].Role.Glyph()
		}
		bw.WriteString(strings.TrimRight(string(row), " "))
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String returns the undecorated grid rendering.
func (l *Lattice) String() string {
	var sb strings.Builder
	_ = l.WriteGrid(&sb, nil)
	return sb.String()
}

// WriteCoords lists every qubit in index order, grouped by role:
//
//	9 data qubits:
//	d[0] @ (1, 1)
//	...
func (l *Lattice) WriteCoords(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for s := range l.coords {
		names := listingNames[s]
		fmt.Fprintf(bw, "%d %s:\n", len(l.coords[s]), names.plural)
		for i, c := range l.coords[s] {
			fmt.Fprintf(bw, "%s[%d] @ %s\n", names.prefix, i, c)
		}
	}

	return bw.Flush()
}

// WriteIndices lists the coordinate → index maps in coordinate order:
//
//	9 data qubits:
//	@(1,1): d[0]
//	...
func (l *Lattice) WriteIndices(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for s := range l.coords {
		names := listingNames[s]
		fmt.Fprintf(bw, "%d %s:\n", len(l.indices[s]), names.plural)
		// coords[s] is already in coordinate order and agrees with indices[s].
		for _, c := range l.coords[s] {
			fmt.Fprintf(bw, "@(%d,%d): %s[%d]\n", c.X, c.Y, names.prefix, l.indices[s][c])
		}
	}

	return bw.Flush()
}
