// SPDX-License-Identifier: MIT

package stabilizer

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// NewSet builds a Set from explicit supports, e.g. decoded from a layout
// file. The inputs are copied and validated as in Validate.
func NewSet(numData int, x, z [][]int) (*Set, error) {
	s := &Set{numData: numData, x: cloneBlock(x), z: cloneBlock(z)}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// NumData returns the number of data qubits the supports index into.
func (s *Set) NumData() int {
	return s.numData
}

// NumX returns the number of X stabilizers.
func (s *Set) NumX() int {
	return len(s.x)
}

// NumZ returns the number of Z stabilizers.
func (s *Set) NumZ() int {
	return len(s.z)
}

// Len returns the total number of stabilizers.
func (s *Set) Len() int {
	return len(s.x) + len(s.z)
}

// X returns a deep copy of the X supports in ancilla index order.
func (s *Set) X() [][]int {
	return cloneBlock(s.x)
}

// Z returns a deep copy of the Z supports in ancilla index order.
func (s *Set) Z() [][]int {
	return cloneBlock(s.z)
}

// Support returns a copy of the support of the i-th stabilizer of kind k.
func (s *Set) Support(k Kind, i int) ([]int, error) {
	block, err := s.block(k)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(block) {
		return nil, fmt.Errorf("Support: %v[%d] (count %d): %w", k, i, len(block), ErrIndexOutOfRange)
	}

	return slices.Clone(block[i]), nil
}

// At returns the stabilizer at global position g (X block, then Z block).
func (s *Set) At(g int) (Stabilizer, error) {
	switch {
	case g >= 0 && g < len(s.x):
		return Stabilizer{Kind: X, Index: g, Global: g, Support: slices.Clone(s.x[g])}, nil
	case g >= len(s.x) && g < s.Len():
		i := g - len(s.x)
		return Stabilizer{Kind: Z, Index: i, Global: g, Support: slices.Clone(s.z[i])}, nil
	default:
		return Stabilizer{}, fmt.Errorf("At: %d (count %d): %w", g, s.Len(), ErrIndexOutOfRange)
	}
}

// All returns every stabilizer in global order.
func (s *Set) All() []Stabilizer {
	out := make([]Stabilizer, 0, s.Len())
	for i, sup := range s.x {
		out = append(out, Stabilizer{Kind: X, Index: i, Global: i, Support: slices.Clone(sup)})
	}
	for i, sup := range s.z {
		out = append(out, Stabilizer{Kind: Z, Index: i, Global: len(s.x) + i, Support: slices.Clone(sup)})
	}

	return out
}

// WeightCounts returns how many stabilizers have each weight.
func (s *Set) WeightCounts() map[int]int {
	counts := make(map[int]int, 2)
	for _, sup := range s.x {
		counts[len(sup)]++
	}
	for _, sup := range s.z {
		counts[len(sup)]++
	}

	return counts
}

// Validate checks that every support has weight 2 or 4, is strictly
// ascending, and indexes existing data qubits.
func (s *Set) Validate() error {
	for _, k := range []Kind{X, Z} {
		block, _ := s.block(k)
		for i, sup := range block {
			if w := len(sup); w != BoundaryWeight && w != InteriorWeight {
				return fmt.Errorf("Validate: %v[%d] weight %d: %w", k, i, w, ErrBadWeight)
			}
			for j, di := range sup {
				if di < 0 || di >= s.numData {
					return fmt.Errorf("Validate: %v[%d] data index %d (count %d): %w",
						k, i, di, s.numData, ErrIndexOutOfRange)
				}
				if j > 0 && sup[j-1] >= di {
					return fmt.Errorf("Validate: %v[%d] support %v not strictly ascending: %w",
						k, i, sup, ErrUnsortedSupport)
				}
			}
		}
	}

	return nil
}

// Equal reports whether s and o hold the same supports in the same order.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	eq := func(a, b [][]int) bool {
		return slices.EqualFunc(a, b, func(p, q []int) bool { return slices.Equal(p, q) })
	}

	return s.numData == o.numData && eq(s.x, o.x) && eq(s.z, o.z)
}

// WriteTo lists the stabilizers in global order, one per line:
//
//	s[0]: X0 X3
//	...
//	s[4]: Z1 Z2
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, st := range s.All() {
		fmt.Fprintf(bw, "s[%d]:", st.Global)
		for _, di := range st.Support {
			fmt.Fprintf(bw, " %v%d", st.Kind, di)
		}
		bw.WriteByte('\n')
	}
	err := bw.Flush()

	return cw.n, err
}

// String returns the WriteTo listing.
func (s *Set) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

// block returns the internal block for k.
func (s *Set) block(k Kind) ([][]int, error) {
	switch k {
	case X:
		return s.x, nil
	case Z:
		return s.z, nil
	default:
		return nil, fmt.Errorf("%v: %w", k, ErrUnknownKind)
	}
}

func cloneBlock(b [][]int) [][]int {
	out := make([][]int, len(b))
	for i, sup := range b {
		out[i] = slices.Clone(sup)
	}
	return out
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
