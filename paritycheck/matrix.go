// SPDX-License-Identifier: MIT

package paritycheck

import (
	"fmt"
	"strings"
)

// Matrix is a row-major binary matrix. Entries are 0 or 1; arithmetic is mod 2.
type Matrix struct {
	r, c int
	data []uint8 // len == r*c
}

// New returns an all-zero rows×cols matrix. Zero-sized dimensions are allowed
// (a distance-1 code has no checks).
// Returns ErrBadShape for negative dimensions.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// FromSupports builds a matrix with one row per support, setting column j of
// row i when support i contains j.
// Returns ErrOutOfRange if a support index falls outside [0, cols).
func FromSupports(supports [][]int, cols int) (*Matrix, error) {
	m, err := New(len(supports), cols)
	if err != nil {
		return nil, err
	}
	for i, sup := range supports {
		for _, j := range sup {
			if j < 0 || j >= cols {
				return nil, fmt.Errorf("FromSupports: row %d column %d (cols %d): %w", i, j, cols, ErrOutOfRange)
			}
			m.data[i*cols+j] = 1
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat index for (row, col).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the entry at (row, col).
func (m *Matrix) At(row, col int) (uint8, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v mod 2 at (row, col).
func (m *Matrix) Set(row, col int, v uint8) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v & 1

	return nil
}

// Row returns the column indices set in row i, ascending.
func (m *Matrix) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	var cols []int
	for j, v := range m.data[i*m.c : (i+1)*m.c] {
		if v == 1 {
			cols = append(cols, j)
		}
	}

	return cols, nil
}

// Transpose returns a new cols×rows matrix.
func (m *Matrix) Transpose() *Matrix {
	t := &Matrix{r: m.c, c: m.r, data: make([]uint8, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Mul returns a·b over GF(2).
// Returns ErrDimensionMismatch unless a.Cols() == b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out := &Matrix{r: a.r, c: b.c, data: make([]uint8, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			if a.data[i*a.c+k] == 0 {
				continue
			}
			row := b.data[k*b.c : (k+1)*b.c]
			dst := out.data[i*b.c : (i+1)*b.c]
			for j, v := range row {
				dst[j] ^= v
			}
		}
	}

	return out, nil
}

// IsZero reports whether every entry is 0.
func (m *Matrix) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// Rank returns the rank over GF(2). m is left unchanged.
func (m *Matrix) Rank() int {
	work := make([]uint8, len(m.data))
	copy(work, m.data)
	row := func(i int) []uint8 { return work[i*m.c : (i+1)*m.c] }

	rank := 0
	for col := 0; col < m.c && rank < m.r; col++ {
		pivot := -1
		for i := rank; i < m.r; i++ {
			if row(i)[col] == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if pivot != rank {
			tmp := make([]uint8, m.c)
			copy(tmp, row(pivot))
			copy(row(pivot), row(rank))
			copy(row(rank), tmp)
		}
		for i := 0; i < m.r; i++ {
			if i == rank || row(i)[col] == 0 {
				continue
			}
			dst, src := row(i), row(rank)
			for j := col; j < m.c; j++ {
				dst[j] ^= src[j]
			}
		}
		rank++
	}

	return rank
}

// String renders one bracketed row per line, e.g. "[1 0 1]".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
