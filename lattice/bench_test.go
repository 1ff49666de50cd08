// SPDX-License-Identifier: MIT

package lattice_test

import (
	"testing"

	"github.com/katalvlaran/lvqec/lattice"
)

// BenchmarkNew measures classification and index assignment at d = 101.
// Complexity: O(d² log d)
func BenchmarkNew(b *testing.B) {
	const d = 101
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := lattice.New(d); err != nil {
			b.Fatalf("New(%d): %v", d, err)
		}
	}
}

// BenchmarkIndexOf measures data-qubit lookups on a prebuilt lattice.
func BenchmarkIndexOf(b *testing.B) {
	l, err := lattice.New(51)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	data, _ := l.Coords(lattice.Data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.DataIndex(data[i%len(data)])
	}
}
