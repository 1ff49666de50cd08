// SPDX-License-Identifier: MIT

package paritycheck

import (
	"fmt"

	"github.com/katalvlaran/lvqec/stabilizer"
)

// FromSet returns Hx and Hz for s, each with s.NumData() columns.
// Returns ErrNilSet for a nil set.
func FromSet(s *stabilizer.Set) (hx, hz *Matrix, err error) {
	if s == nil {
		return nil, nil, fmt.Errorf("FromSet: %w", ErrNilSet)
	}
	if hx, err = FromSupports(s.X(), s.NumData()); err != nil {
		return nil, nil, fmt.Errorf("FromSet: Hx: %w", err)
	}
	if hz, err = FromSupports(s.Z(), s.NumData()); err != nil {
		return nil, nil, fmt.Errorf("FromSet: Hz: %w", err)
	}

	return hx, hz, nil
}

// CheckCommutation verifies Hx·Hzᵀ = 0 over GF(2).
// Returns ErrAnticommute naming the first offending (X, Z) pair.
func CheckCommutation(s *stabilizer.Set) error {
	hx, hz, err := FromSet(s)
	if err != nil {
		return err
	}
	prod, err := Mul(hx, hz.Transpose())
	if err != nil {
		return fmt.Errorf("CheckCommutation: %w", err)
	}
	for i := 0; i < prod.r; i++ {
		for j := 0; j < prod.c; j++ {
			if prod.data[i*prod.c+j] != 0 {
				return fmt.Errorf("CheckCommutation: X%d and Z%d overlap on an odd number of qubits: %w",
					i, j, ErrAnticommute)
			}
		}
	}

	return nil
}

// LogicalQubits returns n − rank(Hx) − rank(Hz), the number of logical
// qubits encoded by the CSS code s.
func LogicalQubits(s *stabilizer.Set) (int, error) {
	hx, hz, err := FromSet(s)
	if err != nil {
		return 0, err
	}

	return s.NumData() - hx.Rank() - hz.Rank(), nil
}
