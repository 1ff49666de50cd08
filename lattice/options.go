// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// MinDistance is the smallest accepted code distance.
const MinDistance = 1

// DefaultMaxDistance bounds the distance accepted by New unless
// WithMaxDistance says otherwise. A distance-d grid holds (2d+1)² points,
// about 1M at the default.
const DefaultMaxDistance = 1 << 9

// Option customizes lattice construction.
type Option func(*config)

// config holds the resolved construction knobs.
type config struct {
	allowEven   bool
	maxDistance int
}

// newConfig applies opts over the defaults, last one wins.
func newConfig(opts ...Option) config {
	cfg := config{
		allowEven:   false,
		maxDistance: DefaultMaxDistance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEvenDistance accepts even distances. The classification rule is applied
// unchanged; the resulting code has d² data qubits and d²-1 stabilizers like
// the odd case, but top and bottom boundaries carry checks at the same columns.
func WithEvenDistance() Option {
	return func(c *config) {
		c.allowEven = true
	}
}

// WithMaxDistance sets the largest accepted distance.
// Panics if n < MinDistance.
func WithMaxDistance(n int) Option {
	if n < MinDistance {
		panic(fmt.Sprintf("lattice: WithMaxDistance(%d)", n))
	}
	return func(c *config) {
		c.maxDistance = n
	}
}

// validate checks d against cfg.
func (cfg config) validate(d int) error {
	if d < MinDistance || d > cfg.maxDistance {
		return fmt.Errorf("%s: distance=%d (must be in [%d, %d]): %w",
			methodNew, d, MinDistance, cfg.maxDistance, ErrInvalidParameter)
	}
	if d%2 == 0 && !cfg.allowEven {
		return fmt.Errorf("%s: distance=%d: %w", methodNew, d, ErrEvenDistance)
	}

	return nil
}
