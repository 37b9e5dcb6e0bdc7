// SPDX-License-Identifier: MIT
// Package: covercheck/gen
//
// options.go - functional options resolved into an immutable config.
//
// Determinism policy:
//   - No time-based seeding anywhere; the default stream uses a fixed seed.
//   - WithSeed(0) resolves to the default seed so the zero value stays
//     reproducible rather than surprising.
//   - Options apply in order; later options override earlier ones.

package gen

import "math/rand"

// defaultSeed is the fixed seed used when no option overrides it.
// Arbitrary but stable, so default fixtures are reproducible.
const defaultSeed int64 = 1

// Option configures a stochastic generator.
type Option func(*config)

// config aggregates the generator knobs. Passed by value to
// implementations; immutable to callers.
type config struct {
	rng *rand.Rand
}

// WithSeed derives the random stream from the given seed.
// Policy: seed==0 resolves to the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand supplies an explicit random stream. A nil value is ignored and
// the default-seeded stream is kept. Note: *rand.Rand is not
// goroutine-safe; do not share one stream across concurrent generators.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// newConfig resolves options over deterministic defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
