package heuristic

import "math/rand"

// Options configures FindPath.
type Options struct {
	// Rand, when set, drives the start shuffle and takes precedence over Seed.
	Rand *rand.Rand
	// Seed seeds a private source when Rand is nil (0 ⇒ 1).
	Seed int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Seed=0 (the default deterministic stream) and no Rand.
func DefaultOptions() Options {
	return Options{}
}

// WithRand supplies the random source. The source is advanced by the call,
// so reusing it across calls gives a reproducible sequence of different
// shuffles. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("heuristic: WithRand(nil)")
	}

	return func(o *Options) { o.Rand = r }
}

// WithSeed seeds a fresh source for this call.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
