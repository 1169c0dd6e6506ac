// Package rng defines the random stream every lvmaze generator and placement
// strategy draws from.
//
// A process seeds one stream once and threads it through all calls, so
// repeated generations produce different mazes while a fixed seed replays
// the exact same sequence.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the maze engine consumes.
// Implementations must be sequential: each call advances the stream.
type Source interface {
	// Intn returns a uniform integer in [0,n). Panics if n <= 0.
	Intn(n int) int
	// Shuffle pseudo-randomly permutes n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic stream for seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ResolveSeed returns seed unchanged unless it is zero, in which case a
// time-based seed is derived. The resolved value should be recorded by
// callers that want to replay a run.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}
	return s
}

// NewTimeSeeded returns a stream seeded from the clock together with the
// seed that was used.
func NewTimeSeeded() (*rand.Rand, int64) {
	seed := ResolveSeed(0)
	return New(seed), seed
}

// Between returns a uniform integer in the closed range [lo,hi].
// Panics if hi < lo.
func Between(r Source, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// ShuffleSlice permutes s in place using r.
func ShuffleSlice[T any](r Source, s []T) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
