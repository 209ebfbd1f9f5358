// Package random provides the uniform random source used by the synthetic
// series generator and the extrapolator.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the subset of *rand.Rand the prediction code draws from.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// Global returns the process-wide, non-deterministic source. Safe for concurrent use.
func Global() Source {
	return globalSource{}
}

// lockedSource serializes access to a seeded *rand.Rand.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a reproducible source safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Int64Range returns a uniform integer in [lo, hi). hi must be greater than lo.
func Int64Range(src Source, lo, hi int64) int64 {
	return lo + int64(src.IntN(int(hi-lo)))
}

// Between returns a uniform value in [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
