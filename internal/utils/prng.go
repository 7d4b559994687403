// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService is a wrapper over Go's random number generator that lets the
// whole game run on a predictable (seeded) stream.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A seed of 0 falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange returns a random float64 in [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
