package data

import (
	"math/rand"
	"sync"
	"time"
)

// RNG is the uniform source the probability model draws from. Production
// code uses Default, a process-wide generator seeded from a nondeterministic
// source; tests construct their own with a fixed seed for reproducibility.
type RNG struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRNG returns an RNG seeded deterministically, for tests.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Default is the process-wide RNG used by entry points that don't take an
// explicit uniform value (random_drop, random_one_artifact with unspecified
// fields, generate_random_gain_input).
var Default = &RNG{src: rand.New(rand.NewSource(time.Now().UnixNano()))}

// Float64 returns a uniform real in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Intn returns a uniform integer in [0, max).
func (r *RNG) Intn(max int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(max)
}

// Normal returns a draw from Normal(mu, sigma).
func (r *RNG) Normal(mu, sigma float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.NormFloat64()*sigma + mu
}
