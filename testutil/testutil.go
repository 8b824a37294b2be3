package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/joux/gf2"
	"github.com/hupe1980/joux/slicefile"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Fingerprints returns n pseudo-random non-zero fingerprints.
func (r *RNG) Fingerprints(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, n)
	for i := range out {
		for out[i] == 0 {
			out[i] = r.rand.Uint64()
		}
	}
	return out
}

// Invertible returns a random invertible matrix and its inverse.
func (r *RNG) Invertible() (m, inv gf2.Matrix) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		for i := range m {
			m[i] = r.rand.Uint64()
		}
		if inv, ok := m.Inverse(); ok {
			return m, inv
		}
	}
}

// Slice returns a random slice of bit-width l with n distinct non-zero
// candidates.
func (r *RNG) Slice(l, n int) *slicefile.Slice {
	m, inv := r.Invertible()

	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[uint64]struct{}, n)
	cm := make([]uint64, 0, n)
	for len(cm) < n {
		c := r.rand.Uint64() >> uint(l)
		if c == 0 {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		cm = append(cm, c)
	}
	return &slicefile.Slice{M: m, Minv: inv, L: l, CM: cm}
}

// Shuffle pseudo-randomly permutes list in place.
func (r *RNG) Shuffle(list []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}
