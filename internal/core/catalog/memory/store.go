// Package memory implements the catalog on a generated in-memory
// prime table, mirroring the demo dataset the service falls back to
// when no real catalog database is present.
package memory

import (
	"context"
	"math/rand"
	"sync"

	"primedex/internal/core/prime"
)

// Store holds all primes below a fixed limit, generated at
// construction by trial division.
type Store struct {
	primes []uint64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStore seeds the store with every prime below limit.
func NewStore(limit uint64) *Store {
	var primes []uint64
	for n := uint64(2); n < limit; n++ {
		if prime.IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return &Store{
		primes: primes,
		rng:    rand.New(rand.NewSource(int64(limit))),
	}
}

// Count returns the number of seeded primes.
func (s *Store) Count(_ context.Context) (int64, error) {
	return int64(len(s.primes)), nil
}

// Sample returns up to n distinct primes in random order.
func (s *Store) Sample(_ context.Context, n int) ([]uint64, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > len(s.primes) {
		n = len(s.primes)
	}

	s.mu.Lock()
	idx := s.rng.Perm(len(s.primes))[:n]
	s.mu.Unlock()

	out := make([]uint64, n)
	for i, j := range idx {
		out[i] = s.primes[j]
	}
	return out, nil
}

// Backend names the implementation.
func (s *Store) Backend() string {
	return "memory"
}

// Close is a no-op for the memory store.
func (s *Store) Close(_ context.Context) error {
	return nil
}
