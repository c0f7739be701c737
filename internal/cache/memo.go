// Package cache provides the in-memory memoization layer that sits between
// the planner and the external generation/search providers. Every provider
// call is billed against a quota, so the planner never calls a provider
// directly — it goes through a Memo keyed by a preference fingerprint.
package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo memoizes the result of an expensive computation per key.
//
// Guarantees:
//   - At most one successful computation per distinct key for the lifetime
//     of the process. Concurrent first calls for the same key are collapsed
//     into a single in-flight computation (singleflight); all callers
//     observe the same result.
//   - Failed computations are not stored. A later call with the same key
//     re-invokes compute — a failure never poisons the cache.
//
// Not guaranteed: eviction, TTL, staleness detection, or cross-process
// sharing. A provider whose output is non-deterministic will appear frozen
// after the first successful call for a key; that is the documented contract,
// not a bug. Entries are unbounded for the process lifetime, which is
// acceptable for a short-lived planning service.
//
// Memo is safe for concurrent use and may be shared across sessions as long
// as keys are fingerprints of pure inputs.
type Memo[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
	flight  singleflight.Group
}

// NewMemo returns an empty Memo.
func NewMemo[T any]() *Memo[T] {
	return &Memo[T]{entries: make(map[string]T)}
}

// Do returns the cached value for key, computing and storing it on first use.
//
// If compute returns an error, nothing is stored and the error is returned
// to every caller collapsed into that flight.
func (m *Memo[T]) Do(key string, compute func() (T, error)) (T, error) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := m.flight.Do(key, func() (any, error) {
		// Re-check under the flight: another caller may have completed and
		// stored between our read miss and the flight acquisition.
		m.mu.RLock()
		v, ok := m.entries[key]
		m.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := compute()
		if err != nil {
			return v, err
		}

		m.mu.Lock()
		m.entries[key] = v
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// Len reports the number of stored entries. Used by tests and diagnostics.
func (m *Memo[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
