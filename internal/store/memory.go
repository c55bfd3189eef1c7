package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/sloc-weather/internal/weather"
)

var (
	// ErrNotFound is returned when nothing is cached under a key.
	ErrNotFound = errors.New("no cached conditions for key")
	// ErrExpired is returned when the cached entry outlived its TTL.
	ErrExpired = errors.New("cached conditions expired")
)

type entry struct {
	conditions weather.Conditions
	expiresAt  time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of conditions.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Save caches c under key for ttl. A non-positive ttl stores nothing.
func (s *MemoryStore) Save(key string, c weather.Conditions, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{conditions: c, expiresAt: s.now().Add(ttl)}
}

// Get returns the conditions cached under key.
func (s *MemoryStore) Get(key string) (weather.Conditions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok {
		return weather.Conditions{}, ErrNotFound
	}
	if !s.now().Before(e.expiresAt) {
		return weather.Conditions{}, ErrExpired
	}
	return e.conditions, nil
}

// Delete removes key from the cache.
func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Purge removes every expired entry and returns how many were dropped.
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for key, e := range s.data {
		if !now.Before(e.expiresAt) {
			delete(s.data, key)
			n++
		}
	}
	return n
}

// Len returns the number of cached entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
