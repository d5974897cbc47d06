// Package memory is an in-process cache backend.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content   []byte
	expiresAt time.Time
}

// Storage is a TTL map.
type Storage struct {
	mu    sync.RWMutex
	items map[string]item
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		items: map[string]item{},
	}
}

// Get returns stored content or nil when the key is absent or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if time.Now().After(v.expiresAt) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil
	}

	return v.content
}

// Set stores content for ttl.
func (s *Storage) Set(key string, content []byte, ttl time.Duration) {
	s.mu.Lock()
	s.items[key] = item{
		content:   content,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
}
