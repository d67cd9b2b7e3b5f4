// Package store provides the shared-state registry command handlers use
// to reach long-lived objects. Keys are comparable zero-sized marker
// types, one logical slot per key type.
package store

import "sync"

// Store is a heterogeneous key-value map safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[any]any
}

// New returns an initialised empty Store.
func New() *Store {
	return &Store{entries: make(map[any]any)}
}

// Insert places value under key, replacing any previous value.
func (s *Store) Insert(key, value any) {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// Remove drops the entry for key if one exists.
func (s *Store) Remove(key any) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Contains reports whether an entry exists for key.
func (s *Store) Contains(key any) bool {
	s.mu.RLock()
	_, ok := s.entries[key]
	s.mu.RUnlock()
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return n
}

// Get returns the value stored under key, asserted to V. The second
// return is false when the key is absent or holds a different type.
func Get[V any](s *Store, key any) (V, bool) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}
	typed, ok := v.(V)
	return typed, ok
}
