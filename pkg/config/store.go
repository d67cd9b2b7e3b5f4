package config

import (
	"sync"

	"github.com/thomas-durand1/rusty-bot/pkg/store"
)

// Shared is the single Configuration instance every command handler
// sees, behind a reader/writer lock. Handlers hold the same *Shared,
// never their own copy of the settings.
type Shared struct {
	mu   sync.RWMutex
	conf Configuration
}

// NewShared wraps c for shared access.
func NewShared(c Configuration) *Shared {
	return &Shared{conf: c}
}

// View calls fn with a snapshot of the settings taken under the read
// lock. Concurrent readers don't block each other, and a snapshot never
// mixes fields from two different writes.
func (s *Shared) View(fn func(Configuration)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.conf)
}

// Update calls fn with the settings under the write lock, fn may mutate
// them in place.
func (s *Shared) Update(fn func(*Configuration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.conf)
}

// Snapshot returns a copy of the current settings.
func (s *Shared) Snapshot() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conf
}

// ConfigStore keys the shared bot configuration inside a store.Store.
// The slot always holds a *Shared; RegisterConfig and ConfigFrom are the
// two ends of that agreement.
type ConfigStore struct{}

// RegisterConfig places sh in st under the ConfigStore key. The host
// calls this once at startup, before any command handler runs.
func RegisterConfig(st *store.Store, sh *Shared) {
	st.Insert(ConfigStore{}, sh)
}

// ConfigFrom returns the shared configuration registered in st, or
// false if the host never registered one.
func ConfigFrom(st *store.Store) (*Shared, bool) {
	return store.Get[*Shared](st, ConfigStore{})
}
