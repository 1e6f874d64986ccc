// Package token persists the bearer token issued at login or registration.
// The token is the only piece of client state that survives a restart; it is
// opaque to the client and carries no expiry metadata. Expiry is discovered
// only when the server rejects a request.
package token

import "sync"

// Store is a persisted token slot.
//
// Load returns the empty string when no token is stored; that is not an
// error. Clear is idempotent.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.Mutex
	token string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
