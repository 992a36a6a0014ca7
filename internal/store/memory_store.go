package store

import (
	"context"
	"sync"

	"fjacquet/financas/internal/directory"
)

// MemoryStore keeps the directory in memory as an encoded document, so a
// loaded directory never aliases the stored one. Useful for tests and dry runs.
type MemoryStore struct {
	DefaultUser string

	// LoadError and SaveError, when set, are returned instead of doing the work.
	LoadError error
	SaveError error

	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore(defaultUser string) *MemoryStore {
	return &MemoryStore{DefaultUser: defaultUser}
}

// Load decodes the last saved document or returns a fresh directory.
func (m *MemoryStore) Load(_ context.Context, month string) (*directory.Directory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.data == nil {
		return directory.New(m.DefaultUser, month), nil
	}
	return decode(m.data, FormatJSON, m.DefaultUser, month)
}

// Save encodes dir.
func (m *MemoryStore) Save(_ context.Context, dir *directory.Directory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return m.SaveError
	}
	data, err := encode(dir, FormatJSON)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
