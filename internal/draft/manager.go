package draft

import (
	"context"
	"sync"
)

const snapshotKeyPrefix = "project-form-data:"

// Manager hands out one draft store per admin, restoring the persisted
// snapshot the first time an admin's wizard is touched after a restart.
type Manager struct {
	mu       sync.Mutex
	stores   map[string]*Store
	releaser Releaser
	persist  Persister
}

func NewManager(releaser Releaser, persist Persister) *Manager {
	return &Manager{
		stores:   make(map[string]*Store),
		releaser: releaser,
		persist:  persist,
	}
}

func (m *Manager) ForAdmin(ctx context.Context, adminID string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[adminID]; ok {
		return s, nil
	}

	s := NewStore(snapshotKeyPrefix+adminID, m.releaser, m.persist)
	if err := s.Restore(ctx); err != nil {
		return nil, err
	}
	m.stores[adminID] = s
	return s, nil
}
