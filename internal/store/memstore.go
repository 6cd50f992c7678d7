package store

import (
	"sync"

	"gomoku/internal/shared"
)

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*shared.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*shared.Room{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*shared.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

// SaveIfAbsent stores r unless its code is already taken. It reports whether
// r was stored.
func (m *MemoryStore) SaveIfAbsent(r *shared.Room) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.rooms[r.Code]; taken {
		return false
	}
	m.rooms[r.Code] = r
	return true
}

func (m *MemoryStore) DeleteRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, code)
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}
