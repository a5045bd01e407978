package stock

import (
	"context"
	"sync"
)

// memoryReserver implements Reserver in process memory. Used when redis is
// disabled and in tests; levels do not survive a restart.
type memoryReserver struct {
	mu     sync.Mutex
	levels map[string]int
	keys   map[string]struct{}
}

// NewMemoryReserver creates an in-memory stock reserver.
func NewMemoryReserver() Reserver {
	return &memoryReserver{
		levels: make(map[string]int),
		keys:   make(map[string]struct{}),
	}
}

func (m *memoryReserver) Reserve(_ context.Context, productID string, quantity int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	level, ok := m.levels[productID]
	if !ok || level < quantity {
		return false, nil
	}
	m.levels[productID] = level - quantity
	return true, nil
}

func (m *memoryReserver) Release(_ context.Context, productID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[productID] += quantity
	return nil
}

func (m *memoryReserver) SetLevel(_ context.Context, productID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[productID] = quantity
	return nil
}

func (m *memoryReserver) Begin(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.keys[key]; exists {
		return false, nil
	}
	m.keys[key] = struct{}{}
	return true, nil
}
