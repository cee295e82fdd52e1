package memory

import (
	"context"
	"sync"

	"baby-journal/internal/ports/slots"
)

// SlotStore guarda los slots en memoria. Útil para tests y para correr la
// API sin persistencia.
type SlotStore struct {
	mu     sync.RWMutex
	byName map[string][]byte
}

func NewSlotStore() *SlotStore {
	return &SlotStore{byName: make(map[string][]byte)}
}

func (s *SlotStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.byName[name]
	if !ok {
		return nil, slots.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *SlotStore) Put(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byName[name] = append([]byte(nil), data...)
	return nil
}
