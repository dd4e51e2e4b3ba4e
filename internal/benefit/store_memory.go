package benefit

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	programs []*Program
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]*Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Program, len(s.programs))
	for i, p := range s.programs {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (s *InMemoryStore) SeedIfEmpty(_ context.Context, programs []*Program) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.programs) > 0 {
		return false, nil
	}
	for _, p := range programs {
		cp := *p
		s.programs = append(s.programs, &cp)
	}
	return true, nil
}
