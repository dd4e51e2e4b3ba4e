package notification

import (
	"context"
	"sync"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	entries []*DeliveryEntry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, entry *DeliveryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	s.entries = append(s.entries, &cp)
	return nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]*DeliveryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = DefaultLogPageSize
	}
	n := len(s.entries)
	if limit > n {
		limit = n
	}
	out := make([]*DeliveryEntry, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		cp := *s.entries[i]
		out = append(out, &cp)
	}
	return out, nil
}
