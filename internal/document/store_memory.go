package document

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type InMemoryStore struct {
	mu   sync.RWMutex
	docs map[uuid.UUID][]*Document
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{docs: make(map[uuid.UUID][]*Document)}
}

func (s *InMemoryStore) Create(_ context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *doc
	s.docs[doc.ClaimID] = append(s.docs[doc.ClaimID], &cp)
	return nil
}

func (s *InMemoryStore) ListByClaim(_ context.Context, claimID uuid.UUID) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.docs[claimID]
	out := make([]*Document, len(docs))
	for i, d := range docs {
		cp := *d
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
