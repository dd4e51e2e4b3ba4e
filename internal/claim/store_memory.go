package claim

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"quickclaim/pkg/sentinel"
)

type InMemoryStore struct {
	mu     sync.Mutex
	claims map[uuid.UUID]*Claim
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{claims: make(map[uuid.UUID]*Claim)}
}

func (s *InMemoryStore) Create(_ context.Context, c *Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.claims[c.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.claims[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Claim
	for _, c := range s.claims {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *InMemoryStore) ListAll(_ context.Context, status *Status) ([]*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Claim
	for _, c := range s.claims {
		if status != nil && c.Status != *status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sortNewestFirst(out)
	return out, nil
}

// Execute holds the store mutex across validate and mutate so concurrent
// transitions on the same claim serialize.
func (s *InMemoryStore) Execute(_ context.Context, id uuid.UUID,
	validate func(c *Claim) error, mutate func(c *Claim)) (*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.claims[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	mutate(c)
	cp := *c
	return &cp, nil
}

func sortNewestFirst(claims []*Claim) {
	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].CreatedAt.After(claims[j].CreatedAt)
	})
}
