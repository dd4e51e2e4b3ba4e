package user

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"quickclaim/pkg/sentinel"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*Profile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[uuid.UUID]*Profile)}
}

func (s *InMemoryStore) Create(_ context.Context, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if strings.EqualFold(p.Email, profile.Email) {
			return sentinel.ErrInvalidState
		}
	}
	cp := *profile
	s.profiles[profile.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if strings.EqualFold(p.Email, email) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *profile
	s.profiles[profile.ID] = &cp
	return nil
}
