package benefit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	dErrors "quickclaim/pkg/domainerrors"
	"quickclaim/pkg/sentinel"
)

// ProfileSource resolves the matching dimensions of a user without binding
// this package to the user module.
type ProfileSource interface {
	WorkProfile(ctx context.Context, userID uuid.UUID) (region, workType string, err error)
}

// Service exposes the catalog and the eligibility filter over it.
type Service struct {
	catalog  Catalog
	profiles ProfileSource
	logger   *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(catalog Catalog, profiles ProfileSource, opts ...Option) *Service {
	s := &Service{catalog: catalog, profiles: profiles, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll returns the full catalog in seed order.
func (s *Service) ListAll(ctx context.Context) ([]*Program, error) {
	programs, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load catalog")
	}
	return programs, nil
}

// EligibleFor returns the programs the user's declared work profile
// qualifies for. An undeclared profile yields an empty result, not an error.
func (s *Service) EligibleFor(ctx context.Context, userID uuid.UUID) ([]*Program, error) {
	region, workType, err := s.profiles.WorkProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotAccessible, "profile not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	programs, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load catalog")
	}
	return Eligible(region, workType, programs), nil
}
