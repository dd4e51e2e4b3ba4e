package notification

import (
	"context"

	dErrors "quickclaim/pkg/domainerrors"
)

// Service exposes delivery-log queries to the admin surface.
type Service struct {
	log Store
}

func NewService(log Store) *Service {
	return &Service{log: log}
}

// RecentDeliveries returns the newest delivery-log entries, capped at
// DefaultLogPageSize when the caller doesn't specify a limit.
func (s *Service) RecentDeliveries(ctx context.Context, limit int) ([]*DeliveryEntry, error) {
	if limit <= 0 || limit > DefaultLogPageSize {
		limit = DefaultLogPageSize
	}
	entries, err := s.log.ListRecent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list delivery log")
	}
	return entries, nil
}
