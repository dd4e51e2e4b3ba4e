package claim

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"quickclaim/internal/notification"
	"quickclaim/internal/platform/metrics"
	dErrors "quickclaim/pkg/domainerrors"
	"quickclaim/pkg/requestcontext"
	"quickclaim/pkg/sentinel"
)

// EventPublisher hands committed transitions to the notification pipeline.
// Publishing happens after the store write commits and is best-effort: a
// full buffer or a downed transport can never abort or roll back the
// transition that triggered it.
type EventPublisher interface {
	Publish(event notification.Event)
}

// Service owns the claim lifecycle. User-facing operations enforce
// ownership; missing and not-owned claims surface as the same
// "not accessible" error so callers cannot probe for other users' claims.
type Service struct {
	claims    Store
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(claims Store, opts ...Option) *Service {
	s := &Service{claims: claims, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create inserts a new draft claim. Only the program type is required; no
// notification fires for drafts.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, claimType, description string) (*Claim, error) {
	claimType = strings.TrimSpace(claimType)
	if claimType == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "claim type is required")
	}

	c := New(userID, claimType, strings.TrimSpace(description), requestcontext.Now(ctx))
	if err := s.claims.Create(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create claim")
	}

	if s.metrics != nil {
		s.metrics.ClaimsCreated.Inc()
	}
	return c, nil
}

// Get returns the claim if it exists and belongs to the requester.
func (s *Service) Get(ctx context.Context, claimID, userID uuid.UUID) (*Claim, error) {
	c, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, errNotAccessible()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim")
	}
	if !c.OwnedBy(userID) {
		return nil, errNotAccessible()
	}
	return c, nil
}

// ListByOwner returns the requester's claims, most recent first.
func (s *Service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*Claim, error) {
	claims, err := s.claims.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list claims")
	}
	return claims, nil
}

// Submit moves a draft claim to submitted and stamps SubmittedAt. The
// transition commits before the "claim submitted" event is published.
func (s *Service) Submit(ctx context.Context, claimID, userID uuid.UUID) (*Claim, error) {
	now := requestcontext.Now(ctx)
	c, err := s.claims.Execute(ctx, claimID,
		func(c *Claim) error {
			if !c.OwnedBy(userID) {
				return sentinel.ErrNotOwned
			}
			return c.CanSubmit()
		},
		func(c *Claim) {
			c.ApplySubmit(now)
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound), errors.Is(err, sentinel.ErrNotOwned):
			return nil, errNotAccessible()
		case errors.Is(err, sentinel.ErrInvalidState):
			return nil, dErrors.New(dErrors.CodeConflict, "claim has already been submitted")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit claim")
	}

	s.logger.InfoContext(ctx, "claim submitted",
		"claim_id", c.ID,
		"claim_type", c.Type,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.ClaimsSubmitted.Inc()
	}
	s.publish(notification.Event{
		Kind:      notification.KindClaimSubmitted,
		ClaimID:   c.ID,
		UserID:    c.UserID,
		Timestamp: now,
	})
	return c, nil
}

// AdminUpdateStatus applies an administrator resolution: new status,
// optional amount, optional notes. No ownership check — the route is
// admin-scoped. ReviewedAt is stamped on every call. A nil amount or nil
// notes leaves the stored value untouched; a pointer to zero sets the
// amount to zero explicitly.
func (s *Service) AdminUpdateStatus(ctx context.Context, claimID uuid.UUID, next Status, amount *float64, notes *string) (*Claim, error) {
	now := requestcontext.Now(ctx)
	c, err := s.claims.Execute(ctx, claimID,
		func(c *Claim) error {
			return c.CanReview(next)
		},
		func(c *Claim) {
			c.ApplyReview(next, amount, notes, now)
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, errNotAccessible()
		case errors.Is(err, sentinel.ErrInvalidState):
			return nil, dErrors.New(dErrors.CodeConflict, "claim cannot transition to the requested status")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update claim status")
	}

	s.logger.InfoContext(ctx, "claim status updated",
		"claim_id", c.ID,
		"status", c.Status,
		"request_id", requestcontext.RequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.ClaimsResolved.WithLabelValues(string(next)).Inc()
	}
	s.publish(notification.Event{
		Kind:      notification.KindClaimStatusChanged,
		ClaimID:   c.ID,
		UserID:    c.UserID,
		Timestamp: now,
	})
	return c, nil
}

// ListAll returns every claim, optionally filtered by status. Admin-scoped.
func (s *Service) ListAll(ctx context.Context, status *Status) ([]*Claim, error) {
	claims, err := s.claims.ListAll(ctx, status)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list claims")
	}
	return claims, nil
}

func (s *Service) publish(event notification.Event) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}

func errNotAccessible() error {
	return dErrors.New(dErrors.CodeNotAccessible, "claim not found")
}
