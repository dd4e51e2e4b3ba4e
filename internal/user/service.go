package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"quickclaim/internal/notification"
	dErrors "quickclaim/pkg/domainerrors"
	"quickclaim/pkg/requestcontext"
	"quickclaim/pkg/sentinel"
)

// EventPublisher hands completed transitions to the notification pipeline.
// Publishing is best-effort and must never fail the calling operation.
type EventPublisher interface {
	Publish(event notification.Event)
}

// Service owns profile lifecycle: signup record, work-profile declaration,
// onboarding completion (which fires the welcome notification), and the ID
// document reference.
type Service struct {
	profiles  Store
	publisher EventPublisher
	logger    *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

func NewService(profiles Store, opts ...Option) *Service {
	s := &Service{profiles: profiles, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WorkProfile returns the matching dimensions for eligibility filtering.
// Store sentinels pass through untranslated; the benefit service owns the
// domain-error mapping on its side of the seam.
func (s *Service) WorkProfile(ctx context.Context, userID uuid.UUID) (string, string, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return profile.Region, profile.WorkType, nil
}

// Create registers a profile. Called from the signup path of the identity
// collaborator and from dev seeding; not exposed on the authenticated API.
func (s *Service) Create(ctx context.Context, email, name string) (*Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "email is required")
	}

	now := requestcontext.Now(ctx)
	profile := &Profile{
		ID:    uuid.New(),
		Email: email,
		Name:  strings.TrimSpace(name),
		EmailPreferences: Preferences{
			ClaimUpdates: true,
			Reminders:    true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, sentinel.ErrInvalidState) {
			return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create profile")
	}
	return profile, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotAccessible, "profile not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}
	return profile, nil
}

// UpdateProfile declares the work profile used by eligibility matching.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, name, region, workType string) (*Profile, error) {
	name = strings.TrimSpace(name)
	region = strings.TrimSpace(region)
	workType = strings.TrimSpace(workType)
	if name == "" || region == "" || workType == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "name, region and work_type are required")
	}

	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.Name = name
	profile.Region = region
	profile.WorkType = workType
	profile.UpdatedAt = requestcontext.Now(ctx)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update profile")
	}
	return profile, nil
}

// UpdateEmailPreferences replaces the notification preference flags.
func (s *Service) UpdateEmailPreferences(ctx context.Context, id uuid.UUID, prefs Preferences) (*Profile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.EmailPreferences = prefs
	profile.UpdatedAt = requestcontext.Now(ctx)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update preferences")
	}
	return profile, nil
}

// AttachIDDocument records the opaque storage reference of the identity
// document uploaded during onboarding.
func (s *Service) AttachIDDocument(ctx context.Context, id uuid.UUID, storageRef string) (*Profile, error) {
	if strings.TrimSpace(storageRef) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "storage_ref is required")
	}

	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.IDDocumentRef = storageRef
	profile.UpdatedAt = requestcontext.Now(ctx)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to attach id document")
	}
	return profile, nil
}

// CompleteOnboarding marks the profile onboarded and fires the welcome
// notification. The flag commits first; a lost email never blocks onboarding.
func (s *Service) CompleteOnboarding(ctx context.Context, id uuid.UUID) (*Profile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	alreadyComplete := profile.OnboardingComplete
	profile.OnboardingComplete = true
	profile.UpdatedAt = requestcontext.Now(ctx)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to complete onboarding")
	}

	if !alreadyComplete && s.publisher != nil {
		s.publisher.Publish(notification.Event{
			Kind:      notification.KindWelcome,
			UserID:    profile.ID,
			Timestamp: requestcontext.Now(ctx),
		})
	}
	return profile, nil
}
