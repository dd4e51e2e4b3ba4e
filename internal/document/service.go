package document

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"quickclaim/internal/blob"
	"quickclaim/internal/claim"
	dErrors "quickclaim/pkg/domainerrors"
	"quickclaim/pkg/requestcontext"
	"quickclaim/pkg/sentinel"
)

// ClaimSource checks that the owning claim exists before a document is
// attached or listed. Narrowed so this package doesn't depend on the full
// claim store surface.
type ClaimSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*claim.Claim, error)
}

// Service is the ownership-checked document registry. Every query is
// scoped through claim ID plus owner; a claim that is missing or owned by
// someone else produces the same "not accessible" error.
type Service struct {
	docs           Store
	claims         ClaimSource
	blobs          blob.Store
	downloadURLTTL time.Duration
	logger         *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithDownloadURLTTL(ttl time.Duration) Option {
	return func(s *Service) { s.downloadURLTTL = ttl }
}

func NewService(docs Store, claims ClaimSource, blobs blob.Store, opts ...Option) *Service {
	s := &Service{
		docs:           docs,
		claims:         claims,
		blobs:          blobs,
		downloadURLTTL: 15 * time.Minute,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach records an uploaded artifact against a claim. Pure insert: the
// claim's status is untouched.
func (s *Service) Attach(ctx context.Context, claimID, userID uuid.UUID, name, storageRef string) (*Document, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(storageRef) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "document name and storage_ref are required")
	}

	if err := s.requireOwnedClaim(ctx, claimID, userID); err != nil {
		return nil, err
	}

	doc := &Document{
		ID:         uuid.New(),
		ClaimID:    claimID,
		UserID:     userID,
		Name:       name,
		StorageRef: storageRef,
		CreatedAt:  requestcontext.Now(ctx),
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to attach document")
	}
	return doc, nil
}

// List returns the claim's documents with freshly resolved download URLs.
// URLs are never persisted, so storage-side signing rotation can't leave
// stale links. A reference that no longer resolves yields the document
// without a URL rather than failing the whole listing.
func (s *Service) List(ctx context.Context, claimID, userID uuid.UUID) ([]*WithURL, error) {
	if err := s.requireOwnedClaim(ctx, claimID, userID); err != nil {
		return nil, err
	}

	docs, err := s.docs.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list documents")
	}

	out := make([]*WithURL, 0, len(docs))
	for _, doc := range docs {
		entry := &WithURL{Document: *doc}
		url, err := s.blobs.Resolve(ctx, doc.StorageRef, s.downloadURLTTL)
		switch {
		case err == nil:
			entry.DownloadURL = url
		case errors.Is(err, sentinel.ErrNotFound):
			// Blob gone from storage; keep the record visible.
		default:
			s.logger.WarnContext(ctx, "failed to resolve download url",
				"document_id", doc.ID,
				"error", err,
			)
		}
		out = append(out, entry)
	}
	return out, nil
}

// GenerateUploadURL hands the client a presigned target for a direct
// upload. The resulting opaque reference comes back through Attach.
func (s *Service) GenerateUploadURL(ctx context.Context) (blob.UploadTarget, error) {
	target, err := s.blobs.GenerateUploadURL(ctx)
	if err != nil {
		return blob.UploadTarget{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate upload url")
	}
	return target, nil
}

func (s *Service) requireOwnedClaim(ctx context.Context, claimID, userID uuid.UUID) error {
	c, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotAccessible, "claim not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim")
	}
	if !c.OwnedBy(userID) {
		return dErrors.New(dErrors.CodeNotAccessible, "claim not found")
	}
	return nil
}
