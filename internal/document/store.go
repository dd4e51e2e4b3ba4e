package document

import (
	"context"

	"github.com/google/uuid"
)

// Store persists documents keyed by claim.
type Store interface {
	Create(ctx context.Context, doc *Document) error
	ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*Document, error)
}
