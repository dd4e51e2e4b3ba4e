package claim

import (
	"context"

	"github.com/google/uuid"
)

// Store persists claims. Execute is the atomic validate-then-mutate seam:
// implementations hold their lock (mutex or SELECT ... FOR UPDATE) across
// both callbacks so concurrent submits and admin updates serialize on one
// record. Stores return sentinel errors; the service translates them.
type Store interface {
	Create(ctx context.Context, c *Claim) error
	FindByID(ctx context.Context, id uuid.UUID) (*Claim, error)
	// ListByUser returns the user's claims, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Claim, error)
	// ListAll returns every claim, most recent first, optionally filtered
	// by status.
	ListAll(ctx context.Context, status *Status) ([]*Claim, error)
	// Execute loads the claim, runs validate, applies mutate, and persists
	// the result, all under the record lock. The returned claim reflects
	// the mutation.
	Execute(ctx context.Context, id uuid.UUID,
		validate func(c *Claim) error,
		mutate func(c *Claim)) (*Claim, error)
}
