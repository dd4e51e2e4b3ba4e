package user

import (
	"context"

	"github.com/google/uuid"
)

// Store is interface-driven so the service stays testable and persistence
// can be swapped without rewiring business code.
type Store interface {
	Create(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}
