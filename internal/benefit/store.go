package benefit

import "context"

// Catalog is the read side of the benefit programs reference data.
// ListAll returns programs in seed order.
type Catalog interface {
	ListAll(ctx context.Context) ([]*Program, error)
}

// Store adds the one-time seeding write.
type Store interface {
	Catalog
	// SeedIfEmpty inserts the given programs unless the catalog already has
	// entries. Returns true when seeding happened.
	SeedIfEmpty(ctx context.Context, programs []*Program) (bool, error)
}
