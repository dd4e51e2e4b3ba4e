package notification

import "context"

// Store is the append-only delivery log. Entries record delivery attempts
// and are never updated or removed.
type Store interface {
	Append(ctx context.Context, entry *DeliveryEntry) error
	ListRecent(ctx context.Context, limit int) ([]*DeliveryEntry, error)
}
