package notification

import (
	"time"

	"github.com/google/uuid"
)

// Kind names a notification-worthy transition. It doubles as the template
// selector and the category recorded in the delivery log.
type Kind string

const (
	KindClaimSubmitted     Kind = "claim_submitted"
	KindClaimStatusChanged Kind = "claim_status_update"
	KindWelcome            Kind = "welcome"
)

// Event is emitted by domain services after a state change commits. Keep it
// a thin reference; the dispatcher re-reads entity state at send time so a
// slow queue never delivers stale amounts or statuses.
type Event struct {
	Kind      Kind
	ClaimID   uuid.UUID
	UserID    uuid.UUID
	Timestamp time.Time
}

// DeliveryStatus is the outcome of a single delivery attempt.
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// DeliveryEntry is an immutable audit record of one notification attempt.
// Append-only; never mutated or deleted.
type DeliveryEntry struct {
	ID        uuid.UUID      `json:"id"`
	Kind      Kind           `json:"kind"`
	Recipient string         `json:"recipient"`
	Status    DeliveryStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	MessageID string         `json:"message_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// DefaultLogPageSize bounds delivery-log queries for the ops dashboard.
const DefaultLogPageSize = 50
