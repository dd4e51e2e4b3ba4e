package document

import (
	"time"

	"github.com/google/uuid"
)

// Extracted holds optional structured fields pulled out of an uploaded
// artifact (amount, date, document type).
type Extracted struct {
	Amount *float64 `json:"amount,omitempty"`
	Date   string   `json:"date,omitempty"`
	Type   string   `json:"type,omitempty"`
}

// Document links one uploaded artifact to a claim and the claim's owner.
// Created only while the owning claim exists; never re-parented. The
// storage reference is opaque; download URLs are resolved at read time.
type Document struct {
	ID         uuid.UUID  `json:"id"`
	ClaimID    uuid.UUID  `json:"claim_id"`
	UserID     uuid.UUID  `json:"user_id"`
	Name       string     `json:"name"`
	StorageRef string     `json:"-"`
	Extracted  *Extracted `json:"extracted,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// WithURL decorates a document with its freshly resolved download link.
type WithURL struct {
	Document
	DownloadURL string `json:"download_url,omitempty"`
}
