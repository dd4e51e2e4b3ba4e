// Package blob contracts the opaque document store. Uploads go directly
// from the client to storage via a presigned URL; the application only ever
// handles opaque references, and download URLs are resolved at read time so
// signing rotation never leaves stale links in the database.
package blob

import (
	"context"
	"time"
)

// UploadTarget is handed to the client for a direct PUT of raw bytes.
type UploadTarget struct {
	URL string `json:"url"`
	// Ref is the opaque reference to hand back on attach.
	Ref       string    `json:"ref"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the seam to the external blob storage collaborator.
type Store interface {
	// GenerateUploadURL returns a presigned target for one client upload.
	GenerateUploadURL(ctx context.Context) (UploadTarget, error)
	// Resolve turns a stored reference into a time-limited download URL.
	// Returns sentinel.ErrNotFound when the reference does not resolve.
	Resolve(ctx context.Context, ref string, expires time.Duration) (string, error)
}
