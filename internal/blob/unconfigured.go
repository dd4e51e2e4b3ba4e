package blob

import (
	"context"
	"fmt"
	"time"

	"quickclaim/pkg/sentinel"
)

// Unconfigured stands in when no object storage endpoint is set. Upload
// URL generation fails loudly; resolving a reference reports it missing so
// listings still render.
type Unconfigured struct{}

func (Unconfigured) GenerateUploadURL(context.Context) (UploadTarget, error) {
	return UploadTarget{}, fmt.Errorf("object storage not configured: %w", sentinel.ErrUnavailable)
}

func (Unconfigured) Resolve(context.Context, string, time.Duration) (string, error) {
	return "", sentinel.ErrNotFound
}
