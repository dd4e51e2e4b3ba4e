package main

import (
	"context"
	"log/slog"
	"time"

	dErrors "quickclaim/pkg/domainerrors"

	"quickclaim/internal/platform/token"
	"quickclaim/internal/user"
)

// seedDemoUser creates a demo profile and logs a bearer token for it so
// the API is usable immediately in local development.
func seedDemoUser(ctx context.Context, log *slog.Logger, users *user.Service, tokens *token.Service) {
	profile, err := users.Create(ctx, "demo@quickclaim.app", "Demo User")
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			log.Info("demo user already exists")
			return
		}
		log.Error("failed to seed demo user", "error", err)
		return
	}

	accessToken, err := tokens.GenerateAccessToken(profile.ID, 24*time.Hour)
	if err != nil {
		log.Error("failed to generate demo token", "error", err)
		return
	}
	log.Info("demo user seeded",
		"user_id", profile.ID,
		"email", profile.Email,
		"token", accessToken,
	)
}
