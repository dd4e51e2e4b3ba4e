package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the application tables. Statements are idempotent so
// local development and the integration suite can apply them on startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			region TEXT NOT NULL DEFAULT '',
			work_type TEXT NOT NULL DEFAULT '',
			id_document_ref TEXT NOT NULL DEFAULT '',
			onboarding_complete BOOLEAN NOT NULL DEFAULT FALSE,
			pref_claim_updates BOOLEAN NOT NULL DEFAULT TRUE,
			pref_marketing BOOLEAN NOT NULL DEFAULT FALSE,
			pref_reminders BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS benefits (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL,
			max_amount DOUBLE PRECISION NOT NULL,
			eligible_regions TEXT[] NOT NULL,
			eligible_work_types TEXT[] NOT NULL,
			required_documents TEXT[] NOT NULL,
			processing_time TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS benefits_type_idx ON benefits (type)`,
		`CREATE TABLE IF NOT EXISTS claims (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			amount DOUBLE PRECISION,
			submitted_at TIMESTAMPTZ,
			reviewed_at TIMESTAMPTZ,
			admin_notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS claims_user_idx ON claims (user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS claims_status_idx ON claims (status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS claims_user_status_idx ON claims (user_id, status)`,
		`CREATE TABLE IF NOT EXISTS documents (
			id UUID PRIMARY KEY,
			claim_id UUID NOT NULL,
			user_id UUID NOT NULL,
			name TEXT NOT NULL,
			storage_ref TEXT NOT NULL,
			extracted_amount DOUBLE PRECISION,
			extracted_date TEXT NOT NULL DEFAULT '',
			extracted_type TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS documents_claim_idx ON documents (claim_id)`,
		`CREATE TABLE IF NOT EXISTS delivery_log (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			recipient TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			message_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS delivery_log_created_idx ON delivery_log (created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
