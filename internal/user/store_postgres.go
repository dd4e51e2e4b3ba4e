package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"quickclaim/pkg/sentinel"
)

// PostgresStore persists profiles in the users table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const profileColumns = `id, email, name, region, work_type, id_document_ref,
	onboarding_complete, pref_claim_updates, pref_marketing, pref_reminders,
	created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO users (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		profile.ID, profile.Email, profile.Name, profile.Region, profile.WorkType,
		profile.IDDocumentRef, profile.OnboardingComplete,
		profile.EmailPreferences.ClaimUpdates, profile.EmailPreferences.Marketing,
		profile.EmailPreferences.Reminders, profile.CreatedAt, profile.UpdatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return sentinel.ErrInvalidState
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE lower(email) = lower($1)`
	return s.scanOne(s.db.QueryRowContext(ctx, query, email))
}

func (s *PostgresStore) Update(ctx context.Context, profile *Profile) error {
	query := `
		UPDATE users SET
			name = $2, region = $3, work_type = $4, id_document_ref = $5,
			onboarding_complete = $6, pref_claim_updates = $7,
			pref_marketing = $8, pref_reminders = $9, updated_at = $10
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		profile.ID, profile.Name, profile.Region, profile.WorkType,
		profile.IDDocumentRef, profile.OnboardingComplete,
		profile.EmailPreferences.ClaimUpdates, profile.EmailPreferences.Marketing,
		profile.EmailPreferences.Reminders, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) scanOne(row *sql.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.Name, &p.Region, &p.WorkType, &p.IDDocumentRef,
		&p.OnboardingComplete, &p.EmailPreferences.ClaimUpdates,
		&p.EmailPreferences.Marketing, &p.EmailPreferences.Reminders,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &p, nil
}
