package claim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"quickclaim/pkg/sentinel"
)

// PostgresStore persists claims. Execute uses SELECT ... FOR UPDATE so the
// validate-then-mutate window is serialized per record by the database.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const claimColumns = `id, user_id, type, description, status, amount,
	submitted_at, reviewed_at, admin_notes, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, c *Claim) error {
	query := `
		INSERT INTO claims (` + claimColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Type, c.Description, c.Status, c.Amount,
		c.SubmittedAt, c.ReviewedAt, c.AdminNotes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1`
	return scanClaim(s.db.QueryRowContext(ctx, query, id))
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE user_id = $1 ORDER BY created_at DESC`
	return s.list(ctx, query, userID)
}

func (s *PostgresStore) ListAll(ctx context.Context, status *Status) ([]*Claim, error) {
	if status != nil {
		query := `SELECT ` + claimColumns + ` FROM claims WHERE status = $1 ORDER BY created_at DESC`
		return s.list(ctx, query, *status)
	}
	query := `SELECT ` + claimColumns + ` FROM claims ORDER BY created_at DESC`
	return s.list(ctx, query)
}

func (s *PostgresStore) Execute(ctx context.Context, id uuid.UUID,
	validate func(c *Claim) error, mutate func(c *Claim)) (*Claim, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin claim tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1 FOR UPDATE`
	c, err := scanClaim(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if err := validate(c); err != nil {
		return nil, err
	}
	mutate(c)

	update := `
		UPDATE claims SET
			status = $2, amount = $3, submitted_at = $4, reviewed_at = $5,
			admin_notes = $6, updated_at = $7
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, update,
		c.ID, c.Status, c.Amount, c.SubmittedAt, c.ReviewedAt, c.AdminNotes, c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update claim: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit claim tx: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*Claim, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	var out []*Claim
	for rows.Next() {
		var c Claim
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Type, &c.Description, &c.Status, &c.Amount,
			&c.SubmittedAt, &c.ReviewedAt, &c.AdminNotes, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClaim(row rowScanner) (*Claim, error) {
	var c Claim
	err := row.Scan(
		&c.ID, &c.UserID, &c.Type, &c.Description, &c.Status, &c.Amount,
		&c.SubmittedAt, &c.ReviewedAt, &c.AdminNotes, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan claim: %w", err)
	}
	return &c, nil
}
