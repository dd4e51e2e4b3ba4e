package document

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, doc *Document) error {
	query := `
		INSERT INTO documents (id, claim_id, user_id, name, storage_ref,
			extracted_amount, extracted_date, extracted_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var amount *float64
	var date, docType string
	if doc.Extracted != nil {
		amount = doc.Extracted.Amount
		date = doc.Extracted.Date
		docType = doc.Extracted.Type
	}
	_, err := s.db.ExecContext(ctx, query,
		doc.ID, doc.ClaimID, doc.UserID, doc.Name, doc.StorageRef,
		amount, date, docType, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByClaim(ctx context.Context, claimID uuid.UUID) ([]*Document, error) {
	query := `
		SELECT id, claim_id, user_id, name, storage_ref,
		       extracted_amount, extracted_date, extracted_type, created_at
		FROM documents
		WHERE claim_id = $1
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, claimID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []*Document
	for rows.Next() {
		var d Document
		var amount sql.NullFloat64
		var date, docType string
		err := rows.Scan(
			&d.ID, &d.ClaimID, &d.UserID, &d.Name, &d.StorageRef,
			&amount, &date, &docType, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if amount.Valid || date != "" || docType != "" {
			d.Extracted = &Extracted{Date: date, Type: docType}
			if amount.Valid {
				v := amount.Float64
				d.Extracted.Amount = &v
			}
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}
