package benefit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore persists the catalog in the benefits table. The position
// column preserves seed order, which the matcher relies on.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]*Program, error) {
	query := `
		SELECT id, name, type, description, max_amount, eligible_regions,
		       eligible_work_types, required_documents, processing_time, created_at
		FROM benefits
		ORDER BY position ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list benefits: %w", err)
	}
	defer rows.Close()

	var programs []*Program
	for rows.Next() {
		var p Program
		err := rows.Scan(
			&p.ID, &p.Name, &p.Type, &p.Description, &p.MaxAmount,
			pq.Array(&p.EligibleRegions), pq.Array(&p.EligibleWorkTypes),
			pq.Array(&p.RequiredDocuments), &p.ProcessingTime, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan benefit: %w", err)
		}
		programs = append(programs, &p)
	}
	return programs, rows.Err()
}

func (s *PostgresStore) SeedIfEmpty(ctx context.Context, programs []*Program) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM benefits`).Scan(&count); err != nil {
		return false, fmt.Errorf("count benefits: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	query := `
		INSERT INTO benefits (id, name, type, description, max_amount,
			eligible_regions, eligible_work_types, required_documents,
			processing_time, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for i, p := range programs {
		_, err := tx.ExecContext(ctx, query,
			p.ID, p.Name, p.Type, p.Description, p.MaxAmount,
			pq.Array(p.EligibleRegions), pq.Array(p.EligibleWorkTypes),
			pq.Array(p.RequiredDocuments), p.ProcessingTime, i, p.CreatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("insert benefit: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed tx: %w", err)
	}
	return true, nil
}
