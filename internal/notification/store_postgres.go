package notification

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry *DeliveryEntry) error {
	query := `
		INSERT INTO delivery_log (id, kind, recipient, status, error, message_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		entry.ID, string(entry.Kind), entry.Recipient, string(entry.Status),
		entry.Error, entry.MessageID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]*DeliveryEntry, error) {
	if limit <= 0 {
		limit = DefaultLogPageSize
	}
	query := `
		SELECT id, kind, recipient, status, error, message_id, created_at
		FROM delivery_log
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list delivery entries: %w", err)
	}
	defer rows.Close()

	var out []*DeliveryEntry
	for rows.Next() {
		var e DeliveryEntry
		var kind, status string
		err := rows.Scan(&e.ID, &kind, &e.Recipient, &status, &e.Error, &e.MessageID, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan delivery entry: %w", err)
		}
		e.Kind = Kind(kind)
		e.Status = DeliveryStatus(status)
		out = append(out, &e)
	}
	return out, rows.Err()
}
