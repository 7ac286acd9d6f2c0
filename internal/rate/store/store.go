package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListRates(ctx context.Context) ([]rate.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM rates ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing rates: %w", err)
	}
	defer rows.Close()

	var records []rate.Record

	for rows.Next() {
		var r rate.Record
		if err := rows.Scan(&r.Key, &r.Value); err != nil {
			return nil, fmt.Errorf("scanning rate: %w", err)
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rates: %w", err)
	}

	return records, nil
}

// GetRate returns nil without error when the key is not stored.
func (s *Store) GetRate(ctx context.Context, key rate.Key) (*rate.Record, error) {
	r := rate.Record{Key: key}

	err := s.db.QueryRowContext(ctx, `SELECT value FROM rates WHERE key = $1`, key).Scan(&r.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting rate %s: %w", key, err)
	}

	return &r, nil
}

func (s *Store) PutRates(ctx context.Context, records []rate.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := putRates(ctx, tx, records); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rates: %w", err)
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func putRates(ctx context.Context, ex execer, records []rate.Record) error {
	query := `
		INSERT INTO rates (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	for _, r := range records {
		if _, err := ex.ExecContext(ctx, query, r.Key, r.Value); err != nil {
			return fmt.Errorf("upserting rate %s: %w", r.Key, err)
		}
	}

	return nil
}
