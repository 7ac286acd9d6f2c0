package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/wallet/internal/zakat"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetBase(ctx context.Context, year int) (*zakat.Base, error) {
	b := zakat.Base{Year: year}

	err := s.db.QueryRowContext(ctx, `SELECT value, currency FROM zakat_base WHERE year = $1`, year).
		Scan(&b.Value, &b.Currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting zakat base: %w", err)
	}

	return &b, nil
}

func (s *Store) PutBase(ctx context.Context, b *zakat.Base) error {
	query := `
		INSERT INTO zakat_base (year, value, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (year) DO UPDATE SET value = EXCLUDED.value, currency = EXCLUDED.currency
	`

	if _, err := s.db.ExecContext(ctx, query, b.Year, b.Value, b.Currency); err != nil {
		return fmt.Errorf("upserting zakat base: %w", err)
	}

	return nil
}

func (s *Store) DeleteBase(ctx context.Context, year int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM zakat_base WHERE year = $1`, year); err != nil {
		return fmt.Errorf("deleting zakat base: %w", err)
	}

	return nil
}

func (s *Store) ListBases(ctx context.Context) ([]*zakat.Base, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT year, value, currency FROM zakat_base ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing zakat bases: %w", err)
	}
	defer rows.Close()

	var bases []*zakat.Base

	for rows.Next() {
		var b zakat.Base
		if err := rows.Scan(&b.Year, &b.Value, &b.Currency); err != nil {
			return nil, fmt.Errorf("scanning zakat base: %w", err)
		}

		bases = append(bases, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zakat bases: %w", err)
	}

	return bases, nil
}
