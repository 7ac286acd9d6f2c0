package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/wallet/internal/debt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectDebtColumns = `id, name, value, currency, type, created_at, note`

func scanDebt(s scanner) (*debt.Debt, error) {
	var (
		d    debt.Debt
		note sql.NullString
	)

	if err := s.Scan(&d.ID, &d.Name, &d.Value, &d.Currency, &d.Type, &d.Timestamp, &note); err != nil {
		return nil, err
	}

	d.Note = note.String

	return &d, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Store) CreateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		INSERT INTO debts (name, value, currency, type, created_at, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Name, d.Value, d.Currency, d.Type, d.Timestamp, nullable(d.Note),
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("creating debt: %w", err)
	}

	return nil
}

func (s *Store) GetDebt(ctx context.Context, id int64) (*debt.Debt, error) {
	d, err := scanDebt(s.db.QueryRowContext(ctx, `SELECT `+selectDebtColumns+` FROM debts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, debt.ErrNotFound
		}

		return nil, fmt.Errorf("getting debt: %w", err)
	}

	return d, nil
}

func (s *Store) ListDebts(ctx context.Context) ([]*debt.Debt, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectDebtColumns+` FROM debts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	defer rows.Close()

	var debts []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debts: %w", err)
	}

	return debts, nil
}

// UpdateDebt never touches created_at.
func (s *Store) UpdateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		UPDATE debts
		SET name = $1, value = $2, currency = $3, type = $4, note = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query, d.Name, d.Value, d.Currency, d.Type, nullable(d.Note), d.ID)
	if err != nil {
		return fmt.Errorf("updating debt: %w", err)
	}

	return expectOne(res)
}

func (s *Store) DeleteDebt(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}

	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return debt.ErrNotFound
	}

	return nil
}
