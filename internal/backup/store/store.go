package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/wallet/internal/backup"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) Dump(ctx context.Context) (*backup.Document, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var doc backup.Document

	if doc.Assets, err = dumpAssets(ctx, tx); err != nil {
		return nil, err
	}

	if doc.Debts, err = dumpDebts(ctx, tx); err != nil {
		return nil, err
	}

	if doc.Rates, err = dumpRates(ctx, tx); err != nil {
		return nil, err
	}

	if doc.ZakatBase, err = dumpBases(ctx, tx); err != nil {
		return nil, err
	}

	return &doc, nil
}

func dumpAssets(ctx context.Context, q queryer) ([]backup.Asset, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, value, currency, type, zakat_year FROM assets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("dumping assets: %w", err)
	}
	defer rows.Close()

	var assets []backup.Asset

	for rows.Next() {
		var (
			a    backup.Asset
			year sql.NullInt64
		)

		if err := rows.Scan(&a.ID, &a.Name, &a.Value.Decimal, &a.Currency, &a.Type, &year); err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}

		if year.Valid {
			a.ZakatYear = new(int(year.Int64))
		}

		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assets: %w", err)
	}

	return assets, nil
}

func dumpDebts(ctx context.Context, q queryer) ([]backup.Debt, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, value, currency, type, created_at, note FROM debts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("dumping debts: %w", err)
	}
	defer rows.Close()

	var debts []backup.Debt

	for rows.Next() {
		var (
			d    backup.Debt
			note sql.NullString
		)

		if err := rows.Scan(&d.ID, &d.Name, &d.Value.Decimal, &d.Currency, &d.Type, &d.Timestamp.Time, &note); err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		d.Note = note.String
		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debts: %w", err)
	}

	return debts, nil
}

func dumpRates(ctx context.Context, q queryer) ([]backup.Rate, error) {
	rows, err := q.QueryContext(ctx, `SELECT key, value FROM rates ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("dumping rates: %w", err)
	}
	defer rows.Close()

	var rates []backup.Rate

	for rows.Next() {
		var r backup.Rate
		if err := rows.Scan(&r.Key, &r.Value); err != nil {
			return nil, fmt.Errorf("scanning rate: %w", err)
		}

		rates = append(rates, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rates: %w", err)
	}

	return rates, nil
}

func dumpBases(ctx context.Context, q queryer) ([]backup.ZakatBase, error) {
	rows, err := q.QueryContext(ctx, `SELECT year, value, currency FROM zakat_base ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("dumping zakat bases: %w", err)
	}
	defer rows.Close()

	var bases []backup.ZakatBase

	for rows.Next() {
		var b backup.ZakatBase
		if err := rows.Scan(&b.Year, &b.Value.Decimal, &b.Currency); err != nil {
			return nil, fmt.Errorf("scanning zakat base: %w", err)
		}

		bases = append(bases, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zakat bases: %w", err)
	}

	return bases, nil
}

func (s *Store) Restore(ctx context.Context, doc *backup.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, a := range doc.Assets {
		var year sql.NullInt64
		if a.ZakatYear != nil {
			year = sql.NullInt64{Int64: int64(*a.ZakatYear), Valid: true}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO assets (id, name, value, currency, type, zakat_year)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, value = EXCLUDED.value, currency = EXCLUDED.currency,
				type = EXCLUDED.type, zakat_year = EXCLUDED.zakat_year
		`, a.ID, a.Name, a.Value.Decimal, a.Currency, a.Type, year)
		if err != nil {
			return fmt.Errorf("restoring asset %d: %w", a.ID, err)
		}
	}

	for _, d := range doc.Debts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO debts (id, name, value, currency, type, created_at, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, value = EXCLUDED.value, currency = EXCLUDED.currency,
				type = EXCLUDED.type, created_at = EXCLUDED.created_at, note = EXCLUDED.note
		`, d.ID, d.Name, d.Value.Decimal, d.Currency, d.Type, d.Timestamp.Time,
			sql.NullString{String: d.Note, Valid: d.Note != ""})
		if err != nil {
			return fmt.Errorf("restoring debt %d: %w", d.ID, err)
		}
	}

	for _, r := range doc.Rates {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO rates (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		`, r.Key, r.Value)
		if err != nil {
			return fmt.Errorf("restoring rate %s: %w", r.Key, err)
		}
	}

	for _, b := range doc.ZakatBase {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO zakat_base (year, value, currency) VALUES ($1, $2, $3)
			ON CONFLICT (year) DO UPDATE SET value = EXCLUDED.value, currency = EXCLUDED.currency
		`, b.Year, b.Value.Decimal, b.Currency)
		if err != nil {
			return fmt.Errorf("restoring zakat base %d: %w", b.Year, err)
		}
	}

	if err := advanceSequences(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing restore: %w", err)
	}

	return nil
}

// advanceSequences moves the id sequences past any id written explicitly so
// later inserts do not collide with restored records.
func advanceSequences(ctx context.Context, ex execer) error {
	for _, table := range []string{"assets", "debts"} {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s`,
			table,
		)

		if _, err := ex.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("advancing %s sequence: %w", table, err)
		}
	}

	return nil
}

func (s *Store) Wipe(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `TRUNCATE assets, debts, rates, zakat_base, backups RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncating tables: %w", err)
	}

	return nil
}

func (s *Store) SaveSnapshot(ctx context.Context, doc *backup.Document, takenAt time.Time) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO backups (taken_at, data) VALUES ($1, $2)`, takenAt, string(data),
	); err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	return nil
}

func (s *Store) LastSnapshotAt(ctx context.Context) (*time.Time, error) {
	var t time.Time

	err := s.db.QueryRowContext(ctx, `SELECT taken_at FROM backups ORDER BY taken_at DESC LIMIT 1`).Scan(&t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting last snapshot: %w", err)
	}

	return &t, nil
}
