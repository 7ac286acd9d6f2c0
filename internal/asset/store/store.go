package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
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

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const selectAssetColumns = `id, name, value, currency, type, zakat_year`

// scanAsset expects the columns of selectAssetColumns in order.
func scanAsset(s scanner) (*asset.Asset, error) {
	var (
		a         asset.Asset
		cur, typ  string
		zakatYear sql.NullInt64
	)

	if err := s.Scan(&a.ID, &a.Name, &a.Value, &cur, &typ, &zakatYear); err != nil {
		return nil, err
	}

	kind, err := asset.KindOf(asset.Type(typ), money.Currency(cur), int(zakatYear.Int64))
	if err != nil {
		return nil, err
	}

	a.Kind = kind

	return &a, nil
}

func zakatYearArg(a *asset.Asset) sql.NullInt64 {
	y := a.ZakatYear()
	return sql.NullInt64{Int64: int64(y), Valid: y != 0}
}

func (s *Store) ListAssets(ctx context.Context) ([]*asset.Asset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectAssetColumns+` FROM assets ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []*asset.Asset

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}

		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assets: %w", err)
	}

	return assets, nil
}

func (s *Store) GetAsset(ctx context.Context, id int64) (*asset.Asset, error) {
	a, err := scanAsset(s.db.QueryRowContext(ctx, `SELECT `+selectAssetColumns+` FROM assets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, asset.ErrNotFound
		}

		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return a, nil
}

func (s *Store) SaveAsset(ctx context.Context, a *asset.Asset) error {
	return saveAsset(ctx, s.db, a)
}

// saveAsset inserts a new asset when a.ID is zero and otherwise replaces the
// record with that id.
func saveAsset(ctx context.Context, q queryer, a *asset.Asset) error {
	if a.ID == 0 {
		query := `
			INSERT INTO assets (name, value, currency, type, zakat_year)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		err := q.QueryRowContext(ctx, query,
			a.Name, a.Value, a.Currency(), a.Kind.Type(), zakatYearArg(a),
		).Scan(&a.ID)
		if err != nil {
			return fmt.Errorf("creating asset: %w", err)
		}

		return nil
	}

	query := `
		INSERT INTO assets (id, name, value, currency, type, zakat_year)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, value = EXCLUDED.value, currency = EXCLUDED.currency,
			type = EXCLUDED.type, zakat_year = EXCLUDED.zakat_year
	`

	_, err := q.ExecContext(ctx, query,
		a.ID, a.Name, a.Value, a.Currency(), a.Kind.Type(), zakatYearArg(a),
	)
	if err != nil {
		return fmt.Errorf("updating asset %d: %w", a.ID, err)
	}

	return nil
}

func (s *Store) ReplaceAssets(ctx context.Context, save []*asset.Asset, remove []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if len(remove) > 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM assets WHERE id = ANY($1)`, remove); err != nil {
			return fmt.Errorf("deleting assets: %w", err)
		}
	}

	for _, a := range save {
		if err := saveAsset(ctx, tx, a); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing assets: %w", err)
	}

	return nil
}

func (s *Store) DeleteAssets(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("deleting assets: %w", err)
	}

	return nil
}
