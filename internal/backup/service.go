package backup

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/encoding"
	"github.com/MrJamesThe3rd/wallet/internal/money"
)

var ErrInvalidDocument = errors.New("invalid backup document")

type Repository interface {
	Dump(ctx context.Context) (*Document, error)
	// Restore upserts every record of doc in one transaction.
	Restore(ctx context.Context, doc *Document) error
	Wipe(ctx context.Context) error
	SaveSnapshot(ctx context.Context, doc *Document, takenAt time.Time) error
	// LastSnapshotAt returns nil when no snapshot has been stored.
	LastSnapshotAt(ctx context.Context) (*time.Time, error)
}

// Flags reports whether automatic backups are switched on.
type Flags interface {
	AutoBackup() bool
}

type Service struct {
	repo     Repository
	flags    Flags
	interval time.Duration
	now      func() time.Time
}

func NewService(repo Repository, flags Flags, interval time.Duration) *Service {
	return &Service{
		repo:     repo,
		flags:    flags,
		interval: interval,
		now:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Export(ctx context.Context) (*Document, error) {
	doc, err := s.repo.Dump(ctx)
	if err != nil {
		return nil, fmt.Errorf("dumping collections: %w", err)
	}

	// Empty collections are written as [] rather than null.
	if doc.Assets == nil {
		doc.Assets = []Asset{}
	}

	if doc.Debts == nil {
		doc.Debts = []Debt{}
	}

	if doc.Rates == nil {
		doc.Rates = []Rate{}
	}

	if doc.ZakatBase == nil {
		doc.ZakatBase = []ZakatBase{}
	}

	return doc, nil
}

// Import reads a backup document from r and upserts every record it holds.
// Records already stored under the same key are replaced; records missing
// from the document are left alone. Within the document the last record for
// a key wins.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Document, error) {
	utf8Reader, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	var doc Document
	if err := json.NewDecoder(utf8Reader).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	if err := s.repo.Restore(ctx, &doc); err != nil {
		return nil, fmt.Errorf("restoring backup: %w", err)
	}

	return &doc, nil
}

func validate(doc *Document) error {
	for i, a := range doc.Assets {
		year := 0
		if a.ZakatYear != nil {
			year = *a.ZakatYear
		}

		if _, err := asset.KindOf(asset.Type(a.Type), money.Currency(a.Currency), year); err != nil {
			return fmt.Errorf("%w: asset %d: %w", ErrInvalidDocument, i, err)
		}

		if a.ID <= 0 {
			return fmt.Errorf("%w: asset %d has no id", ErrInvalidDocument, i)
		}
	}

	for i, d := range doc.Debts {
		if !debt.Type(d.Type).Valid() {
			return fmt.Errorf("%w: debt %d has type %q", ErrInvalidDocument, i, d.Type)
		}

		if d.ID <= 0 {
			return fmt.Errorf("%w: debt %d has no id", ErrInvalidDocument, i)
		}
	}

	for i, r := range doc.Rates {
		if r.Key == "" {
			return fmt.Errorf("%w: rate %d has no key", ErrInvalidDocument, i)
		}
	}

	for i, b := range doc.ZakatBase {
		if b.Year <= 0 {
			return fmt.Errorf("%w: zakat base %d has no year", ErrInvalidDocument, i)
		}
	}

	return nil
}

// Wipe deletes every record of every collection.
func (s *Service) Wipe(ctx context.Context) error {
	if err := s.repo.Wipe(ctx); err != nil {
		return fmt.Errorf("wiping data: %w", err)
	}

	return nil
}

// RunAuto stores a snapshot of all collections when automatic backups are on
// and the last snapshot is older than the configured interval. It reports
// whether a snapshot was taken.
func (s *Service) RunAuto(ctx context.Context) (bool, error) {
	if !s.flags.AutoBackup() {
		return false, nil
	}

	now := s.now()

	last, err := s.repo.LastSnapshotAt(ctx)
	if err != nil {
		return false, fmt.Errorf("getting last snapshot: %w", err)
	}

	if last != nil && now.Sub(*last) < s.interval {
		return false, nil
	}

	doc, err := s.Export(ctx)
	if err != nil {
		return false, err
	}

	if err := s.repo.SaveSnapshot(ctx, doc, now); err != nil {
		return false, fmt.Errorf("saving snapshot: %w", err)
	}

	slog.Info("automatic backup stored",
		"assets", len(doc.Assets),
		"debts", len(doc.Debts),
		"taken_at", now,
	)

	return true, nil
}
