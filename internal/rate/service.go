package rate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned when a rate is not a strictly positive number.
var ErrInvalidRate = errors.New("rates must be positive numbers")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=rate
type Repository interface {
	ListRates(ctx context.Context) ([]Record, error)
	GetRate(ctx context.Context, key Key) (*Record, error)
	PutRates(ctx context.Context, records []Record) error
}

type Service struct {
	repo     Repository
	defaults Set
	now      func() time.Time
}

func NewService(repo Repository, defaults Set) *Service {
	return &Service{repo: repo, defaults: defaults, now: time.Now}
}

// WithClock overrides the time source used for LAST_UPDATE.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Defaults returns the built-in rates used when nothing is persisted.
func (s *Service) Defaults() Set {
	return s.defaults
}

// Load reads the persisted rates on top of the defaults. It never fails:
// read errors and malformed values are logged and the defaults kept.
func (s *Service) Load(ctx context.Context) Set {
	set := s.defaults

	records, err := s.repo.ListRates(ctx)
	if err != nil {
		slog.Warn("could not load rates, using defaults", "error", err)
		return set
	}

	for _, r := range records {
		switch r.Key {
		case KeyUSDToYER, KeySARToYER, KeyGoldPerGramYER:
			v, err := decimal.NewFromString(r.Value)
			if err != nil || !v.IsPositive() {
				slog.Warn("ignoring malformed rate", "key", r.Key, "value", r.Value)
				continue
			}

			set = set.with(r.Key, v)
		case KeyLastUpdate:
			set.LastUpdate = parseTimestamp(r.Value)
		}
	}

	return set
}

// Save persists new rates and stamps LAST_UPDATE, then reloads.
func (s *Service) Save(ctx context.Context, usd, sar, gold decimal.Decimal) (Set, error) {
	if !usd.IsPositive() || !sar.IsPositive() || !gold.IsPositive() {
		return Set{}, ErrInvalidRate
	}

	records := []Record{
		{Key: KeyUSDToYER, Value: usd.String()},
		{Key: KeySARToYER, Value: sar.String()},
		{Key: KeyGoldPerGramYER, Value: gold.String()},
	}
	if err := s.repo.PutRates(ctx, records); err != nil {
		return Set{}, fmt.Errorf("saving rates: %w", err)
	}

	if err := s.Touch(ctx); err != nil {
		return Set{}, err
	}

	return s.Load(ctx), nil
}

// Touch records the current time as the last rates update.
func (s *Service) Touch(ctx context.Context) error {
	rec := Record{Key: KeyLastUpdate, Value: s.now().UTC().Format(time.RFC3339)}
	if err := s.repo.PutRates(ctx, []Record{rec}); err != nil {
		return fmt.Errorf("saving last update: %w", err)
	}

	return nil
}

// LastUpdate returns the last recorded update time, or nil if never set.
func (s *Service) LastUpdate(ctx context.Context) (*time.Time, error) {
	rec, err := s.repo.GetRate(ctx, KeyLastUpdate)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		return nil, nil
	}

	return parseTimestamp(rec.Value), nil
}

// parseTimestamp accepts RFC 3339 strings and Unix milliseconds, the two
// forms LAST_UPDATE has been written in.
func parseTimestamp(v string) *time.Time {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return &t
	}

	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		t := time.UnixMilli(ms).UTC()
		return &t
	}

	return nil
}
