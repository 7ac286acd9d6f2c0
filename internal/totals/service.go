package totals

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

type AssetLister interface {
	List(ctx context.Context) ([]*asset.Asset, error)
}

type DebtLister interface {
	List(ctx context.Context) ([]*debt.Debt, error)
}

// BaseReader returns the pinned Zakat base for a year, zero when none.
type BaseReader interface {
	Base(ctx context.Context, year int) (decimal.Decimal, error)
}

type RateSource interface {
	Load(ctx context.Context) rate.Set
	Touch(ctx context.Context) error
	LastUpdate(ctx context.Context) (*time.Time, error)
}

// Slots are the two cached copies of the last computed snapshot kept per
// session. Pretty is what the cached display path renders; Raw is what the
// next page load compares against.
type Slots struct {
	Pretty *Snapshot
	Raw    *Snapshot
}

// SlotStore holds Slots by session id. session.Store satisfies it.
type SlotStore interface {
	Get(key string) (Slots, bool)
	Set(key string, value Slots)
	Delete(key string)
}

type Service struct {
	assets AssetLister
	debts  DebtLister
	bases  BaseReader
	rates  RateSource
	slots  SlotStore
	now    func() time.Time
}

func NewService(assets AssetLister, debts DebtLister, bases BaseReader, rates RateSource, slots SlotStore) *Service {
	return &Service{
		assets: assets,
		debts:  debts,
		bases:  bases,
		rates:  rates,
		slots:  slots,
		now:    time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Compute reads the current records and aggregates them. Rates are loaded
// before anything is converted.
func (s *Service) Compute(ctx context.Context) (Snapshot, error) {
	rates := s.rates.Load(ctx)

	assets, err := s.assets.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing assets: %w", err)
	}

	debts, err := s.debts.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing debts: %w", err)
	}

	year := s.now().Year()

	base, err := s.bases.Base(ctx, year)
	if err != nil {
		return Snapshot{}, fmt.Errorf("getting zakat base: %w", err)
	}

	return Compute(Input{
		Assets:     assets,
		Debts:      debts,
		PinnedBase: base,
		Year:       year,
	}, rates), nil
}

// LastUpdate is the time rates were last refreshed, or nil. Failures are
// logged and reported as unknown.
func (s *Service) LastUpdate(ctx context.Context) *time.Time {
	t, err := s.rates.LastUpdate(ctx)
	if err != nil {
		slog.Warn("failed to read last rate update", "error", err)
		return nil
	}

	return t
}

// View is what a presentation layer renders for the totals panel.
type View struct {
	Snapshot    Snapshot
	Trends      Trends
	Remaining   decimal.Decimal
	PercentPaid int64
	Cached      bool
	LastUpdate  *time.Time
}

func newView(s Snapshot, trends Trends, cached bool) *View {
	return &View{
		Snapshot:    s,
		Trends:      trends,
		Remaining:   s.Remaining(),
		PercentPaid: s.PercentPaid(),
		Cached:      cached,
	}
}

// Page is one viewing of the totals panel. It remembers the previous
// snapshot so successive displays can show which way totals moved.
type Page struct {
	svc      *Service
	session  string
	previous *Snapshot
}

// Open starts a page for a session. The previous snapshot is seeded from
// the session's Raw slot so the first display compares against the last
// computation made before this page was opened.
func (s *Service) Open(session string) *Page {
	p := &Page{svc: s, session: session}

	if slots, ok := s.slots.Get(session); ok && slots.Raw != nil {
		prev := *slots.Raw
		p.previous = &prev
	}

	return p
}

// Display renders the totals. With useCache and a Pretty slot present it
// returns the cached snapshot without reading any record and without trend
// arrows. Otherwise it recomputes, compares against the previous snapshot,
// and writes both slots.
func (p *Page) Display(ctx context.Context, useCache bool) (*View, error) {
	if useCache {
		if slots, ok := p.svc.slots.Get(p.session); ok && slots.Pretty != nil {
			return newView(*slots.Pretty, Trends{}, true), nil
		}
	}

	snap, err := p.svc.Compute(ctx)
	if err != nil {
		return nil, err
	}

	trends := compareSnapshots(snap, p.previous)

	pretty, raw := snap, snap
	p.svc.slots.Set(p.session, Slots{Pretty: &pretty, Raw: &raw})
	p.previous = &snap

	return newView(snap, trends, false), nil
}

// LastUpdate is the rates' last-update time shown alongside the totals.
func (p *Page) LastUpdate(ctx context.Context) *time.Time {
	return p.svc.LastUpdate(ctx)
}

// Refresh drops the session's cached snapshot, stamps the rates as updated
// now, and recomputes. The returned view carries the new last-update time.
func (p *Page) Refresh(ctx context.Context) (*View, error) {
	p.svc.slots.Delete(p.session)

	if err := p.svc.rates.Touch(ctx); err != nil {
		return nil, fmt.Errorf("touching rates: %w", err)
	}

	v, err := p.Display(ctx, false)
	if err != nil {
		return nil, err
	}

	v.LastUpdate = p.svc.LastUpdate(ctx)

	return v, nil
}
