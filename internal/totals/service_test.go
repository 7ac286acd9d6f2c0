package totals_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
	"github.com/MrJamesThe3rd/wallet/internal/session"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
)

type fakeAssets struct {
	assets []*asset.Asset
	err    error
	calls  int
}

func (f *fakeAssets) List(context.Context) ([]*asset.Asset, error) {
	f.calls++
	return f.assets, f.err
}

type fakeDebts struct {
	debts []*debt.Debt
}

func (f *fakeDebts) List(context.Context) ([]*debt.Debt, error) {
	return f.debts, nil
}

type fakeBases struct {
	bases map[int]decimal.Decimal
}

func (f *fakeBases) Base(_ context.Context, year int) (decimal.Decimal, error) {
	return f.bases[year], nil
}

type fakeRates struct {
	set      rate.Set
	touched  *time.Time
	touchErr error
	now      time.Time
}

func (f *fakeRates) Load(context.Context) rate.Set { return f.set }

func (f *fakeRates) Touch(context.Context) error {
	if f.touchErr != nil {
		return f.touchErr
	}

	f.touched = &f.now

	return nil
}

func (f *fakeRates) LastUpdate(context.Context) (*time.Time, error) {
	return f.touched, nil
}

type fixture struct {
	assets *fakeAssets
	bases  *fakeBases
	rates  *fakeRates
	slots  *session.Store[string, totals.Slots]
	svc    *totals.Service
}

var now = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func newFixture(assets ...*asset.Asset) *fixture {
	f := &fixture{
		assets: &fakeAssets{assets: assets},
		bases:  &fakeBases{bases: map[int]decimal.Decimal{}},
		rates:  &fakeRates{set: testRates(), now: now},
		slots:  session.New[string, totals.Slots](time.Hour),
	}

	f.svc = totals.NewService(f.assets, &fakeDebts{}, f.bases, f.rates, f.slots).
		WithClock(func() time.Time { return now })

	return f
}

func TestService_Compute_UsesCurrentYear(t *testing.T) {
	f := newFixture(
		bank(1, "1000", money.YER),
		payment(2, "10", 2026),
		payment(3, "20", 2025),
	)
	f.bases.bases[2025] = d("99999999")
	f.bases.bases[2026] = d("40000")

	snap, err := f.svc.Compute(context.Background())
	require.NoError(t, err)

	assert.True(t, d("10").Equal(snap.ZakatPaid))
	assert.True(t, d("1000").Equal(snap.ZakatDue))
}

func TestService_Compute_PinnedBaseIgnoresGrowth(t *testing.T) {
	f := newFixture(bank(1, "20000000", money.YER))
	f.bases.bases[2026] = d("20000000")

	first, err := f.svc.Compute(context.Background())
	require.NoError(t, err)

	f.assets.assets = append(f.assets.assets, bank(2, "80000000", money.YER))

	second, err := f.svc.Compute(context.Background())
	require.NoError(t, err)

	assert.True(t, first.ZakatDue.Equal(second.ZakatDue))
	assert.True(t, d("500000").Equal(second.ZakatDue))
	assert.True(t, second.TotalYER.GreaterThan(first.TotalYER))
}

func TestService_Compute_ListError(t *testing.T) {
	f := newFixture()
	f.assets.err = errors.New("db down")

	_, err := f.svc.Compute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing assets")
}

func TestPage_Display(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstComputationHasNoTrend", func(t *testing.T) {
		f := newFixture(bank(1, "100", money.YER))

		v, err := f.svc.Open("s1").Display(ctx, true)
		require.NoError(t, err)

		assert.False(t, v.Cached)
		assert.Equal(t, totals.Trends{}, v.Trends)

		slots, ok := f.slots.Get("s1")
		require.True(t, ok)
		require.NotNil(t, slots.Pretty)
		require.NotNil(t, slots.Raw)
		assert.True(t, d("100").Equal(slots.Raw.TotalYER))
	})

	t.Run("CacheHitSkipsRecordsAndTrend", func(t *testing.T) {
		f := newFixture(bank(1, "100", money.YER))

		_, err := f.svc.Open("s1").Display(ctx, false)
		require.NoError(t, err)

		f.assets.assets = []*asset.Asset{bank(1, "150", money.YER)}
		calls := f.assets.calls

		v, err := f.svc.Open("s1").Display(ctx, true)
		require.NoError(t, err)

		assert.True(t, v.Cached)
		assert.True(t, d("100").Equal(v.Snapshot.TotalYER))
		assert.Equal(t, totals.Trends{}, v.Trends)
		assert.Equal(t, calls, f.assets.calls)
	})

	t.Run("TrendAgainstPreviousPageLoad", func(t *testing.T) {
		f := newFixture(bank(1, "100", money.YER))

		_, err := f.svc.Open("s1").Display(ctx, false)
		require.NoError(t, err)

		f.assets.assets = []*asset.Asset{bank(1, "150", money.YER)}

		v, err := f.svc.Open("s1").Display(ctx, false)
		require.NoError(t, err)

		assert.Equal(t, totals.TrendUp, v.Trends.YER)
		assert.Equal(t, totals.TrendUp, v.Trends.SAR)
		assert.Equal(t, totals.TrendUp, v.Trends.USD)
	})

	t.Run("TrendWithinOnePage", func(t *testing.T) {
		f := newFixture(bank(1, "150", money.YER))
		page := f.svc.Open("s1")

		_, err := page.Display(ctx, false)
		require.NoError(t, err)

		f.assets.assets = []*asset.Asset{bank(1, "100", money.YER)}

		v, err := page.Display(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, totals.TrendDown, v.Trends.YER)

		v, err = page.Display(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, totals.TrendNone, v.Trends.YER)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		f := newFixture(bank(1, "100", money.YER))

		_, err := f.svc.Open("s1").Display(ctx, false)
		require.NoError(t, err)

		f.assets.assets = []*asset.Asset{bank(1, "150", money.YER)}

		v, err := f.svc.Open("s2").Display(ctx, true)
		require.NoError(t, err)

		assert.False(t, v.Cached)
		assert.Equal(t, totals.TrendNone, v.Trends.YER)
	})
}

func TestPage_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputesAndStampsRates", func(t *testing.T) {
		f := newFixture(bank(1, "100", money.YER))
		page := f.svc.Open("s1")

		_, err := page.Display(ctx, false)
		require.NoError(t, err)

		f.assets.assets = []*asset.Asset{bank(1, "150", money.YER)}

		v, err := page.Refresh(ctx)
		require.NoError(t, err)

		assert.False(t, v.Cached)
		assert.True(t, d("150").Equal(v.Snapshot.TotalYER))
		assert.Equal(t, totals.TrendUp, v.Trends.YER)
		require.NotNil(t, v.LastUpdate)
		assert.Equal(t, now, *v.LastUpdate)

		slots, ok := f.slots.Get("s1")
		require.True(t, ok)
		assert.True(t, d("150").Equal(slots.Pretty.TotalYER))
	})

	t.Run("TouchFailure", func(t *testing.T) {
		f := newFixture(bank(1, "100", money.YER))
		f.rates.touchErr = errors.New("read only")

		_, err := f.svc.Open("s1").Refresh(ctx)
		require.Error(t, err)

		_, ok := f.slots.Get("s1")
		assert.False(t, ok)
	})
}
