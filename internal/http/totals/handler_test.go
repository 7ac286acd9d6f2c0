package totals_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/http/sessionid"
	totalsHandler "github.com/MrJamesThe3rd/wallet/internal/http/totals"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
	"github.com/MrJamesThe3rd/wallet/internal/session"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
)

type stubAssets struct{ balance decimal.Decimal }

func (s *stubAssets) List(context.Context) ([]*asset.Asset, error) {
	return []*asset.Asset{{ID: 1, Name: "Bank", Value: s.balance, Kind: asset.Bank{Currency: money.YER}}}, nil
}

type stubDebts struct{}

func (stubDebts) List(context.Context) ([]*debt.Debt, error) { return nil, nil }

type stubBases struct{}

func (stubBases) Base(context.Context, int) (decimal.Decimal, error) { return decimal.Zero, nil }

type stubRates struct{ touched *time.Time }

func (stubRates) Load(context.Context) rate.Set { return rate.NewSet(1630, 428, 217000) }

func (s *stubRates) Touch(context.Context) error {
	s.touched = new(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	return nil
}

func (s *stubRates) LastUpdate(context.Context) (*time.Time, error) { return s.touched, nil }

type response struct {
	TotalYER decimal.Decimal `json:"total_yer"`
	Trends   struct {
		YER string `json:"yer"`
	} `json:"trends"`
	Display    map[string]string `json:"display"`
	Cached     bool              `json:"cached"`
	LastUpdate *time.Time        `json:"last_update"`
}

type client struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
}

func (c *client) do(method, target string) response {
	c.t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		c.cookie = cookies[0]
	}

	var resp response
	require.NoError(c.t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func setup(t *testing.T) (*client, *stubAssets) {
	assets := &stubAssets{balance: decimal.NewFromInt(100)}
	svc := totals.NewService(assets, stubDebts{}, stubBases{}, &stubRates{},
		session.New[string, totals.Slots](time.Hour))

	r := chi.NewRouter()
	r.Use(sessionid.Middleware)
	r.Route("/totals", totalsHandler.NewHandler(svc).Routes)

	return &client{t: t, router: r}, assets
}

func TestHandler_Display(t *testing.T) {
	c, assets := setup(t)

	first := c.do(http.MethodGet, "/totals/")
	assert.False(t, first.Cached)
	assert.Equal(t, "none", first.Trends.YER)
	assert.True(t, decimal.NewFromInt(100).Equal(first.TotalYER))
	assert.Equal(t, "100 YER", first.Display["total_yer"])

	assets.balance = decimal.NewFromInt(150)

	cached := c.do(http.MethodGet, "/totals/?cache=true")
	assert.True(t, cached.Cached)
	assert.True(t, decimal.NewFromInt(100).Equal(cached.TotalYER))

	fresh := c.do(http.MethodGet, "/totals/?cache=false")
	assert.False(t, fresh.Cached)
	assert.Equal(t, "up", fresh.Trends.YER)
	assert.Equal(t, "150 YER▲", fresh.Display["total_yer"])
}

func TestHandler_Refresh(t *testing.T) {
	c, assets := setup(t)

	c.do(http.MethodGet, "/totals/")
	assets.balance = decimal.NewFromInt(50)

	resp := c.do(http.MethodPost, "/totals/refresh")
	assert.False(t, resp.Cached)
	assert.Equal(t, "down", resp.Trends.YER)
	require.NotNil(t, resp.LastUpdate)
}

func TestHandler_Display_BadFlag(t *testing.T) {
	c, _ := setup(t)

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/totals/?cache=maybe", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
