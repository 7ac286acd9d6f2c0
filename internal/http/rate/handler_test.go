package rate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	rateHandler "github.com/MrJamesThe3rd/wallet/internal/http/rate"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

var defaults = rate.NewSet(1630, 428, 217000)

func newRouter(repo rate.Repository) http.Handler {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	svc := rate.NewService(repo, defaults).WithClock(func() time.Time { return now })

	r := chi.NewRouter()
	r.Route("/rates", rateHandler.NewHandler(svc).Routes)

	return r
}

type ratesBody struct {
	USDToYER      string     `json:"usd_to_yer"`
	SARToYER      string     `json:"sar_to_yer"`
	GoldPerGram   string     `json:"gold_per_gram_yer"`
	Gold21PerGram string     `json:"gold21_per_gram_yer"`
	LastUpdate    *time.Time `json:"last_update"`
}

func TestHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := rate.NewMockRepository(ctrl)
	repo.EXPECT().ListRates(gomock.Any()).Return([]rate.Record{
		{Key: rate.KeyUSDToYER, Value: "1700"},
		{Key: "SOMETHING_ELSE", Value: "1"},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rates/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body ratesBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "1700", body.USDToYER)
	assert.Equal(t, "428", body.SARToYER)
	assert.Equal(t, "217000", body.GoldPerGram)
	assert.Equal(t, "189875", body.Gold21PerGram)
	assert.Nil(t, body.LastUpdate)
}

func TestHandler_Save(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *rate.MockRepository)
		want      int
	}{
		{
			name: "Saved",
			body: `{"usd_to_yer":"1700","sar_to_yer":"450","gold_per_gram_yer":"220000"}`,
			setupMock: func(m *rate.MockRepository) {
				m.EXPECT().PutRates(gomock.Any(), gomock.Len(3)).Return(nil)
				m.EXPECT().PutRates(gomock.Any(), gomock.Len(1)).Return(nil)
				m.EXPECT().ListRates(gomock.Any()).Return([]rate.Record{
					{Key: rate.KeyUSDToYER, Value: "1700"},
					{Key: rate.KeySARToYER, Value: "450"},
					{Key: rate.KeyGoldPerGramYER, Value: "220000"},
					{Key: rate.KeyLastUpdate, Value: "2026-05-01T09:00:00Z"},
				}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:      "ZeroRate",
			body:      `{"usd_to_yer":"0","sar_to_yer":"450","gold_per_gram_yer":"220000"}`,
			setupMock: func(*rate.MockRepository) {},
			want:      http.StatusBadRequest,
		},
		{
			name:      "MalformedJSON",
			body:      `{"usd_to_yer":`,
			setupMock: func(*rate.MockRepository) {},
			want:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := rate.NewMockRepository(ctrl)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPut, "/rates/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)

			if tt.want != http.StatusOK {
				return
			}

			var body ratesBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "1700", body.USDToYER)
			require.NotNil(t, body.LastUpdate)
			assert.True(t, body.LastUpdate.Equal(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)))
		})
	}
}
