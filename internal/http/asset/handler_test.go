package asset_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	assetHandler "github.com/MrJamesThe3rd/wallet/internal/http/asset"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

func newRouter(ctrl *gomock.Controller) (http.Handler, *asset.MockRepository) {
	assets := asset.NewMockRepository(ctrl)

	rates := rate.NewMockRepository(ctrl)
	rates.EXPECT().ListRates(gomock.Any()).Return(nil, nil).AnyTimes()

	h := assetHandler.NewHandler(asset.NewService(assets), rate.NewService(rates, rate.NewSet(1630, 428, 217000)))

	r := chi.NewRouter()
	r.Route("/assets", h.Routes)

	return r, assets
}

func TestHandler_ListBanks(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, repo := newRouter(ctrl)

	repo.EXPECT().ListAssets(gomock.Any()).Return([]*asset.Asset{
		{ID: 1, Name: "Kuraimi", Value: decimal.NewFromInt(1000), Kind: asset.Bank{Currency: money.YER}},
		{ID: 2, Name: "Kuraimi", Value: decimal.NewFromInt(10), Kind: asset.Bank{Currency: money.USD}},
		{ID: 3, Name: asset.GoldName, Value: decimal.NewFromInt(2), Kind: asset.Gold{}},
		{ID: 4, Name: "Zakat 2026", Value: decimal.NewFromInt(5), Kind: asset.ZakatPayment{Year: 2026}},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/banks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Banks []struct {
			Name     string          `json:"name"`
			TotalYER decimal.Decimal `json:"total_yer"`
			Balances []struct {
				Currency string `json:"currency"`
			} `json:"balances"`
		} `json:"banks"`
		Gold *struct {
			Grams    decimal.Decimal `json:"grams"`
			TotalYER decimal.Decimal `json:"total_yer"`
		} `json:"gold"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	require.Len(t, got.Banks, 1)
	assert.Equal(t, "Kuraimi", got.Banks[0].Name)
	assert.Len(t, got.Banks[0].Balances, 2)
	assert.True(t, decimal.NewFromInt(17300).Equal(got.Banks[0].TotalYER))
	require.NotNil(t, got.Gold)
	assert.True(t, decimal.NewFromInt(434000).Equal(got.Gold.TotalYER))
}

func tadhamon() []*asset.Asset {
	return []*asset.Asset{
		{ID: 5, Name: "Tadhamon", Value: decimal.NewFromInt(300), Kind: asset.Bank{Currency: money.SAR}},
		{ID: 6, Name: "Tadhamon", Value: decimal.NewFromInt(9000), Kind: asset.Bank{Currency: money.YER}},
		{ID: 7, Name: asset.GoldName, Value: decimal.NewFromInt(4), Kind: asset.Gold{}},
	}
}

func TestHandler_SaveBank(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *asset.MockRepository)
		want      int
	}{
		{
			name: "Created",
			body: `{"name":"Tadhamon","balances":[{"currency":"SAR","value":"300"},{"currency":"YER","value":"0"}]}`,
			setupMock: func(m *asset.MockRepository) {
				m.EXPECT().ReplaceAssets(gomock.Any(), gomock.Len(1), gomock.Nil()).Return(nil)
			},
			want: http.StatusCreated,
		},
		{
			name: "EditRemovesDroppedRows",
			body: `{"name":"Tadhamon","previous_ids":[5,6],"balances":[{"id":5,"currency":"SAR","value":"310"}]}`,
			setupMock: func(m *asset.MockRepository) {
				m.EXPECT().ListAssets(gomock.Any()).Return(tadhamon(), nil)
				m.EXPECT().ReplaceAssets(gomock.Any(), gomock.Len(1), []int64{6}).Return(nil)
			},
			want: http.StatusCreated,
		},
		{
			name: "GoldIDInBalances",
			body: `{"name":"Tadhamon","balances":[{"id":7,"currency":"YER","value":"1"}]}`,
			setupMock: func(m *asset.MockRepository) {
				m.EXPECT().ListAssets(gomock.Any()).Return(tadhamon(), nil)
			},
			want: http.StatusBadRequest,
		},
		{
			name:      "NoPositiveBalance",
			body:      `{"name":"Tadhamon","balances":[{"currency":"SAR","value":"0"}]}`,
			setupMock: func(*asset.MockRepository) {},
			want:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, repo := newRouter(ctrl)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/assets/banks", strings.NewReader(tt.body)))

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestHandler_DeleteBank_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, repo := newRouter(ctrl)

	repo.EXPECT().ListAssets(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/assets/banks/Nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SaveGold(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, repo := newRouter(ctrl)

	repo.EXPECT().ListAssets(gomock.Any()).Return(nil, nil)
	repo.EXPECT().SaveAsset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *asset.Asset) error {
			a.ID = 11
			return nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/assets/gold",
		strings.NewReader(`{"grams_24k":"10","grams_21k":"8"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		ID    int64           `json:"id"`
		Grams decimal.Decimal `json:"grams"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(11), got.ID)
	assert.True(t, decimal.NewFromInt(17).Equal(got.Grams))
}

func TestHandler_GetGold_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, repo := newRouter(ctrl)

	repo.EXPECT().ListAssets(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/gold", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Grams    decimal.Decimal `json:"grams"`
		Price21K decimal.Decimal `json:"price_21k"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.Grams.IsZero())
	assert.True(t, decimal.NewFromInt(189875).Equal(got.Price21K))
}
