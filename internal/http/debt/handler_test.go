package debt_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wallet/internal/debt"
	debtHandler "github.com/MrJamesThe3rd/wallet/internal/http/debt"
	"github.com/MrJamesThe3rd/wallet/internal/money"
)

func newRouter(repo debt.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/debts", debtHandler.NewHandler(debt.NewService(repo)).Routes)

	return r
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *debt.MockRepository)
		want      int
	}{
		{
			name: "Created",
			body: `{"name":"Ahmed","value":"2500","currency":"SAR","type":"owed_to_me","note":"loan"}`,
			setupMock: func(m *debt.MockRepository) {
				m.EXPECT().CreateDebt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *debt.Debt) error {
						d.ID = 7
						return nil
					})
			},
			want: http.StatusCreated,
		},
		{
			name:      "InvalidType",
			body:      `{"name":"Ahmed","value":"2500","currency":"SAR","type":"gift"}`,
			setupMock: func(*debt.MockRepository) {},
			want:      http.StatusBadRequest,
		},
		{
			name:      "MalformedJSON",
			body:      `{`,
			setupMock: func(*debt.MockRepository) {},
			want:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := debt.NewMockRepository(ctrl)
			tt.setupMock(repo)

			req := httptest.NewRequest(http.MethodPost, "/debts/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := debt.NewMockRepository(ctrl)

	ts := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	repo.EXPECT().ListDebts(gomock.Any()).Return([]*debt.Debt{
		{ID: 2, Name: "Sara", Value: decimal.NewFromInt(10), Currency: money.USD, Type: debt.TypeOwedByMe, Timestamp: ts},
		{ID: 1, Name: "Ali", Value: decimal.NewFromInt(5), Currency: money.YER, Type: debt.TypeOwedToMe, Timestamp: ts.Add(-time.Hour)},
	}, nil)

	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debts/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		ID   int64  `json:"id"`
		Type string `json:"type"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "owed_by_me", got[0].Type)
}

func TestHandler_Settle(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(m *debt.MockRepository)
		want      int
	}{
		{
			name: "Settled",
			path: "/debts/3/settle",
			setupMock: func(m *debt.MockRepository) {
				m.EXPECT().DeleteDebt(gomock.Any(), int64(3)).Return(nil)
			},
			want: http.StatusNoContent,
		},
		{
			name: "NotFound",
			path: "/debts/4/settle",
			setupMock: func(m *debt.MockRepository) {
				m.EXPECT().DeleteDebt(gomock.Any(), int64(4)).Return(debt.ErrNotFound)
			},
			want: http.StatusNotFound,
		},
		{
			name:      "BadID",
			path:      "/debts/abc/settle",
			setupMock: func(*debt.MockRepository) {},
			want:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := debt.NewMockRepository(ctrl)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_UpdateKeepsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := debt.NewMockRepository(ctrl)

	created := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	repo.EXPECT().GetDebt(gomock.Any(), int64(9)).Return(&debt.Debt{
		ID: 9, Name: "Old", Value: decimal.NewFromInt(1), Currency: money.YER, Type: debt.TypeOwedToMe, Timestamp: created,
	}, nil)
	repo.EXPECT().UpdateDebt(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"name":"New","value":"40","currency":"USD","type":"owed_by_me"}`
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/debts/9", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Name      string    `json:"name"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "New", got.Name)
	assert.True(t, created.Equal(got.Timestamp))
}
