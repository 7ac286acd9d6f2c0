package debt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/money"
)

func TestService_Create(t *testing.T) {
	now := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	type testCase struct {
		name      string
		params    debt.Params
		setupMock func(m *debt.MockRepository)
		wantErr   bool
	}

	valid := debt.Params{
		Name:     " Ahmed ",
		Value:    decimal.NewFromInt(5000),
		Currency: money.YER,
		Type:     debt.TypeOwedToMe,
	}

	tests := []testCase{
		{
			name:   "Success",
			params: valid,
			setupMock: func(m *debt.MockRepository) {
				m.EXPECT().
					CreateDebt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *debt.Debt) error {
						d.ID = 42
						return nil
					})
			},
		},
		{
			name:    "MissingName",
			params:  debt.Params{Value: decimal.NewFromInt(1), Currency: money.YER, Type: debt.TypeOwedByMe},
			wantErr: true,
		},
		{
			name:    "NonPositiveValue",
			params:  debt.Params{Name: "x", Value: decimal.NewFromInt(-1), Currency: money.YER, Type: debt.TypeOwedByMe},
			wantErr: true,
		},
		{
			name:    "GoldCurrency",
			params:  debt.Params{Name: "x", Value: decimal.NewFromInt(1), Currency: money.GRAM, Type: debt.TypeOwedByMe},
			wantErr: true,
		},
		{
			name:    "UnknownType",
			params:  debt.Params{Name: "x", Value: decimal.NewFromInt(1), Currency: money.USD, Type: "gift"},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: valid,
			setupMock: func(m *debt.MockRepository) {
				m.EXPECT().CreateDebt(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := debt.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := debt.NewService(repo).WithClock(func() time.Time { return now })
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(42), got.ID)
			assert.Equal(t, "Ahmed", got.Name)
			assert.Equal(t, now, got.Timestamp)
		})
	}
}

func TestService_Update_KeepsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	repo := debt.NewMockRepository(ctrl)
	svc := debt.NewService(repo).WithClock(func() time.Time { return created.AddDate(1, 0, 0) })

	repo.EXPECT().GetDebt(gomock.Any(), int64(3)).Return(&debt.Debt{
		ID:        3,
		Name:      "Old",
		Value:     decimal.NewFromInt(10),
		Currency:  money.SAR,
		Type:      debt.TypeOwedByMe,
		Timestamp: created,
	}, nil)
	repo.EXPECT().
		UpdateDebt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *debt.Debt) error {
			assert.Equal(t, int64(3), d.ID)
			assert.Equal(t, created, d.Timestamp)
			assert.Equal(t, "New", d.Name)
			return nil
		})

	got, err := svc.Update(context.Background(), 3, debt.Params{
		Name:     "New",
		Value:    decimal.NewFromInt(20),
		Currency: money.USD,
		Type:     debt.TypeOwedToMe,
		Note:     "paid half",
	})
	require.NoError(t, err)
	assert.Equal(t, "paid half", got.Note)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := debt.NewMockRepository(ctrl)
	svc := debt.NewService(repo)

	repo.EXPECT().GetDebt(gomock.Any(), int64(9)).Return(nil, debt.ErrNotFound)

	_, err := svc.Update(context.Background(), 9, debt.Params{
		Name: "x", Value: decimal.NewFromInt(1), Currency: money.YER, Type: debt.TypeOwedToMe,
	})
	assert.ErrorIs(t, err, debt.ErrNotFound)
}

func TestService_Settle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := debt.NewMockRepository(ctrl)
	svc := debt.NewService(repo)

	repo.EXPECT().DeleteDebt(gomock.Any(), int64(5)).Return(nil)

	require.NoError(t, svc.Settle(context.Background(), 5))
}
