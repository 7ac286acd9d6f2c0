package zakat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/zakat"
)

func TestDue(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "20000000", want: "500000"},
		{amount: "1000", want: "25"},
		{amount: "1020", want: "26"}, // 25.5 rounds up
		{amount: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := zakat.Due(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestService_Base(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *zakat.MockRepository)
		want      string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Pinned",
			setupMock: func(m *zakat.MockRepository) {
				m.EXPECT().GetBase(gomock.Any(), 2025).
					Return(&zakat.Base{Year: 2025, Value: decimal.NewFromInt(30000000), Currency: money.YER}, nil)
			},
			want: "30000000",
		},
		{
			name: "NotPinnedIsZero",
			setupMock: func(m *zakat.MockRepository) {
				m.EXPECT().GetBase(gomock.Any(), 2025).Return(nil, nil)
			},
			want: "0",
		},
		{
			name: "StoreError",
			setupMock: func(m *zakat.MockRepository) {
				m.EXPECT().GetBase(gomock.Any(), 2025).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := zakat.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := zakat.NewService(repo).Base(context.Background(), 2025)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestService_SetBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := zakat.NewMockRepository(ctrl)
	svc := zakat.NewService(repo)

	repo.EXPECT().PutBase(gomock.Any(), &zakat.Base{Year: 2025, Value: decimal.NewFromInt(100), Currency: money.YER}).Return(nil)

	b, err := svc.SetBase(context.Background(), 2025, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, money.YER, b.Currency)

	_, err = svc.SetBase(context.Background(), 2025, decimal.Zero)
	assert.ErrorIs(t, err, zakat.ErrInvalidInput)
}
