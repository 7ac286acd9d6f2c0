package rate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

func TestService_Load(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *rate.MockRepository)
		wantUSD   string
		wantSAR   string
		wantGold  string
		wantLast  *time.Time
	}

	last := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []testCase{
		{
			name: "NothingPersisted",
			setupMock: func(m *rate.MockRepository) {
				m.EXPECT().ListRates(gomock.Any()).Return(nil, nil)
			},
			wantUSD:  "1630",
			wantSAR:  "428",
			wantGold: "217000",
		},
		{
			name: "OverridesRecognizedKeys",
			setupMock: func(m *rate.MockRepository) {
				m.EXPECT().ListRates(gomock.Any()).Return([]rate.Record{
					{Key: rate.KeyUSDToYER, Value: "1700.5"},
					{Key: rate.KeyGoldPerGramYER, Value: "220000"},
					{Key: "EUR_TO_YER", Value: "1900"},
					{Key: rate.KeyLastUpdate, Value: last.Format(time.RFC3339)},
				}, nil)
			},
			wantUSD:  "1700.5",
			wantSAR:  "428",
			wantGold: "220000",
			wantLast: &last,
		},
		{
			name: "LastUpdateInMilliseconds",
			setupMock: func(m *rate.MockRepository) {
				m.EXPECT().ListRates(gomock.Any()).Return([]rate.Record{
					{Key: rate.KeyLastUpdate, Value: "1740825000000"},
				}, nil)
			},
			wantUSD:  "1630",
			wantSAR:  "428",
			wantGold: "217000",
			wantLast: &last,
		},
		{
			name: "MalformedValueKeepsDefault",
			setupMock: func(m *rate.MockRepository) {
				m.EXPECT().ListRates(gomock.Any()).Return([]rate.Record{
					{Key: rate.KeySARToYER, Value: "not-a-number"},
					{Key: rate.KeyUSDToYER, Value: "-3"},
				}, nil)
			},
			wantUSD:  "1630",
			wantSAR:  "428",
			wantGold: "217000",
		},
		{
			name: "StoreFailureFallsBack",
			setupMock: func(m *rate.MockRepository) {
				m.EXPECT().ListRates(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantUSD:  "1630",
			wantSAR:  "428",
			wantGold: "217000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := rate.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := rate.NewService(repo, defaultSet())
			got := svc.Load(context.Background())

			assert.Equal(t, tt.wantUSD, got.USDToYER.String())
			assert.Equal(t, tt.wantSAR, got.SARToYER.String())
			assert.Equal(t, tt.wantGold, got.GoldPerGramYER.String())

			if tt.wantLast == nil {
				assert.Nil(t, got.LastUpdate)
				return
			}

			require.NotNil(t, got.LastUpdate)
			assert.True(t, tt.wantLast.Equal(*got.LastUpdate))
		})
	}
}

func TestService_Save_RejectsNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rate.NewMockRepository(ctrl)
	svc := rate.NewService(repo, defaultSet())

	_, err := svc.Save(context.Background(), decimal.NewFromInt(1630), decimal.Zero, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, rate.ErrInvalidRate)
}

func TestService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	repo := rate.NewMockRepository(ctrl)
	svc := rate.NewService(repo, defaultSet()).WithClock(func() time.Time { return now })

	gomock.InOrder(
		repo.EXPECT().PutRates(gomock.Any(), []rate.Record{
			{Key: rate.KeyUSDToYER, Value: "1700"},
			{Key: rate.KeySARToYER, Value: "450"},
			{Key: rate.KeyGoldPerGramYER, Value: "230000"},
		}).Return(nil),
		repo.EXPECT().PutRates(gomock.Any(), []rate.Record{
			{Key: rate.KeyLastUpdate, Value: "2025-06-01T08:00:00Z"},
		}).Return(nil),
		repo.EXPECT().ListRates(gomock.Any()).Return([]rate.Record{
			{Key: rate.KeyUSDToYER, Value: "1700"},
			{Key: rate.KeySARToYER, Value: "450"},
			{Key: rate.KeyGoldPerGramYER, Value: "230000"},
			{Key: rate.KeyLastUpdate, Value: "2025-06-01T08:00:00Z"},
		}, nil),
	)

	set, err := svc.Save(context.Background(), decimal.NewFromInt(1700), decimal.NewFromInt(450), decimal.NewFromInt(230000))
	require.NoError(t, err)
	assert.Equal(t, "450", set.SARToYER.String())
	require.NotNil(t, set.LastUpdate)
	assert.True(t, now.Equal(*set.LastUpdate))
}

func TestService_LastUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := rate.NewMockRepository(ctrl)
	svc := rate.NewService(repo, defaultSet())

	repo.EXPECT().GetRate(gomock.Any(), rate.KeyLastUpdate).Return(nil, nil)

	got, err := svc.LastUpdate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}
