package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/preference"
)

func TestGoldInputs(t *testing.T) {
	holding := &asset.GoldSummary{
		Asset: &asset.Asset{Name: asset.GoldName, Value: decimal.RequireFromString("17"), Kind: asset.Gold{}},
	}

	tests := []struct {
		name   string
		last   preference.Preferences
		gold   *asset.GoldSummary
		want24 string
		want21 string
	}{
		{
			name:   "LastInputsWin",
			last:   preference.Preferences{GoldGrams24: "10", GoldGrams21: "8"},
			gold:   holding,
			want24: "10",
			want21: "8",
		},
		{
			name:   "Only21Saved",
			last:   preference.Preferences{GoldGrams21: "٨"},
			gold:   holding,
			want21: "٨",
		},
		{
			name:   "HoldingWhenNothingSaved",
			gold:   holding,
			want24: "17",
		},
		{
			name: "Empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g24, g21 := goldInputs(tt.last, tt.gold)
			assert.Equal(t, tt.want24, g24)
			assert.Equal(t, tt.want21, g21)
		})
	}
}
