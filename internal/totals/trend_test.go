package totals_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/wallet/internal/totals"
)

func TestCompareTrend(t *testing.T) {
	tests := []struct {
		name      string
		cur       decimal.Decimal
		prev      *decimal.Decimal
		want      totals.Trend
		wantArrow string
	}{
		{name: "Up", cur: d("150"), prev: new(d("100")), want: totals.TrendUp, wantArrow: "▲"},
		{name: "Down", cur: d("100"), prev: new(d("150")), want: totals.TrendDown, wantArrow: "▼"},
		{name: "Same", cur: d("100"), prev: new(d("100.00")), want: totals.TrendNone, wantArrow: ""},
		{name: "NoPrevious", cur: d("100"), prev: nil, want: totals.TrendNone, wantArrow: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := totals.CompareTrend(tt.cur, tt.prev)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantArrow, got.Arrow())
		})
	}
}

func TestTrend_MarshalText(t *testing.T) {
	b, err := totals.TrendDown.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "down", string(b))
}
