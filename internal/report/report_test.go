package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/wallet/internal/report"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
)

func TestMarkdown(t *testing.T) {
	updated := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	v := &totals.View{
		Snapshot: totals.Snapshot{
			TotalYER:  decimal.NewFromInt(4_000_000),
			TotalSAR:  decimal.NewFromInt(9_345),
			TotalUSD:  decimal.NewFromInt(2_454),
			ZakatDue:  decimal.NewFromInt(100_000),
			ZakatPaid: decimal.NewFromInt(40_000),
		},
		Trends:      totals.Trends{YER: totals.TrendUp, SAR: totals.TrendDown},
		Remaining:   decimal.NewFromInt(60_000),
		PercentPaid: 40,
		LastUpdate:  &updated,
	}

	out := report.Markdown(v, 2026)

	assert.Contains(t, out, "# Wallet")
	assert.Contains(t, out, "## Total wealth")
	assert.Contains(t, out, "## Zakat 2026")
	assert.Contains(t, out, "▲")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "40%")
	assert.Contains(t, out, "Rates updated")
}

func TestMarkdown_NoTrendNoUpdate(t *testing.T) {
	out := report.Markdown(&totals.View{}, 2026)

	assert.NotContains(t, out, "▲")
	assert.NotContains(t, out, "▼")
	assert.NotContains(t, out, "Rates updated")
	assert.Contains(t, out, "0%")
}
