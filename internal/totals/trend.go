package totals

import "github.com/shopspring/decimal"

// Trend is the direction a total moved since the previous computation.
type Trend int

const (
	TrendNone Trend = iota
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	}

	return "none"
}

// Arrow is the marker rendered next to a total.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "▲"
	case TrendDown:
		return "▼"
	}

	return ""
}

func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// CompareTrend compares cur with prev. A missing previous value has no trend.
func CompareTrend(cur decimal.Decimal, prev *decimal.Decimal) Trend {
	if prev == nil {
		return TrendNone
	}

	switch cur.Cmp(*prev) {
	case 1:
		return TrendUp
	case -1:
		return TrendDown
	}

	return TrendNone
}

// Trends holds the trend of the grand total in each display currency.
type Trends struct {
	YER Trend
	SAR Trend
	USD Trend
}

func compareSnapshots(cur Snapshot, prev *Snapshot) Trends {
	if prev == nil {
		return Trends{}
	}

	return Trends{
		YER: CompareTrend(cur.TotalYER, &prev.TotalYER),
		SAR: CompareTrend(cur.TotalSAR, &prev.TotalSAR),
		USD: CompareTrend(cur.TotalUSD, &prev.TotalUSD),
	}
}
