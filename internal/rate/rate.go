package rate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/money"
)

// Key names a persisted rate record.
type Key string

const (
	KeyUSDToYER       Key = "USD_TO_YER"
	KeySARToYER       Key = "SAR_TO_YER"
	KeyGoldPerGramYER Key = "GOLD_PER_GRAM_YER"
	KeyLastUpdate     Key = "LAST_UPDATE"
)

// Record is one row of the rates collection. Value is a numeric string for
// the three rates and a timestamp for LAST_UPDATE.
type Record struct {
	Key   Key
	Value string
}

// Set is an immutable snapshot of the exchange rates in effect for one
// operation. All rates convert into the base currency (YER).
type Set struct {
	USDToYER       decimal.Decimal
	SARToYER       decimal.Decimal
	GoldPerGramYER decimal.Decimal
	LastUpdate     *time.Time
}

// Convert returns amount expressed in YER. Unknown currencies convert to zero.
func (s Set) Convert(amount decimal.Decimal, cur money.Currency) decimal.Decimal {
	switch cur {
	case money.YER:
		return amount
	case money.USD:
		return amount.Mul(s.USDToYER)
	case money.SAR:
		return amount.Mul(s.SARToYER)
	}

	return decimal.Zero
}

// ConvertGold returns the YER value of the given weight of 24k gold.
func (s Set) ConvertGold(grams decimal.Decimal) decimal.Decimal {
	return grams.Mul(s.GoldPerGramYER)
}

// FromYER converts a YER amount into cur. Rates are assumed positive.
func (s Set) FromYER(yer decimal.Decimal, cur money.Currency) decimal.Decimal {
	switch cur {
	case money.YER:
		return yer
	case money.USD:
		return yer.Div(s.USDToYER)
	case money.SAR:
		return yer.Div(s.SARToYER)
	}

	return decimal.Zero
}

// with returns a copy of s with the rate for key replaced by v.
func (s Set) with(key Key, v decimal.Decimal) Set {
	switch key {
	case KeyUSDToYER:
		s.USDToYER = v
	case KeySARToYER:
		s.SARToYER = v
	case KeyGoldPerGramYER:
		s.GoldPerGramYER = v
	}

	return s
}

// NewSet builds a Set from plain rates, as read from configuration.
func NewSet(usdToYER, sarToYER, goldPerGramYER float64) Set {
	return Set{
		USDToYER:       decimal.NewFromFloat(usdToYER),
		SARToYER:       decimal.NewFromFloat(sarToYER),
		GoldPerGramYER: decimal.NewFromFloat(goldPerGramYER),
	}
}
