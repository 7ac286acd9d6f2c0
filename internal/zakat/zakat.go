package zakat

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/money"
)

var ErrInvalidInput = errors.New("invalid zakat input")

var (
	// Rate is the share of qualifying wealth due each year.
	Rate = decimal.RequireFromString("0.025")
	// NisaabGrams is the weight of gold whose value is the minimum taxable wealth.
	NisaabGrams = decimal.NewFromInt(85)
)

// Base is an amount pinned for a year. While present it replaces live wealth
// as the basis of that year's Zakat.
type Base struct {
	Year     int
	Value    decimal.Decimal
	Currency money.Currency // always YER
}

// Due returns round(amount * Rate).
func Due(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(Rate).Round(0)
}
