package asset

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/money"
)

var (
	ErrNotFound     = errors.New("asset not found")
	ErrInvalidInput = errors.New("invalid asset input")
)

// GoldName is the reserved name of the single gold holding.
const GoldName = "إجمالي الذهب المحسوب (جرامات)"

// Type is the stored discriminator of an asset kind.
type Type string

const (
	TypeBank          Type = "bank"
	TypeGold          Type = "gold"
	TypeZakatPayment  Type = "zakat_payment"
	TypeZakatBaseYear Type = "zakat_base_year"
)

// Kind is one of Bank, Gold, ZakatPayment or ZakatBaseYear.
type Kind interface {
	Type() Type
	isKind()
}

// Bank is a cash balance in one currency.
type Bank struct {
	Currency money.Currency
}

// Gold is bullion measured in grams of 24k gold.
type Gold struct{}

// ZakatPayment is a recorded Zakat payment for a calendar year, in YER.
type ZakatPayment struct {
	Year int
}

// ZakatBaseYear is a legacy pinned base stored among assets. It never counts
// towards wealth.
type ZakatBaseYear struct {
	Year int
}

func (Bank) Type() Type          { return TypeBank }
func (Gold) Type() Type          { return TypeGold }
func (ZakatPayment) Type() Type  { return TypeZakatPayment }
func (ZakatBaseYear) Type() Type { return TypeZakatBaseYear }

func (Bank) isKind()          {}
func (Gold) isKind()          {}
func (ZakatPayment) isKind()  {}
func (ZakatBaseYear) isKind() {}

// Asset is one held item of value.
type Asset struct {
	ID    int64 // zero until first persisted
	Name  string
	Value decimal.Decimal
	Kind  Kind
}

// Currency returns the stored currency of the asset.
func (a *Asset) Currency() money.Currency {
	switch k := a.Kind.(type) {
	case Bank:
		return k.Currency
	case Gold:
		return money.GRAM
	}

	return money.YER
}

// ZakatYear returns the year tagged on Zakat kinds, or zero.
func (a *Asset) ZakatYear() int {
	switch k := a.Kind.(type) {
	case ZakatPayment:
		return k.Year
	case ZakatBaseYear:
		return k.Year
	}

	return 0
}

// KindOf rebuilds a Kind from its flattened storage form.
func KindOf(t Type, cur money.Currency, zakatYear int) (Kind, error) {
	switch t {
	case TypeBank:
		return Bank{Currency: cur}, nil
	case TypeGold:
		return Gold{}, nil
	case TypeZakatPayment:
		return ZakatPayment{Year: zakatYear}, nil
	case TypeZakatBaseYear:
		return ZakatBaseYear{Year: zakatYear}, nil
	}

	return nil, fmt.Errorf("unknown asset type %q", t)
}
