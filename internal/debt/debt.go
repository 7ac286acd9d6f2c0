package debt

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/money"
)

var (
	ErrNotFound     = errors.New("debt not found")
	ErrInvalidInput = errors.New("invalid debt input")
)

// Type is the direction a debt is owed in.
type Type string

const (
	TypeOwedToMe Type = "owed_to_me"
	TypeOwedByMe Type = "owed_by_me"
)

func (t Type) Valid() bool {
	return t == TypeOwedToMe || t == TypeOwedByMe
}

// Debt is money owed to or by the user.
type Debt struct {
	ID        int64
	Name      string
	Value     decimal.Decimal
	Currency  money.Currency
	Type      Type
	Timestamp time.Time // set once at creation
	Note      string
}
