package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wallet/internal/money"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Plain", input: "1000", want: "1000"},
		{name: "ThousandSeparators", input: "1,234,567.5", want: "1234567.5"},
		{name: "ArabicIndicDigits", input: "١٢٣٤٫٥", want: "1234.5"},
		{name: "Whitespace", input: "  20 000 ", want: "20000"},
		{name: "Empty", input: "", wantErr: true},
		{name: "Garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParsePositive_RejectsZeroAndNegative(t *testing.T) {
	_, err := money.ParsePositive("0")
	assert.Error(t, err)

	_, err = money.ParsePositive("-5")
	assert.Error(t, err)

	d, err := money.ParsePositive("5")
	require.NoError(t, err)
	assert.Equal(t, "5", d.String())
}

func TestCurrency_Valid(t *testing.T) {
	assert.True(t, money.YER.Valid())
	assert.True(t, money.SAR.Valid())
	assert.True(t, money.USD.Valid())
	assert.False(t, money.GRAM.Valid())
	assert.False(t, money.Currency("EUR").Valid())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,630 YER", money.Format(decimal.NewFromInt(1630), money.YER))
	assert.Equal(t, "1,000 USD", money.Format(decimal.NewFromFloat(999.6), money.USD))
	assert.Equal(t, "12.35 g", money.Format(decimal.NewFromFloat(12.345), money.GRAM))
}
