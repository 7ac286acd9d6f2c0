package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the unit a stored value is expressed in.
type Currency string

const (
	YER  Currency = "YER" // base currency
	SAR  Currency = "SAR"
	USD  Currency = "USD"
	GRAM Currency = "GRAM" // gold weight, not a real currency
)

// Valid reports whether c is one of the three cash currencies.
func (c Currency) Valid() bool {
	switch c {
	case YER, SAR, USD:
		return true
	}

	return false
}

// Format renders an amount in its currency, rounded to whole units with
// thousand separators, e.g. "1,630 YER".
func Format(d decimal.Decimal, c Currency) string {
	if c == GRAM {
		return d.Round(2).String() + " g"
	}

	cur := gomoney.GetCurrency(string(c))
	if cur == nil {
		return d.Round(0).String() + " " + string(c)
	}

	units := d.Round(0).IntPart()
	formatted := gomoney.New(units*pow10(cur.Fraction), cur.Code).Display()

	// go-money always prints the minor units; totals are shown whole.
	if cur.Fraction > 0 {
		formatted = trimFraction(formatted, cur.Decimal, cur.Fraction)
	}

	return strings.TrimSpace(stripGrapheme(formatted, cur.Grapheme)) + " " + string(c)
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}

	return p
}

func trimFraction(s, sep string, digits int) string {
	suffix := sep + strings.Repeat("0", digits)
	if i := strings.Index(s, suffix); i >= 0 {
		return s[:i] + s[i+len(suffix):]
	}

	return s
}

func stripGrapheme(s, grapheme string) string {
	if grapheme == "" {
		return s
	}

	return strings.ReplaceAll(s, grapheme, "")
}

var arabicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"٫", ".", "٬", "",
)

// ParseAmount parses user input such as "1,234.50" or "١٢٣٤٫٥" into a decimal.
// Commas are thousand separators and a dot is the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := arabicDigits.Replace(strings.TrimSpace(s))
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d, nil
}

// ParsePositive is ParseAmount restricted to values strictly greater than zero.
func ParsePositive(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}

	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", d)
	}

	return d, nil
}
