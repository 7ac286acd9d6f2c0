// Package totals aggregates assets and debts into a wealth snapshot and
// computes the Zakat due and paid for the current year.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/asset"
	"github.com/MrJamesThe3rd/wallet/internal/debt"
	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
	"github.com/MrJamesThe3rd/wallet/internal/zakat"
)

// Snapshot is the result of one aggregation. All values are in YER unless
// the field name says otherwise.
type Snapshot struct {
	TotalYER decimal.Decimal
	TotalSAR decimal.Decimal
	TotalUSD decimal.Decimal

	// Raw sums of bank balances in their own currency.
	OrigYER decimal.Decimal
	OrigSAR decimal.Decimal
	OrigUSD decimal.Decimal

	GoldYER   decimal.Decimal
	GoldGrams decimal.Decimal

	DebtsMine decimal.Decimal // owed to me
	DebtsOwed decimal.Decimal // owed by me

	ZakatDue  decimal.Decimal
	ZakatPaid decimal.Decimal
}

// Remaining is the Zakat still to pay. It goes negative on overpayment.
func (s Snapshot) Remaining() decimal.Decimal {
	return s.ZakatDue.Sub(s.ZakatPaid)
}

var hundred = decimal.NewFromInt(100)

// PercentPaid is round(paid/due*100), or 0 when nothing is due. It is not
// clamped: overpaying shows more than 100.
func (s Snapshot) PercentPaid() int64 {
	if !s.ZakatDue.IsPositive() {
		return 0
	}

	return s.ZakatPaid.Div(s.ZakatDue).Mul(hundred).Round(0).IntPart()
}

// Input is everything one aggregation reads.
type Input struct {
	Assets []*asset.Asset
	Debts  []*debt.Debt
	// PinnedBase is the base amount pinned for Year; zero when none.
	PinnedBase decimal.Decimal
	Year       int
}

// Convert returns the YER value of an asset. Gold is valued by weight
// whatever its currency field says; Zakat records have no wealth value.
func Convert(a *asset.Asset, rates rate.Set) decimal.Decimal {
	switch k := a.Kind.(type) {
	case asset.Gold:
		return rates.ConvertGold(a.Value)
	case asset.Bank:
		return rates.Convert(a.Value, k.Currency)
	}

	return decimal.Zero
}

// Nisaab is the value of 85 grams of gold, the minimum wealth on which
// Zakat is due.
func Nisaab(rates rate.Set) decimal.Decimal {
	return rates.ConvertGold(zakat.NisaabGrams)
}

// Compute aggregates in at the given rates. It performs no I/O.
func Compute(in Input, rates rate.Set) Snapshot {
	var s Snapshot

	for _, a := range in.Assets {
		switch k := a.Kind.(type) {
		case asset.ZakatPayment:
			if k.Year == in.Year {
				s.ZakatPaid = s.ZakatPaid.Add(a.Value)
			}
		case asset.ZakatBaseYear:
		case asset.Gold:
			yer := Convert(a, rates)
			s.GoldGrams = s.GoldGrams.Add(a.Value)
			s.GoldYER = s.GoldYER.Add(yer)
			s.TotalYER = s.TotalYER.Add(yer)
		case asset.Bank:
			s.TotalYER = s.TotalYER.Add(Convert(a, rates))

			switch k.Currency {
			case money.YER:
				s.OrigYER = s.OrigYER.Add(a.Value)
			case money.SAR:
				s.OrigSAR = s.OrigSAR.Add(a.Value)
			case money.USD:
				s.OrigUSD = s.OrigUSD.Add(a.Value)
			}
		}
	}

	for _, d := range in.Debts {
		switch d.Type {
		case debt.TypeOwedToMe:
			s.DebtsMine = s.DebtsMine.Add(rates.Convert(d.Value, d.Currency))
		case debt.TypeOwedByMe:
			s.DebtsOwed = s.DebtsOwed.Add(rates.Convert(d.Value, d.Currency))
		}
	}

	// A pinned base fixes the year's Zakat; later changes in wealth during
	// that year do not move it.
	switch {
	case in.PinnedBase.IsPositive():
		s.ZakatDue = zakat.Due(in.PinnedBase)
	case s.TotalYER.GreaterThanOrEqual(Nisaab(rates)):
		s.ZakatDue = zakat.Due(s.TotalYER)
	default:
		s.ZakatDue = decimal.Zero
	}

	s.TotalSAR = rates.FromYER(s.TotalYER, money.SAR)
	s.TotalUSD = rates.FromYER(s.TotalYER, money.USD)

	return s
}
