// Package report renders a totals view as a markdown document.
package report

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/totals"
)

func withTrend(s string, t totals.Trend) string {
	if a := t.Arrow(); a != "" {
		return s + " " + a
	}

	return s
}

// Markdown renders the totals, holdings, debts and Zakat progress of v.
func Markdown(v *totals.View, year int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	s := v.Snapshot

	doc.H1("Wallet")

	if v.LastUpdate != nil {
		doc.PlainText("Rates updated " + v.LastUpdate.Local().Format(time.DateTime))
	}

	doc.H2("Total wealth")
	doc.Table(md.TableSet{
		Header:    []string{"Currency", "Total"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"YER", withTrend(money.Format(s.TotalYER, money.YER), v.Trends.YER)},
			{"SAR", withTrend(money.Format(s.TotalSAR, money.SAR), v.Trends.SAR)},
			{"USD", withTrend(money.Format(s.TotalUSD, money.USD), v.Trends.USD)},
		},
	})

	doc.H2("Holdings")
	doc.Table(md.TableSet{
		Header:    []string{"Holding", "Amount"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"Cash in YER", money.Format(s.OrigYER, money.YER)},
			{"Cash in SAR", money.Format(s.OrigSAR, money.SAR)},
			{"Cash in USD", money.Format(s.OrigUSD, money.USD)},
			{"Gold", fmt.Sprintf("%s (%s)", money.Format(s.GoldGrams, money.GRAM), money.Format(s.GoldYER, money.YER))},
		},
	})

	doc.H2("Debts")
	doc.Table(md.TableSet{
		Header:    []string{"Direction", "In YER"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Rows: [][]string{
			{"Owed to me", money.Format(s.DebtsMine, money.YER)},
			{"Owed by me", money.Format(s.DebtsOwed, money.YER)},
		},
	})

	doc.H2(fmt.Sprintf("Zakat %d", year))
	doc.Table(md.TableSet{
		Header:    []string{"Due", "Paid", "Remaining", "Paid %"},
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Rows: [][]string{{
			money.Format(s.ZakatDue, money.YER),
			money.Format(s.ZakatPaid, money.YER),
			money.Format(v.Remaining, money.YER),
			fmt.Sprintf("%d%%", v.PercentPaid),
		}},
	})

	return doc.String()
}
