// Package backup exports and restores every persisted collection as a single
// JSON document.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// Number is a decimal written as a bare JSON number, the way exported
// backups have always carried amounts. It reads both numbers and strings.
type Number struct {
	decimal.Decimal
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

// Millis is a time written as Unix milliseconds.
type Millis struct {
	time.Time
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.UnixMilli())
}

func (m *Millis) UnmarshalJSON(b []byte) error {
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	m.Time = time.UnixMilli(ms).UTC()

	return nil
}

type Asset struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Value     Number `json:"value"`
	Currency  string `json:"currency"`
	Type      string `json:"type"`
	ZakatYear *int   `json:"zakat_year,omitempty"`
}

type Debt struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Value     Number `json:"value"`
	Currency  string `json:"currency"`
	Type      string `json:"type"`
	Timestamp Millis `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

type Rate struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ZakatBase struct {
	Year     int    `json:"year"`
	Value    Number `json:"value"`
	Currency string `json:"currency"`
}

// Document holds one array per collection. Records are kept as stored so a
// restore reproduces them exactly, ids included.
type Document struct {
	Assets    []Asset     `json:"assets"`
	Debts     []Debt      `json:"debts"`
	Rates     []Rate      `json:"rates"`
	ZakatBase []ZakatBase `json:"zakat_base"`
}

// Filename is the download name for a backup taken at t.
func Filename(t time.Time) string {
	return "wallet_backup_" + t.Format("2006-01-02_15-04") + ".json"
}

func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}

	return nil
}
