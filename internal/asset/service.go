package asset

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/money"
	"github.com/MrJamesThe3rd/wallet/internal/rate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=asset
type Repository interface {
	ListAssets(ctx context.Context) ([]*Asset, error)
	GetAsset(ctx context.Context, id int64) (*Asset, error)
	SaveAsset(ctx context.Context, a *Asset) error
	// ReplaceAssets deletes remove and upserts save in one transaction.
	ReplaceAssets(ctx context.Context, save []*Asset, remove []int64) error
	DeleteAssets(ctx context.Context, ids []int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Asset, error) {
	return s.repo.ListAssets(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Asset, error) {
	return s.repo.GetAsset(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteAssets(ctx, []int64{id})
}

// Balance is one currency row of a bank form.
type Balance struct {
	ID       int64 // zero for a new row
	Currency money.Currency
	Value    decimal.Decimal
}

type SaveBankParams struct {
	Name string
	// PreviousIDs are the ids the bank had when editing started. Any of them
	// missing from Balances is deleted.
	PreviousIDs []int64
	Balances    []Balance
}

// SaveBank creates or edits a named bank with one asset per currency balance.
func (s *Service) SaveBank(ctx context.Context, params SaveBankParams) ([]*Asset, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: bank name is required", ErrInvalidInput)
	}

	if name == GoldName {
		return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidInput, name)
	}

	var (
		save  []*Asset
		saved []int64
	)

	for _, b := range params.Balances {
		if !b.Value.IsPositive() {
			continue
		}

		if !b.Currency.Valid() {
			return nil, fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, b.Currency)
		}

		save = append(save, &Asset{
			ID:    b.ID,
			Name:  name,
			Value: b.Value,
			Kind:  Bank{Currency: b.Currency},
		})

		if b.ID != 0 {
			saved = append(saved, b.ID)
		}
	}

	if len(save) == 0 {
		return nil, fmt.Errorf("%w: at least one positive balance is required", ErrInvalidInput)
	}

	if err := s.checkBankIDs(ctx, append(slices.Clone(saved), params.PreviousIDs...)); err != nil {
		return nil, err
	}

	var remove []int64

	for _, id := range params.PreviousIDs {
		if !slices.Contains(saved, id) {
			remove = append(remove, id)
		}
	}

	if err := s.repo.ReplaceAssets(ctx, save, remove); err != nil {
		return nil, fmt.Errorf("saving bank %s: %w", name, err)
	}

	return save, nil
}

// checkBankIDs rejects ids that are not bank records of a single bank. The
// bank may be renamed by the edit, so the stored name is not compared with
// the submitted one.
func (s *Service) checkBankIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("listing assets: %w", err)
	}

	byID := make(map[int64]*Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}

	owner := ""

	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: unknown bank record %d", ErrInvalidInput, id)
		}

		if _, isBank := a.Kind.(Bank); !isBank {
			return fmt.Errorf("%w: record %d is not a bank balance", ErrInvalidInput, id)
		}

		if owner == "" {
			owner = a.Name
		} else if a.Name != owner {
			return fmt.Errorf("%w: record %d belongs to %q, not %q", ErrInvalidInput, id, a.Name, owner)
		}
	}

	return nil
}

// DeleteBank removes every balance of the named bank.
func (s *Service) DeleteBank(ctx context.Context, name string) error {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("listing assets: %w", err)
	}

	var ids []int64

	for _, a := range assets {
		if _, ok := a.Kind.(Bank); ok && a.Name == name {
			ids = append(ids, a.ID)
		}
	}

	if len(ids) == 0 {
		return ErrNotFound
	}

	return s.repo.DeleteAssets(ctx, ids)
}

// BankSummary groups the balances sharing a bank name.
type BankSummary struct {
	Name     string
	Balances []*Asset
	TotalYER decimal.Decimal
}

// GoldSummary is the gold holding valued at the given rates.
type GoldSummary struct {
	Asset    *Asset
	TotalYER decimal.Decimal
	TotalSAR decimal.Decimal
	TotalUSD decimal.Decimal
}

// Banks lists bank assets grouped by name, in first-seen order, along with
// the gold holding if one exists. Every gold record counts toward the
// holding, whatever its name.
func (s *Service) Banks(ctx context.Context, rates rate.Set) ([]*BankSummary, *GoldSummary, error) {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing assets: %w", err)
	}

	var (
		banks []*BankSummary
		index = make(map[string]*BankSummary)
		gold  *Asset
	)

	for _, a := range assets {
		switch k := a.Kind.(type) {
		case Gold:
			if gold == nil {
				gold = new(*a)
				continue
			}

			gold.Value = gold.Value.Add(a.Value)
		case Bank:
			b, ok := index[a.Name]
			if !ok {
				b = &BankSummary{Name: a.Name}
				index[a.Name] = b
				banks = append(banks, b)
			}

			b.Balances = append(b.Balances, a)
			b.TotalYER = b.TotalYER.Add(rates.Convert(a.Value, k.Currency))
		}
	}

	if gold == nil {
		return banks, nil, nil
	}

	yer := rates.ConvertGold(gold.Value)

	return banks, &GoldSummary{
		Asset:    gold,
		TotalYER: yer,
		TotalSAR: rates.FromYER(yer, money.SAR),
		TotalUSD: rates.FromYER(yer, money.USD),
	}, nil
}

var karat21 = decimal.NewFromInt(21).Div(decimal.NewFromInt(24))

// PureGrams returns the 24k-equivalent weight of the given 24k and 21k grams,
// rounded to two decimals.
func PureGrams(grams24, grams21 decimal.Decimal) decimal.Decimal {
	return grams24.Add(grams21.Mul(karat21)).Round(2)
}

// GoldPrice21 is the price of one gram of 21k gold.
func GoldPrice21(rates rate.Set) decimal.Decimal {
	return rates.GoldPerGramYER.Mul(karat21)
}

// Gold returns the gold holding, or ErrNotFound.
func (s *Service) Gold(ctx context.Context) (*Asset, error) {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	for _, a := range assets {
		if _, ok := a.Kind.(Gold); ok {
			return a, nil
		}
	}

	return nil, ErrNotFound
}

// SaveGold stores the gold holding, replacing the existing one in place.
func (s *Service) SaveGold(ctx context.Context, grams24, grams21 decimal.Decimal) (*Asset, error) {
	if grams24.IsNegative() || grams21.IsNegative() {
		return nil, fmt.Errorf("%w: gold weight cannot be negative", ErrInvalidInput)
	}

	total := PureGrams(grams24, grams21)
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: no gold to save", ErrInvalidInput)
	}

	gold := &Asset{Name: GoldName, Value: total, Kind: Gold{}}

	existing, err := s.Gold(ctx)
	switch {
	case err == nil:
		gold.ID = existing.ID
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	if err := s.repo.SaveAsset(ctx, gold); err != nil {
		return nil, fmt.Errorf("saving gold: %w", err)
	}

	return gold, nil
}

type ZakatPaymentParams struct {
	Year  int
	Value decimal.Decimal
	Name  string
}

// RecordZakatPayment stores a Zakat payment against a calendar year.
func (s *Service) RecordZakatPayment(ctx context.Context, params ZakatPaymentParams) (*Asset, error) {
	if params.Year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	if !params.Value.IsPositive() {
		return nil, fmt.Errorf("%w: payment must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = "Zakat " + strconv.Itoa(params.Year)
	}

	payment := &Asset{
		Name:  name,
		Value: params.Value,
		Kind:  ZakatPayment{Year: params.Year},
	}
	if err := s.repo.SaveAsset(ctx, payment); err != nil {
		return nil, fmt.Errorf("saving zakat payment: %w", err)
	}

	return payment, nil
}

// ZakatPayments lists the payments tagged to year.
func (s *Service) ZakatPayments(ctx context.Context, year int) ([]*Asset, error) {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	var payments []*Asset

	for _, a := range assets {
		if p, ok := a.Kind.(ZakatPayment); ok && p.Year == year {
			payments = append(payments, a)
		}
	}

	return payments, nil
}
