package debt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=debt
type Repository interface {
	CreateDebt(ctx context.Context, d *Debt) error
	GetDebt(ctx context.Context, id int64) (*Debt, error)
	UpdateDebt(ctx context.Context, d *Debt) error
	DeleteDebt(ctx context.Context, id int64) error
	// ListDebts returns debts newest first.
	ListDebts(ctx context.Context) ([]*Debt, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the time source used to stamp new debts.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type Params struct {
	Name     string
	Value    decimal.Decimal
	Currency money.Currency
	Type     Type
	Note     string
}

func (p Params) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !p.Value.IsPositive() {
		return fmt.Errorf("%w: value must be positive", ErrInvalidInput)
	}

	if !p.Currency.Valid() {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, p.Currency)
	}

	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown debt type %q", ErrInvalidInput, p.Type)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params Params) (*Debt, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	d := &Debt{
		Name:      strings.TrimSpace(params.Name),
		Value:     params.Value,
		Currency:  params.Currency,
		Type:      params.Type,
		Timestamp: s.now(),
		Note:      strings.TrimSpace(params.Note),
	}
	if err := s.repo.CreateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Update rewrites a debt in place. Its id and creation timestamp are kept.
func (s *Service) Update(ctx context.Context, id int64, params Params) (*Debt, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetDebt(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Name = strings.TrimSpace(params.Name)
	d.Value = params.Value
	d.Currency = params.Currency
	d.Type = params.Type
	d.Note = strings.TrimSpace(params.Note)

	if err := s.repo.UpdateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Debt, error) {
	return s.repo.GetDebt(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Debt, error) {
	return s.repo.ListDebts(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteDebt(ctx, id)
}

// Settle marks a debt as paid or collected, which removes it.
func (s *Service) Settle(ctx context.Context, id int64) error {
	return s.repo.DeleteDebt(ctx, id)
}
