package zakat

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wallet/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=zakat
type Repository interface {
	// GetBase returns nil without error when no base is pinned for year.
	GetBase(ctx context.Context, year int) (*Base, error)
	PutBase(ctx context.Context, b *Base) error
	DeleteBase(ctx context.Context, year int) error
	ListBases(ctx context.Context) ([]*Base, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Base returns the amount pinned for year, or zero when none is.
func (s *Service) Base(ctx context.Context, year int) (decimal.Decimal, error) {
	b, err := s.repo.GetBase(ctx, year)
	if err != nil {
		return decimal.Zero, err
	}

	if b == nil {
		return decimal.Zero, nil
	}

	return b.Value, nil
}

// SetBase pins amount (in YER) as the basis of year's Zakat.
func (s *Service) SetBase(ctx context.Context, year int, amount decimal.Decimal) (*Base, error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: base must be positive", ErrInvalidInput)
	}

	b := &Base{Year: year, Value: amount, Currency: money.YER}
	if err := s.repo.PutBase(ctx, b); err != nil {
		return nil, fmt.Errorf("saving zakat base for %d: %w", year, err)
	}

	return b, nil
}

// ClearBase unpins year so its Zakat follows live wealth again.
func (s *Service) ClearBase(ctx context.Context, year int) error {
	return s.repo.DeleteBase(ctx, year)
}

func (s *Service) List(ctx context.Context) ([]*Base, error) {
	return s.repo.ListBases(ctx)
}
