package app

import (
	"context"

	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

type PricingRepository interface {
	// UpsertPricing creates the (game, seat) record or overwrites only the
	// supplied (valid) fields of an existing one, returning the stored row.
	UpsertPricing(ctx context.Context, id, gameID, seatID string, cost, soldPrice decimal.NullDecimal) (domain.GamePricing, error)
	ListPricingByGame(ctx context.Context, gameID string) ([]domain.GamePricing, error)
}

// PricingService maintains the per-game per-seat cost/sold-price ledger.
type PricingService struct {
	repo PricingRepository
}

func NewPricingService(repo PricingRepository) *PricingService {
	return &PricingService{repo: repo}
}

type SetPricingInput struct {
	GameID string
	SeatID string
	// Nil means "not supplied": the stored value, set or not, is untouched.
	Cost      *decimal.Decimal
	SoldPrice *decimal.Decimal
}

func (s *PricingService) SetPricing(ctx context.Context, in SetPricingInput) (domain.GamePricing, error) {
	if in.GameID == "" || in.SeatID == "" {
		return domain.GamePricing{}, domain.ErrInvalidID
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return domain.GamePricing{}, domain.ErrNegativeAmount
	}
	if in.SoldPrice != nil && in.SoldPrice.IsNegative() {
		return domain.GamePricing{}, domain.ErrNegativeAmount
	}

	cost := decimal.NullDecimal{}
	if in.Cost != nil {
		cost = decimal.NewNullDecimal(*in.Cost)
	}
	soldPrice := decimal.NullDecimal{}
	if in.SoldPrice != nil {
		soldPrice = decimal.NewNullDecimal(*in.SoldPrice)
	}

	return s.repo.UpsertPricing(ctx, newID(), in.GameID, in.SeatID, cost, soldPrice)
}

func (s *PricingService) PricingFor(ctx context.Context, gameID string) ([]domain.GamePricing, error) {
	if gameID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListPricingByGame(ctx, gameID)
}
