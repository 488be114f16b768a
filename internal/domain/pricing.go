package domain

import "github.com/shopspring/decimal"

// GamePricing is the per-game, per-seat cost/sold-price pair. Both fields are
// independently optional; a null field means "no value recorded", which is
// not the same as an observed zero.
type GamePricing struct {
	ID        string
	GameID    string
	SeatID    string
	Cost      decimal.NullDecimal
	SoldPrice decimal.NullDecimal
}

// HasPricing reports whether a pricing decision was made for the seat, i.e.
// at least one of cost/sold price is set.
func (p GamePricing) HasPricing() bool {
	return p.Cost.Valid || p.SoldPrice.Valid
}

// CostOrZero returns the recorded cost, treating unset as zero. Summation
// only; presentation must keep unset distinct from zero.
func (p GamePricing) CostOrZero() decimal.Decimal {
	if p.Cost.Valid {
		return p.Cost.Decimal
	}
	return decimal.Zero
}

// SoldOrZero returns the recorded sold price, treating unset as zero.
func (p GamePricing) SoldOrZero() decimal.Decimal {
	if p.SoldPrice.Valid {
		return p.SoldPrice.Decimal
	}
	return decimal.Zero
}
