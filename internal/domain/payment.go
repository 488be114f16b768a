package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentDirection string

const (
	DirectionFromOwner PaymentDirection = "from_owner"
	DirectionToOwner   PaymentDirection = "to_owner"
	DirectionToTeam    PaymentDirection = "to_team"
	DirectionFromTeam  PaymentDirection = "from_team"
)

// ValidPaymentDirection reports whether d is a known money-movement direction.
func ValidPaymentDirection(d PaymentDirection) bool {
	switch d {
	case DirectionFromOwner, DirectionToOwner, DirectionToTeam, DirectionFromTeam:
		return true
	}
	return false
}

type PaymentCategory string

const (
	CategorySeatLicense PaymentCategory = "seat_license"
	CategorySeasonFee   PaymentCategory = "season_fee"
	CategoryConcessions PaymentCategory = "concessions"
	CategoryOther       PaymentCategory = "other"
)

// ValidPaymentCategory reports whether c is a known payment category.
func ValidPaymentCategory(c PaymentCategory) bool {
	switch c {
	case CategorySeatLicense, CategorySeasonFee, CategoryConcessions, CategoryOther:
		return true
	}
	return false
}

// Payment is a dated money movement between a ticket holder and the pool or
// a team. SeasonID is nil for movements not tied to any season, e.g. a
// one-time seat-license purchase.
type Payment struct {
	ID        string
	HolderID  string
	SeasonID  *string
	Direction PaymentDirection
	Category  PaymentCategory
	Amount    decimal.Decimal
	PaidOn    time.Time
	Notes     *string
}

// Payout is money paid to a ticket holder tied to a specific game, such as a
// resale proceeds disbursement.
type Payout struct {
	ID       string
	HolderID string
	GameID   string
	Amount   decimal.Decimal
	PaidOn   time.Time
}

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
)

// Transfer moves the attendance rights for one seat at one game from one
// holder to another for an agreed amount. Only completed transfers count as
// settled cash movement.
type Transfer struct {
	ID           string
	GameID       string
	SeatID       string
	FromHolderID string
	ToHolderID   string
	Amount       decimal.Decimal
	Status       TransferStatus
	CreatedAt    time.Time
}
