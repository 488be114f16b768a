package domain

import "github.com/shopspring/decimal"

// Seat is a licensed seat belonging to a team. Section/row/number form the
// human-readable address. Immutable once games or ownership reference it.
type Seat struct {
	ID          string
	TeamID      string
	Section     string
	Row         string
	Number      string
	LicenseCost decimal.Decimal
}

// Address returns the human-readable seat address, e.g. "104/R/12".
func (s Seat) Address() string {
	return s.Section + "/" + s.Row + "/" + s.Number
}
