package domain

import "errors"

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrHolderNotFound    = errors.New("ticket holder not found")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeasonNotFound    = errors.New("season not found")
	ErrGameNotFound      = errors.New("game not found")
	ErrOwnershipNotFound  = errors.New("ownership not found")
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrTransferNotFound  = errors.New("transfer not found")

	ErrSeatAlreadyOwned = errors.New("seat already owned for this season")

	ErrNameRequired      = errors.New("name required")
	ErrOpponentRequired  = errors.New("opponent required")
	ErrSeatAddrRequired  = errors.New("seat section, row and number required")
	ErrInvalidYear       = errors.New("invalid season year")
	ErrInvalidSeasonType = errors.New("invalid season type")
	ErrInvalidDirection  = errors.New("invalid payment direction")
	ErrInvalidCategory   = errors.New("invalid payment category")
	ErrInvalidStatus     = errors.New("invalid transfer status")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrInvalidID         = errors.New("invalid id")
)
