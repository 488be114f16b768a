package domain

// SeatOwnership assigns a seat to a ticket holder for the whole season.
// At most one record may exist per (seat, season); the store enforces it.
type SeatOwnership struct {
	ID       string
	SeatID   string
	SeasonID string
	HolderID string
}

// GameAttendance records who occupied a seat at one game. Attendance is
// per-game and reassignable; it does not imply ownership.
type GameAttendance struct {
	ID       string
	GameID   string
	SeatID   string
	HolderID string
}
