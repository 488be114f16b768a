package app

import (
	"context"

	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

type AttendanceRepository interface {
	// UpsertAttendance replaces any existing occupant of the (game, seat)
	// pair; attendance is reassignable, unlike ownership.
	UpsertAttendance(ctx context.Context, a domain.GameAttendance) (domain.GameAttendance, error)
	DeleteAttendance(ctx context.Context, gameID, seatID string) error
	ListAttendanceByGame(ctx context.Context, gameID string) ([]domain.GameAttendance, error)
}

// AttendanceService tracks who occupied which seat at which game. This is
// independent of ownership and never feeds the financial aggregates.
type AttendanceService struct {
	repo AttendanceRepository
}

func NewAttendanceService(repo AttendanceRepository) *AttendanceService {
	return &AttendanceService{repo: repo}
}

type SetAttendanceInput struct {
	GameID   string
	SeatID   string
	HolderID string
}

func (s *AttendanceService) SetAttendance(ctx context.Context, in SetAttendanceInput) (domain.GameAttendance, error) {
	if in.GameID == "" || in.SeatID == "" || in.HolderID == "" {
		return domain.GameAttendance{}, domain.ErrInvalidID
	}
	return s.repo.UpsertAttendance(ctx, domain.GameAttendance{
		ID:       newID(),
		GameID:   in.GameID,
		SeatID:   in.SeatID,
		HolderID: in.HolderID,
	})
}

func (s *AttendanceService) ClearAttendance(ctx context.Context, gameID, seatID string) error {
	if gameID == "" || seatID == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteAttendance(ctx, gameID, seatID)
}

func (s *AttendanceService) AttendanceFor(ctx context.Context, gameID string) ([]domain.GameAttendance, error) {
	if gameID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListAttendanceByGame(ctx, gameID)
}
