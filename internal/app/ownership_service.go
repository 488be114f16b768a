package app

import (
	"context"

	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

type OwnershipRepository interface {
	// CreateOwnership must be an atomic conditional insert: the store's
	// uniqueness constraint on (seat, season) decides the race, not a
	// prior read. A losing insert returns domain.ErrSeatAlreadyOwned.
	CreateOwnership(ctx context.Context, o domain.SeatOwnership) error
	FindOwnership(ctx context.Context, seatID, seasonID string) (*domain.SeatOwnership, error)
	DeleteOwnership(ctx context.Context, seatID, seasonID string) error
	ListOwnershipsBySeason(ctx context.Context, seasonID string) ([]domain.SeatOwnership, error)
	ListSeatsByTeam(ctx context.Context, teamID string) ([]domain.Seat, error)
}

// OwnershipService resolves season-long seat ownership and enforces the
// one-owner-per-seat-per-season invariant at write time.
type OwnershipService struct {
	repo OwnershipRepository
}

func NewOwnershipService(repo OwnershipRepository) *OwnershipService {
	return &OwnershipService{repo: repo}
}

type AssignOwnershipInput struct {
	SeatID   string
	SeasonID string
	HolderID string
}

func (s *OwnershipService) Assign(ctx context.Context, in AssignOwnershipInput) (domain.SeatOwnership, error) {
	if in.SeatID == "" || in.SeasonID == "" || in.HolderID == "" {
		return domain.SeatOwnership{}, domain.ErrInvalidID
	}

	ownership := domain.SeatOwnership{
		ID:       newID(),
		SeatID:   in.SeatID,
		SeasonID: in.SeasonID,
		HolderID: in.HolderID,
	}
	if err := s.repo.CreateOwnership(ctx, ownership); err != nil {
		return domain.SeatOwnership{}, err
	}
	return ownership, nil
}

func (s *OwnershipService) Release(ctx context.Context, seatID, seasonID string) error {
	if seatID == "" || seasonID == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteOwnership(ctx, seatID, seasonID)
}

// OwnerOf returns the ownership for the seat in exactly that season, or nil
// when unassigned. Ownership never carries across seasons.
func (s *OwnershipService) OwnerOf(ctx context.Context, seatID, seasonID string) (*domain.SeatOwnership, error) {
	if seatID == "" || seasonID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindOwnership(ctx, seatID, seasonID)
}

// AvailableSeats returns the team's seats not yet owned in the given season.
// A seat owned under a different season is still available here.
func (s *OwnershipService) AvailableSeats(ctx context.Context, seasonID, teamID string) ([]domain.Seat, error) {
	if seasonID == "" || teamID == "" {
		return nil, domain.ErrInvalidID
	}

	seats, err := s.repo.ListSeatsByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	owned, err := s.repo.ListOwnershipsBySeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(owned))
	for _, o := range owned {
		taken[o.SeatID] = struct{}{}
	}

	available := make([]domain.Seat, 0, len(seats))
	for _, seat := range seats {
		if _, ok := taken[seat.ID]; ok {
			continue
		}
		available = append(available, seat)
	}
	return available, nil
}
