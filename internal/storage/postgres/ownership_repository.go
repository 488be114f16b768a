package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

type OwnershipRepository struct {
	pool *pgxpool.Pool
}

func NewOwnershipRepository(pool *pgxpool.Pool) *OwnershipRepository {
	return &OwnershipRepository{pool: pool}
}

// CreateOwnership is a plain insert: the unique (seat_id, season_id)
// constraint decides concurrent assignment races, so there is no
// read-then-write window.
func (r *OwnershipRepository) CreateOwnership(ctx context.Context, o domain.SeatOwnership) error {
	const stmt = `
INSERT INTO seat_ownerships (id, seat_id, season_id, holder_id)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, o.ID, o.SeatID, o.SeasonID, o.HolderID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatAlreadyOwned
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("create ownership: %w", err)
	}
	return nil
}

func (r *OwnershipRepository) FindOwnership(ctx context.Context, seatID, seasonID string) (*domain.SeatOwnership, error) {
	const query = `
SELECT id, seat_id, season_id, holder_id
FROM seat_ownerships
WHERE seat_id = $1 AND season_id = $2`

	var o domain.SeatOwnership
	err := r.pool.QueryRow(ctx, query, seatID, seasonID).
		Scan(&o.ID, &o.SeatID, &o.SeasonID, &o.HolderID)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find ownership: %w", err)
	}
	return &o, nil
}

func (r *OwnershipRepository) DeleteOwnership(ctx context.Context, seatID, seasonID string) error {
	const stmt = `DELETE FROM seat_ownerships WHERE seat_id = $1 AND season_id = $2`
	tag, err := r.pool.Exec(ctx, stmt, seatID, seasonID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete ownership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOwnershipNotFound
	}
	return nil
}

func (r *OwnershipRepository) ListOwnershipsBySeason(ctx context.Context, seasonID string) ([]domain.SeatOwnership, error) {
	return listOwnerships(ctx, r.pool, `season_id = $1`, seasonID)
}

func (r *OwnershipRepository) ListSeatsByTeam(ctx context.Context, teamID string) ([]domain.Seat, error) {
	return listSeatsByTeam(ctx, r.pool, teamID)
}

func listOwnerships(ctx context.Context, pool *pgxpool.Pool, where string, arg any) ([]domain.SeatOwnership, error) {
	query := `SELECT id, seat_id, season_id, holder_id FROM seat_ownerships WHERE ` + where + ` ORDER BY id`
	rows, err := pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list ownerships: %w", err)
	}
	defer rows.Close()

	ownerships := []domain.SeatOwnership{}
	for rows.Next() {
		var o domain.SeatOwnership
		if err := rows.Scan(&o.ID, &o.SeatID, &o.SeasonID, &o.HolderID); err != nil {
			return nil, fmt.Errorf("scan ownership: %w", err)
		}
		ownerships = append(ownerships, o)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return ownerships, nil
}
