package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

func (r *AttendanceRepository) UpsertAttendance(ctx context.Context, a domain.GameAttendance) (domain.GameAttendance, error) {
	const stmt = `
INSERT INTO game_attendance (id, game_id, seat_id, holder_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT game_attendance_game_seat_key DO UPDATE
SET holder_id = EXCLUDED.holder_id
RETURNING id, game_id, seat_id, holder_id`

	var stored domain.GameAttendance
	err := r.pool.QueryRow(ctx, stmt, a.ID, a.GameID, a.SeatID, a.HolderID).
		Scan(&stored.ID, &stored.GameID, &stored.SeatID, &stored.HolderID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.GameAttendance{}, domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return domain.GameAttendance{}, notFound
		}
		return domain.GameAttendance{}, fmt.Errorf("upsert attendance: %w", err)
	}
	return stored, nil
}

func (r *AttendanceRepository) DeleteAttendance(ctx context.Context, gameID, seatID string) error {
	const stmt = `DELETE FROM game_attendance WHERE game_id = $1 AND seat_id = $2`
	tag, err := r.pool.Exec(ctx, stmt, gameID, seatID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) ListAttendanceByGame(ctx context.Context, gameID string) ([]domain.GameAttendance, error) {
	const query = `
SELECT id, game_id, seat_id, holder_id
FROM game_attendance
WHERE game_id = $1
ORDER BY id`

	rows, err := r.pool.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	records := []domain.GameAttendance{}
	for rows.Next() {
		var a domain.GameAttendance
		if err := rows.Scan(&a.ID, &a.GameID, &a.SeatID, &a.HolderID); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return records, nil
}
