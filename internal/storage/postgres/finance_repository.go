package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

// FinanceRepository is the read side feeding the aggregator. It never writes.
type FinanceRepository struct {
	pool *pgxpool.Pool
}

func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepository {
	return &FinanceRepository{pool: pool}
}

func (r *FinanceRepository) GetGame(ctx context.Context, gameID string) (domain.Game, error) {
	const query = `
SELECT id, season_id, game_date, game_time, opponent, season_type
FROM games
WHERE id = $1`

	var g domain.Game
	var seasonType string
	err := r.pool.QueryRow(ctx, query, gameID).
		Scan(&g.ID, &g.SeasonID, &g.Date, &g.GameTime, &g.Opponent, &seasonType)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Game{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Game{}, domain.ErrGameNotFound
		}
		return domain.Game{}, fmt.Errorf("get game: %w", err)
	}
	g.SeasonType = domain.SeasonType(seasonType)
	return g, nil
}

func (r *FinanceRepository) GetSeason(ctx context.Context, seasonID string) (domain.Season, error) {
	const query = `SELECT id, team_id, year FROM seasons WHERE id = $1`
	var s domain.Season
	err := r.pool.QueryRow(ctx, query, seasonID).Scan(&s.ID, &s.TeamID, &s.Year)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Season{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Season{}, domain.ErrSeasonNotFound
		}
		return domain.Season{}, fmt.Errorf("get season: %w", err)
	}
	return s, nil
}

func (r *FinanceRepository) ListGamesBySeason(ctx context.Context, seasonID string) ([]domain.Game, error) {
	return listGamesBySeason(ctx, r.pool, seasonID)
}

func (r *FinanceRepository) ListPricingByGame(ctx context.Context, gameID string) ([]domain.GamePricing, error) {
	return listPricing(ctx, r.pool, `game_id = $1`, gameID)
}

func (r *FinanceRepository) ListPricingBySeason(ctx context.Context, seasonID string) ([]domain.GamePricing, error) {
	return listPricing(ctx, r.pool, `game_id IN (SELECT id FROM games WHERE season_id = $1)`, seasonID)
}

func (r *FinanceRepository) ListOwnershipsBySeason(ctx context.Context, seasonID string) ([]domain.SeatOwnership, error) {
	return listOwnerships(ctx, r.pool, `season_id = $1`, seasonID)
}

func (r *FinanceRepository) ListOwnershipsByHolder(ctx context.Context, holderID string) ([]domain.SeatOwnership, error) {
	return listOwnerships(ctx, r.pool, `holder_id = $1`, holderID)
}

func (r *FinanceRepository) GetSeatsByIDs(ctx context.Context, seatIDs []string) ([]domain.Seat, error) {
	if len(seatIDs) == 0 {
		return []domain.Seat{}, nil
	}

	const query = `
SELECT id, team_id, section, row_label, seat_number, license_cost::text
FROM seats
WHERE id = ANY ($1)
ORDER BY id`

	rows, err := r.pool.Query(ctx, query, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("get seats: %w", err)
	}
	defer rows.Close()

	seats := []domain.Seat{}
	for rows.Next() {
		var s domain.Seat
		var cost string
		if err := rows.Scan(&s.ID, &s.TeamID, &s.Section, &s.Row, &s.Number, &cost); err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		if s.LicenseCost, err = decimalFromText(cost); err != nil {
			return nil, fmt.Errorf("parse license cost: %w", err)
		}
		seats = append(seats, s)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return seats, nil
}

func (r *FinanceRepository) GetHolder(ctx context.Context, holderID string) (domain.TicketHolder, error) {
	const query = `SELECT id, name, email, notes FROM ticket_holders WHERE id = $1`
	var h domain.TicketHolder
	err := r.pool.QueryRow(ctx, query, holderID).Scan(&h.ID, &h.Name, &h.Email, &h.Notes)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.TicketHolder{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.TicketHolder{}, domain.ErrHolderNotFound
		}
		return domain.TicketHolder{}, fmt.Errorf("get holder: %w", err)
	}
	return h, nil
}

func (r *FinanceRepository) GetHoldersByIDs(ctx context.Context, holderIDs []string) ([]domain.TicketHolder, error) {
	if len(holderIDs) == 0 {
		return []domain.TicketHolder{}, nil
	}

	const query = `
SELECT id, name, email, notes
FROM ticket_holders
WHERE id = ANY ($1)
ORDER BY id`

	rows, err := r.pool.Query(ctx, query, holderIDs)
	if err != nil {
		return nil, fmt.Errorf("get holders: %w", err)
	}
	defer rows.Close()

	holders := []domain.TicketHolder{}
	for rows.Next() {
		var h domain.TicketHolder
		if err := rows.Scan(&h.ID, &h.Name, &h.Email, &h.Notes); err != nil {
			return nil, fmt.Errorf("scan holder: %w", err)
		}
		holders = append(holders, h)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return holders, nil
}

func (r *FinanceRepository) ListPaymentsByHolder(ctx context.Context, holderID string) ([]domain.Payment, error) {
	const query = `
SELECT id, holder_id, season_id, direction, category, amount::text, paid_on, notes
FROM payments
WHERE holder_id = $1
ORDER BY paid_on, id`

	rows, err := r.pool.Query(ctx, query, holderID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		var direction, category, amount string
		if err := rows.Scan(&p.ID, &p.HolderID, &p.SeasonID, &direction, &category, &amount, &p.PaidOn, &p.Notes); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.Direction = domain.PaymentDirection(direction)
		p.Category = domain.PaymentCategory(category)
		if p.Amount, err = decimalFromText(amount); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return payments, nil
}

func (r *FinanceRepository) ListPayoutsByHolder(ctx context.Context, holderID string) ([]domain.Payout, error) {
	const query = `
SELECT id, holder_id, game_id, amount::text, paid_on
FROM payouts
WHERE holder_id = $1
ORDER BY paid_on, id`

	rows, err := r.pool.Query(ctx, query, holderID)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	defer rows.Close()

	payouts := []domain.Payout{}
	for rows.Next() {
		var p domain.Payout
		var amount string
		if err := rows.Scan(&p.ID, &p.HolderID, &p.GameID, &amount, &p.PaidOn); err != nil {
			return nil, fmt.Errorf("scan payout: %w", err)
		}
		if p.Amount, err = decimalFromText(amount); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		payouts = append(payouts, p)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return payouts, nil
}

func (r *FinanceRepository) ListTransfersByHolder(ctx context.Context, holderID string) ([]domain.Transfer, error) {
	const query = `
SELECT id, game_id, seat_id, from_holder_id, to_holder_id, amount::text, status, created_at
FROM transfers
WHERE from_holder_id = $1 OR to_holder_id = $1
ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, holderID)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var t domain.Transfer
		var amount, status string
		if err := rows.Scan(&t.ID, &t.GameID, &t.SeatID, &t.FromHolderID, &t.ToHolderID, &amount, &status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		if t.Amount, err = decimalFromText(amount); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		t.Status = domain.TransferStatus(status)
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return transfers, nil
}
