package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) CreatePayment(ctx context.Context, p domain.Payment) error {
	const stmt = `
INSERT INTO payments (id, holder_id, season_id, direction, category, amount, paid_on, notes)
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`

	_, err := r.pool.Exec(ctx, stmt,
		p.ID,
		p.HolderID,
		p.SeasonID,
		string(p.Direction),
		string(p.Category),
		p.Amount.String(),
		p.PaidOn,
		p.Notes,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *LedgerRepository) CreatePayout(ctx context.Context, p domain.Payout) error {
	const stmt = `
INSERT INTO payouts (id, holder_id, game_id, amount, paid_on)
VALUES ($1, $2, $3, $4::numeric, $5)`

	_, err := r.pool.Exec(ctx, stmt, p.ID, p.HolderID, p.GameID, p.Amount.String(), p.PaidOn)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("create payout: %w", err)
	}
	return nil
}

func (r *LedgerRepository) CreateTransfer(ctx context.Context, t domain.Transfer) error {
	const stmt = `
INSERT INTO transfers (id, game_id, seat_id, from_holder_id, to_holder_id, amount, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`

	_, err := r.pool.Exec(ctx, stmt,
		t.ID,
		t.GameID,
		t.SeatID,
		t.FromHolderID,
		t.ToHolderID,
		t.Amount.String(),
		string(t.Status),
		t.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

func (r *LedgerRepository) GetTransfer(ctx context.Context, transferID string) (domain.Transfer, error) {
	const query = `
SELECT id, game_id, seat_id, from_holder_id, to_holder_id, amount::text, status, created_at
FROM transfers
WHERE id = $1`

	var t domain.Transfer
	var amount, status string
	err := r.pool.QueryRow(ctx, query, transferID).
		Scan(&t.ID, &t.GameID, &t.SeatID, &t.FromHolderID, &t.ToHolderID, &amount, &status, &t.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Transfer{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Transfer{}, domain.ErrTransferNotFound
		}
		return domain.Transfer{}, fmt.Errorf("get transfer: %w", err)
	}
	if t.Amount, err = decimalFromText(amount); err != nil {
		return domain.Transfer{}, fmt.Errorf("parse amount: %w", err)
	}
	t.Status = domain.TransferStatus(status)
	return t, nil
}

func (r *LedgerRepository) UpdateTransferStatus(ctx context.Context, transferID string, status domain.TransferStatus) error {
	const stmt = `UPDATE transfers SET status = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt, transferID, string(status))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("update transfer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransferNotFound
	}
	return nil
}
