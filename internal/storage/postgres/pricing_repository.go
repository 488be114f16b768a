package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

type PricingRepository struct {
	pool *pgxpool.Pool
}

func NewPricingRepository(pool *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{pool: pool}
}

// UpsertPricing creates or updates the (game, seat) pricing record in one
// statement. COALESCE keeps the stored value wherever the caller supplied
// nothing, so an unsupplied field is never zeroed.
func (r *PricingRepository) UpsertPricing(ctx context.Context, id, gameID, seatID string, cost, soldPrice decimal.NullDecimal) (domain.GamePricing, error) {
	const stmt = `
INSERT INTO game_pricing (id, game_id, seat_id, cost, sold_price)
VALUES ($1, $2, $3, $4::numeric, $5::numeric)
ON CONFLICT ON CONSTRAINT game_pricing_game_seat_key DO UPDATE
SET cost = COALESCE(EXCLUDED.cost, game_pricing.cost),
    sold_price = COALESCE(EXCLUDED.sold_price, game_pricing.sold_price)
RETURNING id, game_id, seat_id, cost::text, sold_price::text`

	var p domain.GamePricing
	var costText, soldText *string
	err := r.pool.QueryRow(ctx, stmt,
		id,
		gameID,
		seatID,
		nullDecimalParam(cost),
		nullDecimalParam(soldPrice),
	).Scan(&p.ID, &p.GameID, &p.SeatID, &costText, &soldText)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.GamePricing{}, domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return domain.GamePricing{}, notFound
		}
		return domain.GamePricing{}, fmt.Errorf("upsert pricing: %w", err)
	}
	if p.Cost, err = nullDecimalFromText(costText); err != nil {
		return domain.GamePricing{}, fmt.Errorf("parse cost: %w", err)
	}
	if p.SoldPrice, err = nullDecimalFromText(soldText); err != nil {
		return domain.GamePricing{}, fmt.Errorf("parse sold price: %w", err)
	}
	return p, nil
}

func (r *PricingRepository) ListPricingByGame(ctx context.Context, gameID string) ([]domain.GamePricing, error) {
	return listPricing(ctx, r.pool, `game_id = $1`, gameID)
}

func listPricing(ctx context.Context, pool *pgxpool.Pool, where string, arg any) ([]domain.GamePricing, error) {
	query := `
SELECT id, game_id, seat_id, cost::text, sold_price::text
FROM game_pricing
WHERE ` + where + `
ORDER BY id`

	rows, err := pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list pricing: %w", err)
	}
	defer rows.Close()

	records := []domain.GamePricing{}
	for rows.Next() {
		var p domain.GamePricing
		var costText, soldText *string
		if err := rows.Scan(&p.ID, &p.GameID, &p.SeatID, &costText, &soldText); err != nil {
			return nil, fmt.Errorf("scan pricing: %w", err)
		}
		if p.Cost, err = nullDecimalFromText(costText); err != nil {
			return nil, fmt.Errorf("parse cost: %w", err)
		}
		if p.SoldPrice, err = nullDecimalFromText(soldText); err != nil {
			return nil, fmt.Errorf("parse sold price: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return records, nil
}
