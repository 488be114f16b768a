package postgres

import (
	"context"
	"testing"

	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/jjcsf/TicketTracker-sub001/internal/testutil"
)

func TestFinanceRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewFinanceRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("ListPricingBySeason spans the season's games only", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		teamID := testutil.InsertTeam(t, ctx, pool, "Avalanche")
		seatID := testutil.InsertSeat(t, ctx, pool, teamID, "104", "R", "12", "4998.20")
		seasonID := testutil.InsertSeason(t, ctx, pool, teamID, 2025)
		otherSeasonID := testutil.InsertSeason(t, ctx, pool, teamID, 2026)
		game1 := testutil.InsertGame(t, ctx, pool, seasonID, "Dallas")
		game2 := testutil.InsertGame(t, ctx, pool, seasonID, "Winnipeg")
		otherGame := testutil.InsertGame(t, ctx, pool, otherSeasonID, "Vegas")

		cost := "100.00"
		sold := "150.00"
		testutil.InsertPricing(t, ctx, pool, game1, seatID, &cost, &sold)
		testutil.InsertPricing(t, ctx, pool, game2, seatID, &cost, nil)
		testutil.InsertPricing(t, ctx, pool, otherGame, seatID, &cost, &sold)

		records, err := repo.ListPricingBySeason(ctx, seasonID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records in season, got %d", len(records))
		}
		for _, rec := range records {
			if rec.GameID == otherGame {
				t.Fatalf("expected other season's pricing excluded")
			}
		}
	})

	t.Run("unset pricing fields come back unset", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		teamID := testutil.InsertTeam(t, ctx, pool, "Avalanche")
		seatID := testutil.InsertSeat(t, ctx, pool, teamID, "104", "R", "12", "0")
		seasonID := testutil.InsertSeason(t, ctx, pool, teamID, 2025)
		gameID := testutil.InsertGame(t, ctx, pool, seasonID, "Dallas")

		cost := "450.00"
		testutil.InsertPricing(t, ctx, pool, gameID, seatID, &cost, nil)

		records, err := repo.ListPricingByGame(ctx, gameID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		rec := records[0]
		if !rec.Cost.Valid || rec.Cost.Decimal.StringFixed(2) != "450.00" {
			t.Fatalf("expected cost 450.00, got %+v", rec.Cost)
		}
		if rec.SoldPrice.Valid {
			t.Fatalf("expected sold price unset, got %+v", rec.SoldPrice)
		}
	})

	t.Run("GetSeatsByIDs returns license costs exactly", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		teamID := testutil.InsertTeam(t, ctx, pool, "Avalanche")
		seat1 := testutil.InsertSeat(t, ctx, pool, teamID, "104", "R", "12", "4998.20")
		seat2 := testutil.InsertSeat(t, ctx, pool, teamID, "104", "R", "13", "4998.19")

		seats, err := repo.GetSeatsByIDs(ctx, []string{seat1, seat2})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(seats) != 2 {
			t.Fatalf("expected 2 seats, got %d", len(seats))
		}
		total := seats[0].LicenseCost.Add(seats[1].LicenseCost)
		if total.StringFixed(2) != "9996.39" {
			t.Fatalf("expected summed license cost 9996.39, got %s", total.StringFixed(2))
		}

		seats, err = repo.GetSeatsByIDs(ctx, nil)
		if err != nil {
			t.Fatalf("expected no error on empty input, got %v", err)
		}
		if len(seats) != 0 {
			t.Fatalf("expected empty result, got %d", len(seats))
		}
	})

	t.Run("GetGame and GetSeason map missing rows", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		missingID := "00000000-0000-0000-0000-000000000001"
		if _, err := repo.GetGame(ctx, missingID); err != domain.ErrGameNotFound {
			t.Fatalf("expected ErrGameNotFound, got %v", err)
		}
		if _, err := repo.GetSeason(ctx, missingID); err != domain.ErrSeasonNotFound {
			t.Fatalf("expected ErrSeasonNotFound, got %v", err)
		}
		if _, err := repo.GetHolder(ctx, missingID); err != domain.ErrHolderNotFound {
			t.Fatalf("expected ErrHolderNotFound, got %v", err)
		}
		if _, err := repo.GetGame(ctx, "not-a-uuid"); err != domain.ErrInvalidID {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("ListTransfersByHolder matches either side", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		teamID := testutil.InsertTeam(t, ctx, pool, "Avalanche")
		seatID := testutil.InsertSeat(t, ctx, pool, teamID, "104", "R", "12", "0")
		seasonID := testutil.InsertSeason(t, ctx, pool, teamID, 2025)
		gameID := testutil.InsertGame(t, ctx, pool, seasonID, "Dallas")
		seller := testutil.InsertHolder(t, ctx, pool, "Avery")
		buyer := testutil.InsertHolder(t, ctx, pool, "Blake")

		if _, err := pool.Exec(ctx, `
INSERT INTO transfers (game_id, seat_id, from_holder_id, to_holder_id, amount, status)
VALUES ($1, $2, $3, $4, 60, 'pending')`,
			gameID, seatID, seller, buyer,
		); err != nil {
			t.Fatalf("insert transfer: %v", err)
		}

		for _, holderID := range []string{seller, buyer} {
			transfers, err := repo.ListTransfersByHolder(ctx, holderID)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(transfers) != 1 {
				t.Fatalf("expected 1 transfer for %s, got %d", holderID, len(transfers))
			}
		}
	})
}
