package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/jjcsf/TicketTracker-sub001/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestLedgerRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewLedgerRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	seed := func(ctx context.Context) (holderID, gameID, seatID string) {
		teamID := testutil.InsertTeam(t, ctx, pool, "Avalanche")
		holderID = testutil.InsertHolder(t, ctx, pool, "Avery")
		seatID = testutil.InsertSeat(t, ctx, pool, teamID, "104", "R", "12", "4998.20")
		seasonID := testutil.InsertSeason(t, ctx, pool, teamID, 2025)
		gameID = testutil.InsertGame(t, ctx, pool, seasonID, "Dallas")
		return
	}

	t.Run("CreatePayment persists exact amount", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		holderID, _, _ := seed(ctx)

		err := repo.CreatePayment(ctx, domain.Payment{
			ID:        uuid.NewString(),
			HolderID:  holderID,
			Direction: domain.DirectionFromOwner,
			Category:  domain.CategorySeasonFee,
			Amount:    decimal.RequireFromString("1200.50"),
			PaidOn:    time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var amount string
		if err := pool.QueryRow(ctx, `SELECT amount::text FROM payments WHERE holder_id = $1`, holderID).Scan(&amount); err != nil {
			t.Fatalf("read back payment: %v", err)
		}
		if amount != "1200.50" {
			t.Fatalf("expected amount 1200.50, got %s", amount)
		}
	})

	t.Run("CreatePayment maps missing holder", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		err := repo.CreatePayment(ctx, domain.Payment{
			ID:        uuid.NewString(),
			HolderID:  "00000000-0000-0000-0000-000000000001",
			Direction: domain.DirectionFromOwner,
			Category:  domain.CategoryOther,
			Amount:    decimal.RequireFromString("10"),
			PaidOn:    time.Now().UTC(),
		})
		if err != domain.ErrHolderNotFound {
			t.Fatalf("expected ErrHolderNotFound, got %v", err)
		}
	})

	t.Run("CreatePayout ties money to a game", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		holderID, gameID, _ := seed(ctx)

		err := repo.CreatePayout(ctx, domain.Payout{
			ID:       uuid.NewString(),
			HolderID: holderID,
			GameID:   gameID,
			Amount:   decimal.RequireFromString("85.25"),
			PaidOn:   time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("transfer lifecycle", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		holderID, gameID, seatID := seed(ctx)
		buyerID := testutil.InsertHolder(t, ctx, pool, "Blake")

		transferID := uuid.NewString()
		err := repo.CreateTransfer(ctx, domain.Transfer{
			ID:           transferID,
			GameID:       gameID,
			SeatID:       seatID,
			FromHolderID: holderID,
			ToHolderID:   buyerID,
			Amount:       decimal.RequireFromString("60"),
			Status:       domain.TransferStatusPending,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tr, err := repo.GetTransfer(ctx, transferID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tr.Status != domain.TransferStatusPending {
			t.Fatalf("expected pending, got %s", tr.Status)
		}
		if tr.Amount.StringFixed(2) != "60.00" {
			t.Fatalf("expected amount 60.00, got %s", tr.Amount.StringFixed(2))
		}

		if err := repo.UpdateTransferStatus(ctx, transferID, domain.TransferStatusCompleted); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		tr, err = repo.GetTransfer(ctx, transferID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tr.Status != domain.TransferStatusCompleted {
			t.Fatalf("expected completed, got %s", tr.Status)
		}
	})

	t.Run("missing transfer is not found", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		missingID := "00000000-0000-0000-0000-000000000001"
		if _, err := repo.GetTransfer(ctx, missingID); err != domain.ErrTransferNotFound {
			t.Fatalf("expected ErrTransferNotFound, got %v", err)
		}
		if err := repo.UpdateTransferStatus(ctx, missingID, domain.TransferStatusCompleted); err != domain.ErrTransferNotFound {
			t.Fatalf("expected ErrTransferNotFound, got %v", err)
		}
	})
}
