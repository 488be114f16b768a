package app

import (
	"context"
	"testing"
	"time"

	"github.com/jjcsf/TicketTracker-sub001/internal/clock"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

func TestLedgerService_RecordPayment(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("records payment and defaults paid_on to now", func(t *testing.T) {
		repo := newFakeLedgerRepo()
		svc := NewLedgerService(repo, clock.NewFixed(now))

		p, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
			HolderID:  "holder-1",
			Direction: domain.DirectionFromOwner,
			Category:  domain.CategorySeasonFee,
			Amount:    decimal.RequireFromString("1200.50"),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected payment ID to be set")
		}
		if !p.PaidOn.Equal(now) {
			t.Fatalf("expected paid_on %v, got %v", now, p.PaidOn)
		}
		if len(repo.payments) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(repo.payments))
		}
	})

	t.Run("explicit paid_on wins over clock", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedgerRepo(), clock.NewFixed(now))
		paidOn := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)

		p, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
			HolderID:  "holder-1",
			Direction: domain.DirectionToOwner,
			Category:  domain.CategoryOther,
			Amount:    decimal.RequireFromString("75"),
			PaidOn:    &paidOn,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !p.PaidOn.Equal(paidOn) {
			t.Fatalf("expected paid_on %v, got %v", paidOn, p.PaidOn)
		}
	})

	t.Run("validates direction, category and amount", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedgerRepo(), clock.NewFixed(now))

		_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
			HolderID: "holder-1", Direction: "sideways", Category: domain.CategoryOther,
			Amount: decimal.RequireFromString("10"),
		})
		if err != domain.ErrInvalidDirection {
			t.Fatalf("expected ErrInvalidDirection, got %v", err)
		}

		_, err = svc.RecordPayment(context.Background(), RecordPaymentInput{
			HolderID: "holder-1", Direction: domain.DirectionFromOwner, Category: "snacks",
			Amount: decimal.RequireFromString("10"),
		})
		if err != domain.ErrInvalidCategory {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}

		_, err = svc.RecordPayment(context.Background(), RecordPaymentInput{
			HolderID: "holder-1", Direction: domain.DirectionFromOwner, Category: domain.CategoryOther,
			Amount: decimal.Zero,
		})
		if err != domain.ErrInvalidAmount {
			t.Fatalf("expected ErrInvalidAmount for zero amount, got %v", err)
		}
	})
}

func TestLedgerService_RecordPayout(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("records game-tied payout", func(t *testing.T) {
		repo := newFakeLedgerRepo()
		svc := NewLedgerService(repo, clock.NewFixed(now))

		p, err := svc.RecordPayout(context.Background(), RecordPayoutInput{
			HolderID: "holder-1", GameID: "game-1",
			Amount: decimal.RequireFromString("85"),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if p.GameID != "game-1" {
			t.Fatalf("expected game-1, got %s", p.GameID)
		}
		if len(repo.payouts) != 1 {
			t.Fatalf("expected 1 payout, got %d", len(repo.payouts))
		}
	})

	t.Run("requires positive amount", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedgerRepo(), clock.NewFixed(now))

		_, err := svc.RecordPayout(context.Background(), RecordPayoutInput{
			HolderID: "holder-1", GameID: "game-1",
			Amount: decimal.RequireFromString("-5"),
		})
		if err != domain.ErrInvalidAmount {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestLedgerService_Transfers(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("new transfer starts pending", func(t *testing.T) {
		repo := newFakeLedgerRepo()
		svc := NewLedgerService(repo, clock.NewFixed(now))

		tr, err := svc.RecordTransfer(context.Background(), RecordTransferInput{
			GameID: "game-1", SeatID: "seat-1",
			FromHolderID: "holder-1", ToHolderID: "holder-2",
			Amount: decimal.RequireFromString("60"),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tr.Status != domain.TransferStatusPending {
			t.Fatalf("expected pending, got %s", tr.Status)
		}
		if !tr.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, tr.CreatedAt)
		}
	})

	t.Run("complete settles a pending transfer", func(t *testing.T) {
		repo := newFakeLedgerRepo()
		repo.transfers["tr-1"] = domain.Transfer{
			ID: "tr-1", GameID: "game-1", SeatID: "seat-1",
			FromHolderID: "holder-1", ToHolderID: "holder-2",
			Amount: decimal.RequireFromString("60"),
			Status: domain.TransferStatusPending,
		}
		svc := NewLedgerService(repo, clock.NewFixed(now))

		tr, err := svc.CompleteTransfer(context.Background(), "tr-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tr.Status != domain.TransferStatusCompleted {
			t.Fatalf("expected completed, got %s", tr.Status)
		}
		if repo.statusUpdates != 1 {
			t.Fatalf("expected 1 status update, got %d", repo.statusUpdates)
		}
	})

	t.Run("completing twice is a no-op", func(t *testing.T) {
		repo := newFakeLedgerRepo()
		repo.transfers["tr-1"] = domain.Transfer{
			ID: "tr-1", Status: domain.TransferStatusCompleted,
			Amount: decimal.RequireFromString("60"),
		}
		svc := NewLedgerService(repo, clock.NewFixed(now))

		tr, err := svc.CompleteTransfer(context.Background(), "tr-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tr.Status != domain.TransferStatusCompleted {
			t.Fatalf("expected completed, got %s", tr.Status)
		}
		if repo.statusUpdates != 0 {
			t.Fatalf("expected no status update on already-completed transfer, got %d", repo.statusUpdates)
		}
	})

	t.Run("unknown transfer is not found", func(t *testing.T) {
		svc := NewLedgerService(newFakeLedgerRepo(), clock.NewFixed(now))

		if _, err := svc.CompleteTransfer(context.Background(), "missing"); err != domain.ErrTransferNotFound {
			t.Fatalf("expected ErrTransferNotFound, got %v", err)
		}
	})
}

type fakeLedgerRepo struct {
	payments      []domain.Payment
	payouts       []domain.Payout
	transfers     map[string]domain.Transfer
	statusUpdates int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{transfers: make(map[string]domain.Transfer)}
}

func (f *fakeLedgerRepo) CreatePayment(_ context.Context, p domain.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakeLedgerRepo) CreatePayout(_ context.Context, p domain.Payout) error {
	f.payouts = append(f.payouts, p)
	return nil
}

func (f *fakeLedgerRepo) CreateTransfer(_ context.Context, t domain.Transfer) error {
	f.transfers[t.ID] = t
	return nil
}

func (f *fakeLedgerRepo) GetTransfer(_ context.Context, transferID string) (domain.Transfer, error) {
	tr, ok := f.transfers[transferID]
	if !ok {
		return domain.Transfer{}, domain.ErrTransferNotFound
	}
	return tr, nil
}

func (f *fakeLedgerRepo) UpdateTransferStatus(_ context.Context, transferID string, status domain.TransferStatus) error {
	tr, ok := f.transfers[transferID]
	if !ok {
		return domain.ErrTransferNotFound
	}
	tr.Status = status
	f.transfers[transferID] = tr
	f.statusUpdates++
	return nil
}
