package app

import (
	"context"
	"time"

	"github.com/jjcsf/TicketTracker-sub001/internal/clock"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerRepository interface {
	CreatePayment(ctx context.Context, p domain.Payment) error
	CreatePayout(ctx context.Context, p domain.Payout) error
	CreateTransfer(ctx context.Context, t domain.Transfer) error
	GetTransfer(ctx context.Context, transferID string) (domain.Transfer, error)
	UpdateTransferStatus(ctx context.Context, transferID string, status domain.TransferStatus) error
}

// LedgerService records the raw money movements the aggregator folds over:
// payments, game-tied payouts, and attendance-right transfers.
type LedgerService struct {
	repo  LedgerRepository
	clock clock.Clock
}

func NewLedgerService(repo LedgerRepository, clk clock.Clock) *LedgerService {
	return &LedgerService{repo: repo, clock: clk}
}

type RecordPaymentInput struct {
	HolderID  string
	SeasonID  *string
	Direction domain.PaymentDirection
	Category  domain.PaymentCategory
	Amount    decimal.Decimal
	PaidOn    *time.Time
	Notes     *string
}

func (s *LedgerService) RecordPayment(ctx context.Context, in RecordPaymentInput) (domain.Payment, error) {
	if in.HolderID == "" {
		return domain.Payment{}, domain.ErrInvalidID
	}
	if !domain.ValidPaymentDirection(in.Direction) {
		return domain.Payment{}, domain.ErrInvalidDirection
	}
	if !domain.ValidPaymentCategory(in.Category) {
		return domain.Payment{}, domain.ErrInvalidCategory
	}
	if !in.Amount.IsPositive() {
		return domain.Payment{}, domain.ErrInvalidAmount
	}

	paidOn := s.clock.Now()
	if in.PaidOn != nil {
		paidOn = *in.PaidOn
	}

	payment := domain.Payment{
		ID:        newID(),
		HolderID:  in.HolderID,
		SeasonID:  in.SeasonID,
		Direction: in.Direction,
		Category:  in.Category,
		Amount:    in.Amount,
		PaidOn:    paidOn,
		Notes:     in.Notes,
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

type RecordPayoutInput struct {
	HolderID string
	GameID   string
	Amount   decimal.Decimal
	PaidOn   *time.Time
}

func (s *LedgerService) RecordPayout(ctx context.Context, in RecordPayoutInput) (domain.Payout, error) {
	if in.HolderID == "" || in.GameID == "" {
		return domain.Payout{}, domain.ErrInvalidID
	}
	if !in.Amount.IsPositive() {
		return domain.Payout{}, domain.ErrInvalidAmount
	}

	paidOn := s.clock.Now()
	if in.PaidOn != nil {
		paidOn = *in.PaidOn
	}

	payout := domain.Payout{
		ID:       newID(),
		HolderID: in.HolderID,
		GameID:   in.GameID,
		Amount:   in.Amount,
		PaidOn:   paidOn,
	}
	if err := s.repo.CreatePayout(ctx, payout); err != nil {
		return domain.Payout{}, err
	}
	return payout, nil
}

type RecordTransferInput struct {
	GameID       string
	SeatID       string
	FromHolderID string
	ToHolderID   string
	Amount       decimal.Decimal
}

func (s *LedgerService) RecordTransfer(ctx context.Context, in RecordTransferInput) (domain.Transfer, error) {
	if in.GameID == "" || in.SeatID == "" || in.FromHolderID == "" || in.ToHolderID == "" {
		return domain.Transfer{}, domain.ErrInvalidID
	}
	if !in.Amount.IsPositive() {
		return domain.Transfer{}, domain.ErrInvalidAmount
	}

	transfer := domain.Transfer{
		ID:           newID(),
		GameID:       in.GameID,
		SeatID:       in.SeatID,
		FromHolderID: in.FromHolderID,
		ToHolderID:   in.ToHolderID,
		Amount:       in.Amount,
		Status:       domain.TransferStatusPending,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.CreateTransfer(ctx, transfer); err != nil {
		return domain.Transfer{}, err
	}
	return transfer, nil
}

// CompleteTransfer settles a pending transfer. Completing an already
// completed transfer is a no-op returning the stored record.
func (s *LedgerService) CompleteTransfer(ctx context.Context, transferID string) (domain.Transfer, error) {
	if transferID == "" {
		return domain.Transfer{}, domain.ErrInvalidID
	}

	transfer, err := s.repo.GetTransfer(ctx, transferID)
	if err != nil {
		return domain.Transfer{}, err
	}
	if transfer.Status == domain.TransferStatusCompleted {
		return transfer, nil
	}

	if err := s.repo.UpdateTransferStatus(ctx, transferID, domain.TransferStatusCompleted); err != nil {
		return domain.Transfer{}, err
	}
	transfer.Status = domain.TransferStatusCompleted
	return transfer, nil
}
