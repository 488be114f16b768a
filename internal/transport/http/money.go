package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jjcsf/TicketTracker-sub001/internal/app"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

// MoneyLedgerService is the minimal interface needed for payment, payout and
// transfer endpoints.
type MoneyLedgerService interface {
	RecordPayment(ctx context.Context, in app.RecordPaymentInput) (domain.Payment, error)
	RecordPayout(ctx context.Context, in app.RecordPayoutInput) (domain.Payout, error)
	RecordTransfer(ctx context.Context, in app.RecordTransferInput) (domain.Transfer, error)
	CompleteTransfer(ctx context.Context, transferID string) (domain.Transfer, error)
}

// HandlePayments returns an HTTP handler for POST /payments.
func HandlePayments(svc MoneyLedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req recordPaymentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		amount, err := domain.ParseAmount(req.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		paidOn, err := optionalDate(req.PaidOn)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid paid_on format")
			return
		}

		payment, err := svc.RecordPayment(r.Context(), app.RecordPaymentInput{
			HolderID:  req.HolderID,
			SeasonID:  req.SeasonID,
			Direction: domain.PaymentDirection(req.Direction),
			Category:  domain.PaymentCategory(req.Category),
			Amount:    amount,
			PaidOn:    paidOn,
			Notes:     req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, paymentResponse{
			ID:        payment.ID,
			HolderID:  payment.HolderID,
			SeasonID:  payment.SeasonID,
			Direction: string(payment.Direction),
			Category:  string(payment.Category),
			Amount:    payment.Amount.StringFixed(2),
			PaidOn:    payment.PaidOn.Format(dateLayout),
			Notes:     payment.Notes,
		})
	}
}

// HandlePayouts returns an HTTP handler for POST /payouts.
func HandlePayouts(svc MoneyLedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req recordPayoutRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		amount, err := domain.ParseAmount(req.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		paidOn, err := optionalDate(req.PaidOn)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid paid_on format")
			return
		}

		payout, err := svc.RecordPayout(r.Context(), app.RecordPayoutInput{
			HolderID: req.HolderID,
			GameID:   req.GameID,
			Amount:   amount,
			PaidOn:   paidOn,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, payoutResponse{
			ID:       payout.ID,
			HolderID: payout.HolderID,
			GameID:   payout.GameID,
			Amount:   payout.Amount.StringFixed(2),
			PaidOn:   payout.PaidOn.Format(dateLayout),
		})
	}
}

// HandleTransfers returns an HTTP handler for POST /transfers.
func HandleTransfers(svc MoneyLedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req recordTransferRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		amount, err := domain.ParseAmount(req.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		transfer, err := svc.RecordTransfer(r.Context(), app.RecordTransferInput{
			GameID:       req.GameID,
			SeatID:       req.SeatID,
			FromHolderID: req.FromHolderID,
			ToHolderID:   req.ToHolderID,
			Amount:       amount,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, newTransferResponse(transfer))
	}
}

// HandleTransferComplete returns an HTTP handler for
// POST /transfers/{id}/complete.
func HandleTransferComplete(svc MoneyLedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transferID, ok := parseTransferCompletePath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		transfer, err := svc.CompleteTransfer(r.Context(), transferID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newTransferResponse(transfer))
	}
}

type recordPaymentRequest struct {
	HolderID  string  `json:"holder_id"`
	SeasonID  *string `json:"season_id,omitempty"`
	Direction string  `json:"direction"`
	Category  string  `json:"category"`
	Amount    string  `json:"amount"`
	PaidOn    *string `json:"paid_on,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

type paymentResponse struct {
	ID        string  `json:"id"`
	HolderID  string  `json:"holder_id"`
	SeasonID  *string `json:"season_id,omitempty"`
	Direction string  `json:"direction"`
	Category  string  `json:"category"`
	Amount    string  `json:"amount"`
	PaidOn    string  `json:"paid_on"`
	Notes     *string `json:"notes,omitempty"`
}

type recordPayoutRequest struct {
	HolderID string  `json:"holder_id"`
	GameID   string  `json:"game_id"`
	Amount   string  `json:"amount"`
	PaidOn   *string `json:"paid_on,omitempty"`
}

type payoutResponse struct {
	ID       string `json:"id"`
	HolderID string `json:"holder_id"`
	GameID   string `json:"game_id"`
	Amount   string `json:"amount"`
	PaidOn   string `json:"paid_on"`
}

type recordTransferRequest struct {
	GameID       string `json:"game_id"`
	SeatID       string `json:"seat_id"`
	FromHolderID string `json:"from_holder_id"`
	ToHolderID   string `json:"to_holder_id"`
	Amount       string `json:"amount"`
}

type transferResponse struct {
	ID           string `json:"id"`
	GameID       string `json:"game_id"`
	SeatID       string `json:"seat_id"`
	FromHolderID string `json:"from_holder_id"`
	ToHolderID   string `json:"to_holder_id"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
}

func newTransferResponse(t domain.Transfer) transferResponse {
	return transferResponse{
		ID:           t.ID,
		GameID:       t.GameID,
		SeatID:       t.SeatID,
		FromHolderID: t.FromHolderID,
		ToHolderID:   t.ToHolderID,
		Amount:       t.Amount.StringFixed(2),
		Status:       string(t.Status),
	}
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTransferCompletePath matches /transfers/{id}/complete.
func parseTransferCompletePath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "transfers" || parts[1] == "" || parts[2] != "complete" {
		return "", false
	}
	return parts[1], true
}
