package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/jjcsf/TicketTracker-sub001/internal/app"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

// HolderAdminService is the minimal interface needed for holder endpoints.
type HolderAdminService interface {
	CreateHolder(ctx context.Context, in app.CreateHolderInput) (domain.TicketHolder, error)
	ListHolders(ctx context.Context) ([]domain.TicketHolder, error)
}

// NetPositionService reports a holder's settled cash position.
type NetPositionService interface {
	GetNetCashPosition(ctx context.Context, holderID string) (app.NetPosition, error)
}

// HandleHolders returns an HTTP handler for creating/listing ticket holders.
func HandleHolders(svc HolderAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			holders, err := svc.ListHolders(r.Context())
			if err != nil {
				writeServiceError(w, err)
				return
			}
			resp := make([]holderResponse, 0, len(holders))
			for _, holder := range holders {
				resp = append(resp, newHolderResponse(holder))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req createHolderRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			holder, err := svc.CreateHolder(r.Context(), app.CreateHolderInput{
				Name:  req.Name,
				Email: req.Email,
				Notes: req.Notes,
			})
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, newHolderResponse(holder))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleHolderNetPosition returns an HTTP handler for
// GET /holders/{id}/net-position.
func HandleHolderNetPosition(svc NetPositionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holderID, ok := parseHolderNetPositionPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		pos, err := svc.GetNetCashPosition(r.Context(), holderID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, netPositionResponse{
			HolderID:          pos.HolderID,
			PaidIn:            pos.PaidIn.StringFixed(2),
			Returned:          pos.Returned.StringFixed(2),
			Payouts:           pos.Payouts.StringFixed(2),
			TransfersPaid:     pos.TransfersPaid.StringFixed(2),
			TransfersReceived: pos.TransfersReceived.StringFixed(2),
			Net:               pos.Net.StringFixed(2),
			NetDisplay:        domain.SignedWhole(pos.Net),
		})
	}
}

type createHolderRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

type holderResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

func newHolderResponse(holder domain.TicketHolder) holderResponse {
	return holderResponse{
		ID:    holder.ID,
		Name:  holder.Name,
		Email: holder.Email,
		Notes: holder.Notes,
	}
}

type netPositionResponse struct {
	HolderID          string `json:"holder_id"`
	PaidIn            string `json:"paid_in"`
	Returned          string `json:"returned"`
	Payouts           string `json:"payouts"`
	TransfersPaid     string `json:"transfers_paid"`
	TransfersReceived string `json:"transfers_received"`
	Net               string `json:"net"`
	NetDisplay        string `json:"net_display"`
}

// parseHolderNetPositionPath matches /holders/{id}/net-position.
func parseHolderNetPositionPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "holders" || parts[1] == "" || parts[2] != "net-position" {
		return "", false
	}
	return parts[1], true
}
