package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/jjcsf/TicketTracker-sub001/internal/app"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

// PricingHandlerService is the minimal interface needed for pricing
// endpoints under a game.
type PricingHandlerService interface {
	SetPricing(ctx context.Context, in app.SetPricingInput) (domain.GamePricing, error)
	PricingFor(ctx context.Context, gameID string) ([]domain.GamePricing, error)
}

// GameReportService is the minimal interface needed for per-game financials.
type GameReportService interface {
	GameFinancials(ctx context.Context, gameID string) (app.GameFinancials, error)
}

// AttendanceHandlerService is the minimal interface needed for attendance
// endpoints under a game.
type AttendanceHandlerService interface {
	SetAttendance(ctx context.Context, in app.SetAttendanceInput) (domain.GameAttendance, error)
	ClearAttendance(ctx context.Context, gameID, seatID string) error
	AttendanceFor(ctx context.Context, gameID string) ([]domain.GameAttendance, error)
}

// HandleGameResources routes everything under /games/{id}/...: the pricing
// ledger, the per-game financial rollup, and attendance.
func HandleGameResources(pricing PricingHandlerService, reports GameReportService, attendance AttendanceHandlerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, rest, ok := parseGameSubPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch {
		case len(rest) == 1 && rest[0] == "pricing":
			handleGamePricing(w, r, pricing, gameID)
		case len(rest) == 1 && rest[0] == "financials":
			handleGameFinancials(w, r, reports, gameID)
		case len(rest) == 1 && rest[0] == "attendance":
			handleGameAttendance(w, r, attendance, gameID)
		case len(rest) == 2 && rest[0] == "attendance":
			handleSeatAttendance(w, r, attendance, gameID, rest[1])
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func handleGamePricing(w http.ResponseWriter, r *http.Request, svc PricingHandlerService, gameID string) {
	switch r.Method {
	case http.MethodGet:
		records, err := svc.PricingFor(r.Context(), gameID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp := make([]pricingResponse, 0, len(records))
		for _, rec := range records {
			resp = append(resp, newPricingResponse(rec))
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		var req setPricingRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		cost, err := optionalAmount(req.Cost)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		soldPrice, err := optionalAmount(req.SoldPrice)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		record, err := svc.SetPricing(r.Context(), app.SetPricingInput{
			GameID:    gameID,
			SeatID:    req.SeatID,
			Cost:      cost,
			SoldPrice: soldPrice,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newPricingResponse(record))
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func handleGameFinancials(w http.ResponseWriter, r *http.Request, svc GameReportService, gameID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	fin, err := svc.GameFinancials(r.Context(), gameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameFinancialsResponse{
		GameID:           fin.GameID,
		TotalCost:        fin.TotalCost.StringFixed(2),
		TotalSold:        fin.TotalSold.StringFixed(2),
		Profit:           fin.Profit.StringFixed(2),
		ProfitDisplay:    domain.SignedWhole(fin.Profit),
		SeatsWithPricing: fin.SeatsWithPricing,
	})
}

func handleGameAttendance(w http.ResponseWriter, r *http.Request, svc AttendanceHandlerService, gameID string) {
	switch r.Method {
	case http.MethodGet:
		records, err := svc.AttendanceFor(r.Context(), gameID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp := make([]attendanceResponse, 0, len(records))
		for _, rec := range records {
			resp = append(resp, attendanceResponse{
				ID:       rec.ID,
				GameID:   rec.GameID,
				SeatID:   rec.SeatID,
				HolderID: rec.HolderID,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		var req setAttendanceRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		record, err := svc.SetAttendance(r.Context(), app.SetAttendanceInput{
			GameID:   gameID,
			SeatID:   req.SeatID,
			HolderID: req.HolderID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, attendanceResponse{
			ID:       record.ID,
			GameID:   record.GameID,
			SeatID:   record.SeatID,
			HolderID: record.HolderID,
		})
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func handleSeatAttendance(w http.ResponseWriter, r *http.Request, svc AttendanceHandlerService, gameID, seatID string) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}
	if err := svc.ClearAttendance(r.Context(), gameID, seatID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setPricingRequest struct {
	SeatID string `json:"seat_id"`
	// Absent fields mean "leave the stored value alone".
	Cost      *string `json:"cost,omitempty"`
	SoldPrice *string `json:"sold_price,omitempty"`
}

type pricingResponse struct {
	ID        string  `json:"id"`
	GameID    string  `json:"game_id"`
	SeatID    string  `json:"seat_id"`
	Cost      *string `json:"cost"`
	SoldPrice *string `json:"sold_price"`
}

func newPricingResponse(rec domain.GamePricing) pricingResponse {
	resp := pricingResponse{
		ID:     rec.ID,
		GameID: rec.GameID,
		SeatID: rec.SeatID,
	}
	if rec.Cost.Valid {
		s := rec.Cost.Decimal.StringFixed(2)
		resp.Cost = &s
	}
	if rec.SoldPrice.Valid {
		s := rec.SoldPrice.Decimal.StringFixed(2)
		resp.SoldPrice = &s
	}
	return resp
}

type gameFinancialsResponse struct {
	GameID           string `json:"game_id"`
	TotalCost        string `json:"total_cost"`
	TotalSold        string `json:"total_sold"`
	Profit           string `json:"profit"`
	ProfitDisplay    string `json:"profit_display"`
	SeatsWithPricing int    `json:"seats_with_pricing"`
}

type setAttendanceRequest struct {
	SeatID   string `json:"seat_id"`
	HolderID string `json:"holder_id"`
}

type attendanceResponse struct {
	ID       string `json:"id"`
	GameID   string `json:"game_id"`
	SeatID   string `json:"seat_id"`
	HolderID string `json:"holder_id"`
}

// optionalAmount parses a nullable monetary string, keeping nil as nil.
func optionalAmount(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := domain.ParseAmount(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseGameSubPath matches /games/{id}/... and returns the trailing
// segments.
func parseGameSubPath(path string) (gameID string, rest []string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "games" || parts[1] == "" {
		return "", nil, false
	}
	return parts[1], parts[2:], true
}
