package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jjcsf/TicketTracker-sub001/internal/app"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

// GameAdminService is the minimal interface needed for season game endpoints.
type GameAdminService interface {
	CreateGame(ctx context.Context, in app.CreateGameInput) (domain.Game, error)
	ListGames(ctx context.Context, seasonID string) ([]domain.Game, error)
}

// OwnershipHandlerService is the minimal interface needed for ownership
// endpoints under a season.
type OwnershipHandlerService interface {
	Assign(ctx context.Context, in app.AssignOwnershipInput) (domain.SeatOwnership, error)
	Release(ctx context.Context, seatID, seasonID string) error
	OwnerOf(ctx context.Context, seatID, seasonID string) (*domain.SeatOwnership, error)
	AvailableSeats(ctx context.Context, seasonID, teamID string) ([]domain.Seat, error)
}

// SeasonReportService is the minimal interface needed for season reports.
type SeasonReportService interface {
	GetSeasonTotals(ctx context.Context, seasonID string) (app.SeasonTotals, error)
	GetOwnerProfits(ctx context.Context, seasonID string) ([]app.OwnerProfit, error)
	GetFinancialSummary(ctx context.Context, seasonID string) ([]app.HolderSummary, error)
}

// HandleSeasonResources routes everything under /seasons/{id}/...: the game
// schedule, ownership assignment, and the season-level financial reports.
func HandleSeasonResources(games GameAdminService, ownership OwnershipHandlerService, reports SeasonReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, rest, ok := parseSeasonSubPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch {
		case len(rest) == 1 && rest[0] == "games":
			handleSeasonGames(w, r, games, seasonID)
		case len(rest) == 1 && rest[0] == "ownerships":
			handleAssignOwnership(w, r, ownership, seasonID)
		case len(rest) == 2 && rest[0] == "ownerships":
			handleSeatOwnership(w, r, ownership, seasonID, rest[1])
		case len(rest) == 1 && rest[0] == "available-seats":
			handleAvailableSeats(w, r, ownership, seasonID)
		case len(rest) == 1 && rest[0] == "totals":
			handleSeasonTotals(w, r, reports, seasonID)
		case len(rest) == 1 && rest[0] == "owner-profits":
			handleOwnerProfits(w, r, reports, seasonID)
		case len(rest) == 1 && rest[0] == "financial-summary":
			handleFinancialSummary(w, r, reports, seasonID)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func handleSeasonGames(w http.ResponseWriter, r *http.Request, svc GameAdminService, seasonID string) {
	switch r.Method {
	case http.MethodGet:
		games, err := svc.ListGames(r.Context(), seasonID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp := make([]gameResponse, 0, len(games))
		for _, game := range games {
			resp = append(resp, newGameResponse(game))
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		var req createGameRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid date format")
			return
		}
		game, err := svc.CreateGame(r.Context(), app.CreateGameInput{
			SeasonID:   seasonID,
			Date:       date,
			GameTime:   req.GameTime,
			Opponent:   req.Opponent,
			SeasonType: domain.SeasonType(req.SeasonType),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, newGameResponse(game))
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func handleAssignOwnership(w http.ResponseWriter, r *http.Request, svc OwnershipHandlerService, seasonID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	var req assignOwnershipRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ownership, err := svc.Assign(r.Context(), app.AssignOwnershipInput{
		SeatID:   req.SeatID,
		SeasonID: seasonID,
		HolderID: req.HolderID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ownershipResponse{
		ID:       ownership.ID,
		SeatID:   ownership.SeatID,
		SeasonID: ownership.SeasonID,
		HolderID: ownership.HolderID,
	})
}

func handleSeatOwnership(w http.ResponseWriter, r *http.Request, svc OwnershipHandlerService, seasonID, seatID string) {
	switch r.Method {
	case http.MethodGet:
		ownership, err := svc.OwnerOf(r.Context(), seatID, seasonID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if ownership == nil {
			writeJSON(w, http.StatusOK, seatOwnerResponse{SeatID: seatID, SeasonID: seasonID, Assigned: false})
			return
		}
		writeJSON(w, http.StatusOK, seatOwnerResponse{
			SeatID:   ownership.SeatID,
			SeasonID: ownership.SeasonID,
			Assigned: true,
			HolderID: &ownership.HolderID,
		})
	case http.MethodDelete:
		if err := svc.Release(r.Context(), seatID, seasonID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func handleAvailableSeats(w http.ResponseWriter, r *http.Request, svc OwnershipHandlerService, seasonID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	teamID := r.URL.Query().Get("team_id")
	seats, err := svc.AvailableSeats(r.Context(), seasonID, teamID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]seatResponse, 0, len(seats))
	for _, seat := range seats {
		resp = append(resp, newSeatResponse(seat))
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleSeasonTotals(w http.ResponseWriter, r *http.Request, svc SeasonReportService, seasonID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	totals, err := svc.GetSeasonTotals(r.Context(), seasonID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seasonTotalsResponse{
		SeasonID:      totals.SeasonID,
		TotalCost:     totals.TotalCost.StringFixed(2),
		TotalRevenue:  totals.TotalRevenue.StringFixed(2),
		TotalProfit:   totals.TotalProfit.StringFixed(2),
		ProfitDisplay: domain.SignedWhole(totals.TotalProfit),
	})
}

func handleOwnerProfits(w http.ResponseWriter, r *http.Request, svc SeasonReportService, seasonID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	profits, err := svc.GetOwnerProfits(r.Context(), seasonID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]ownerProfitResponse, 0, len(profits))
	for _, p := range profits {
		resp = append(resp, ownerProfitResponse{
			HolderID:      p.HolderID,
			Name:          p.Name,
			Cost:          p.Cost.StringFixed(2),
			Revenue:       p.Revenue.StringFixed(2),
			Profit:        p.Profit.StringFixed(2),
			ProfitDisplay: domain.SignedWhole(p.Profit),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleFinancialSummary(w http.ResponseWriter, r *http.Request, svc SeasonReportService, seasonID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	summaries, err := svc.GetFinancialSummary(r.Context(), seasonID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := make([]holderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, holderSummaryResponse{
			TicketHolderID: s.HolderID,
			Name:           s.Name,
			SeatsOwned:     s.SeatsOwned,
			Balance:        s.Balance.StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type createGameRequest struct {
	Date       string  `json:"date"`
	GameTime   *string `json:"time,omitempty"`
	Opponent   string  `json:"opponent"`
	SeasonType string  `json:"season_type,omitempty"`
}

type gameResponse struct {
	ID         string  `json:"id"`
	SeasonID   string  `json:"season_id"`
	Date       string  `json:"date"`
	GameTime   *string `json:"time,omitempty"`
	Opponent   string  `json:"opponent"`
	SeasonType string  `json:"season_type"`
}

func newGameResponse(game domain.Game) gameResponse {
	return gameResponse{
		ID:         game.ID,
		SeasonID:   game.SeasonID,
		Date:       game.Date.Format(dateLayout),
		GameTime:   game.GameTime,
		Opponent:   game.Opponent,
		SeasonType: string(game.SeasonType),
	}
}

type assignOwnershipRequest struct {
	SeatID   string `json:"seat_id"`
	HolderID string `json:"holder_id"`
}

type ownershipResponse struct {
	ID       string `json:"id"`
	SeatID   string `json:"seat_id"`
	SeasonID string `json:"season_id"`
	HolderID string `json:"holder_id"`
}

type seatOwnerResponse struct {
	SeatID   string  `json:"seat_id"`
	SeasonID string  `json:"season_id"`
	Assigned bool    `json:"assigned"`
	HolderID *string `json:"holder_id,omitempty"`
}

type seasonTotalsResponse struct {
	SeasonID      string `json:"season_id"`
	TotalCost     string `json:"total_cost"`
	TotalRevenue  string `json:"total_revenue"`
	TotalProfit   string `json:"total_profit"`
	ProfitDisplay string `json:"profit_display"`
}

type ownerProfitResponse struct {
	HolderID      string `json:"holder_id"`
	Name          string `json:"name"`
	Cost          string `json:"cost"`
	Revenue       string `json:"revenue"`
	Profit        string `json:"profit"`
	ProfitDisplay string `json:"profit_display"`
}

type holderSummaryResponse struct {
	TicketHolderID string `json:"ticket_holder_id"`
	Name           string `json:"name"`
	SeatsOwned     int    `json:"seats_owned"`
	Balance        string `json:"balance"`
}

// parseSeasonSubPath matches /seasons/{id}/... and returns the trailing
// segments.
func parseSeasonSubPath(path string) (seasonID string, rest []string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "seasons" || parts[1] == "" {
		return "", nil, false
	}
	return parts[1], parts[2:], true
}
