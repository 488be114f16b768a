package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/jjcsf/TicketTracker-sub001/internal/app"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

// TeamAdminService is the minimal interface needed for team endpoints.
type TeamAdminService interface {
	CreateTeam(ctx context.Context, in app.CreateTeamInput) (domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
	CreateSeat(ctx context.Context, in app.CreateSeatInput) (domain.Seat, error)
	ListSeats(ctx context.Context, teamID string) ([]domain.Seat, error)
	CreateSeason(ctx context.Context, in app.CreateSeasonInput) (domain.Season, error)
	ListSeasons(ctx context.Context, teamID string) ([]domain.Season, error)
}

// HandleTeams returns an HTTP handler for creating/listing teams.
func HandleTeams(svc TeamAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			teams, err := svc.ListTeams(r.Context())
			if err != nil {
				writeServiceError(w, err)
				return
			}
			resp := make([]teamResponse, 0, len(teams))
			for _, team := range teams {
				resp = append(resp, teamResponse{ID: team.ID, Name: team.Name})
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req createTeamRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			team, err := svc.CreateTeam(r.Context(), app.CreateTeamInput{Name: req.Name})
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, teamResponse{ID: team.ID, Name: team.Name})
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleTeamResources returns an HTTP handler for the seat and season
// collections under /teams/{id}.
func HandleTeamResources(svc TeamAdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, sub, ok := parseTeamSubPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch sub {
		case "seats":
			handleTeamSeats(w, r, svc, teamID)
		case "seasons":
			handleTeamSeasons(w, r, svc, teamID)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func handleTeamSeats(w http.ResponseWriter, r *http.Request, svc TeamAdminService, teamID string) {
	switch r.Method {
	case http.MethodGet:
		seats, err := svc.ListSeats(r.Context(), teamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp := make([]seatResponse, 0, len(seats))
		for _, seat := range seats {
			resp = append(resp, newSeatResponse(seat))
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		var req createSeatRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		licenseCost, err := domain.ParseAmount(req.LicenseCost)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		seat, err := svc.CreateSeat(r.Context(), app.CreateSeatInput{
			TeamID:      teamID,
			Section:     req.Section,
			Row:         req.Row,
			Number:      req.Number,
			LicenseCost: licenseCost,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, newSeatResponse(seat))
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

func handleTeamSeasons(w http.ResponseWriter, r *http.Request, svc TeamAdminService, teamID string) {
	switch r.Method {
	case http.MethodGet:
		seasons, err := svc.ListSeasons(r.Context(), teamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp := make([]seasonResponse, 0, len(seasons))
		for _, season := range seasons {
			resp = append(resp, seasonResponse{ID: season.ID, TeamID: season.TeamID, Year: season.Year})
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		var req createSeasonRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		season, err := svc.CreateSeason(r.Context(), app.CreateSeasonInput{
			TeamID: teamID,
			Year:   req.Year,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, seasonResponse{ID: season.ID, TeamID: season.TeamID, Year: season.Year})
	default:
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	}
}

type createTeamRequest struct {
	Name string `json:"name"`
}

type teamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type createSeatRequest struct {
	Section     string `json:"section"`
	Row         string `json:"row"`
	Number      string `json:"number"`
	LicenseCost string `json:"license_cost"`
}

type seatResponse struct {
	ID          string `json:"id"`
	TeamID      string `json:"team_id"`
	Section     string `json:"section"`
	Row         string `json:"row"`
	Number      string `json:"number"`
	LicenseCost string `json:"license_cost"`
}

func newSeatResponse(seat domain.Seat) seatResponse {
	return seatResponse{
		ID:          seat.ID,
		TeamID:      seat.TeamID,
		Section:     seat.Section,
		Row:         seat.Row,
		Number:      seat.Number,
		LicenseCost: seat.LicenseCost.StringFixed(2),
	}
}

type createSeasonRequest struct {
	Year int `json:"year"`
}

type seasonResponse struct {
	ID     string `json:"id"`
	TeamID string `json:"team_id"`
	Year   int    `json:"year"`
}

// parseTeamSubPath matches /teams/{id}/{seats|seasons}.
func parseTeamSubPath(path string) (teamID, sub string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "teams" || parts[1] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
