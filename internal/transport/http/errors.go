package http

import (
	"encoding/json"
	"net/http"

	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeInvalidID           = "invalid_id"
	codeNameRequired        = "name_required"
	codeOpponentRequired    = "opponent_required"
	codeSeatAddrRequired    = "seat_address_required"
	codeInvalidYear         = "invalid_year"
	codeInvalidSeasonType   = "invalid_season_type"
	codeInvalidDirection    = "invalid_direction"
	codeInvalidCategory     = "invalid_category"
	codeInvalidStatus       = "invalid_status"
	codeInvalidAmount       = "invalid_amount"
	codeNegativeAmount      = "negative_amount"
	codeSeatAlreadyOwned    = "seat_already_owned"
	codeTeamNotFound        = "team_not_found"
	codeHolderNotFound      = "holder_not_found"
	codeSeatNotFound        = "seat_not_found"
	codeSeasonNotFound      = "season_not_found"
	codeGameNotFound        = "game_not_found"
	codeOwnershipNotFound   = "ownership_not_found"
	codeAttendanceNotFound  = "attendance_not_found"
	codeTransferNotFound    = "transfer_not_found"
	codeForbidden           = "forbidden"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps a service error onto the shared HTTP taxonomy:
// conflicts are 409, missing entities 404, caller input 400, the rest 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrSeatAlreadyOwned:
		writeError(w, http.StatusConflict, codeSeatAlreadyOwned, err.Error())
	case domain.ErrTeamNotFound:
		writeError(w, http.StatusNotFound, codeTeamNotFound, err.Error())
	case domain.ErrHolderNotFound:
		writeError(w, http.StatusNotFound, codeHolderNotFound, err.Error())
	case domain.ErrSeatNotFound:
		writeError(w, http.StatusNotFound, codeSeatNotFound, err.Error())
	case domain.ErrSeasonNotFound:
		writeError(w, http.StatusNotFound, codeSeasonNotFound, err.Error())
	case domain.ErrGameNotFound:
		writeError(w, http.StatusNotFound, codeGameNotFound, err.Error())
	case domain.ErrOwnershipNotFound:
		writeError(w, http.StatusNotFound, codeOwnershipNotFound, err.Error())
	case domain.ErrAttendanceNotFound:
		writeError(w, http.StatusNotFound, codeAttendanceNotFound, err.Error())
	case domain.ErrTransferNotFound:
		writeError(w, http.StatusNotFound, codeTransferNotFound, err.Error())
	case domain.ErrNameRequired:
		writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
	case domain.ErrOpponentRequired:
		writeError(w, http.StatusBadRequest, codeOpponentRequired, err.Error())
	case domain.ErrSeatAddrRequired:
		writeError(w, http.StatusBadRequest, codeSeatAddrRequired, err.Error())
	case domain.ErrInvalidYear:
		writeError(w, http.StatusBadRequest, codeInvalidYear, err.Error())
	case domain.ErrInvalidSeasonType:
		writeError(w, http.StatusBadRequest, codeInvalidSeasonType, err.Error())
	case domain.ErrInvalidDirection:
		writeError(w, http.StatusBadRequest, codeInvalidDirection, err.Error())
	case domain.ErrInvalidCategory:
		writeError(w, http.StatusBadRequest, codeInvalidCategory, err.Error())
	case domain.ErrInvalidStatus:
		writeError(w, http.StatusBadRequest, codeInvalidStatus, err.Error())
	case domain.ErrInvalidAmount:
		writeError(w, http.StatusBadRequest, codeInvalidAmount, err.Error())
	case domain.ErrNegativeAmount:
		writeError(w, http.StatusBadRequest, codeNegativeAmount, err.Error())
	case domain.ErrInvalidID:
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
