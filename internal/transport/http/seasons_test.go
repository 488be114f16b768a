package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jjcsf/TicketTracker-sub001/internal/app"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

func TestHandleAssignOwnership(t *testing.T) {
	t.Parallel()

	successOwnership := domain.SeatOwnership{
		ID:       "own-1",
		SeatID:   "seat-1",
		SeasonID: "season-1",
		HolderID: "holder-1",
	}

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"seat_id":"seat-1","holder_id":"holder-1"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"id":"own-1"`,
		},
		{
			name:           "invalid json",
			body:           `{"seat_id":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "seat already owned",
			body:           `{"seat_id":"seat-1","holder_id":"holder-2"}`,
			serviceErr:     domain.ErrSeatAlreadyOwned,
			expectedStatus: http.StatusConflict,
			expectedSubstr: `"code":"seat_already_owned"`,
		},
		{
			name:           "seat not found",
			body:           `{"seat_id":"seat-9","holder_id":"holder-1"}`,
			serviceErr:     domain.ErrSeatNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "internal error",
			body:           `{"seat_id":"seat-1","holder_id":"holder-1"}`,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubOwnershipService{ownership: successOwnership, err: tt.serviceErr}
			handler := HandleSeasonResources(nil, svc, nil)

			req := httptest.NewRequest(http.MethodPost, "/seasons/season-1/ownerships", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedSubstr != "" && !strings.Contains(rec.Body.String(), tt.expectedSubstr) {
				t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestHandleSeatOwnership(t *testing.T) {
	t.Parallel()

	t.Run("assigned seat reports its owner", func(t *testing.T) {
		svc := &stubOwnershipService{ownership: domain.SeatOwnership{
			ID: "own-1", SeatID: "seat-1", SeasonID: "season-1", HolderID: "holder-1",
		}, found: true}
		handler := HandleSeasonResources(nil, svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/seasons/season-1/ownerships/seat-1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"assigned":true`) || !strings.Contains(body, `"holder_id":"holder-1"`) {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("unassigned seat is not an error", func(t *testing.T) {
		svc := &stubOwnershipService{}
		handler := HandleSeasonResources(nil, svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/seasons/season-1/ownerships/seat-1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"assigned":false`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("release returns no content", func(t *testing.T) {
		svc := &stubOwnershipService{}
		handler := HandleSeasonResources(nil, svc, nil)

		req := httptest.NewRequest(http.MethodDelete, "/seasons/season-1/ownerships/seat-1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
	})

	t.Run("release of unowned seat is 404", func(t *testing.T) {
		svc := &stubOwnershipService{err: domain.ErrOwnershipNotFound}
		handler := HandleSeasonResources(nil, svc, nil)

		req := httptest.NewRequest(http.MethodDelete, "/seasons/season-1/ownerships/seat-1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestHandleSeasonReports(t *testing.T) {
	t.Parallel()

	t.Run("totals include display profit", func(t *testing.T) {
		svc := &stubSeasonReportService{totals: app.SeasonTotals{
			SeasonID:     "season-1",
			TotalCost:    decimal.RequireFromString("450"),
			TotalRevenue: decimal.Zero,
			TotalProfit:  decimal.RequireFromString("-450"),
		}}
		handler := HandleSeasonResources(nil, nil, svc)

		req := httptest.NewRequest(http.MethodGet, "/seasons/season-1/totals", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"total_profit":"-450.00"`) {
			t.Fatalf("expected two-decimal profit, got %s", body)
		}
		if !strings.Contains(body, `"profit_display":"-450"`) {
			t.Fatalf("expected signed whole display, got %s", body)
		}
	})

	t.Run("owner profits keep service order", func(t *testing.T) {
		svc := &stubSeasonReportService{profits: []app.OwnerProfit{
			{HolderID: "holder-a", Name: "Avery", Cost: decimal.RequireFromString("100"), Revenue: decimal.RequireFromString("150"), Profit: decimal.RequireFromString("50")},
			{HolderID: "holder-b", Name: "Blake", Cost: decimal.RequireFromString("100"), Revenue: decimal.RequireFromString("80"), Profit: decimal.RequireFromString("-20")},
		}}
		handler := HandleSeasonResources(nil, nil, svc)

		req := httptest.NewRequest(http.MethodGet, "/seasons/season-1/owner-profits", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if strings.Index(body, "holder-a") > strings.Index(body, "holder-b") {
			t.Fatalf("expected holder-a before holder-b, got %s", body)
		}
		if !strings.Contains(body, `"profit_display":"+50"`) {
			t.Fatalf("expected +50 display, got %s", body)
		}
	})

	t.Run("financial summary renders balances", func(t *testing.T) {
		svc := &stubSeasonReportService{summaries: []app.HolderSummary{
			{HolderID: "holder-a", Name: "Cale", SeatsOwned: 2, Balance: decimal.RequireFromString("9996.39")},
		}}
		handler := HandleSeasonResources(nil, nil, svc)

		req := httptest.NewRequest(http.MethodGet, "/seasons/season-1/financial-summary", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"balance":"9996.39"`) || !strings.Contains(body, `"seats_owned":2`) {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("unknown season maps to 404", func(t *testing.T) {
		svc := &stubSeasonReportService{err: domain.ErrSeasonNotFound}
		handler := HandleSeasonResources(nil, nil, svc)

		req := httptest.NewRequest(http.MethodGet, "/seasons/missing/totals", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("unknown subresource is 404", func(t *testing.T) {
		handler := HandleSeasonResources(nil, nil, &stubSeasonReportService{})

		req := httptest.NewRequest(http.MethodGet, "/seasons/season-1/standings", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

type stubOwnershipService struct {
	ownership domain.SeatOwnership
	found     bool
	err       error
}

func (s *stubOwnershipService) Assign(_ context.Context, _ app.AssignOwnershipInput) (domain.SeatOwnership, error) {
	return s.ownership, s.err
}

func (s *stubOwnershipService) Release(_ context.Context, _, _ string) error {
	return s.err
}

func (s *stubOwnershipService) OwnerOf(_ context.Context, _, _ string) (*domain.SeatOwnership, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.found {
		return nil, nil
	}
	o := s.ownership
	return &o, nil
}

func (s *stubOwnershipService) AvailableSeats(_ context.Context, _, _ string) ([]domain.Seat, error) {
	return nil, s.err
}

type stubSeasonReportService struct {
	totals    app.SeasonTotals
	profits   []app.OwnerProfit
	summaries []app.HolderSummary
	err       error
}

func (s *stubSeasonReportService) GetSeasonTotals(_ context.Context, _ string) (app.SeasonTotals, error) {
	return s.totals, s.err
}

func (s *stubSeasonReportService) GetOwnerProfits(_ context.Context, _ string) ([]app.OwnerProfit, error) {
	return s.profits, s.err
}

func (s *stubSeasonReportService) GetFinancialSummary(_ context.Context, _ string) ([]app.HolderSummary, error) {
	return s.summaries, s.err
}
