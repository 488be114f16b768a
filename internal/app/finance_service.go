package app

import (
	"context"
	"sort"

	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

type FinanceRepository interface {
	GetGame(ctx context.Context, gameID string) (domain.Game, error)
	GetSeason(ctx context.Context, seasonID string) (domain.Season, error)
	ListGamesBySeason(ctx context.Context, seasonID string) ([]domain.Game, error)
	ListPricingByGame(ctx context.Context, gameID string) ([]domain.GamePricing, error)
	ListPricingBySeason(ctx context.Context, seasonID string) ([]domain.GamePricing, error)
	ListOwnershipsBySeason(ctx context.Context, seasonID string) ([]domain.SeatOwnership, error)
	ListOwnershipsByHolder(ctx context.Context, holderID string) ([]domain.SeatOwnership, error)
	GetSeatsByIDs(ctx context.Context, seatIDs []string) ([]domain.Seat, error)
	GetHolder(ctx context.Context, holderID string) (domain.TicketHolder, error)
	GetHoldersByIDs(ctx context.Context, holderIDs []string) ([]domain.TicketHolder, error)
	ListPaymentsByHolder(ctx context.Context, holderID string) ([]domain.Payment, error)
	ListPayoutsByHolder(ctx context.Context, holderID string) ([]domain.Payout, error)
	ListTransfersByHolder(ctx context.Context, holderID string) ([]domain.Transfer, error)
}

// FinanceService derives every financial view from the raw ownership,
// pricing and money-movement records. It performs no mutation, so callers
// may invoke it concurrently without coordination.
type FinanceService struct {
	repo FinanceRepository
}

func NewFinanceService(repo FinanceRepository) *FinanceService {
	return &FinanceService{repo: repo}
}

// GameFinancials is the per-game rollup. SeatsWithPricing counts records
// where a pricing decision was made (at least one field set), which is not
// the number of seats in the building.
type GameFinancials struct {
	GameID           string
	TotalCost        decimal.Decimal
	TotalSold        decimal.Decimal
	Profit           decimal.Decimal
	SeatsWithPricing int
}

func (s *FinanceService) GameFinancials(ctx context.Context, gameID string) (GameFinancials, error) {
	if gameID == "" {
		return GameFinancials{}, domain.ErrInvalidID
	}
	if _, err := s.repo.GetGame(ctx, gameID); err != nil {
		return GameFinancials{}, err
	}

	records, err := s.repo.ListPricingByGame(ctx, gameID)
	if err != nil {
		return GameFinancials{}, err
	}
	return foldGame(gameID, records), nil
}

func foldGame(gameID string, records []domain.GamePricing) GameFinancials {
	totals := GameFinancials{
		GameID:    gameID,
		TotalCost: decimal.Zero,
		TotalSold: decimal.Zero,
		Profit:    decimal.Zero,
	}
	for _, rec := range records {
		totals.TotalCost = totals.TotalCost.Add(rec.CostOrZero())
		totals.TotalSold = totals.TotalSold.Add(rec.SoldOrZero())
		if rec.HasPricing() {
			totals.SeatsWithPricing++
		}
	}
	totals.Profit = totals.TotalSold.Sub(totals.TotalCost)
	return totals
}

// SeasonTotals is the season-wide rollup across all of its games.
type SeasonTotals struct {
	SeasonID     string
	TotalCost    decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
}

// GetSeasonTotals sums pricing over every game of the season. Games without
// pricing records contribute exact zeros; an empty season is a zero result,
// not an error.
func (s *FinanceService) GetSeasonTotals(ctx context.Context, seasonID string) (SeasonTotals, error) {
	if seasonID == "" {
		return SeasonTotals{}, domain.ErrInvalidID
	}
	if _, err := s.repo.GetSeason(ctx, seasonID); err != nil {
		return SeasonTotals{}, err
	}

	records, err := s.repo.ListPricingBySeason(ctx, seasonID)
	if err != nil {
		return SeasonTotals{}, err
	}

	totals := SeasonTotals{
		SeasonID:     seasonID,
		TotalCost:    decimal.Zero,
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	for _, rec := range records {
		totals.TotalCost = totals.TotalCost.Add(rec.CostOrZero())
		totals.TotalRevenue = totals.TotalRevenue.Add(rec.SoldOrZero())
	}
	totals.TotalProfit = totals.TotalRevenue.Sub(totals.TotalCost)
	return totals, nil
}

// OwnerProfit is one holder's bucket of season trading results.
type OwnerProfit struct {
	HolderID string
	Name     string
	Cost     decimal.Decimal
	Revenue  decimal.Decimal
	Profit   decimal.Decimal
}

// GetOwnerProfits buckets every pricing record of the season under the
// seat's current owner for that season. Pricing on unassigned seats counts
// in season totals but lands in no bucket: there is no accountable owner.
// Results are sorted by profit descending, ties by holder id.
func (s *FinanceService) GetOwnerProfits(ctx context.Context, seasonID string) ([]OwnerProfit, error) {
	if seasonID == "" {
		return nil, domain.ErrInvalidID
	}
	if _, err := s.repo.GetSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	records, err := s.repo.ListPricingBySeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	ownerships, err := s.repo.ListOwnershipsBySeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	seatOwner := make(map[string]string, len(ownerships))
	for _, o := range ownerships {
		seatOwner[o.SeatID] = o.HolderID
	}

	buckets := make(map[string]*OwnerProfit)
	for _, rec := range records {
		holderID, ok := seatOwner[rec.SeatID]
		if !ok {
			continue
		}
		bucket, ok := buckets[holderID]
		if !ok {
			bucket = &OwnerProfit{
				HolderID: holderID,
				Cost:     decimal.Zero,
				Revenue:  decimal.Zero,
			}
			buckets[holderID] = bucket
		}
		bucket.Cost = bucket.Cost.Add(rec.CostOrZero())
		bucket.Revenue = bucket.Revenue.Add(rec.SoldOrZero())
	}

	holderIDs := make([]string, 0, len(buckets))
	for id := range buckets {
		holderIDs = append(holderIDs, id)
	}
	holders, err := s.repo.GetHoldersByIDs(ctx, holderIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(holders))
	for _, h := range holders {
		names[h.ID] = h.Name
	}

	result := make([]OwnerProfit, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Profit = bucket.Revenue.Sub(bucket.Cost)
		bucket.Name = names[bucket.HolderID]
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Profit.Cmp(result[j].Profit); cmp != 0 {
			return cmp > 0
		}
		return result[i].HolderID < result[j].HolderID
	})
	return result, nil
}

// HolderSummary is capital committed per holder: seats owned this season and
// the sum of their license costs. Trading profit is not part of it.
type HolderSummary struct {
	HolderID   string
	Name       string
	SeatsOwned int
	Balance    decimal.Decimal
}

// GetFinancialSummary reports, for every holder owning at least one seat in
// the season, the seat count and the summed license cost of those seats.
// Holders without seats never appear in the result.
func (s *FinanceService) GetFinancialSummary(ctx context.Context, seasonID string) ([]HolderSummary, error) {
	if seasonID == "" {
		return nil, domain.ErrInvalidID
	}
	if _, err := s.repo.GetSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	ownerships, err := s.repo.ListOwnershipsBySeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	if len(ownerships) == 0 {
		return []HolderSummary{}, nil
	}

	seatIDs := make([]string, 0, len(ownerships))
	for _, o := range ownerships {
		seatIDs = append(seatIDs, o.SeatID)
	}
	seats, err := s.repo.GetSeatsByIDs(ctx, seatIDs)
	if err != nil {
		return nil, err
	}
	licenseCosts := make(map[string]decimal.Decimal, len(seats))
	for _, seat := range seats {
		licenseCosts[seat.ID] = seat.LicenseCost
	}

	summaries := make(map[string]*HolderSummary)
	for _, o := range ownerships {
		summary, ok := summaries[o.HolderID]
		if !ok {
			summary = &HolderSummary{HolderID: o.HolderID, Balance: decimal.Zero}
			summaries[o.HolderID] = summary
		}
		summary.SeatsOwned++
		summary.Balance = summary.Balance.Add(licenseCosts[o.SeatID])
	}

	holderIDs := make([]string, 0, len(summaries))
	for id := range summaries {
		holderIDs = append(holderIDs, id)
	}
	holders, err := s.repo.GetHoldersByIDs(ctx, holderIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(holders))
	for _, h := range holders {
		names[h.ID] = h.Name
	}

	result := make([]HolderSummary, 0, len(summaries))
	for _, summary := range summaries {
		summary.Name = names[summary.HolderID]
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].HolderID < result[j].HolderID
	})
	return result, nil
}

// NetPosition is a holder's settled cash position against the pool. Paid-in
// money counts positive; money returned to the holder counts negative.
// Buyers of transferred attendance rights pay in; sellers are paid out.
type NetPosition struct {
	HolderID          string
	PaidIn            decimal.Decimal
	Returned          decimal.Decimal
	Payouts           decimal.Decimal
	TransfersPaid     decimal.Decimal
	TransfersReceived decimal.Decimal
	Net               decimal.Decimal
}

// GetNetCashPosition nets a holder's payments, game payouts and completed
// transfers. Payouts count only when tied to a game in a season where the
// holder owns a seat; pending transfers are never settled cash movement.
func (s *FinanceService) GetNetCashPosition(ctx context.Context, holderID string) (NetPosition, error) {
	if holderID == "" {
		return NetPosition{}, domain.ErrInvalidID
	}
	if _, err := s.repo.GetHolder(ctx, holderID); err != nil {
		return NetPosition{}, err
	}

	pos := NetPosition{
		HolderID:          holderID,
		PaidIn:            decimal.Zero,
		Returned:          decimal.Zero,
		Payouts:           decimal.Zero,
		TransfersPaid:     decimal.Zero,
		TransfersReceived: decimal.Zero,
	}

	payments, err := s.repo.ListPaymentsByHolder(ctx, holderID)
	if err != nil {
		return NetPosition{}, err
	}
	for _, p := range payments {
		switch p.Direction {
		case domain.DirectionFromOwner:
			pos.PaidIn = pos.PaidIn.Add(p.Amount)
		case domain.DirectionToOwner:
			pos.Returned = pos.Returned.Add(p.Amount)
		}
	}

	ownerships, err := s.repo.ListOwnershipsByHolder(ctx, holderID)
	if err != nil {
		return NetPosition{}, err
	}
	ownedSeasons := make(map[string]struct{}, len(ownerships))
	for _, o := range ownerships {
		ownedSeasons[o.SeasonID] = struct{}{}
	}

	payouts, err := s.repo.ListPayoutsByHolder(ctx, holderID)
	if err != nil {
		return NetPosition{}, err
	}
	gameSeasons := make(map[string]string)
	for _, payout := range payouts {
		seasonID, ok := gameSeasons[payout.GameID]
		if !ok {
			game, err := s.repo.GetGame(ctx, payout.GameID)
			if err != nil {
				return NetPosition{}, err
			}
			seasonID = game.SeasonID
			gameSeasons[payout.GameID] = seasonID
		}
		if _, owned := ownedSeasons[seasonID]; owned {
			pos.Payouts = pos.Payouts.Add(payout.Amount)
		}
	}

	transfers, err := s.repo.ListTransfersByHolder(ctx, holderID)
	if err != nil {
		return NetPosition{}, err
	}
	for _, t := range transfers {
		if t.Status != domain.TransferStatusCompleted {
			continue
		}
		if t.ToHolderID == holderID {
			pos.TransfersPaid = pos.TransfersPaid.Add(t.Amount)
		}
		if t.FromHolderID == holderID {
			pos.TransfersReceived = pos.TransfersReceived.Add(t.Amount)
		}
	}

	pos.Net = pos.PaidIn.
		Sub(pos.Returned).
		Sub(pos.Payouts).
		Add(pos.TransfersPaid).
		Sub(pos.TransfersReceived)
	return pos, nil
}
