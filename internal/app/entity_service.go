package app

import (
	"context"
	"time"

	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

type EntityRepository interface {
	CreateTeam(ctx context.Context, team domain.Team) error
	ListTeams(ctx context.Context) ([]domain.Team, error)
	CreateHolder(ctx context.Context, holder domain.TicketHolder) error
	ListHolders(ctx context.Context) ([]domain.TicketHolder, error)
	GetHolder(ctx context.Context, holderID string) (domain.TicketHolder, error)
	CreateSeat(ctx context.Context, seat domain.Seat) error
	ListSeatsByTeam(ctx context.Context, teamID string) ([]domain.Seat, error)
	CreateSeason(ctx context.Context, season domain.Season) error
	ListSeasonsByTeam(ctx context.Context, teamID string) ([]domain.Season, error)
	CreateGame(ctx context.Context, game domain.Game) error
	ListGamesBySeason(ctx context.Context, seasonID string) ([]domain.Game, error)
}

// EntityService manages the flat entity records everything else joins
// against: teams, ticket holders, seats, seasons and games.
type EntityService struct {
	repo EntityRepository
}

func NewEntityService(repo EntityRepository) *EntityService {
	return &EntityService{repo: repo}
}

type CreateTeamInput struct {
	Name string
}

func (s *EntityService) CreateTeam(ctx context.Context, in CreateTeamInput) (domain.Team, error) {
	if in.Name == "" {
		return domain.Team{}, domain.ErrNameRequired
	}
	team := domain.Team{ID: newID(), Name: in.Name}
	if err := s.repo.CreateTeam(ctx, team); err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

func (s *EntityService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.repo.ListTeams(ctx)
}

type CreateHolderInput struct {
	Name  string
	Email *string
	Notes *string
}

func (s *EntityService) CreateHolder(ctx context.Context, in CreateHolderInput) (domain.TicketHolder, error) {
	if in.Name == "" {
		return domain.TicketHolder{}, domain.ErrNameRequired
	}
	holder := domain.TicketHolder{
		ID:    newID(),
		Name:  in.Name,
		Email: in.Email,
		Notes: in.Notes,
	}
	if err := s.repo.CreateHolder(ctx, holder); err != nil {
		return domain.TicketHolder{}, err
	}
	return holder, nil
}

func (s *EntityService) ListHolders(ctx context.Context) ([]domain.TicketHolder, error) {
	return s.repo.ListHolders(ctx)
}

type CreateSeatInput struct {
	TeamID      string
	Section     string
	Row         string
	Number      string
	LicenseCost decimal.Decimal
}

func (s *EntityService) CreateSeat(ctx context.Context, in CreateSeatInput) (domain.Seat, error) {
	if in.TeamID == "" {
		return domain.Seat{}, domain.ErrInvalidID
	}
	if in.Section == "" || in.Row == "" || in.Number == "" {
		return domain.Seat{}, domain.ErrSeatAddrRequired
	}
	if in.LicenseCost.IsNegative() {
		return domain.Seat{}, domain.ErrNegativeAmount
	}

	seat := domain.Seat{
		ID:          newID(),
		TeamID:      in.TeamID,
		Section:     in.Section,
		Row:         in.Row,
		Number:      in.Number,
		LicenseCost: in.LicenseCost,
	}
	if err := s.repo.CreateSeat(ctx, seat); err != nil {
		return domain.Seat{}, err
	}
	return seat, nil
}

func (s *EntityService) ListSeats(ctx context.Context, teamID string) ([]domain.Seat, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListSeatsByTeam(ctx, teamID)
}

type CreateSeasonInput struct {
	TeamID string
	Year   int
}

func (s *EntityService) CreateSeason(ctx context.Context, in CreateSeasonInput) (domain.Season, error) {
	if in.TeamID == "" {
		return domain.Season{}, domain.ErrInvalidID
	}
	if in.Year <= 0 {
		return domain.Season{}, domain.ErrInvalidYear
	}

	season := domain.Season{ID: newID(), TeamID: in.TeamID, Year: in.Year}
	if err := s.repo.CreateSeason(ctx, season); err != nil {
		return domain.Season{}, err
	}
	return season, nil
}

func (s *EntityService) ListSeasons(ctx context.Context, teamID string) ([]domain.Season, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListSeasonsByTeam(ctx, teamID)
}

type CreateGameInput struct {
	SeasonID   string
	Date       time.Time
	GameTime   *string
	Opponent   string
	SeasonType domain.SeasonType
}

func (s *EntityService) CreateGame(ctx context.Context, in CreateGameInput) (domain.Game, error) {
	if in.SeasonID == "" {
		return domain.Game{}, domain.ErrInvalidID
	}
	if in.Opponent == "" {
		return domain.Game{}, domain.ErrOpponentRequired
	}
	seasonType := in.SeasonType
	if seasonType == "" {
		seasonType = domain.SeasonTypeRegular
	}
	if !domain.ValidSeasonType(seasonType) {
		return domain.Game{}, domain.ErrInvalidSeasonType
	}

	game := domain.Game{
		ID:         newID(),
		SeasonID:   in.SeasonID,
		Date:       in.Date,
		GameTime:   in.GameTime,
		Opponent:   in.Opponent,
		SeasonType: seasonType,
	}
	if err := s.repo.CreateGame(ctx, game); err != nil {
		return domain.Game{}, err
	}
	return game, nil
}

func (s *EntityService) ListGames(ctx context.Context, seasonID string) ([]domain.Game, error) {
	if seasonID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListGamesBySeason(ctx, seasonID)
}
