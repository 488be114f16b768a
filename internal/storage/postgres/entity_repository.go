package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
)

type EntityRepository struct {
	pool *pgxpool.Pool
}

func NewEntityRepository(pool *pgxpool.Pool) *EntityRepository {
	return &EntityRepository{pool: pool}
}

func (r *EntityRepository) CreateTeam(ctx context.Context, team domain.Team) error {
	const stmt = `INSERT INTO teams (id, name) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, stmt, team.ID, team.Name); err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

func (r *EntityRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	const query = `SELECT id, name FROM teams ORDER BY name, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *EntityRepository) CreateHolder(ctx context.Context, holder domain.TicketHolder) error {
	const stmt = `INSERT INTO ticket_holders (id, name, email, notes) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, stmt, holder.ID, holder.Name, holder.Email, holder.Notes); err != nil {
		return fmt.Errorf("create holder: %w", err)
	}
	return nil
}

func (r *EntityRepository) ListHolders(ctx context.Context) ([]domain.TicketHolder, error) {
	const query = `SELECT id, name, email, notes FROM ticket_holders ORDER BY name, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list holders: %w", err)
	}
	defer rows.Close()

	holders := []domain.TicketHolder{}
	for rows.Next() {
		var h domain.TicketHolder
		if err := rows.Scan(&h.ID, &h.Name, &h.Email, &h.Notes); err != nil {
			return nil, fmt.Errorf("scan holder: %w", err)
		}
		holders = append(holders, h)
	}
	return holders, rows.Err()
}

func (r *EntityRepository) GetHolder(ctx context.Context, holderID string) (domain.TicketHolder, error) {
	const query = `SELECT id, name, email, notes FROM ticket_holders WHERE id = $1`
	var h domain.TicketHolder
	err := r.pool.QueryRow(ctx, query, holderID).Scan(&h.ID, &h.Name, &h.Email, &h.Notes)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.TicketHolder{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.TicketHolder{}, domain.ErrHolderNotFound
		}
		return domain.TicketHolder{}, fmt.Errorf("get holder: %w", err)
	}
	return h, nil
}

func (r *EntityRepository) CreateSeat(ctx context.Context, seat domain.Seat) error {
	const stmt = `
INSERT INTO seats (id, team_id, section, row_label, seat_number, license_cost)
VALUES ($1, $2, $3, $4, $5, $6::numeric)`

	_, err := r.pool.Exec(ctx, stmt,
		seat.ID,
		seat.TeamID,
		seat.Section,
		seat.Row,
		seat.Number,
		seat.LicenseCost.String(),
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("create seat: %w", err)
	}
	return nil
}

func (r *EntityRepository) ListSeatsByTeam(ctx context.Context, teamID string) ([]domain.Seat, error) {
	return listSeatsByTeam(ctx, r.pool, teamID)
}

func (r *EntityRepository) CreateSeason(ctx context.Context, season domain.Season) error {
	const stmt = `INSERT INTO seasons (id, team_id, year) VALUES ($1, $2, $3)`
	if _, err := r.pool.Exec(ctx, stmt, season.ID, season.TeamID, season.Year); err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("create season: %w", err)
	}
	return nil
}

func (r *EntityRepository) ListSeasonsByTeam(ctx context.Context, teamID string) ([]domain.Season, error) {
	const query = `SELECT id, team_id, year FROM seasons WHERE team_id = $1 ORDER BY year DESC, id`
	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	seasons := []domain.Season{}
	for rows.Next() {
		var s domain.Season
		if err := rows.Scan(&s.ID, &s.TeamID, &s.Year); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return seasons, nil
}

func (r *EntityRepository) CreateGame(ctx context.Context, game domain.Game) error {
	const stmt = `
INSERT INTO games (id, season_id, game_date, game_time, opponent, season_type)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt,
		game.ID,
		game.SeasonID,
		game.Date,
		game.GameTime,
		game.Opponent,
		string(game.SeasonType),
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		if notFound := notFoundFromFK(err); notFound != nil {
			return notFound
		}
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

func (r *EntityRepository) ListGamesBySeason(ctx context.Context, seasonID string) ([]domain.Game, error) {
	return listGamesBySeason(ctx, r.pool, seasonID)
}

// listSeatsByTeam is shared by the entity and ownership repositories.
func listSeatsByTeam(ctx context.Context, pool *pgxpool.Pool, teamID string) ([]domain.Seat, error) {
	const query = `
SELECT id, team_id, section, row_label, seat_number, license_cost::text
FROM seats
WHERE team_id = $1
ORDER BY section, row_label, seat_number, id`

	rows, err := pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	defer rows.Close()

	seats := []domain.Seat{}
	for rows.Next() {
		var s domain.Seat
		var cost string
		if err := rows.Scan(&s.ID, &s.TeamID, &s.Section, &s.Row, &s.Number, &cost); err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		if s.LicenseCost, err = decimalFromText(cost); err != nil {
			return nil, fmt.Errorf("parse license cost: %w", err)
		}
		seats = append(seats, s)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return seats, nil
}

func listGamesBySeason(ctx context.Context, pool *pgxpool.Pool, seasonID string) ([]domain.Game, error) {
	const query = `
SELECT id, season_id, game_date, game_time, opponent, season_type
FROM games
WHERE season_id = $1
ORDER BY game_date, id`

	rows, err := pool.Query(ctx, query, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := []domain.Game{}
	for rows.Next() {
		var g domain.Game
		var seasonType string
		if err := rows.Scan(&g.ID, &g.SeasonID, &g.Date, &g.GameTime, &g.Opponent, &seasonType); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g.SeasonType = domain.SeasonType(seasonType)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, err
	}
	return games, nil
}
