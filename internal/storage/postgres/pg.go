package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jjcsf/TicketTracker-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// notFoundFromFK maps a foreign-key violation to the not-found error of the
// referenced entity, or returns nil when err is not an FK violation.
func notFoundFromFK(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23503" {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "team_id"):
		return domain.ErrTeamNotFound
	case strings.Contains(pgErr.ConstraintName, "season_id"):
		return domain.ErrSeasonNotFound
	case strings.Contains(pgErr.ConstraintName, "game_id"):
		return domain.ErrGameNotFound
	case strings.Contains(pgErr.ConstraintName, "seat_id"):
		return domain.ErrSeatNotFound
	case strings.Contains(pgErr.ConstraintName, "holder_id"):
		return domain.ErrHolderNotFound
	}
	return nil
}

// Monetary columns travel as text on the wire (::text in selects, ::numeric
// casts on writes) so values stay exact end to end.

func decimalFromText(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func nullDecimalFromText(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// nullDecimalParam renders a NullDecimal as a text parameter, nil when unset.
func nullDecimalParam(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}
