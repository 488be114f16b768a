package domain

import "time"

// Season is one ticketed year for a team. Duplicate (team, year) pairs are
// allowed; operationally they are a logical duplicate, not a constraint.
type Season struct {
	ID     string
	TeamID string
	Year   int
}

type SeasonType string

const (
	SeasonTypePre     SeasonType = "pre"
	SeasonTypeRegular SeasonType = "regular"
	SeasonTypePost    SeasonType = "post"
)

// ValidSeasonType reports whether t is one of the known season-type tags.
func ValidSeasonType(t SeasonType) bool {
	switch t {
	case SeasonTypePre, SeasonTypeRegular, SeasonTypePost:
		return true
	}
	return false
}

// Game is a single scheduled game within a season.
type Game struct {
	ID         string
	SeasonID   string
	Date       time.Time
	GameTime   *string
	Opponent   string
	SeasonType SeasonType
}
