package models

import "time"

// Fixture is a single scheduled match between two teams in one round.
// Round is 1-based.
type Fixture struct {
	ID           string    `json:"id,omitempty" db:"id"`
	TournamentID string    `json:"tournament_id,omitempty" db:"tournament_id"`
	HomeID       string    `json:"home_id" db:"home_team_id"`
	AwayID       string    `json:"away_id" db:"away_team_id"`
	Round        int       `json:"round" db:"round"`
	CreatedAt    time.Time `json:"created_at,omitempty" db:"created_at"`
}
