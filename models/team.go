package models

import "time"

type Team struct {
	ID           string    `json:"id" db:"id"`
	TournamentID string    `json:"tournament_id" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TeamIDs returns the identifiers of teams in list order.
func TeamIDs(teams []*Team) []string {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		if t != nil {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
