package models

type GameWinner string

const (
	WinnerNone GameWinner = ""
	WinnerA    GameWinner = "A"
	WinnerB    GameWinner = "B"
	WinnerDraw GameWinner = "draw"
)

// Game is one completed or in-progress match within a session.
type Game struct {
	ID           string     `json:"id" db:"id"`
	SessionID    string     `json:"session_id" db:"session_id"`
	TeamAPlayers []string   `json:"team_a_players" db:"team_a_players"`
	TeamBPlayers []string   `json:"team_b_players" db:"team_b_players"`
	TeamAScore   int        `json:"team_a_score" db:"team_a_score"`
	TeamBScore   int        `json:"team_b_score" db:"team_b_score"`
	Winner       GameWinner `json:"winner" db:"winner"`
}

func GameKey(g Game) string {
	return g.ID
}

// Completed reports whether the game has a decided outcome.
func (g Game) Completed() bool {
	return g.Winner != WinnerNone
}
