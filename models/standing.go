package models

// MemberStanding is a leaderboard row computed from a session's games.
// It is never stored; the service rebuilds it on every read.
type MemberStanding struct {
	MemberID        string `json:"member_id"`
	DisplayName     string `json:"display_name"`
	GamesPlayed     int    `json:"games_played"`
	Wins            int    `json:"wins"`
	Draws           int    `json:"draws"`
	Losses          int    `json:"losses"`
	ScoreFor        int    `json:"score_for"`
	ScoreAgainst    int    `json:"score_against"`
	ScoreDifference int    `json:"score_difference"`
	Rank            int    `json:"rank"`
}
