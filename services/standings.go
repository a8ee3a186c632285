package services

import (
	"sort"

	"github.com/Dosada05/teamsync/models"
)

// computeStandings builds a leaderboard from completed games. Players who are
// not registered participants still get a row, named by member id.
func computeStandings(participants []models.SessionParticipant, games []models.Game) []models.MemberStanding {
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.MemberID] = p.DisplayName
	}

	rows := make(map[string]*models.MemberStanding)
	row := func(memberID string) *models.MemberStanding {
		if r, ok := rows[memberID]; ok {
			return r
		}
		name := names[memberID]
		if name == "" {
			name = memberID
		}
		r := &models.MemberStanding{MemberID: memberID, DisplayName: name}
		rows[memberID] = r
		return r
	}

	record := func(players []string, scoreFor, scoreAgainst int, outcome int) {
		for _, memberID := range players {
			r := row(memberID)
			r.GamesPlayed++
			r.ScoreFor += scoreFor
			r.ScoreAgainst += scoreAgainst
			r.ScoreDifference = r.ScoreFor - r.ScoreAgainst
			switch {
			case outcome > 0:
				r.Wins++
			case outcome < 0:
				r.Losses++
			default:
				r.Draws++
			}
		}
	}

	for _, g := range games {
		if !g.Completed() {
			continue
		}
		outcome := 0
		switch g.Winner {
		case models.WinnerA:
			outcome = 1
		case models.WinnerB:
			outcome = -1
		}
		record(g.TeamAPlayers, g.TeamAScore, g.TeamBScore, outcome)
		record(g.TeamBPlayers, g.TeamBScore, g.TeamAScore, -outcome)
	}

	standings := make([]models.MemberStanding, 0, len(rows))
	for _, r := range rows {
		standings = append(standings, *r)
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.ScoreDifference != b.ScoreDifference {
			return a.ScoreDifference > b.ScoreDifference
		}
		if a.ScoreFor != b.ScoreFor {
			return a.ScoreFor > b.ScoreFor
		}
		return a.MemberID < b.MemberID
	})

	for i := range standings {
		if i > 0 && sameStanding(standings[i-1], standings[i]) {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}

func sameStanding(a, b models.MemberStanding) bool {
	return a.Wins == b.Wins && a.ScoreDifference == b.ScoreDifference && a.ScoreFor == b.ScoreFor
}
