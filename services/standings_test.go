package services

import (
	"testing"

	"github.com/Dosada05/teamsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStandings(t *testing.T) {
	participants := []models.SessionParticipant{
		{MemberID: "m1", DisplayName: "Ann"},
		{MemberID: "m2", DisplayName: "Bob"},
		{MemberID: "m3", DisplayName: "Cid"},
	}
	games := []models.Game{
		{ID: "g1", TeamAPlayers: []string{"m1"}, TeamBPlayers: []string{"m2"}, TeamAScore: 11, TeamBScore: 7, Winner: models.WinnerA},
		{ID: "g2", TeamAPlayers: []string{"m2"}, TeamBPlayers: []string{"m3"}, TeamAScore: 5, TeamBScore: 5, Winner: models.WinnerDraw},
		{ID: "g3", TeamAPlayers: []string{"m3"}, TeamBPlayers: []string{"guest"}, TeamAScore: 2, TeamBScore: 11, Winner: models.WinnerB},
		// in progress, ignored
		{ID: "g4", TeamAPlayers: []string{"m1"}, TeamBPlayers: []string{"m3"}, TeamAScore: 3, TeamBScore: 0},
	}

	standings := computeStandings(participants, games)
	require.Len(t, standings, 4)

	byMember := make(map[string]models.MemberStanding)
	for _, s := range standings {
		byMember[s.MemberID] = s
	}

	assert.Equal(t, models.MemberStanding{
		MemberID: "guest", DisplayName: "guest", GamesPlayed: 1, Wins: 1,
		ScoreFor: 11, ScoreAgainst: 2, ScoreDifference: 9, Rank: 1,
	}, byMember["guest"])
	assert.Equal(t, models.MemberStanding{
		MemberID: "m1", DisplayName: "Ann", GamesPlayed: 1, Wins: 1,
		ScoreFor: 11, ScoreAgainst: 7, ScoreDifference: 4, Rank: 2,
	}, byMember["m1"])
	assert.Equal(t, 1, byMember["m2"].Draws)
	assert.Equal(t, 1, byMember["m2"].Losses)
	assert.Equal(t, 2, byMember["m3"].GamesPlayed)

	assert.Equal(t, []string{"guest", "m1", "m2", "m3"}, []string{
		standings[0].MemberID, standings[1].MemberID, standings[2].MemberID, standings[3].MemberID,
	})
}

func TestComputeStandings_TiesShareRank(t *testing.T) {
	games := []models.Game{
		{ID: "g1", TeamAPlayers: []string{"a", "b"}, TeamBPlayers: []string{"c", "d"}, TeamAScore: 3, TeamBScore: 1, Winner: models.WinnerA},
	}

	standings := computeStandings(nil, games)
	require.Len(t, standings, 4)

	assert.Equal(t, "a", standings[0].MemberID)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 1, standings[1].Rank)
	assert.Equal(t, 3, standings[2].Rank)
	assert.Equal(t, 3, standings[3].Rank)
}

func TestComputeStandings_NoCompletedGames(t *testing.T) {
	standings := computeStandings(nil, []models.Game{{ID: "g1", TeamAPlayers: []string{"a"}}})
	assert.NotNil(t, standings)
	assert.Empty(t, standings)
}
