package brackets

import (
	"context"

	"github.com/Dosada05/teamsync/models"
)

const RoundRobinName = "RoundRobin"

// slot is a position in the rotating ring. A bye slot has no team.
type slot struct {
	teamID string
	bye    bool
}

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() ScheduleGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return RoundRobinName
}

func (g *RoundRobinGenerator) GenerateSchedule(ctx context.Context, params GenerateScheduleParams) ([]models.Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fixtures := GenerateSchedule(params.TeamIDs)
	for i := range fixtures {
		fixtures[i].TournamentID = params.TournamentID
	}
	return fixtures, nil
}

// GenerateSchedule builds a single round-robin schedule with the circle method.
//
// The first team stays fixed while the others rotate one position per round.
// With an odd number of teams a bye slot is added; pairings against it are
// not emitted, so the paired team sits that round out. Team ids must be
// distinct. Fewer than two teams yields an empty schedule.
func GenerateSchedule(teamIDs []string) []models.Fixture {
	if len(teamIDs) < 2 {
		return []models.Fixture{}
	}

	slots := make([]slot, 0, len(teamIDs)+1)
	for _, id := range teamIDs {
		slots = append(slots, slot{teamID: id})
	}
	if len(slots)%2 != 0 {
		slots = append(slots, slot{bye: true})
	}

	n := len(slots)
	numRounds := n - 1
	ring := slots[1:]
	ringLen := len(ring)

	// at returns the slot at working position pos in the given 0-based round.
	// Rotating "last to front" r times puts ring[(j-r) mod m] at ring position j.
	at := func(round, pos int) slot {
		if pos == 0 {
			return slots[0]
		}
		j := pos - 1
		return ring[((j-round)%ringLen+ringLen)%ringLen]
	}

	teams := len(teamIDs)
	fixtures := make([]models.Fixture, 0, teams*(teams-1)/2)
	for r := 0; r < numRounds; r++ {
		for i := 0; i < n/2; i++ {
			home := at(r, i)
			away := at(r, n-1-i)
			if home.bye || away.bye {
				continue
			}
			fixtures = append(fixtures, models.Fixture{
				HomeID: home.teamID,
				AwayID: away.teamID,
				Round:  r + 1,
			})
		}
	}
	return fixtures
}

// RoundsOf groups fixtures by round number, preserving their order.
func RoundsOf(fixtures []models.Fixture) map[int][]models.Fixture {
	rounds := make(map[int][]models.Fixture)
	for _, f := range fixtures {
		rounds[f.Round] = append(rounds[f.Round], f)
	}
	return rounds
}
