package brackets

import (
	"context"

	"github.com/Dosada05/teamsync/models"
)

type GenerateScheduleParams struct {
	TournamentID string
	TeamIDs      []string
}

type ScheduleGenerator interface {
	GenerateSchedule(ctx context.Context, params GenerateScheduleParams) ([]models.Fixture, error)

	GetName() string
}

// NewGenerator returns the generator registered under name, or nil.
func NewGenerator(name string) ScheduleGenerator {
	switch name {
	case "", RoundRobinName:
		return NewRoundRobinGenerator()
	default:
		return nil
	}
}
