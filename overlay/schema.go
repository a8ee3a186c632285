package overlay

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Dosada05/teamsync/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// liveParticipant is the accepted shape of a participant record in the live
// store. Fields outside this struct are ignored.
type liveParticipant struct {
	ID          string `json:"id"`
	MemberID    string `json:"memberId" validate:"required,max=128"`
	DisplayName string `json:"displayName" validate:"max=256"`
	IsSelected  *bool  `json:"isSelected" validate:"required"`
}

type liveGame struct {
	ID           string   `json:"id" validate:"required,max=128"`
	TeamAPlayers []string `json:"teamAPlayers" validate:"dive,required"`
	TeamBPlayers []string `json:"teamBPlayers" validate:"dive,required"`
	TeamAScore   int      `json:"teamAScore" validate:"gte=0"`
	TeamBScore   int      `json:"teamBScore" validate:"gte=0"`
	Winner       string   `json:"winner" validate:"omitempty,oneof=A B draw"`
}

func decodeParticipant(sessionID, field, raw string) (models.SessionParticipant, error) {
	var lp liveParticipant
	if err := json.Unmarshal([]byte(raw), &lp); err != nil {
		return models.SessionParticipant{}, fmt.Errorf("participant %q: %w", field, err)
	}
	if lp.MemberID == "" {
		lp.MemberID = field
	}
	if err := validate.Struct(lp); err != nil {
		return models.SessionParticipant{}, fmt.Errorf("participant %q: %w", field, err)
	}
	if lp.MemberID != field {
		return models.SessionParticipant{}, fmt.Errorf("participant %q: member id %q does not match key", field, lp.MemberID)
	}
	return models.SessionParticipant{
		ID:          lp.ID,
		SessionID:   sessionID,
		MemberID:    lp.MemberID,
		DisplayName: strings.TrimSpace(lp.DisplayName),
		IsSelected:  *lp.IsSelected,
	}, nil
}

func decodeGame(sessionID, field, raw string) (models.Game, error) {
	var lg liveGame
	if err := json.Unmarshal([]byte(raw), &lg); err != nil {
		return models.Game{}, fmt.Errorf("game %q: %w", field, err)
	}
	if lg.ID == "" {
		lg.ID = field
	}
	if err := validate.Struct(lg); err != nil {
		return models.Game{}, fmt.Errorf("game %q: %w", field, err)
	}
	if lg.ID != field {
		return models.Game{}, fmt.Errorf("game %q: id %q does not match key", field, lg.ID)
	}
	g := models.Game{
		ID:           lg.ID,
		SessionID:    sessionID,
		TeamAPlayers: lg.TeamAPlayers,
		TeamBPlayers: lg.TeamBPlayers,
		TeamAScore:   lg.TeamAScore,
		TeamBScore:   lg.TeamBScore,
		Winner:       models.GameWinner(lg.Winner),
	}
	if g.TeamAPlayers == nil {
		g.TeamAPlayers = []string{}
	}
	if g.TeamBPlayers == nil {
		g.TeamBPlayers = []string{}
	}
	return g, nil
}
