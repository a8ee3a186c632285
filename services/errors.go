package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNotEnoughTeams   = errors.New("at least two teams are required to generate a schedule")
	ErrDuplicateTeam    = errors.New("team roster contains duplicate team ids")

	ErrTournamentNotFound = errors.New("tournament not found")
	ErrSessionNotFound    = errors.New("session not found")
)
