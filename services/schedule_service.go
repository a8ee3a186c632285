package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/teamsync/brackets"
	"github.com/Dosada05/teamsync/models"
	"github.com/Dosada05/teamsync/repositories"
	"github.com/Dosada05/teamsync/storage"
)

type ScheduleResult struct {
	TournamentID string           `json:"tournament_id"`
	Generator    string           `json:"generator"`
	Rounds       int              `json:"rounds"`
	Fixtures     []models.Fixture `json:"fixtures"`
	ExportURL    string           `json:"export_url,omitempty"`
}

type ScheduleService interface {
	GenerateSchedule(ctx context.Context, tournamentID string) (*ScheduleResult, error)
	ListFixtures(ctx context.Context, tournamentID string) ([]models.Fixture, error)
}

type scheduleService struct {
	txManager      repositories.TxManager
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	fixtureRepo    repositories.FixtureRepository
	generator      brackets.ScheduleGenerator
	publisher      brackets.Publisher
	uploader       storage.FileUploader
	logger         *slog.Logger
}

// NewScheduleService wires the schedule workflow. publisher and uploader
// are optional.
func NewScheduleService(
	txManager repositories.TxManager,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	fixtureRepo repositories.FixtureRepository,
	generator brackets.ScheduleGenerator,
	publisher brackets.Publisher,
	uploader storage.FileUploader,
	logger *slog.Logger,
) ScheduleService {
	if generator == nil {
		generator = brackets.NewRoundRobinGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &scheduleService{
		txManager:      txManager,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		fixtureRepo:    fixtureRepo,
		generator:      generator,
		publisher:      publisher,
		uploader:       uploader,
		logger:         logger,
	}
}

func (s *scheduleService) GenerateSchedule(ctx context.Context, tournamentID string) (*ScheduleResult, error) {
	logger := s.logger.With(slog.String("tournament_id", tournamentID))

	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %s: %w", tournamentID, err)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for tournament %s: %w", tournamentID, err)
	}
	teamIDs := models.TeamIDs(teams)
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("%w (found %d)", ErrNotEnoughTeams, len(teamIDs))
	}
	if err := ensureDistinct(teamIDs); err != nil {
		return nil, err
	}

	generated, err := s.generator.GenerateSchedule(ctx, brackets.GenerateScheduleParams{
		TournamentID: tournamentID,
		TeamIDs:      teamIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule for tournament %s: %w", tournamentID, err)
	}

	var saved []models.Fixture
	err = s.txManager.WithinTx(ctx, nil, func(exec repositories.SQLExecutor) error {
		var txErr error
		saved, txErr = s.fixtureRepo.ReplaceForTournament(ctx, exec, tournamentID, generated)
		if txErr != nil {
			return txErr
		}
		return s.tournamentRepo.UpdateStatus(ctx, exec, tournamentID, models.StatusScheduled)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrFixtureTeamInvalid) {
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to save schedule for tournament %s: %w", tournamentID, err)
	}

	result := &ScheduleResult{
		TournamentID: tournamentID,
		Generator:    s.generator.GetName(),
		Rounds:       len(brackets.RoundsOf(saved)),
		Fixtures:     saved,
	}
	logger.InfoContext(ctx, "schedule generated",
		slog.Int("teams", len(teamIDs)), slog.Int("fixtures", len(saved)), slog.Int("rounds", result.Rounds))

	if s.uploader != nil {
		// the stored fixtures are authoritative; a failed export is only logged
		if url, err := s.export(ctx, result); err != nil {
			logger.WarnContext(ctx, "failed to export schedule", slog.Any("error", err))
		} else {
			result.ExportURL = url
		}
	}

	if s.publisher != nil {
		room := brackets.TournamentRoom(tournamentID)
		s.publisher.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:    brackets.MessageScheduleGenerated,
			Payload: result,
			RoomID:  room,
		})
	}
	return result, nil
}

func (s *scheduleService) export(ctx context.Context, result *ScheduleResult) (string, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule: %w", err)
	}
	uploaded, err := s.uploader.Upload(ctx, storage.ScheduleKey(result.TournamentID), "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return uploaded.Location, nil
}

func (s *scheduleService) ListFixtures(ctx context.Context, tournamentID string) ([]models.Fixture, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %s: %w", tournamentID, err)
	}
	fixtures, err := s.fixtureRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures for tournament %s: %w", tournamentID, err)
	}
	if fixtures == nil {
		return []models.Fixture{}, nil
	}
	return fixtures, nil
}

func ensureDistinct(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTeam, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
