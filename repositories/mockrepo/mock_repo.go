package mockrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dosada05/teamsync/models"
	"github.com/Dosada05/teamsync/repositories"
	"github.com/stretchr/testify/mock"
)

// TxManager runs fn with a nil executor when the expectation returns no error.
type TxManager struct {
	mock.Mock
}

func (m *TxManager) WithinTx(ctx context.Context, opts *sql.TxOptions, fn func(exec repositories.SQLExecutor) error) error {
	args := m.Called(ctx, opts)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(nil)
}

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)

	var s *models.Session
	if args.Get(0) != nil {
		s = args.Get(0).(*models.Session)
	}
	return s, args.Error(1)
}

func (m *SessionRepository) ListUpdatedSince(ctx context.Context, since time.Time) ([]*models.Session, error) {
	args := m.Called(ctx, since)

	var sessions []*models.Session
	if args.Get(0) != nil {
		sessions = args.Get(0).([]*models.Session)
	}
	return sessions, args.Error(1)
}

type SessionParticipantRepository struct {
	mock.Mock
}

func (m *SessionParticipantRepository) ListBySession(ctx context.Context, exec repositories.SQLExecutor, sessionID string) ([]models.SessionParticipant, error) {
	args := m.Called(ctx, exec, sessionID)

	var participants []models.SessionParticipant
	if args.Get(0) != nil {
		participants = args.Get(0).([]models.SessionParticipant)
	}
	return participants, args.Error(1)
}

func (m *SessionParticipantRepository) UpdateSelection(ctx context.Context, exec repositories.SQLExecutor, sessionID, memberID string, isSelected bool) (bool, error) {
	args := m.Called(ctx, exec, sessionID, memberID, isSelected)
	return args.Bool(0), args.Error(1)
}

type GameRepository struct {
	mock.Mock
}

func (m *GameRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Game, error) {
	args := m.Called(ctx, sessionID)

	var games []models.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]models.Game)
	}
	return games, args.Error(1)
}

type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*models.Team, error) {
	args := m.Called(ctx, tournamentID)

	var teams []*models.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]*models.Team)
	}
	return teams, args.Error(1)
}

type TournamentRepository struct {
	mock.Mock
}

func (m *TournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	args := m.Called(ctx, id)

	var t *models.Tournament
	if args.Get(0) != nil {
		t = args.Get(0).(*models.Tournament)
	}
	return t, args.Error(1)
}

func (m *TournamentRepository) UpdateStatus(ctx context.Context, exec repositories.SQLExecutor, id string, status models.TournamentStatus) error {
	args := m.Called(ctx, exec, id, status)
	return args.Error(0)
}

type FixtureRepository struct {
	mock.Mock
}

func (m *FixtureRepository) ReplaceForTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID string, fixtures []models.Fixture) ([]models.Fixture, error) {
	args := m.Called(ctx, exec, tournamentID, fixtures)

	var saved []models.Fixture
	if args.Get(0) != nil {
		saved = args.Get(0).([]models.Fixture)
	}
	return saved, args.Error(1)
}

func (m *FixtureRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.Fixture, error) {
	args := m.Called(ctx, tournamentID)

	var fixtures []models.Fixture
	if args.Get(0) != nil {
		fixtures = args.Get(0).([]models.Fixture)
	}
	return fixtures, args.Error(1)
}
