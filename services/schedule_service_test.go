package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/Dosada05/teamsync/brackets"
	"github.com/Dosada05/teamsync/models"
	"github.com/Dosada05/teamsync/repositories"
	"github.com/Dosada05/teamsync/repositories/mockrepo"
	"github.com/Dosada05/teamsync/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (u *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.keys = append(u.keys, key)
	u.bodies = append(u.bodies, body)
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(ctx context.Context, key string) error { return nil }

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type scheduleFixture struct {
	tx          *mockrepo.TxManager
	tournaments *mockrepo.TournamentRepository
	teams       *mockrepo.TeamRepository
	fixtures    *mockrepo.FixtureRepository
	publisher   *recordingPublisher
	uploader    *fakeUploader
}

func newScheduleFixture() *scheduleFixture {
	return &scheduleFixture{
		tx:          &mockrepo.TxManager{},
		tournaments: &mockrepo.TournamentRepository{},
		teams:       &mockrepo.TeamRepository{},
		fixtures:    &mockrepo.FixtureRepository{},
		publisher:   &recordingPublisher{},
		uploader:    &fakeUploader{},
	}
}

func (f *scheduleFixture) service() ScheduleService {
	return NewScheduleService(f.tx, f.tournaments, f.teams, f.fixtures, nil, f.publisher, f.uploader, nil)
}

func teamsOf(ids ...string) []*models.Team {
	teams := make([]*models.Team, len(ids))
	for i, id := range ids {
		teams[i] = &models.Team{ID: id, TournamentID: "t1", Name: "Team " + id}
	}
	return teams
}

func expectedFixtures(tournamentID string, teamIDs ...string) []models.Fixture {
	fixtures := brackets.GenerateSchedule(teamIDs)
	for i := range fixtures {
		fixtures[i].TournamentID = tournamentID
	}
	return fixtures
}

func TestGenerateSchedule(t *testing.T) {
	f := newScheduleFixture()
	generated := expectedFixtures("t1", "A", "B", "C", "D")
	saved := make([]models.Fixture, len(generated))
	for i, fx := range generated {
		fx.ID = fmt.Sprintf("f%d", i+1)
		saved[i] = fx
	}

	f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1", Status: models.StatusDraft}, nil)
	f.teams.On("ListByTournament", mock.Anything, "t1").Return(teamsOf("A", "B", "C", "D"), nil)
	f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil)
	f.fixtures.On("ReplaceForTournament", mock.Anything, nil, "t1", generated).Return(saved, nil).Once()
	f.tournaments.On("UpdateStatus", mock.Anything, nil, "t1", models.StatusScheduled).Return(nil).Once()

	result, err := f.service().GenerateSchedule(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, saved, result.Fixtures)
	assert.Equal(t, 3, result.Rounds)
	assert.Equal(t, brackets.RoundRobinName, result.Generator)
	assert.Equal(t, "https://cdn.example.com/schedules/t1.json", result.ExportURL)
	require.Equal(t, []string{"schedules/t1.json"}, f.uploader.keys)

	var exported ScheduleResult
	require.NoError(t, json.Unmarshal(f.uploader.bodies[0], &exported))
	assert.Len(t, exported.Fixtures, 6)

	msgs := f.publisher.messages[brackets.TournamentRoom("t1")]
	require.Len(t, msgs, 1)
	assert.Equal(t, brackets.MessageScheduleGenerated, msgs[0].Type)

	f.tournaments.AssertExpectations(t)
	f.fixtures.AssertExpectations(t)
}

func TestGenerateSchedule_OddTeamsGetByes(t *testing.T) {
	f := newScheduleFixture()
	generated := expectedFixtures("t1", "A", "B", "C")

	f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
	f.teams.On("ListByTournament", mock.Anything, "t1").Return(teamsOf("A", "B", "C"), nil)
	f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil)
	f.fixtures.On("ReplaceForTournament", mock.Anything, nil, "t1", generated).Return(generated, nil)
	f.tournaments.On("UpdateStatus", mock.Anything, nil, "t1", models.StatusScheduled).Return(nil)

	result, err := f.service().GenerateSchedule(context.Background(), "t1")
	require.NoError(t, err)

	assert.Len(t, result.Fixtures, 3)
	assert.Equal(t, 3, result.Rounds)
}

func TestGenerateSchedule_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *scheduleFixture)
		wantErr error
	}{
		{
			name: "tournament not found",
			setup: func(f *scheduleFixture) {
				f.tournaments.On("GetByID", mock.Anything, "t1").Return(nil, repositories.ErrTournamentNotFound)
			},
			wantErr: ErrTournamentNotFound,
		},
		{
			name: "single team",
			setup: func(f *scheduleFixture) {
				f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
				f.teams.On("ListByTournament", mock.Anything, "t1").Return(teamsOf("A"), nil)
			},
			wantErr: ErrNotEnoughTeams,
		},
		{
			name: "no teams",
			setup: func(f *scheduleFixture) {
				f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
				f.teams.On("ListByTournament", mock.Anything, "t1").Return(nil, nil)
			},
			wantErr: ErrNotEnoughTeams,
		},
		{
			name: "duplicate team ids",
			setup: func(f *scheduleFixture) {
				f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
				f.teams.On("ListByTournament", mock.Anything, "t1").Return(teamsOf("A", "B", "A"), nil)
			},
			wantErr: ErrDuplicateTeam,
		},
		{
			name: "team removed concurrently",
			setup: func(f *scheduleFixture) {
				f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
				f.teams.On("ListByTournament", mock.Anything, "t1").Return(teamsOf("A", "B"), nil)
				f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil)
				f.fixtures.On("ReplaceForTournament", mock.Anything, nil, "t1", mock.Anything).
					Return(nil, repositories.ErrFixtureTeamInvalid)
			},
			wantErr: ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture()
			tt.setup(f)

			result, err := f.service().GenerateSchedule(context.Background(), "t1")
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.uploader.keys)
			assert.Empty(t, f.publisher.messages)
			f.tournaments.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateSchedule_TransactionFailure(t *testing.T) {
	f := newScheduleFixture()
	f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
	f.teams.On("ListByTournament", mock.Anything, "t1").Return(teamsOf("A", "B"), nil)
	f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := f.service().GenerateSchedule(context.Background(), "t1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	f.fixtures.AssertNotCalled(t, "ReplaceForTournament", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateSchedule_ExportFailureIsNotFatal(t *testing.T) {
	f := newScheduleFixture()
	f.uploader.err = errors.New("bucket unavailable")
	generated := expectedFixtures("t1", "A", "B")

	f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
	f.teams.On("ListByTournament", mock.Anything, "t1").Return(teamsOf("A", "B"), nil)
	f.tx.On("WithinTx", mock.Anything, mock.Anything).Return(nil)
	f.fixtures.On("ReplaceForTournament", mock.Anything, nil, "t1", generated).Return(generated, nil)
	f.tournaments.On("UpdateStatus", mock.Anything, nil, "t1", models.StatusScheduled).Return(nil)

	result, err := f.service().GenerateSchedule(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, result.ExportURL)
	assert.Len(t, f.publisher.messages[brackets.TournamentRoom("t1")], 1)
}

func TestListFixtures(t *testing.T) {
	f := newScheduleFixture()
	f.tournaments.On("GetByID", mock.Anything, "t1").Return(&models.Tournament{ID: "t1"}, nil)
	f.fixtures.On("ListByTournament", mock.Anything, "t1").Return(nil, nil)

	fixtures, err := f.service().ListFixtures(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []models.Fixture{}, fixtures)

	f.tournaments.On("GetByID", mock.Anything, "missing").Return(nil, repositories.ErrTournamentNotFound)
	_, err = f.service().ListFixtures(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}
