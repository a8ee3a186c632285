package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dosada05/teamsync/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceForTournament(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectExec("DELETE FROM fixtures").WithArgs("t1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("INSERT INTO fixtures").
		WithArgs(sqlmock.AnyArg(), "t1", "A", "B", 1).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery("INSERT INTO fixtures").
		WithArgs("fixed-id", "t1", "C", "A", 2).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	saved, err := NewPostgresFixtureRepository(db).ReplaceForTournament(context.Background(), nil, "t1", []models.Fixture{
		{HomeID: "A", AwayID: "B", Round: 1},
		{ID: "fixed-id", HomeID: "C", AwayID: "A", Round: 2},
	})

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)
	assert.Equal(t, "fixed-id", saved[1].ID)
	for _, f := range saved {
		assert.Equal(t, "t1", f.TournamentID)
		assert.Equal(t, now, f.CreatedAt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceForTournament_UnknownTeam(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM fixtures").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO fixtures").WillReturnError(&pq.Error{Code: "23503"})

	_, err := NewPostgresFixtureRepository(db).ReplaceForTournament(context.Background(), nil, "t1", []models.Fixture{
		{HomeID: "A", AwayID: "ghost", Round: 1},
	})

	assert.ErrorIs(t, err, ErrFixtureTeamInvalid)
}

func TestReplaceForTournament_DeleteFails(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM fixtures").WillReturnError(errors.New("lock timeout"))

	_, err := NewPostgresFixtureRepository(db).ReplaceForTournament(context.Background(), nil, "t1", nil)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
