package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dosada05/teamsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM sessions").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := NewPostgresSessionRepository(db).GetByID(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionListUpdatedSince(t *testing.T) {
	db, mock := newMockDB(t)
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	updated := since.Add(time.Hour)

	mock.ExpectQuery("WHERE updated_at >=").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status", "created_at", "updated_at"}).
			AddRow("s1", "Tuesday league", "live", since, updated))

	sessions, err := NewPostgresSessionRepository(db).ListUpdatedSince(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s1", sessions[0].ID)
	assert.Equal(t, models.SessionStatusLive, sessions[0].Status)
	assert.Equal(t, updated, sessions[0].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
