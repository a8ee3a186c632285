package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/teamsync/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*models.Session, error)
	ListUpdatedSince(ctx context.Context, since time.Time) ([]*models.Session, error)
}

type postgresSessionRepository struct {
	db *sql.DB
}

func NewPostgresSessionRepository(db *sql.DB) SessionRepository {
	return &postgresSessionRepository{db: db}
}

func (r *postgresSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT id, name, status, created_at, updated_at FROM sessions WHERE id = $1`

	s := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	return s, nil
}

func (r *postgresSessionRepository) ListUpdatedSince(ctx context.Context, since time.Time) ([]*models.Session, error) {
	query := `
		SELECT id, name, status, created_at, updated_at
		FROM sessions
		WHERE updated_at >= $1
		ORDER BY updated_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions updated since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()

	sessions := make([]*models.Session, 0)
	for rows.Next() {
		s := &models.Session{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}
	return sessions, nil
}
