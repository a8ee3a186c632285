package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/teamsync/models"
)

type SessionParticipantRepository interface {
	ListBySession(ctx context.Context, exec SQLExecutor, sessionID string) ([]models.SessionParticipant, error)
	// UpdateSelection sets is_selected for the (session, member) row. It
	// reports false when no such row exists; rows are never created here.
	UpdateSelection(ctx context.Context, exec SQLExecutor, sessionID, memberID string, isSelected bool) (bool, error)
}

type postgresSessionParticipantRepository struct {
	db *sql.DB
}

func NewPostgresSessionParticipantRepository(db *sql.DB) SessionParticipantRepository {
	return &postgresSessionParticipantRepository{db: db}
}

func (r *postgresSessionParticipantRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresSessionParticipantRepository) ListBySession(ctx context.Context, exec SQLExecutor, sessionID string) ([]models.SessionParticipant, error) {
	query := `
		SELECT id, session_id, member_id, display_name, is_selected
		FROM session_participants
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.getExecutor(exec).QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	participants := make([]models.SessionParticipant, 0)
	for rows.Next() {
		var p models.SessionParticipant
		if err := rows.Scan(&p.ID, &p.SessionID, &p.MemberID, &p.DisplayName, &p.IsSelected); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		participants = append(participants, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return participants, nil
}

func (r *postgresSessionParticipantRepository) UpdateSelection(ctx context.Context, exec SQLExecutor, sessionID, memberID string, isSelected bool) (bool, error) {
	query := `
		UPDATE session_participants
		SET is_selected = $1, updated_at = NOW()
		WHERE session_id = $2 AND member_id = $3`

	result, err := r.getExecutor(exec).ExecContext(ctx, query, isSelected, sessionID, memberID)
	if err != nil {
		return false, fmt.Errorf("failed to update selection for member %s in session %s: %w", memberID, sessionID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows for selection update: %w", err)
	}
	return rowsAffected > 0, nil
}
