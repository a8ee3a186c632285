package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/teamsync/models"
	"github.com/lib/pq"
)

type GameRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]models.Game, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Game, error) {
	query := `
		SELECT id, session_id, team_a_players, team_b_players, team_a_score, team_b_score, COALESCE(winner, '')
		FROM games
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		var teamA, teamB pq.StringArray
		if err := rows.Scan(&g.ID, &g.SessionID, &teamA, &teamB, &g.TeamAScore, &g.TeamBScore, &g.Winner); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		g.TeamAPlayers = []string(teamA)
		g.TeamBPlayers = []string(teamB)
		if g.TeamAPlayers == nil {
			g.TeamAPlayers = []string{}
		}
		if g.TeamBPlayers == nil {
			g.TeamBPlayers = []string{}
		}
		games = append(games, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}
	return games, nil
}
