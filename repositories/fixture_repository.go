package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/teamsync/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrFixtureTeamInvalid = errors.New("fixture references a team that does not exist")

type FixtureRepository interface {
	// ReplaceForTournament deletes the tournament's fixtures and inserts the
	// given ones. Callers pass a transaction so readers never see a mix.
	ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID string, fixtures []models.Fixture) ([]models.Fixture, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]models.Fixture, error)
}

type postgresFixtureRepository struct {
	db *sql.DB
}

func NewPostgresFixtureRepository(db *sql.DB) FixtureRepository {
	return &postgresFixtureRepository{db: db}
}

func (r *postgresFixtureRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresFixtureRepository) ReplaceForTournament(ctx context.Context, exec SQLExecutor, tournamentID string, fixtures []models.Fixture) ([]models.Fixture, error) {
	executor := r.getExecutor(exec)

	if _, err := executor.ExecContext(ctx, `DELETE FROM fixtures WHERE tournament_id = $1`, tournamentID); err != nil {
		return nil, fmt.Errorf("failed to clear fixtures for tournament %s: %w", tournamentID, err)
	}

	query := `
		INSERT INTO fixtures (id, tournament_id, home_team_id, away_team_id, round)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	saved := make([]models.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		f.TournamentID = tournamentID
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		err := executor.QueryRowContext(ctx, query, f.ID, f.TournamentID, f.HomeID, f.AwayID, f.Round).Scan(&f.CreatedAt)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
				return nil, ErrFixtureTeamInvalid
			}
			return nil, fmt.Errorf("failed to insert fixture %s vs %s (round %d): %w", f.HomeID, f.AwayID, f.Round, err)
		}
		saved = append(saved, f)
	}
	return saved, nil
}

func (r *postgresFixtureRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.Fixture, error) {
	query := `
		SELECT id, tournament_id, home_team_id, away_team_id, round, created_at
		FROM fixtures
		WHERE tournament_id = $1
		ORDER BY round ASC, created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	fixtures := make([]models.Fixture, 0)
	for rows.Next() {
		var f models.Fixture
		if err := rows.Scan(&f.ID, &f.TournamentID, &f.HomeID, &f.AwayID, &f.Round, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixture row: %w", err)
		}
		fixtures = append(fixtures, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixture rows: %w", err)
	}
	return fixtures, nil
}
