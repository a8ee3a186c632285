package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/teamsync/brackets"
	"github.com/Dosada05/teamsync/models"
	"github.com/Dosada05/teamsync/overlay"
	"github.com/Dosada05/teamsync/repositories"
	"golang.org/x/sync/errgroup"
)

// NoDataError is the SyncResult error reported when the live store has
// nothing for a session. It is expected and retried on the next pass.
const NoDataError = "no data"

const (
	defaultSyncAttempts    = 3
	defaultSyncConcurrency = 4
)

// SyncResult is the outcome of one write-back pass for one session.
type SyncResult struct {
	SessionID string `json:"session_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Updated   int    `json:"updated"`
	Skipped   int    `json:"skipped"`
	Attempts  int    `json:"attempts"`
}

type SyncReport struct {
	Since   time.Time        `json:"since"`
	Stats   models.SyncStats `json:"stats"`
	Results []SyncResult     `json:"results"`
}

// SessionView is the merged read-side projection of a session. It is
// rebuilt on every request and never stored.
type SessionView struct {
	Session      *models.Session             `json:"session"`
	Participants []models.SessionParticipant `json:"participants"`
	Games        []models.Game               `json:"games"`
	Standings    []models.MemberStanding     `json:"standings"`
	// Live is false when the overlay had no data or could not be read.
	Live        bool `json:"live"`
	DroppedLive int  `json:"dropped_live_entries,omitempty"`
}

type SessionService interface {
	GetSessionView(ctx context.Context, sessionID string) (*SessionView, error)
	SyncBack(ctx context.Context, sessionID string) SyncResult
	SyncRecentSessions(ctx context.Context, window time.Duration) (*SyncReport, error)
}

type SessionServiceOption func(*sessionService)

// WithSyncConcurrency bounds how many sessions SyncRecentSessions reconciles at once.
func WithSyncConcurrency(n int) SessionServiceOption {
	return func(s *sessionService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithSyncAttempts bounds retries after serialization failures.
func WithSyncAttempts(n int) SessionServiceOption {
	return func(s *sessionService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithClock(now func() time.Time) SessionServiceOption {
	return func(s *sessionService) {
		if now != nil {
			s.now = now
		}
	}
}

type sessionService struct {
	txManager       repositories.TxManager
	sessionRepo     repositories.SessionRepository
	participantRepo repositories.SessionParticipantRepository
	gameRepo        repositories.GameRepository
	overlay         overlay.Reader
	publisher       brackets.Publisher
	logger          *slog.Logger

	concurrency int
	maxAttempts int
	now         func() time.Time
}

func NewSessionService(
	txManager repositories.TxManager,
	sessionRepo repositories.SessionRepository,
	participantRepo repositories.SessionParticipantRepository,
	gameRepo repositories.GameRepository,
	overlayReader overlay.Reader,
	publisher brackets.Publisher,
	logger *slog.Logger,
	opts ...SessionServiceOption,
) SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &sessionService{
		txManager:       txManager,
		sessionRepo:     sessionRepo,
		participantRepo: participantRepo,
		gameRepo:        gameRepo,
		overlay:         overlayReader,
		publisher:       publisher,
		logger:          logger,
		concurrency:     defaultSyncConcurrency,
		maxAttempts:     defaultSyncAttempts,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionService) GetSessionView(ctx context.Context, sessionID string) (*SessionView, error) {
	var (
		session      *models.Session
		participants []models.SessionParticipant
		games        []models.Game
		snap         *overlay.Snapshot
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		session, err = s.sessionRepo.GetByID(gCtx, sessionID)
		return err
	})
	g.Go(func() error {
		var err error
		participants, err = s.participantRepo.ListBySession(gCtx, nil, sessionID)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.gameRepo.ListBySession(gCtx, sessionID)
		return err
	})
	g.Go(func() error {
		var err error
		snap, err = s.overlay.ReadSession(gCtx, sessionID)
		if err != nil {
			// the relational snapshot alone is still a valid view
			if !errors.Is(err, overlay.ErrNoData) {
				s.logger.WarnContext(ctx, "live overlay unavailable, serving stored state",
					slog.String("session_id", sessionID), slog.Any("error", err))
			}
			snap = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	view := &SessionView{
		Session:      session,
		Participants: participants,
		Games:        games,
	}
	if snap != nil {
		view.Live = true
		view.DroppedLive = snap.Dropped
		view.Participants = overlay.MergeParticipants(participants, snap.Participants)
		view.Games = overlay.MergeGames(games, snap.Games)
	}
	if view.Participants == nil {
		view.Participants = []models.SessionParticipant{}
	}
	if view.Games == nil {
		view.Games = []models.Game{}
	}
	view.Standings = computeStandings(view.Participants, view.Games)
	return view, nil
}

// SyncBack folds live participant selections into the relational store.
//
// All updates of one pass share a repeatable-read transaction. A
// serialization failure means another pass for the same session committed
// first, so the whole pass, including the overlay read, is retried.
// Failures are reported in the result and never escape as errors or panics.
func (s *sessionService) SyncBack(ctx context.Context, sessionID string) (result SyncResult) {
	result = SyncResult{SessionID: sessionID}
	logger := s.logger.With(slog.String("session_id", sessionID))

	defer func() {
		if p := recover(); p != nil {
			logger.ErrorContext(ctx, "session sync panicked", slog.Any("panic", p))
			result = SyncResult{SessionID: sessionID, Attempts: result.Attempts, Error: fmt.Sprintf("internal error: %v", p)}
		}
	}()

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		result.Attempts = attempt

		updated, skipped, err := s.syncOnce(ctx, sessionID)
		if err == nil {
			result.Success = true
			result.Updated = updated
			result.Skipped = skipped
			logger.InfoContext(ctx, "session synced", slog.Int("updated", updated), slog.Int("skipped", skipped))
			if s.publisher != nil {
				s.publisher.BroadcastToRoom(brackets.SessionRoom(sessionID), brackets.WebSocketMessage{
					Type:    brackets.MessageSessionSynced,
					Payload: result,
					RoomID:  brackets.SessionRoom(sessionID),
				})
			}
			return result
		}

		if errors.Is(err, overlay.ErrNoData) {
			result.Error = NoDataError
			logger.DebugContext(ctx, "no live data for session")
			return result
		}
		if repositories.IsSerializationFailure(err) && attempt < s.maxAttempts && ctx.Err() == nil {
			logger.InfoContext(ctx, "concurrent sync detected, retrying", slog.Int("attempt", attempt))
			continue
		}

		result.Error = err.Error()
		logger.WarnContext(ctx, "session sync failed", slog.Int("attempt", attempt), slog.Any("error", err))
		return result
	}
	return result
}

func (s *sessionService) syncOnce(ctx context.Context, sessionID string) (updated, skipped int, err error) {
	snap, err := s.overlay.ReadSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, overlay.ErrNoData) {
			return 0, 0, err
		}
		return 0, 0, fmt.Errorf("failed to read live overlay: %w", err)
	}

	txOpts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead}
	err = s.txManager.WithinTx(ctx, txOpts, func(exec repositories.SQLExecutor) error {
		updated, skipped = 0, 0
		for _, p := range snap.Participants {
			ok, err := s.participantRepo.UpdateSelection(ctx, exec, sessionID, p.MemberID, p.IsSelected)
			if err != nil {
				return err
			}
			if ok {
				updated++
			} else {
				skipped++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return updated, skipped, nil
}

// SyncRecentSessions runs SyncBack for every session updated within window.
// Sessions are independent: one failing never affects the others.
func (s *sessionService) SyncRecentSessions(ctx context.Context, window time.Duration) (*SyncReport, error) {
	since := s.now().Add(-window)
	sessions, err := s.sessionRepo.ListUpdatedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list recently updated sessions: %w", err)
	}

	results := make([]SyncResult, len(sessions))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, session := range sessions {
		i, session := i, session
		g.Go(func() error {
			results[i] = s.SyncBack(ctx, session.ID)
			return nil
		})
	}
	_ = g.Wait()

	report := &SyncReport{Since: since, Results: results}
	report.Stats.SessionsTotal = len(results)
	for _, r := range results {
		switch {
		case r.Success:
			report.Stats.SessionsSynced++
			report.Stats.RowsUpdated += r.Updated
		case r.Error == NoDataError:
			report.Stats.SessionsNoData++
		default:
			report.Stats.SessionsFailed++
		}
	}

	s.logger.InfoContext(ctx, "recent sessions reconciled",
		slog.Int("total", report.Stats.SessionsTotal),
		slog.Int("synced", report.Stats.SessionsSynced),
		slog.Int("no_data", report.Stats.SessionsNoData),
		slog.Int("failed", report.Stats.SessionsFailed),
		slog.Int("rows_updated", report.Stats.RowsUpdated))
	return report, nil
}
