package mockservices

import (
	"context"
	"time"

	"github.com/Dosada05/teamsync/models"
	"github.com/Dosada05/teamsync/services"
	"github.com/stretchr/testify/mock"
)

type SessionService struct {
	mock.Mock
}

func (m *SessionService) GetSessionView(ctx context.Context, sessionID string) (*services.SessionView, error) {
	args := m.Called(ctx, sessionID)

	var v *services.SessionView
	if args.Get(0) != nil {
		v = args.Get(0).(*services.SessionView)
	}
	return v, args.Error(1)
}

func (m *SessionService) SyncBack(ctx context.Context, sessionID string) services.SyncResult {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(services.SyncResult)
}

func (m *SessionService) SyncRecentSessions(ctx context.Context, window time.Duration) (*services.SyncReport, error) {
	args := m.Called(ctx, window)

	var r *services.SyncReport
	if args.Get(0) != nil {
		r = args.Get(0).(*services.SyncReport)
	}
	return r, args.Error(1)
}

type ScheduleService struct {
	mock.Mock
}

func (m *ScheduleService) GenerateSchedule(ctx context.Context, tournamentID string) (*services.ScheduleResult, error) {
	args := m.Called(ctx, tournamentID)

	var r *services.ScheduleResult
	if args.Get(0) != nil {
		r = args.Get(0).(*services.ScheduleResult)
	}
	return r, args.Error(1)
}

func (m *ScheduleService) ListFixtures(ctx context.Context, tournamentID string) ([]models.Fixture, error) {
	args := m.Called(ctx, tournamentID)

	var f []models.Fixture
	if args.Get(0) != nil {
		f = args.Get(0).([]models.Fixture)
	}
	return f, args.Error(1)
}
