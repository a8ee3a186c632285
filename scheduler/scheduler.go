package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/teamsync/services"
	"github.com/go-co-op/gocron/v2"
)

// Syncer is the reconciliation entry point the scheduler drives.
type Syncer interface {
	SyncRecentSessions(ctx context.Context, window time.Duration) (*services.SyncReport, error)
}

type Config struct {
	// Schedule is a five-field crontab expression.
	Schedule string
	Window   time.Duration
	// Timeout bounds one run. Zero means no limit.
	Timeout  time.Duration
	Location *time.Location
}

type Scheduler struct {
	s      gocron.Scheduler
	job    gocron.Job
	syncer Syncer
	cfg    Config
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(syncer Syncer, cfg Config, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(location))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sch := &Scheduler{
		s:      s,
		syncer: syncer,
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	sch.job, err = s.NewJob(
		gocron.CronJob(cfg.Schedule, false),
		gocron.NewTask(sch.syncRecentSessions),
		gocron.WithName("sync-recent-sessions"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create session sync job %q: %w", cfg.Schedule, err)
	}
	return sch, nil
}

func (s *Scheduler) Start() {
	s.s.Start()
	if next, err := s.job.NextRun(); err == nil {
		s.logger.Info("session sync scheduled", slog.String("schedule", s.cfg.Schedule), slog.Time("next_run", next))
	}
}

// RunNow triggers the sync job outside its schedule.
func (s *Scheduler) RunNow() error {
	return s.job.RunNow()
}

// Stop cancels an in-flight run and waits for the job to return.
func (s *Scheduler) Stop() error {
	s.cancel()
	return s.s.Shutdown()
}

func (s *Scheduler) syncRecentSessions() {
	ctx := s.ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	started := time.Now()
	report, err := s.syncer.SyncRecentSessions(ctx, s.cfg.Window)
	if err != nil {
		s.logger.Error("scheduled session sync failed", slog.Any("error", err))
		return
	}
	s.logger.Info("scheduled session sync finished",
		slog.Duration("took", time.Since(started)),
		slog.Int("total", report.Stats.SessionsTotal),
		slog.Int("synced", report.Stats.SessionsSynced),
		slog.Int("failed", report.Stats.SessionsFailed))
}
