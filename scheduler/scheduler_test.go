package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/teamsync/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncer struct {
	windows chan time.Duration
	err     error
}

func (f *fakeSyncer) SyncRecentSessions(ctx context.Context, window time.Duration) (*services.SyncReport, error) {
	f.windows <- window
	if f.err != nil {
		return nil, f.err
	}
	return &services.SyncReport{}, nil
}

func TestScheduler_RunNowUsesConfiguredWindow(t *testing.T) {
	syncer := &fakeSyncer{windows: make(chan time.Duration, 1)}
	s, err := NewScheduler(syncer, Config{Schedule: "0 3 * * *", Window: 6 * time.Hour, Timeout: time.Minute}, nil)
	require.NoError(t, err)

	s.Start()
	defer func() { assert.NoError(t, s.Stop()) }()

	require.NoError(t, s.RunNow())

	select {
	case w := <-syncer.windows:
		assert.Equal(t, 6*time.Hour, w)
	case <-time.After(5 * time.Second):
		t.Fatal("sync job did not run")
	}
}

func TestScheduler_SyncErrorIsLogged(t *testing.T) {
	syncer := &fakeSyncer{windows: make(chan time.Duration, 1), err: errors.New("db down")}
	s, err := NewScheduler(syncer, Config{Schedule: "*/5 * * * *", Window: time.Hour}, nil)
	require.NoError(t, err)

	s.Start()
	defer func() { assert.NoError(t, s.Stop()) }()

	require.NoError(t, s.RunNow())
	select {
	case <-syncer.windows:
	case <-time.After(5 * time.Second):
		t.Fatal("sync job did not run")
	}
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler(&fakeSyncer{}, Config{Schedule: "every night", Window: time.Hour}, nil)
	assert.Error(t, err)
}
