package mockoverlay

import (
	"context"

	"github.com/Dosada05/teamsync/overlay"
	"github.com/stretchr/testify/mock"
)

type Reader struct {
	mock.Mock
}

func (m *Reader) ReadSession(ctx context.Context, sessionID string) (*overlay.Snapshot, error) {
	args := m.Called(ctx, sessionID)

	var snap *overlay.Snapshot
	if args.Get(0) != nil {
		snap = args.Get(0).(*overlay.Snapshot)
	}
	return snap, args.Error(1)
}
