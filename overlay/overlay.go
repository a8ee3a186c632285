// Package overlay reads the live, possibly partial view of a session that
// scorekeepers write while games are being played, and merges it onto the
// relational snapshot.
package overlay

import (
	"context"
	"errors"

	"github.com/Dosada05/teamsync/models"
)

// ErrNoData is returned when a session has no live data at all.
var ErrNoData = errors.New("no data")

// Snapshot is the live state of one session at read time.
type Snapshot struct {
	SessionID    string
	Participants []models.SessionParticipant
	Games        []models.Game
	// Dropped counts entries rejected by schema validation.
	Dropped int
}

// Reader is the overlay collaborator. Implementations never write.
type Reader interface {
	ReadSession(ctx context.Context, sessionID string) (*Snapshot, error)
}

// Merge overlays live entries onto authoritative ones, matching by key.
//
// A live entry replaces the authoritative entry with the same key or is
// appended when no such entry exists; authoritative entries missing from the
// live set are kept. The result lists authoritative keys first, in their
// original order, followed by live-only keys in live order. When a key
// repeats inside one input the last occurrence wins.
func Merge[E any](authoritative, live []E, key func(E) string) []E {
	merged := make([]E, 0, len(authoritative)+len(live))
	index := make(map[string]int, len(authoritative)+len(live))

	put := func(e E) {
		k := key(e)
		if i, ok := index[k]; ok {
			merged[i] = e
			return
		}
		index[k] = len(merged)
		merged = append(merged, e)
	}

	for _, e := range authoritative {
		put(e)
	}
	for _, e := range live {
		put(e)
	}
	return merged
}

// MergeParticipants merges participants keyed by member id.
func MergeParticipants(authoritative, live []models.SessionParticipant) []models.SessionParticipant {
	return Merge(authoritative, live, models.ParticipantKey)
}

// MergeGames merges games keyed by game id.
func MergeGames(authoritative, live []models.Game) []models.Game {
	return Merge(authoritative, live, models.GameKey)
}
