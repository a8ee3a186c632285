package overlay

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient parses a redis:// or rediss:// URL and verifies the
// connection. The caller owns the returned client and must close it.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func participantsKey(sessionID string) string {
	return "live:session:" + sessionID + ":participants"
}

func gamesKey(sessionID string) string {
	return "live:session:" + sessionID + ":games"
}

// RedisReader reads session overlays stored as two hashes per session:
// participants keyed by member id and games keyed by game id, each value a
// JSON document.
type RedisReader struct {
	rdb    redis.UniversalClient
	logger *slog.Logger
}

func NewRedisReader(rdb redis.UniversalClient, logger *slog.Logger) *RedisReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisReader{rdb: rdb, logger: logger}
}

func (r *RedisReader) ReadSession(ctx context.Context, sessionID string) (*Snapshot, error) {
	if r == nil || r.rdb == nil {
		return nil, fmt.Errorf("overlay reader not initialized")
	}

	var participantsCmd, gamesCmd *redis.MapStringStringCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		participantsCmd = pipe.HGetAll(ctx, participantsKey(sessionID))
		gamesCmd = pipe.HGetAll(ctx, gamesKey(sessionID))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read live session %s: %w", sessionID, err)
	}

	rawParticipants := participantsCmd.Val()
	rawGames := gamesCmd.Val()
	if len(rawParticipants) == 0 && len(rawGames) == 0 {
		return nil, ErrNoData
	}

	snap := &Snapshot{SessionID: sessionID}
	for _, field := range sortedKeys(rawParticipants) {
		p, err := decodeParticipant(sessionID, field, rawParticipants[field])
		if err != nil {
			snap.Dropped++
			r.logger.WarnContext(ctx, "dropping malformed live participant", slog.String("session_id", sessionID), slog.Any("error", err))
			continue
		}
		snap.Participants = append(snap.Participants, p)
	}
	for _, field := range sortedKeys(rawGames) {
		g, err := decodeGame(sessionID, field, rawGames[field])
		if err != nil {
			snap.Dropped++
			r.logger.WarnContext(ctx, "dropping malformed live game", slog.String("session_id", sessionID), slog.Any("error", err))
			continue
		}
		snap.Games = append(snap.Games, g)
	}
	return snap, nil
}

// Redis hashes have no order; sorting keeps the merged view stable.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
