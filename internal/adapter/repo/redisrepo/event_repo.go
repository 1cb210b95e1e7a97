package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"healthquest/internal/domain/game"
)

const eventKeyPrefix = "healthquest:events:"

// maxEventLog bounds the per-session event list; older entries are
// trimmed on append.
const maxEventLog = 500

// EventRepo keeps a per-session event log in a Redis list, newest first.
type EventRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventRepo(client *redis.Client, ttl time.Duration) EventRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return EventRepo{client: client, ttl: ttl}
}

func (r EventRepo) Append(ctx context.Context, sessionID string, events []game.Event) error {
	if len(events) == 0 {
		return nil
	}
	values := make([]any, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.Type, err)
		}
		values = append(values, data)
	}

	key := eventKeyPrefix + sessionID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, values...)
	pipe.LTrim(ctx, key, 0, maxEventLog-1)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append events for %s: %w", sessionID, err)
	}
	return nil
}

func (r EventRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]game.Event, error) {
	stop := int64(maxEventLog - 1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	raw, err := r.client.LRange(ctx, eventKeyPrefix+sessionID, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", sessionID, err)
	}

	out := make([]game.Event, 0, len(raw))
	for _, item := range raw {
		var e game.Event
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("decode event for %s: %w", sessionID, err)
		}
		out = append(out, e)
	}
	return out, nil
}
