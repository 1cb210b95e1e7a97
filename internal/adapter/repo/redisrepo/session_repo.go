package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"healthquest/internal/app/ports"
	"healthquest/internal/domain/game"
)

const keyPrefix = "healthquest:session:"

// DefaultTTL keeps abandoned sessions from accumulating; every save
// refreshes it.
const DefaultTTL = time.Hour

// SessionRepo stores session state as JSON blobs in Redis. The version
// check is read-then-write; the process-level TxManager serializes
// dispatches, so this is safe for a single instance.
type SessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepo(client *redis.Client, ttl time.Duration) SessionRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return SessionRepo{client: client, ttl: ttl}
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (r SessionRepo) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (game.State, error) {
	data, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return game.State{}, ports.ErrNotFound
		}
		return game.State{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var state game.State
	if err := json.Unmarshal(data, &state); err != nil {
		return game.State{}, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return state, nil
}

func (r SessionRepo) SaveWithVersion(ctx context.Context, state game.State, expectedVersion int64) error {
	current, err := r.GetBySessionID(ctx, state.SessionID)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
	case err != nil:
		return err
	default:
		if current.Version != expectedVersion {
			return ports.ErrConflict
		}
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.SessionID, err)
	}
	if err := r.client.Set(ctx, keyPrefix+state.SessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", state.SessionID, err)
	}
	return nil
}
