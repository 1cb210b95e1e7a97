package redisrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"healthquest/internal/app/ports"
	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/game"
)

func newTestRepo(t *testing.T) (SessionRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepo(client, time.Hour), mr
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	state := game.NewState("s-1", catalog.Default(), time.Unix(1000, 0))
	if err := repo.SaveWithVersion(ctx, state, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.GetBySessionID(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.User.Level != 7 || len(loaded.Quests) != 4 {
		t.Fatalf("state did not survive the round trip: %+v", loaded.User)
	}
	if loaded.Version != 1 {
		t.Fatalf("expected version 1, got %d", loaded.Version)
	}
}

func TestSessionRepo_VersionChecks(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	state := game.State{SessionID: "s-1", Version: 1}
	if err := repo.SaveWithVersion(ctx, state, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, state, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on duplicate create, got %v", err)
	}

	state.Version = 2
	if err := repo.SaveWithVersion(ctx, state, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	state.Version = 3
	if err := repo.SaveWithVersion(ctx, state, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on stale version, got %v", err)
	}
}

func TestSessionRepo_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	if _, err := repo.GetBySessionID(context.Background(), "ghost"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSessionRepo_TTLRefreshesOnSave(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	state := game.State{SessionID: "s-1", Version: 1}
	if err := repo.SaveWithVersion(ctx, state, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	mr.FastForward(30 * time.Minute)
	state.Version = 2
	if err := repo.SaveWithVersion(ctx, state, 1); err != nil {
		t.Fatalf("update: %v", err)
	}

	mr.FastForward(45 * time.Minute)
	if _, err := repo.GetBySessionID(ctx, "s-1"); err != nil {
		t.Fatalf("save must refresh the TTL: %v", err)
	}

	mr.FastForward(time.Hour)
	if _, err := repo.GetBySessionID(ctx, "s-1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}
