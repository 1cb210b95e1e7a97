package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthquest/internal/adapter/repo/memory"
	"healthquest/internal/app/ports"
	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/game"
)

func fixedNow() time.Time { return time.Unix(5000, 0) }

func newTestUseCase() (UseCase, *memory.Store) {
	store := memory.NewStore()
	uc := UseCase{
		SessionRepo: memory.NewSessionRepo(store),
		Catalog:     catalog.Default(),
		NewID:       func() string { return "fixed-id" },
		Now:         fixedNow,
	}
	return uc, store
}

func TestCreate(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.State.SessionID != "fixed-id" {
		t.Fatalf("unexpected session id: %s", resp.State.SessionID)
	}
	if resp.State.Version != 1 {
		t.Fatalf("fresh session must be version 1, got %d", resp.State.Version)
	}

	stored, err := uc.SessionRepo.GetBySessionID(context.Background(), "fixed-id")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.User.Level != 7 {
		t.Fatalf("persisted state wrong: %+v", stored.User)
	}
}

func TestCreate_DuplicateIDConflicts(t *testing.T) {
	uc, _ := newTestUseCase()

	if _, err := uc.Create(context.Background()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := uc.Create(context.Background())
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict on duplicate id, got %v", err)
	}
}

func TestGet_PrunesExpiredNotifications(t *testing.T) {
	uc, store := newTestUseCase()

	state := game.NewState("s-1", uc.Catalog, fixedNow())
	state.Notifications = []game.Notification{
		{Message: "stale", CreatedAt: fixedNow().Add(-time.Minute)},
		{Message: "fresh", CreatedAt: fixedNow()},
	}
	store.SeedSession(state)

	resp, err := uc.Get(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(resp.State.Notifications) != 1 || resp.State.Notifications[0].Message != "fresh" {
		t.Fatalf("expected pruned view, got %+v", resp.State.Notifications)
	}
}

func TestGet_Validation(t *testing.T) {
	uc, _ := newTestUseCase()

	if _, err := uc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "ghost"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
