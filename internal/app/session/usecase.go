package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthquest/internal/app/ports"
	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid session request")

type UseCase struct {
	SessionRepo ports.SessionRepository
	Catalog     *catalog.Catalog
	NewID       func() string
	Now         func() time.Time
}

type Response struct {
	State game.State
}

// Create seeds a new session from the catalog and persists it.
func (u UseCase) Create(ctx context.Context) (Response, error) {
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	state := game.NewState(newID(), u.Catalog, nowFn())
	if err := u.SessionRepo.SaveWithVersion(ctx, state, 0); err != nil {
		return Response{}, err
	}
	return Response{State: state}, nil
}

// Get returns the current state with expired notifications pruned from
// the view. The prune is not written back here; dispatch does that on
// its next pass.
func (u UseCase) Get(ctx context.Context, sessionID string) (Response, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.SessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return Response{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return Response{State: game.PruneNotifications(state, nowFn())}, nil
}
