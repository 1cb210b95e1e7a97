package memory

import (
	"context"

	"healthquest/internal/app/ports"
	"healthquest/internal/domain/game"
)

type SessionRepo struct {
	store *Store
}

func NewSessionRepo(store *Store) SessionRepo {
	return SessionRepo{store: store}
}

func (r SessionRepo) GetBySessionID(_ context.Context, sessionID string) (game.State, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	state, ok := r.store.sessions[sessionID]
	if !ok {
		return game.State{}, ports.ErrNotFound
	}
	return state, nil
}

func (r SessionRepo) SaveWithVersion(_ context.Context, state game.State, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.sessions[state.SessionID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.sessions[state.SessionID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.sessions[state.SessionID] = state
	return nil
}
