package memory

import (
	"sync"

	"healthquest/internal/domain/game"
)

// Store is the default in-process backend. Sessions reset when the
// process restarts, which is the intended demo behavior.
type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	sessions map[string]game.State
	events   map[string][]game.Event
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]game.State),
		events:   make(map[string][]game.Event),
	}
}

// SeedSession installs a state directly, bypassing version checks.
func (s *Store) SeedSession(state game.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = state
}
