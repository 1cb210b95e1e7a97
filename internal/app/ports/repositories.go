package ports

import (
	"context"

	"healthquest/internal/domain/game"
)

type SessionRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (game.State, error)
	// SaveWithVersion persists state only when the stored version still
	// equals expectedVersion; expectedVersion 0 means create.
	SaveWithVersion(ctx context.Context, state game.State, expectedVersion int64) error
}

type EventRepository interface {
	Append(ctx context.Context, sessionID string, events []game.Event) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]game.Event, error)
}
