package ports

// TickScheduler keeps the periodic zone effect loop in sync with a
// session's active-zone flag. Implementations must make Sync idempotent.
type TickScheduler interface {
	Sync(sessionID string, active bool)
}
