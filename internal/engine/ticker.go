package engine

import (
	"context"
	"sync"
	"time"
)

// TickFunc applies one zone effect tick for a session.
type TickFunc func(ctx context.Context, sessionID string) error

// Supervisor owns at most one effect loop per session. A loop starts
// when the session's zone becomes active and is cancelled when the zone
// clears or the supervisor shuts down; cancellation is the only exit
// path, so no loop can leak past Close.
type Supervisor struct {
	mu       sync.Mutex
	cancels  map[string]context.CancelFunc
	tick     TickFunc
	interval time.Duration
	wg       sync.WaitGroup
	closed   bool
}

func NewSupervisor(tick TickFunc, interval time.Duration) *Supervisor {
	if interval <= 0 {
		interval = time.Second
	}
	return &Supervisor{
		cancels:  make(map[string]context.CancelFunc),
		tick:     tick,
		interval: interval,
	}
}

// Sync reconciles the session's loop with its active-zone flag. Safe to
// call from inside a tick: stopping cancels the context, and the loop
// observes that on its next select.
func (s *Supervisor) Sync(sessionID string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancel, running := s.cancels[sessionID]
	switch {
	case active && !running && !s.closed:
		ctx, cancelFn := context.WithCancel(context.Background())
		s.cancels[sessionID] = cancelFn
		s.wg.Add(1)
		go s.run(ctx, sessionID)
	case !active && running:
		cancel()
		delete(s.cancels, sessionID)
	}
}

func (s *Supervisor) run(ctx context.Context, sessionID string) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Conflicts and transient errors are retried on the next
			// tick; the loop stops only through cancellation.
			_ = s.tick(ctx, sessionID)
		}
	}
}

// Running reports whether the session currently has an effect loop.
func (s *Supervisor) Running(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cancels[sessionID]
	return ok
}

// Close cancels every loop and waits for them to drain.
func (s *Supervisor) Close() {
	s.mu.Lock()
	s.closed = true
	for id, cancel := range s.cancels {
		cancel()
		delete(s.cancels, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
