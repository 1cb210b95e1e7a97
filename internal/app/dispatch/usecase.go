package dispatch

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthquest/internal/app/ports"
	"healthquest/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid dispatch request")

// UseCase serializes every state transition for a session: load, apply,
// run post-transition watchers, save with version check, append events.
// The zone ticker drives ExecuteTick through the same path, so user
// dispatches and tick effects never interleave.
type UseCase struct {
	TxManager   ports.TxManager
	SessionRepo ports.SessionRepository
	EventRepo   ports.EventRepository
	Metrics     ports.DispatchMetrics
	Ticker      ports.TickScheduler
	Rules       game.Rules
	Now         func() time.Time
}

type Request struct {
	SessionID string
	Action    game.Action
}

type Response struct {
	State  game.State
	Events []game.Event
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	return u.run(ctx, req.SessionID, func(state game.State, now time.Time) (game.State, []game.Event) {
		before := state
		state = u.Rules.Apply(state, req.Action, now)
		events := []game.Event{actionAppliedEvent(req.Action, before, state, now)}
		state, watcherEvents := u.runWatchers(before, state, now)
		return state, append(events, watcherEvents...)
	}, req.Action.Kind)
}

// ExecuteTick applies one zone effect tick. A session with no active
// zone ticks to nothing; the scheduler sync below then stops the loop.
func (u UseCase) ExecuteTick(ctx context.Context, sessionID string) (Response, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	return u.run(ctx, sessionID, func(state game.State, now time.Time) (game.State, []game.Event) {
		actions := game.TickActions(state)
		if len(actions) == 0 {
			return state, nil
		}
		before := state
		for _, action := range actions {
			state = u.Rules.Apply(state, action, now)
		}
		events := []game.Event{tickAppliedEvent(before, state, now)}
		state, watcherEvents := u.runWatchers(before, state, now)
		return state, append(events, watcherEvents...)
	}, game.Kind("tick"))
}

func (u UseCase) run(ctx context.Context, sessionID string, apply func(game.State, time.Time) (game.State, []game.Event), kind game.Kind) (Response, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.SessionRepo.GetBySessionID(txCtx, sessionID)
		if err != nil {
			return err
		}
		expected := state.Version
		state = game.PruneNotifications(state, now)

		state, events := apply(state, now)

		state.Version = expected + 1
		state.UpdatedAt = now
		if err := u.SessionRepo.SaveWithVersion(txCtx, state, expected); err != nil {
			return err
		}
		if len(events) > 0 && u.EventRepo != nil {
			if err := u.EventRepo.Append(txCtx, sessionID, events); err != nil {
				return err
			}
		}
		out = Response{State: state, Events: events}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordApplied(kind)
	}
	if u.Ticker != nil {
		u.Ticker.Sync(sessionID, out.State.ActiveRiskZone != nil)
	}
	return out, nil
}

func actionAppliedEvent(a game.Action, before, after game.State, now time.Time) game.Event {
	return game.Event{
		Type:       game.EventActionApplied,
		OccurredAt: now,
		Payload: map[string]any{
			"kind":      string(a.Kind),
			"hp_before": before.User.HP,
			"hp_after":  after.User.HP,
		},
	}
}

func tickAppliedEvent(before, after game.State, now time.Time) game.Event {
	payload := map[string]any{
		"hp_before": before.User.HP,
		"hp_after":  after.User.HP,
	}
	if before.ActiveRiskZone != nil {
		payload["zone_id"] = before.ActiveRiskZone.ID
		payload["hp_impact"] = before.ActiveRiskZone.HPImpact
	}
	return game.Event{Type: game.EventTickApplied, OccurredAt: now, Payload: payload}
}
