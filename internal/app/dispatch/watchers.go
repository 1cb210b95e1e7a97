package dispatch

import (
	"time"

	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/game"
)

// runWatchers is the synchronous post-transition hook chain. Each
// watcher inspects the before/after diff and may apply follow-up
// actions in the same dispatch.
func (u UseCase) runWatchers(before, after game.State, now time.Time) (game.State, []game.Event) {
	var events []game.Event
	after, events = u.watchPosition(before, after, events, now)
	events = watchQuestCompletion(before, after, events, now)
	events = watchLevelThreshold(before, after, events, now)
	return after, events
}

// watchPosition re-evaluates zone membership whenever the player moved.
// On an identity change it applies ExitRiskZone, then EnterRiskZone when
// a new zone was found.
func (u UseCase) watchPosition(before, after game.State, events []game.Event, now time.Time) (game.State, []game.Event) {
	if !after.IsMoving {
		return after, events
	}
	if before.IsMoving && before.Position == after.Position {
		return after, events
	}

	var zones []catalog.RiskZone
	if u.Rules.Catalog != nil {
		zones = u.Rules.Catalog.Zones
	}
	found := catalog.ZoneAt(after.Position, zones)
	current := after.ActiveRiskZone

	sameZone := (found == nil && current == nil) ||
		(found != nil && current != nil && found.ID == current.ID)
	if sameZone {
		return after, events
	}

	if current != nil {
		after = u.Rules.Apply(after, game.Action{Kind: game.KindExitRiskZone}, now)
		events = append(events, game.Event{
			Type:       game.EventZoneExited,
			OccurredAt: now,
			Payload:    map[string]any{"zone_id": current.ID},
		})
	}
	if found != nil {
		after = u.Rules.Apply(after, game.Action{Kind: game.KindEnterRiskZone, Zone: found}, now)
		events = append(events, game.Event{
			Type:       game.EventZoneEntered,
			OccurredAt: now,
			Payload:    map[string]any{"zone_id": found.ID, "hp_impact": found.HPImpact},
		})
	}
	return after, events
}

func watchQuestCompletion(before, after game.State, events []game.Event, now time.Time) []game.Event {
	for _, quest := range after.Quests {
		if !quest.IsCompleted {
			continue
		}
		prev := before.QuestByID(quest.ID)
		if prev != nil && prev.IsCompleted {
			continue
		}
		events = append(events, game.Event{
			Type:       game.EventQuestCompleted,
			OccurredAt: now,
			Payload: map[string]any{
				"quest_id":  quest.ID,
				"title":     quest.Title,
				"reward_xp": quest.RewardXP,
			},
		})
	}
	return events
}

// watchLevelThreshold surfaces readiness only; the LevelUp action itself
// is dispatched by the client once the player acknowledges.
func watchLevelThreshold(before, after game.State, events []game.Event, now time.Time) []game.Event {
	crossedBefore := before.User.XP >= before.User.XPToNextLevel
	crossedAfter := after.User.XP >= after.User.XPToNextLevel
	if crossedAfter && !crossedBefore {
		events = append(events, game.Event{
			Type:       game.EventLevelUpReady,
			OccurredAt: now,
			Payload: map[string]any{
				"xp":               after.User.XP,
				"xp_to_next_level": after.User.XPToNextLevel,
			},
		})
	}
	return events
}
