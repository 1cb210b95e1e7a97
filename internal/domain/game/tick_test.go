package game

import (
	"testing"
	"time"

	"healthquest/internal/domain/catalog"
)

func TestTickActions_NoZone(t *testing.T) {
	s := testState(t)
	if actions := TickActions(s); actions != nil {
		t.Fatalf("no active zone must yield no actions, got %v", actions)
	}
}

func TestTickActions_ZoneDamageAndQuestProgress(t *testing.T) {
	c := catalog.Default()
	s := NewState("s-1", c, time.Unix(1000, 0))
	s.ActiveRiskZone = c.ZoneByID("heat-1")

	actions := TickActions(s)
	if len(actions) != 2 {
		t.Fatalf("expected HP update plus one quest progress, got %v", actions)
	}
	if actions[0].Kind != KindUpdateHP || actions[0].HPDelta != -3 {
		t.Fatalf("first action must carry the zone impact, got %+v", actions[0])
	}
	// The seeded community quest avoids pollution; a heat tick counts as
	// time spent avoiding it. 226 of 500 is 45% after integer division.
	if actions[1].Kind != KindUpdateQuestProgress || actions[1].QuestID != 4 || actions[1].Progress != 45 {
		t.Fatalf("unexpected quest progress action: %+v", actions[1])
	}
}

func TestTickActions_AvoidTargetZoneDoesNotAdvance(t *testing.T) {
	c := catalog.Default()
	s := NewState("s-1", c, time.Unix(1000, 0))
	// The community quest targets pollution; standing in pollution must
	// not advance it.
	s.ActiveRiskZone = c.ZoneByID("pollution-1")

	actions := TickActions(s)
	if len(actions) != 1 {
		t.Fatalf("expected only the HP update, got %v", actions)
	}
	if actions[0].Kind != KindUpdateHP || actions[0].HPDelta != -5 {
		t.Fatalf("unexpected action: %+v", actions[0])
	}
}

func TestTickActions_SafeZoneHeals(t *testing.T) {
	c := catalog.Default()
	s := NewState("s-1", c, time.Unix(1000, 0))
	s.ActiveRiskZone = c.ZoneByID("safe-1")

	actions := TickActions(s)
	if actions[0].Kind != KindUpdateHP || actions[0].HPDelta != 2 {
		t.Fatalf("safe zone must heal, got %+v", actions[0])
	}
}

func TestTickActions_CompletionAtThreshold(t *testing.T) {
	c := catalog.Default()
	s := NewState("s-1", c, time.Unix(1000, 0))
	s.ActiveRiskZone = c.ZoneByID("heat-1")

	quests := make([]Quest, len(s.Quests))
	copy(quests, s.Quests)
	idx := questIndex(quests, 4)
	quests[idx].Objective.Current = 499
	s.Quests = quests

	actions := TickActions(s)
	if len(actions) != 3 {
		t.Fatalf("expected HP, progress and completion, got %v", actions)
	}
	if actions[1].Progress != 100 {
		t.Fatalf("expected 100%% progress, got %d", actions[1].Progress)
	}
	if actions[2].Kind != KindCompleteQuest || actions[2].QuestID != 4 {
		t.Fatalf("expected completion action, got %+v", actions[2])
	}
}

func TestTickActions_SkipsInactiveAndCompleted(t *testing.T) {
	c := catalog.Default()
	s := NewState("s-1", c, time.Unix(1000, 0))
	s.ActiveRiskZone = c.ZoneByID("heat-1")

	quests := make([]Quest, len(s.Quests))
	copy(quests, s.Quests)
	idx := questIndex(quests, 4)
	quests[idx].IsCompleted = true
	s.Quests = quests

	actions := TickActions(s)
	if len(actions) != 1 {
		t.Fatalf("completed quest must not tick, got %v", actions)
	}
}

func TestTickActions_VisitObjective(t *testing.T) {
	c := catalog.Default()
	s := NewState("s-1", c, time.Unix(1000, 0))
	s.ActiveRiskZone = c.ZoneByID("safe-1")
	s.Quests = append(s.Quests, Quest{
		ID:       10,
		Title:    "Touch Grass",
		IsActive: true,
		Objective: Objective{
			Kind:   catalog.ObjectiveVisit,
			Target: catalog.ZoneSafe,
			Count:  10,
		},
	})

	actions := TickActions(s)
	if len(actions) != 2 {
		t.Fatalf("visit objective must advance in its target zone, got %v", actions)
	}
	if actions[1].QuestID != 10 || actions[1].Progress != 10 {
		t.Fatalf("unexpected visit progress: %+v", actions[1])
	}
}

func TestTickActions_MaintainNeverAdvances(t *testing.T) {
	c := catalog.Default()
	s := NewState("s-1", c, time.Unix(1000, 0))
	s.ActiveRiskZone = c.ZoneByID("safe-1")
	s.Quests = []Quest{{
		ID:       11,
		IsActive: true,
		Objective: Objective{
			Kind:   catalog.ObjectiveMaintain,
			Target: catalog.ZoneSafe,
			Count:  10,
		},
	}}

	actions := TickActions(s)
	if len(actions) != 1 {
		t.Fatalf("maintain objectives are not tick driven, got %v", actions)
	}
}
