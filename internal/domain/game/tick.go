package game

import "healthquest/internal/domain/catalog"

// TickActions derives the actions one effect tick applies while a zone
// is occupied: the zone's HP impact, then progress for every active
// uncompleted quest whose objective polarity matches the zone.
//
// Polarity is kept exactly as shipped: an avoid objective advances
// whenever the tick fires in any zone whose kind differs from the
// target, a visit objective advances when the kinds match, and maintain
// objectives never advance here. Returns nil when no zone is active.
func TickActions(s State) []Action {
	zone := s.ActiveRiskZone
	if zone == nil {
		return nil
	}

	actions := make([]Action, 0, 1+len(s.Quests))
	actions = append(actions, Action{Kind: KindUpdateHP, HPDelta: zone.HPImpact})

	for _, quest := range s.Quests {
		if !quest.IsActive || quest.IsCompleted {
			continue
		}
		if !objectiveAdvances(quest.Objective, zone.Kind) {
			continue
		}

		newCurrent := quest.Objective.Current + 1
		newProgress := 100
		if quest.Objective.Count > 0 {
			newProgress = min(100, newCurrent*100/quest.Objective.Count)
		}

		actions = append(actions, Action{
			Kind:     KindUpdateQuestProgress,
			QuestID:  quest.ID,
			Progress: newProgress,
		})
		if newProgress >= 100 {
			actions = append(actions, Action{Kind: KindCompleteQuest, QuestID: quest.ID})
		}
	}
	return actions
}

func objectiveAdvances(o Objective, zoneKind catalog.ZoneKind) bool {
	switch o.Kind {
	case catalog.ObjectiveAvoid:
		return o.Target != zoneKind
	case catalog.ObjectiveVisit:
		return o.Target == zoneKind
	default:
		return false
	}
}
