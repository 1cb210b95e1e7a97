package game

import (
	"fmt"
	"math"
	"strings"
	"time"

	"healthquest/internal/domain/catalog"
)

// Rules applies actions to session state. Apply is total: unknown kinds
// and unmatched ids leave the state untouched, no case panics or errors.
type Rules struct {
	Catalog *catalog.Catalog
}

// Apply computes the next state from the current state and one action.
// State is passed and returned by value; mutated slices are copied first
// so earlier snapshots stay valid.
func (r Rules) Apply(s State, a Action, now time.Time) State {
	switch a.Kind {
	case KindMovePlayer:
		if a.Position == nil {
			return s
		}
		s.Position = *a.Position
		s.IsMoving = true
		return s

	case KindEnterRiskZone:
		if a.Zone == nil {
			return s
		}
		s.ActiveRiskZone = a.Zone
		return notify(s, fmt.Sprintf("Entered %s: %+d HP", a.Zone.Name, a.Zone.HPImpact), now)

	case KindExitRiskZone:
		s.ActiveRiskZone = nil
		return s

	case KindUpdateHP:
		s.User.HP = clamp(s.User.HP+a.HPDelta, 0, s.User.MaxHP)
		return s

	case KindActivateQuest:
		idx := questIndex(s.Quests, a.QuestID)
		if idx < 0 {
			return s
		}
		quests := cloneQuests(s.Quests)
		quests[idx].IsActive = true
		s.Quests = quests
		return notify(s, fmt.Sprintf("Quest activated: %s", quests[idx].Title), now)

	case KindUpdateQuestProgress:
		idx := questIndex(s.Quests, a.QuestID)
		if idx < 0 {
			return s
		}
		quests := cloneQuests(s.Quests)
		quests[idx].Progress = a.Progress
		// Current is recomputed from the percentage, not carried forward.
		quests[idx].Objective.Current = a.Progress * quests[idx].Objective.Count / 100
		s.Quests = quests
		return s

	case KindCompleteQuest:
		idx := questIndex(s.Quests, a.QuestID)
		if idx < 0 {
			return s
		}
		quests := cloneQuests(s.Quests)
		quests[idx].IsCompleted = true
		quests[idx].IsActive = false
		quests[idx].Progress = 100
		completed := quests[idx]
		s.Quests = quests

		s.User.XP += completed.RewardXP
		s.User.QuestsCompleted++
		if completed.RewardBadge != "" {
			s.User.Badges = append(cloneStrings(s.User.Badges), completed.RewardBadge)
		}
		s.User.UnlockedLore = append(cloneStrings(s.User.UnlockedLore), completed.Title)
		if completed.Kind == catalog.QuestCommunity {
			s.User.CommunityQuestsCompleted++
		}
		return notify(s, fmt.Sprintf("Quest completed: %s! +%d XP", completed.Title, completed.RewardXP), now)

	case KindAddXP:
		s.User.XP += a.XP
		return s

	case KindLevelUp:
		s.User.Level++
		s.User.XP -= s.User.XPToNextLevel
		s.User.XPToNextLevel = int(math.Floor(float64(s.User.XPToNextLevel) * XPCurveMultiplier))
		s.User.MaxHP += LevelUpMaxHPBonus
		s.User.HP = s.User.MaxHP
		return notify(s, fmt.Sprintf("Level Up! You are now level %d", s.User.Level), now)

	case KindAddNotification:
		if a.Message == "" {
			return s
		}
		return notify(s, a.Message, now)

	case KindClearNotification:
		if a.Index < 0 || a.Index >= len(s.Notifications) {
			return s
		}
		next := make([]Notification, 0, len(s.Notifications)-1)
		next = append(next, s.Notifications[:a.Index]...)
		next = append(next, s.Notifications[a.Index+1:]...)
		s.Notifications = next
		return s

	case KindNextTutorialStep:
		s.TutorialStep++
		return s

	case KindCompleteTutorial:
		s.ShowTutorial = false
		s.TutorialStep = 0
		return s

	case KindToggleMapMode:
		if s.MapMode == MapModeAdventure {
			s.MapMode = MapModeSatellite
		} else {
			s.MapMode = MapModeAdventure
		}
		return s

	case KindSelectHospital:
		s.SelectedHospital = a.Hospital
		if a.Hospital != nil && r.Catalog != nil {
			s.AvailableDoctors = r.Catalog.DoctorsByHospital(a.Hospital.ID)
		} else {
			s.AvailableDoctors = []catalog.Doctor{}
		}
		return s

	case KindLoadDoctors:
		s.AvailableDoctors = a.Doctors
		return s

	case KindSelectDoctor:
		s.SelectedDoctor = a.Doctor
		return s

	case KindAddSymptom:
		symptom := strings.TrimSpace(a.Symptom)
		if symptom == "" || containsString(s.SymptomChecker.Symptoms, symptom) {
			return s
		}
		s.SymptomChecker.Symptoms = append(cloneStrings(s.SymptomChecker.Symptoms), symptom)
		return s

	case KindRemoveSymptom:
		next := make([]string, 0, len(s.SymptomChecker.Symptoms))
		for _, symptom := range s.SymptomChecker.Symptoms {
			if symptom != a.Symptom {
				next = append(next, symptom)
			}
		}
		s.SymptomChecker.Symptoms = next
		return s

	case KindSetAssessment:
		if a.Assessment == nil {
			return s
		}
		s.SymptomChecker.Assessment = a.Assessment.Tier
		s.SymptomChecker.Recommendation = a.Assessment.Recommendation
		s.SymptomChecker.SuggestedSpecialties = a.Assessment.Specialties
		return s

	case KindClearSymptoms:
		s.SymptomChecker = SymptomChecker{}
		return s

	case KindBookAppointment:
		if a.Booking == nil {
			return s
		}
		for _, doctor := range s.AvailableDoctors {
			if doctor.ID == a.Booking.DoctorID {
				return notify(s, fmt.Sprintf("Appointment booked with %s on %s at %s",
					doctor.Name, a.Booking.Date, a.Booking.Time), now)
			}
		}
		return s

	default:
		return s
	}
}

// PruneNotifications drops notifications older than NotificationTTL.
func PruneNotifications(s State, now time.Time) State {
	if len(s.Notifications) == 0 {
		return s
	}
	next := make([]Notification, 0, len(s.Notifications))
	for _, n := range s.Notifications {
		if now.Sub(n.CreatedAt) < NotificationTTL {
			next = append(next, n)
		}
	}
	s.Notifications = next
	return s
}

func notify(s State, message string, now time.Time) State {
	notifications := make([]Notification, 0, len(s.Notifications)+1)
	notifications = append(notifications, s.Notifications...)
	notifications = append(notifications, Notification{Message: message, CreatedAt: now})
	s.Notifications = notifications
	return s
}

func questIndex(quests []Quest, id int) int {
	for i := range quests {
		if quests[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneQuests(quests []Quest) []Quest {
	out := make([]Quest, len(quests))
	copy(out, quests)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func containsString(in []string, want string) bool {
	for _, s := range in {
		if s == want {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
