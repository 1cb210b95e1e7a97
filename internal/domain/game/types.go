package game

import (
	"time"

	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/triage"
)

type UserStats struct {
	Level                    int      `json:"level"`
	XP                       int      `json:"xp"`
	XPToNextLevel            int      `json:"xp_to_next_level"`
	HP                       int      `json:"hp"`
	MaxHP                    int      `json:"max_hp"`
	QuestsCompleted          int      `json:"quests_completed"`
	HPSaved                  int      `json:"hp_saved"`
	RiskAreasAvoided         int      `json:"risk_areas_avoided"`
	CommunityQuestsCompleted int      `json:"community_quests_completed"`
	Badges                   []string `json:"badges"`
	UnlockedLore             []string `json:"unlocked_lore"`
}

type Objective struct {
	Kind    catalog.ObjectiveKind `json:"kind"`
	Target  catalog.ZoneKind      `json:"target"`
	Count   int                   `json:"count"`
	Current int                   `json:"current"`
}

type Quest struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Lore        string             `json:"lore"`
	RewardXP    int                `json:"reward_xp"`
	RewardBadge string             `json:"reward_badge,omitempty"`
	Difficulty  catalog.Difficulty `json:"difficulty"`
	Kind        catalog.QuestKind  `json:"kind"`
	TimeLeft    string             `json:"time_left"`
	RiskAreas   []string           `json:"risk_areas"`
	Objective   Objective          `json:"objective"`
	Progress    int                `json:"progress"`
	IsActive    bool               `json:"is_active"`
	IsCompleted bool               `json:"is_completed"`
}

type Notification struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type SymptomChecker struct {
	Symptoms             []string    `json:"symptoms"`
	Assessment           triage.Tier `json:"assessment,omitempty"`
	Recommendation       string      `json:"recommendation,omitempty"`
	SuggestedSpecialties []string    `json:"suggested_specialties,omitempty"`
}

type MapMode string

const (
	MapModeAdventure MapMode = "adventure"
	MapModeSatellite MapMode = "satellite"
)

// State is the aggregate root for one play session. All mutation goes
// through Rules.Apply; everything else treats it as an immutable value.
type State struct {
	SessionID        string             `json:"session_id"`
	User             UserStats          `json:"user"`
	Quests           []Quest            `json:"quests"`
	ActiveRiskZone   *catalog.RiskZone  `json:"active_risk_zone,omitempty"`
	Notifications    []Notification     `json:"notifications"`
	Position         catalog.Position   `json:"position"`
	IsMoving         bool               `json:"is_moving"`
	ShowTutorial     bool               `json:"show_tutorial"`
	TutorialStep     int                `json:"tutorial_step"`
	MapMode          MapMode            `json:"map_mode"`
	SelectedHospital *catalog.Hospital  `json:"selected_hospital,omitempty"`
	SelectedDoctor   *catalog.Doctor    `json:"selected_doctor,omitempty"`
	NearbyHospitals  []catalog.Hospital `json:"nearby_hospitals"`
	AvailableDoctors []catalog.Doctor   `json:"available_doctors"`
	SymptomChecker   SymptomChecker     `json:"symptom_checker"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event is an audit record of something the core did, kept for replay.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventZoneEntered    = "zone_entered"
	EventZoneExited     = "zone_exited"
	EventQuestCompleted = "quest_completed"
	EventLevelUpReady   = "level_up_ready"
	EventActionApplied  = "action_applied"
	EventTickApplied    = "tick_applied"
)
