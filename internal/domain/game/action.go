package game

import (
	"healthquest/internal/domain/catalog"
	"healthquest/internal/domain/triage"
)

// Kind discriminates the closed action union. Adding a kind means adding
// a case to Rules.Apply.
type Kind string

const (
	KindMovePlayer          Kind = "move_player"
	KindEnterRiskZone       Kind = "enter_risk_zone"
	KindExitRiskZone        Kind = "exit_risk_zone"
	KindUpdateHP            Kind = "update_hp"
	KindActivateQuest       Kind = "activate_quest"
	KindUpdateQuestProgress Kind = "update_quest_progress"
	KindCompleteQuest       Kind = "complete_quest"
	KindAddXP               Kind = "add_xp"
	KindLevelUp             Kind = "level_up"
	KindAddNotification     Kind = "add_notification"
	KindClearNotification   Kind = "clear_notification"
	KindNextTutorialStep    Kind = "next_tutorial_step"
	KindCompleteTutorial    Kind = "complete_tutorial"
	KindToggleMapMode       Kind = "toggle_map_mode"
	KindSelectHospital      Kind = "select_hospital"
	KindLoadDoctors         Kind = "load_doctors"
	KindSelectDoctor        Kind = "select_doctor"
	KindAddSymptom          Kind = "add_symptom"
	KindRemoveSymptom       Kind = "remove_symptom"
	KindSetAssessment       Kind = "set_assessment"
	KindClearSymptoms       Kind = "clear_symptoms"
	KindBookAppointment     Kind = "book_appointment"
)

type Assessment struct {
	Tier           triage.Tier `json:"tier"`
	Recommendation string      `json:"recommendation"`
	Specialties    []string    `json:"specialties"`
}

type Booking struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Action is the tagged payload for one transition. Only the fields the
// Kind's handler reads are meaningful; the rest stay zero.
type Action struct {
	Kind Kind `json:"kind"`

	Position   *catalog.Position `json:"position,omitempty"`
	Zone       *catalog.RiskZone `json:"zone,omitempty"`
	HPDelta    int               `json:"hp_delta,omitempty"`
	QuestID    int               `json:"quest_id,omitempty"`
	Progress   int               `json:"progress,omitempty"`
	XP         int               `json:"xp,omitempty"`
	Message    string            `json:"message,omitempty"`
	Index      int               `json:"index,omitempty"`
	Hospital   *catalog.Hospital `json:"hospital,omitempty"`
	Doctors    []catalog.Doctor  `json:"doctors,omitempty"`
	Doctor     *catalog.Doctor   `json:"doctor,omitempty"`
	Symptom    string            `json:"symptom,omitempty"`
	Assessment *Assessment       `json:"assessment,omitempty"`
	Booking    *Booking          `json:"booking,omitempty"`
}
