package catalog

type ObjectiveKind string

const (
	ObjectiveAvoid    ObjectiveKind = "avoid"
	ObjectiveVisit    ObjectiveKind = "visit"
	ObjectiveMaintain ObjectiveKind = "maintain"
)

type QuestKind string

const (
	QuestPersonal  QuestKind = "personal"
	QuestCommunity QuestKind = "community"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type ObjectiveDefinition struct {
	Kind   ObjectiveKind `json:"kind"`
	Target ZoneKind      `json:"target"`
	Count  int           `json:"count"`
}

// QuestDefinition is the immutable template a session quest is built from.
// Community quests carry static seed progress, there is no real
// multiplayer aggregation behind them.
type QuestDefinition struct {
	ID          int                 `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Lore        string              `json:"lore"`
	RewardXP    int                 `json:"reward_xp"`
	RewardBadge string              `json:"reward_badge,omitempty"`
	Difficulty  Difficulty          `json:"difficulty"`
	Kind        QuestKind           `json:"kind"`
	TimeLeft    string              `json:"time_left"`
	RiskAreas   []string            `json:"risk_areas"`
	Objective   ObjectiveDefinition `json:"objective"`

	SeedActive   bool `json:"seed_active"`
	SeedCurrent  int  `json:"seed_current"`
	SeedProgress int  `json:"seed_progress"`
}
