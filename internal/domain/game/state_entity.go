package game

import (
	"time"

	"healthquest/internal/domain/catalog"
)

// NewState builds a fresh session from the catalog, seeded with the demo
// profile. The community quest starts active with its static mock
// progress; personal quests start inert.
func NewState(sessionID string, c *catalog.Catalog, now time.Time) State {
	quests := make([]Quest, 0, len(c.Quests))
	for _, def := range c.Quests {
		quests = append(quests, Quest{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Lore:        def.Lore,
			RewardXP:    def.RewardXP,
			RewardBadge: def.RewardBadge,
			Difficulty:  def.Difficulty,
			Kind:        def.Kind,
			TimeLeft:    def.TimeLeft,
			RiskAreas:   def.RiskAreas,
			Objective: Objective{
				Kind:    def.Objective.Kind,
				Target:  def.Objective.Target,
				Count:   def.Objective.Count,
				Current: def.SeedCurrent,
			},
			Progress: def.SeedProgress,
			IsActive: def.SeedActive,
		})
	}

	return State{
		SessionID: sessionID,
		User: UserStats{
			Level:                    SeedLevel,
			XP:                       SeedXP,
			XPToNextLevel:            SeedXPToNextLevel,
			HP:                       SeedHP,
			MaxHP:                    SeedMaxHP,
			QuestsCompleted:          SeedQuestsCompleted,
			HPSaved:                  SeedHPSaved,
			RiskAreasAvoided:         SeedAreasAvoided,
			CommunityQuestsCompleted: SeedCommunityQuests,
			Badges:                   seedBadges(),
			UnlockedLore:             seedLore(),
		},
		Quests:           quests,
		Notifications:    []Notification{},
		Position:         catalog.Position{X: SeedPositionX, Y: SeedPositionY},
		ShowTutorial:     true,
		MapMode:          MapModeAdventure,
		NearbyHospitals:  c.Hospitals,
		AvailableDoctors: []catalog.Doctor{},
		Version:          1,
		UpdatedAt:        now,
	}
}

// QuestByID returns the session quest with the given id, or nil.
func (s *State) QuestByID(id int) *Quest {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return &s.Quests[i]
		}
	}
	return nil
}
