package game

import "time"

const (
	// TickInterval is the period of the zone effect loop.
	TickInterval = time.Second

	// NotificationTTL is how long a notification survives before it is
	// pruned from the queue.
	NotificationTTL = 3 * time.Second

	LevelUpMaxHPBonus = 10
	XPCurveMultiplier = 1.5

	CriticalHPThreshold = 15
)

// Seed values for a fresh session, matching the demo profile.
const (
	SeedLevel           = 7
	SeedXP              = 650
	SeedXPToNextLevel   = 1000
	SeedHP              = 85
	SeedMaxHP           = 100
	SeedQuestsCompleted = 24
	SeedHPSaved         = 1250
	SeedAreasAvoided    = 37
	SeedCommunityQuests = 5

	SeedPositionX = 50
	SeedPositionY = 45
)

func seedBadges() []string {
	return []string{"Clean Air", "Bug Slayer", "Heat Wave", "Explorer", "First Aid"}
}

func seedLore() []string {
	return []string{"The Smog Monster", "Mosquito Swarms", "Heat Wave Dragon"}
}
