package stateview

import "healthquest/internal/domain/game"

// View is display-only enrichment derived from session state. Nothing
// here feeds back into transitions.
type View struct {
	StatusEffects  []string `json:"status_effects"`
	HPDeltaPerTick int      `json:"hp_delta_per_tick"`
	XPPercent      int      `json:"xp_percent"`
}

func Derive(s game.State) View {
	return View{
		StatusEffects:  deriveStatusEffects(s),
		HPDeltaPerTick: deriveHPDelta(s),
		XPPercent:      deriveXPPercent(s.User),
	}
}

func deriveStatusEffects(s game.State) []string {
	effects := make([]string, 0, 3)
	if s.User.HP <= game.CriticalHPThreshold {
		effects = append(effects, "CRITICAL")
	}
	if s.ActiveRiskZone != nil {
		if s.ActiveRiskZone.HPImpact < 0 {
			effects = append(effects, "EXPOSED")
		} else if s.ActiveRiskZone.HPImpact > 0 {
			effects = append(effects, "RECOVERING")
		}
	}
	if s.User.XP >= s.User.XPToNextLevel {
		effects = append(effects, "LEVEL_READY")
	}
	return effects
}

func deriveHPDelta(s game.State) int {
	if s.ActiveRiskZone == nil {
		return 0
	}
	return s.ActiveRiskZone.HPImpact
}

func deriveXPPercent(u game.UserStats) int {
	if u.XPToNextLevel <= 0 {
		return 100
	}
	percent := u.XP * 100 / u.XPToNextLevel
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}
	return percent
}
