package game

import (
	"testing"
	"time"

	"healthquest/internal/domain/catalog"
)

func TestNewState_SeedsDemoProfile(t *testing.T) {
	c := catalog.Default()
	now := time.Unix(1000, 0)
	s := NewState("s-1", c, now)

	if s.SessionID != "s-1" || s.Version != 1 || !s.UpdatedAt.Equal(now) {
		t.Fatalf("session identity wrong: %+v", s)
	}
	if s.User.Level != 7 || s.User.XP != 650 || s.User.XPToNextLevel != 1000 {
		t.Fatalf("progression seed wrong: %+v", s.User)
	}
	if s.User.HP != 85 || s.User.MaxHP != 100 {
		t.Fatalf("HP seed wrong: %+v", s.User)
	}
	if s.Position.X != 50 || s.Position.Y != 45 {
		t.Fatalf("position seed wrong: %+v", s.Position)
	}
	if !s.ShowTutorial || s.MapMode != MapModeAdventure {
		t.Fatalf("UI seed wrong: tutorial=%v mode=%s", s.ShowTutorial, s.MapMode)
	}
	if len(s.NearbyHospitals) != 3 {
		t.Fatalf("hospitals not seeded: %d", len(s.NearbyHospitals))
	}
	if s.AvailableDoctors == nil || len(s.AvailableDoctors) != 0 {
		t.Fatalf("doctor list must start empty, got %v", s.AvailableDoctors)
	}
}

func TestNewState_QuestSeeding(t *testing.T) {
	s := NewState("s-1", catalog.Default(), time.Unix(1000, 0))

	if len(s.Quests) != 4 {
		t.Fatalf("expected 4 quests, got %d", len(s.Quests))
	}
	for _, q := range s.Quests[:3] {
		if q.IsActive || q.IsCompleted || q.Progress != 0 {
			t.Fatalf("personal quest %d must start inert: %+v", q.ID, q)
		}
	}

	community := s.QuestByID(4)
	if community == nil || !community.IsActive {
		t.Fatalf("community quest must start active: %+v", community)
	}
	if community.Progress != 45 || community.Objective.Current != 225 {
		t.Fatalf("community quest seed progress wrong: %+v", community)
	}
}
