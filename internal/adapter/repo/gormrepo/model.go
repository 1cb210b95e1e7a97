package gormrepo

import "time"

// SessionState stores the whole game state as a JSON blob; only the
// version column is relational, for the optimistic save path.
type SessionState struct {
	SessionID string    `gorm:"primaryKey;column:session_id"`
	Payload   []byte    `gorm:"type:jsonb"`
	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SessionState) TableName() string { return "session_states" }

type DomainEvent struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	SessionID  string    `gorm:"column:session_id;index"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
