package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"healthquest/internal/app/ports"
	"healthquest/internal/domain/game"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return SessionRepo{db: db}
}

func (r SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (game.State, error) {
	var m SessionState
	if err := getDBFromCtx(ctx, r.db).Where("session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.State{}, ports.ErrNotFound
		}
		return game.State{}, err
	}
	var state game.State
	if err := json.Unmarshal(m.Payload, &state); err != nil {
		return game.State{}, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	state.Version = m.Version
	return state, nil
}

func (r SessionRepo) SaveWithVersion(ctx context.Context, state game.State, expectedVersion int64) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.SessionID, err)
	}
	db := getDBFromCtx(ctx, r.db)

	if expectedVersion == 0 {
		m := SessionState{
			SessionID: state.SessionID,
			Payload:   payload,
			Version:   state.Version,
			UpdatedAt: state.UpdatedAt,
		}
		return db.Create(&m).Error
	}

	res := db.Model(&SessionState{}).
		Where("session_id = ? AND version = ?", state.SessionID, expectedVersion).
		Updates(map[string]any{
			"payload":    payload,
			"version":    state.Version,
			"updated_at": state.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
