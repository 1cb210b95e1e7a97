package triage

import (
	"context"
	"errors"
	"strings"

	"healthquest/internal/app/dispatch"
	"healthquest/internal/app/ports"
	"healthquest/internal/domain/game"
	"healthquest/internal/domain/triage"
)

var ErrInvalidRequest = errors.New("invalid triage request")

type UseCase struct {
	SessionRepo ports.SessionRepository
	Dispatch    dispatch.UseCase
}

type Response struct {
	State  game.State
	Result triage.Result
}

// Execute assesses the session's recorded symptoms and applies the
// result to the symptom checker state.
func (u UseCase) Execute(ctx context.Context, sessionID string) (Response, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.SessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return Response{}, err
	}

	result := triage.Assess(state.SymptomChecker.Symptoms)
	resp, err := u.Dispatch.Execute(ctx, dispatch.Request{
		SessionID: sessionID,
		Action: game.Action{
			Kind: game.KindSetAssessment,
			Assessment: &game.Assessment{
				Tier:           result.Tier,
				Recommendation: result.Recommendation,
				Specialties:    result.Specialties,
			},
		},
	})
	if err != nil {
		return Response{}, err
	}
	return Response{State: resp.State, Result: result}, nil
}

// Preview assesses a symptom list without touching any session.
func (u UseCase) Preview(symptoms []string) triage.Result {
	return triage.Assess(symptoms)
}
