package usecase

import (
	"context"

	"travel-planner/internal/model"
	"travel-planner/internal/planner"
)

// CreateSession starts a new planner session. The key-selected flag is seeded
// from whether the server holds a configured generation client at all: when it
// does, key selection is handled outside the session and nothing gates
// generation.
func (uc *implUseCase) CreateSession(ctx context.Context) (planner.SessionOutput, error) {
	s := uc.sessions.Create(uc.llm != nil)
	uc.l.Infof(ctx, "CreateSession: id=%s key_selected=%v", s.ID, s.KeySelected())
	return planner.SessionOutput{SessionID: s.ID, KeySelected: s.KeySelected()}, nil
}

// GetSession returns the session's gating state.
func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope) (planner.SessionOutput, error) {
	s, err := uc.sessions.Get(sc.SessionID)
	if err != nil {
		return planner.SessionOutput{}, err
	}
	return planner.SessionOutput{SessionID: s.ID, KeySelected: s.KeySelected()}, nil
}

// SelectKey marks the session's API key as selected.
func (uc *implUseCase) SelectKey(ctx context.Context, sc model.Scope) (planner.SessionOutput, error) {
	s, err := uc.sessions.Get(sc.SessionID)
	if err != nil {
		return planner.SessionOutput{}, err
	}
	s.SelectKey()
	uc.l.Infof(ctx, "SelectKey: id=%s", s.ID)
	return planner.SessionOutput{SessionID: s.ID, KeySelected: true}, nil
}
