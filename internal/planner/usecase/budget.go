package usecase

import (
	"context"

	"travel-planner/internal/model"
	"travel-planner/internal/planner"
)

// SetActualCost records or clears (nil cost) an actual-cost override and
// returns the synchronously recomputed summary.
func (uc *implUseCase) SetActualCost(ctx context.Context, sc model.Scope, input planner.SetActualCostInput) (planner.SummaryOutput, error) {
	s, err := uc.sessions.Get(sc.SessionID)
	if err != nil {
		return planner.SummaryOutput{}, err
	}

	if !s.SetActualCost(input.Day, input.ActivityIndex, input.Cost) {
		return planner.SummaryOutput{}, planner.ErrNoItinerary
	}

	uc.l.Debugf(ctx, "SetActualCost: session=%s day=%d index=%d cleared=%v",
		s.ID, input.Day, input.ActivityIndex, input.Cost == nil)

	it, actual, budget, duration := s.Snapshot()
	return planner.SummaryOutput{Summary: planner.Summarize(it, actual, budget, duration)}, nil
}

// Summary returns the budget summary for the session's current itinerary.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (planner.SummaryOutput, error) {
	s, err := uc.sessions.Get(sc.SessionID)
	if err != nil {
		return planner.SummaryOutput{}, err
	}

	it, actual, budget, duration := s.Snapshot()
	if it == nil {
		return planner.SummaryOutput{}, planner.ErrNoItinerary
	}

	return planner.SummaryOutput{Summary: planner.Summarize(it, actual, budget, duration)}, nil
}
