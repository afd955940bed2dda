package planner

import (
	"context"

	"travel-planner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// CreateSession starts a new planner session.
	CreateSession(ctx context.Context) (SessionOutput, error)

	// GetSession returns the session's gating state.
	GetSession(ctx context.Context, sc model.Scope) (SessionOutput, error)

	// SelectKey marks the session's API key as selected.
	SelectKey(ctx context.Context, sc model.Scope) (SessionOutput, error)

	// Generate requests an itinerary from the AI, parses it and replaces the
	// session's current itinerary. Overrides from the previous itinerary are
	// discarded atomically with the replacement.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// SetActualCost records or clears an actual-cost override and returns the
	// recomputed budget summary.
	SetActualCost(ctx context.Context, sc model.Scope, input SetActualCostInput) (SummaryOutput, error)

	// Summary returns the budget summary for the session's current itinerary.
	Summary(ctx context.Context, sc model.Scope) (SummaryOutput, error)

	// ExportCalendar creates one calendar event per itinerary day.
	ExportCalendar(ctx context.Context, sc model.Scope, input ExportCalendarInput) (ExportCalendarOutput, error)
}
