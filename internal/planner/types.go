package planner

import "travel-planner/internal/model"

// GenerateInput is the input for itinerary generation.
type GenerateInput struct {
	Destination  string   // e.g. "Kyoto, Japan"
	DurationDays int      // trip length in days
	Interests    string   // e.g. "Kuliner dan Sejarah"
	TotalBudget  *float64 // optional total trip budget; nil means not supplied
}

// GenerateOutput is the result of a successful generation.
type GenerateOutput struct {
	Itinerary model.Itinerary
	Summary   model.BudgetSummary
}

// SetActualCostInput records or clears a user-entered actual cost for one
// activity. A nil Cost clears the override.
type SetActualCostInput struct {
	Day           int
	ActivityIndex int
	Cost          *float64
}

// SummaryOutput carries the recomputed budget summary.
type SummaryOutput struct {
	Summary model.BudgetSummary
}

// SessionOutput describes a planner session's gating state.
type SessionOutput struct {
	SessionID   string
	KeySelected bool
}

// ExportCalendarInput is the input for calendar export.
type ExportCalendarInput struct {
	StartDate  string // first trip day, "2006-01-02"
	CalendarID string // optional; defaults to the configured calendar
}

// ExportCalendarOutput is the result of calendar export.
type ExportCalendarOutput struct {
	EventLinks  []string
	EventCount  int
	SkippedDays int // days whose event creation failed (non-fatal)
}
