package usecase

import (
	"context"

	"travel-planner/internal/planner"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/gemini"
	pkgLog "travel-planner/pkg/log"
)

// Calendar is the slice of the calendar client the planner needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        gemini.IGemini
	calendar   Calendar // nil when calendar export is not configured
	sessions   *planner.SessionStore
	timezone   string
	calendarID string
}

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	calendar Calendar,
	sessions *planner.SessionStore,
	timezone string,
	calendarID string,
) *implUseCase {
	if timezone == "" {
		timezone = "Asia/Jakarta"
	}
	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		sessions:   sessions,
		timezone:   timezone,
		calendarID: calendarID,
	}
}

var _ planner.UseCase = (*implUseCase)(nil)
