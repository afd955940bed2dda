package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-planner/internal/model"
	"travel-planner/internal/planner"
	"travel-planner/pkg/gcalendar"
)

const (
	dayStartHour = 9
	dayEndHour   = 18
)

// ExportCalendar creates one calendar event per itinerary day, starting at
// the given date. Per-day failures are skipped, not fatal: a half-exported
// trip is still useful.
func (uc *implUseCase) ExportCalendar(ctx context.Context, sc model.Scope, input planner.ExportCalendarInput) (planner.ExportCalendarOutput, error) {
	s, err := uc.sessions.Get(sc.SessionID)
	if err != nil {
		return planner.ExportCalendarOutput{}, err
	}

	it, _, _, _ := s.Snapshot()
	if it == nil || len(it.DailyItineraries) == 0 {
		return planner.ExportCalendarOutput{}, planner.ErrNoItinerary
	}

	if uc.calendar == nil {
		return planner.ExportCalendarOutput{}, planner.ErrCalendarUnavailable
	}

	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}

	startDate := time.Now().In(loc)
	if input.StartDate != "" {
		parsed, parseErr := time.ParseInLocation("2006-01-02", input.StartDate, loc)
		if parseErr != nil {
			return planner.ExportCalendarOutput{}, fmt.Errorf("invalid start date %q: %w", input.StartDate, parseErr)
		}
		startDate = parsed
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}

	output := planner.ExportCalendarOutput{}
	for _, day := range it.DailyItineraries {
		date := startDate.AddDate(0, 0, day.Day-1)
		start := time.Date(date.Year(), date.Month(), date.Day(), dayStartHour, 0, 0, 0, loc)
		end := time.Date(date.Year(), date.Month(), date.Day(), dayEndHour, 0, 0, 0, loc)

		event, evErr := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  calendarID,
			Summary:     fmt.Sprintf("%s (Hari %d)", it.Destination, day.Day),
			Description: buildDayDescription(day),
			StartTime:   start,
			EndTime:     end,
			Timezone:    uc.timezone,
		})
		if evErr != nil {
			uc.l.Warnf(ctx, "ExportCalendar: day %d failed (non-fatal): %v", day.Day, evErr)
			output.SkippedDays++
			continue
		}

		output.EventLinks = append(output.EventLinks, event.HtmlLink)
		output.EventCount++
	}

	uc.l.Infof(ctx, "ExportCalendar: session=%s created=%d skipped=%d", s.ID, output.EventCount, output.SkippedDays)
	return output, nil
}

// buildDayDescription renders one day's activities as a plain bullet list.
func buildDayDescription(day model.DailyItinerary) string {
	var sb strings.Builder
	for _, activity := range day.Activities {
		sb.WriteString(fmt.Sprintf("- %s (%s) | %s", activity.Name, activity.Time, activity.Cost))
		if activity.Link != "" {
			sb.WriteString(fmt.Sprintf("\n  %s", activity.Link))
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}
