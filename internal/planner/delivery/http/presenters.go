package http

import (
	"travel-planner/internal/model"
	"travel-planner/internal/planner"
)

// --- Request DTOs ---

type generateReq struct {
	Destination  string   `json:"destination"   binding:"required,min=1,max=255"`
	DurationDays int      `json:"duration_days" binding:"required,min=1,max=30"`
	Interests    string   `json:"interests"     binding:"required,min=1,max=500"`
	TotalBudget  *float64 `json:"total_budget"  binding:"omitempty,gt=0"`
}

func (r generateReq) validate() error { return nil }

func (r generateReq) toInput() planner.GenerateInput {
	return planner.GenerateInput{
		Destination:  r.Destination,
		DurationDays: r.DurationDays,
		Interests:    r.Interests,
		TotalBudget:  r.TotalBudget,
	}
}

// ---

type actualCostReq struct {
	Day           int      `json:"day"            binding:"required,min=1"`
	ActivityIndex int      `json:"activity_index" binding:"min=0"`
	Cost          *float64 `json:"cost"           binding:"omitempty,gte=0"` // null clears the override
}

func (r actualCostReq) validate() error { return nil }

func (r actualCostReq) toInput() planner.SetActualCostInput {
	return planner.SetActualCostInput{
		Day:           r.Day,
		ActivityIndex: r.ActivityIndex,
		Cost:          r.Cost,
	}
}

// ---

type exportCalendarReq struct {
	StartDate  string `json:"start_date"  binding:"omitempty,datetime=2006-01-02"`
	CalendarID string `json:"calendar_id" binding:"omitempty,max=255"`
}

func (r exportCalendarReq) validate() error { return nil }

func (r exportCalendarReq) toInput() planner.ExportCalendarInput {
	return planner.ExportCalendarInput{
		StartDate:  r.StartDate,
		CalendarID: r.CalendarID,
	}
}

// --- Response DTOs ---

type sessionResp struct {
	SessionID   string `json:"session_id"`
	KeySelected bool   `json:"key_selected"`
}

func (h *handler) newSessionResp(out planner.SessionOutput) sessionResp {
	return sessionResp{
		SessionID:   out.SessionID,
		KeySelected: out.KeySelected,
	}
}

type sourceResp struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type activityResp struct {
	Name    string       `json:"name"`
	Time    string       `json:"time"`
	Cost    string       `json:"cost"`
	Link    string       `json:"link,omitempty"`
	Sources []sourceResp `json:"sources,omitempty"`
}

type dayResp struct {
	Day        int            `json:"day"`
	Activities []activityResp `json:"activities"`
}

type itineraryResp struct {
	Destination string    `json:"destination"`
	Days        []dayResp `json:"days"`
}

func newItineraryResp(it model.Itinerary) itineraryResp {
	days := make([]dayResp, len(it.DailyItineraries))
	for i, day := range it.DailyItineraries {
		activities := make([]activityResp, len(day.Activities))
		for j, activity := range day.Activities {
			sources := make([]sourceResp, 0, len(activity.Sources))
			for _, src := range activity.Sources {
				sources = append(sources, sourceResp{URI: src.URI, Title: src.Title})
			}
			activities[j] = activityResp{
				Name:    activity.Name,
				Time:    activity.Time,
				Cost:    activity.Cost,
				Link:    activity.Link,
				Sources: sources,
			}
		}
		days[i] = dayResp{Day: day.Day, Activities: activities}
	}
	return itineraryResp{
		Destination: it.Destination,
		Days:        days,
	}
}

type summaryResp struct {
	TotalEstimatedCost          float64 `json:"total_estimated_cost"`
	TotalActualCost             float64 `json:"total_actual_cost"`
	RemainingBudget             float64 `json:"remaining_budget"`
	AverageDailyRemainingBudget float64 `json:"average_daily_remaining_budget"`
	Currency                    string  `json:"currency"`
	HasBudget                   bool    `json:"has_budget"`
}

func newBudgetSummaryResp(s model.BudgetSummary) summaryResp {
	return summaryResp{
		TotalEstimatedCost:          s.TotalEstimatedCost,
		TotalActualCost:             s.TotalActualCost,
		RemainingBudget:             s.RemainingBudget,
		AverageDailyRemainingBudget: s.AverageDailyRemainingBudget,
		Currency:                    s.Currency,
		HasBudget:                   s.HasBudget,
	}
}

type generateResp struct {
	Itinerary itineraryResp `json:"itinerary"`
	Summary   summaryResp   `json:"summary"`
}

func (h *handler) newGenerateResp(out planner.GenerateOutput) generateResp {
	return generateResp{
		Itinerary: newItineraryResp(out.Itinerary),
		Summary:   newBudgetSummaryResp(out.Summary),
	}
}

type summaryOnlyResp struct {
	Summary summaryResp `json:"summary"`
}

func (h *handler) newSummaryResp(out planner.SummaryOutput) summaryOnlyResp {
	return summaryOnlyResp{Summary: newBudgetSummaryResp(out.Summary)}
}

type exportCalendarResp struct {
	EventLinks  []string `json:"event_links"`
	EventCount  int      `json:"event_count"`
	SkippedDays int      `json:"skipped_days"`
}

func (h *handler) newExportCalendarResp(out planner.ExportCalendarOutput) exportCalendarResp {
	return exportCalendarResp{
		EventLinks:  out.EventLinks,
		EventCount:  out.EventCount,
		SkippedDays: out.SkippedDays,
	}
}
