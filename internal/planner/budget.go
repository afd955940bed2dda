package planner

import (
	"travel-planner/internal/model"
	"travel-planner/pkg/costparse"
)

// Summarize aggregates estimated and actual costs into a budget summary.
//
// It is pure and total: unparseable cost texts contribute zero, a nil
// itinerary behaves like an empty one, and a zero duration is treated as one
// day. A single currency per trip is assumed; the last successfully parsed
// currency wins.
//
// For each activity the actual cost is the user override keyed by
// (day number, activity index) when present, otherwise the parsed estimate,
// otherwise zero. When no total budget is supplied the remaining budget is
// zero by construction; HasBudget tells callers whether the remaining fields
// carry meaning.
func Summarize(it *model.Itinerary, actual model.ActualCosts, totalBudget *float64, durationDays int) model.BudgetSummary {
	var totalEstimated, totalActual float64
	var currency string

	if it != nil {
		for _, day := range it.DailyItineraries {
			for index, activity := range day.Activities {
				estimate, parsed := costparse.Parse(activity.Cost)
				if parsed {
					totalEstimated += estimate.Amount
					currency = estimate.Currency
				}

				if override, ok := actual.Get(day.Day, index); ok {
					totalActual += override
				} else if parsed {
					totalActual += estimate.Amount
				}
			}
		}
	}

	budgetBase := totalActual
	if totalBudget != nil {
		budgetBase = *totalBudget
	}
	remaining := budgetBase - totalActual

	if durationDays <= 0 {
		durationDays = 1
	}

	return model.BudgetSummary{
		TotalEstimatedCost:          totalEstimated,
		TotalActualCost:             totalActual,
		RemainingBudget:             remaining,
		AverageDailyRemainingBudget: remaining / float64(durationDays),
		Currency:                    currency,
		HasBudget:                   totalBudget != nil,
	}
}
