package planner_test

import (
	"testing"

	"travel-planner/internal/model"
	"travel-planner/internal/planner"
)

func kyotoDay() model.DailyItinerary {
	return model.DailyItinerary{
		Day: 1,
		Activities: []model.Activity{
			{Name: "Temple A", Time: "09:00-17:00", Cost: "JPY 400", Link: "https://x.example"},
			{Name: "Park B", Time: "Buka 24 jam", Cost: "Gratis", Link: ""},
		},
	}
}

func TestSummarize_UnparseableCostContributesZero(t *testing.T) {
	it := &model.Itinerary{DailyItineraries: []model.DailyItinerary{kyotoDay()}}

	got := planner.Summarize(it, model.ActualCosts{}, nil, 1)

	if got.TotalEstimatedCost != 400 {
		t.Errorf("total estimated = %v, want 400", got.TotalEstimatedCost)
	}
	if got.Currency != "JPY" {
		t.Errorf("currency = %q, want JPY", got.Currency)
	}
	if got.TotalActualCost != 400 {
		t.Errorf("total actual = %v, want 400 (estimate fallback)", got.TotalActualCost)
	}
	if got.HasBudget {
		t.Error("HasBudget must be false when no budget supplied")
	}
	if got.RemainingBudget != 0 {
		t.Errorf("remaining without budget = %v, want 0", got.RemainingBudget)
	}
}

func TestSummarize_OverridePreferredOverEstimate(t *testing.T) {
	it := &model.Itinerary{DailyItineraries: []model.DailyItinerary{kyotoDay()}}
	actual := model.ActualCosts{}
	actual.Set(1, 0, 350)

	got := planner.Summarize(it, actual, nil, 1)

	if got.TotalActualCost != 350 {
		t.Errorf("total actual = %v, want 350", got.TotalActualCost)
	}
	if got.TotalEstimatedCost != 400 {
		t.Errorf("estimate must not be affected by overrides, got %v", got.TotalEstimatedCost)
	}
}

func TestSummarize_ClearedOverrideRestoresEstimate(t *testing.T) {
	it := &model.Itinerary{DailyItineraries: []model.DailyItinerary{kyotoDay()}}
	actual := model.ActualCosts{}
	actual.Set(1, 0, 350)
	actual.Delete(1, 0)

	got := planner.Summarize(it, actual, nil, 1)

	if got.TotalActualCost != 400 {
		t.Errorf("total actual = %v, want 400 after clearing the override", got.TotalActualCost)
	}
}

func TestSummarize_OverrideOnUnparseableEstimate(t *testing.T) {
	it := &model.Itinerary{DailyItineraries: []model.DailyItinerary{kyotoDay()}}
	actual := model.ActualCosts{}
	actual.Set(1, 1, 50) // "Gratis" activity

	got := planner.Summarize(it, actual, nil, 1)

	if got.TotalActualCost != 450 {
		t.Errorf("total actual = %v, want 450", got.TotalActualCost)
	}
}

func TestSummarize_RemainingBudget(t *testing.T) {
	it := &model.Itinerary{DailyItineraries: []model.DailyItinerary{kyotoDay()}}
	budget := 1000.0

	got := planner.Summarize(it, model.ActualCosts{}, &budget, 2)

	if !got.HasBudget {
		t.Fatal("HasBudget must be true")
	}
	if got.RemainingBudget != 600 {
		t.Errorf("remaining = %v, want 600", got.RemainingBudget)
	}
	if got.AverageDailyRemainingBudget != 300 {
		t.Errorf("average daily remaining = %v, want 300", got.AverageDailyRemainingBudget)
	}
}

func TestSummarize_ZeroDurationBehavesLikeOne(t *testing.T) {
	it := &model.Itinerary{DailyItineraries: []model.DailyItinerary{kyotoDay()}}
	budget := 1000.0

	zero := planner.Summarize(it, model.ActualCosts{}, &budget, 0)
	one := planner.Summarize(it, model.ActualCosts{}, &budget, 1)

	if zero != one {
		t.Errorf("duration 0 summary %+v differs from duration 1 summary %+v", zero, one)
	}
}

func TestSummarize_NilItinerary(t *testing.T) {
	got := planner.Summarize(nil, model.ActualCosts{}, nil, 3)
	if got.TotalEstimatedCost != 0 || got.TotalActualCost != 0 || got.Currency != "" {
		t.Errorf("nil itinerary must yield a zero summary, got %+v", got)
	}
}

func TestSummarize_LastParsedCurrencyWins(t *testing.T) {
	it := &model.Itinerary{DailyItineraries: []model.DailyItinerary{
		{Day: 1, Activities: []model.Activity{
			{Name: "A", Cost: "USD 10"},
			{Name: "B", Cost: "JPY 400"},
		}},
	}}

	got := planner.Summarize(it, model.ActualCosts{}, nil, 1)
	if got.Currency != "JPY" {
		t.Errorf("currency = %q, want JPY (last write wins)", got.Currency)
	}
}
