package model

// Source is a citation attached to an activity by the generation service
// (search grounding), passed through unmodified.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Activity is a single itinerary entry as parsed from the generated text.
type Activity struct {
	Name    string   `json:"name"`
	Time    string   `json:"time"` // free-form, e.g. "09:00 - 17:00" or "Buka 24 jam"
	Cost    string   `json:"cost"` // estimated cost text as produced by the AI, e.g. "JPY 400"
	Link    string   `json:"link"` // price-check URL; empty when the AI emitted the "#" placeholder
	Sources []Source `json:"sources,omitempty"`
}

// DailyItinerary is one day's ordered activities. Day numbers are taken
// verbatim from the text: not validated for uniqueness or contiguity.
type DailyItinerary struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the full parsed trip plan. It is replaced wholesale on each
// new generation, never mutated in place.
type Itinerary struct {
	Destination      string           `json:"destination"`
	DailyItineraries []DailyItinerary `json:"daily_itineraries"`
	RawMarkdown      string           `json:"-"` // kept for diagnostics
}

// ActualCosts maps day number → activity index → user-entered actual cost.
// Keys are structural positions, so the map must be discarded whenever the
// itinerary is replaced.
type ActualCosts map[int]map[int]float64

// Get returns the override for (day, index) if present.
func (a ActualCosts) Get(day, index int) (float64, bool) {
	byIndex, ok := a[day]
	if !ok {
		return 0, false
	}
	cost, ok := byIndex[index]
	return cost, ok
}

// Set stores an override for (day, index).
func (a ActualCosts) Set(day, index int, cost float64) {
	byIndex, ok := a[day]
	if !ok {
		byIndex = make(map[int]float64)
		a[day] = byIndex
	}
	byIndex[index] = cost
}

// Delete clears the override for (day, index), restoring the estimate.
func (a ActualCosts) Delete(day, index int) {
	if byIndex, ok := a[day]; ok {
		delete(byIndex, index)
		if len(byIndex) == 0 {
			delete(a, day)
		}
	}
}

// Clone returns a deep copy, so aggregation can run on a stable snapshot.
func (a ActualCosts) Clone() ActualCosts {
	clone := make(ActualCosts, len(a))
	for day, byIndex := range a {
		inner := make(map[int]float64, len(byIndex))
		for index, cost := range byIndex {
			inner[index] = cost
		}
		clone[day] = inner
	}
	return clone
}

// BudgetSummary is derived from the itinerary, overrides and user budget.
// It is recomputed on every input change, never stored.
type BudgetSummary struct {
	TotalEstimatedCost          float64 `json:"total_estimated_cost"`
	TotalActualCost             float64 `json:"total_actual_cost"`
	RemainingBudget             float64 `json:"remaining_budget"`
	AverageDailyRemainingBudget float64 `json:"average_daily_remaining_budget"`
	Currency                    string  `json:"currency"`
	HasBudget                   bool    `json:"has_budget"` // remaining fields are meaningful only when true
}
