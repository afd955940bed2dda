package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-planner/internal/model"
	"travel-planner/internal/planner"
	"travel-planner/internal/planner/parser"
	"travel-planner/pkg/gemini"
)

// entityNotFoundMessage is the upstream marker for a missing or not-entitled
// API key. String matching is the contract the Gemini API gives us here.
const entityNotFoundMessage = "Requested entity was not found."

// Generate requests an itinerary from the AI, parses the markdown into day
// plans and replaces the session's current itinerary. Overrides belonging to
// the previous itinerary are discarded in the same step.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input planner.GenerateInput) (planner.GenerateOutput, error) {
	if err := validateGenerateInput(input); err != nil {
		return planner.GenerateOutput{}, err
	}

	s, err := uc.sessions.Get(sc.SessionID)
	if err != nil {
		return planner.GenerateOutput{}, err
	}

	if uc.llm == nil || !s.KeySelected() {
		return planner.GenerateOutput{}, planner.ErrAPIKeyNotSelected
	}

	if !s.BeginGeneration() {
		return planner.GenerateOutput{}, planner.ErrGenerationInProgress
	}
	defer s.EndGeneration()

	uc.l.Infof(ctx, "Generate: session=%s destination=%q days=%d", s.ID, input.Destination, input.DurationDays)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildItineraryPrompt(input.Destination, input.DurationDays, input.Interests)}}},
		},
		Tools: []gemini.Tool{{GoogleSearch: &gemini.GoogleSearch{}}},
	})
	if err != nil {
		if strings.Contains(err.Error(), entityNotFoundMessage) {
			uc.l.Warnf(ctx, "Generate: credential failure, resetting key selection: %v", err)
			s.ResetKey()
			return planner.GenerateOutput{}, planner.ErrAPIKeyInvalid
		}
		return planner.GenerateOutput{}, fmt.Errorf("generation request failed: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return planner.GenerateOutput{}, planner.ErrEmptyResponse
	}

	days := parser.ParseItinerary(raw)
	if len(days) == 0 {
		// Free-form output that matched nothing: keep the raw text for
		// diagnostics and return the empty itinerary rather than failing.
		uc.l.Warnf(ctx, "Generate: no day headers matched in %d bytes of output", len(raw))
	}

	attachSources(days, resp.Sources())

	it := &model.Itinerary{
		Destination:      input.Destination,
		DailyItineraries: days,
		RawMarkdown:      raw,
	}
	s.ReplaceItinerary(it, input.TotalBudget, input.DurationDays)

	itinerary, actual, budget, duration := s.Snapshot()
	summary := planner.Summarize(itinerary, actual, budget, duration)

	uc.l.Infof(ctx, "Generate: session=%s parsed %d days", s.ID, len(days))

	return planner.GenerateOutput{Itinerary: *it, Summary: summary}, nil
}

func validateGenerateInput(input planner.GenerateInput) error {
	if strings.TrimSpace(input.Destination) == "" {
		return planner.ErrMissingDestination
	}
	if input.DurationDays <= 0 {
		return planner.ErrInvalidDuration
	}
	if strings.TrimSpace(input.Interests) == "" {
		return planner.ErrMissingInterests
	}
	return nil
}

// attachSources pairs search-grounding citations with activities whose
// price-check link points at the cited page. Unmatched citations are dropped;
// the prompt already asks the model to embed links directly.
func attachSources(days []model.DailyItinerary, sources []gemini.GroundingWeb) {
	if len(sources) == 0 {
		return
	}

	byURI := make(map[string]gemini.GroundingWeb, len(sources))
	for _, src := range sources {
		byURI[src.URI] = src
	}

	for di := range days {
		for ai := range days[di].Activities {
			activity := &days[di].Activities[ai]
			if activity.Link == "" {
				continue
			}
			if src, ok := byURI[activity.Link]; ok {
				activity.Sources = append(activity.Sources, model.Source{URI: src.URI, Title: src.Title})
			}
		}
	}
}
