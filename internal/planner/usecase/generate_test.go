package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-planner/internal/model"
	"travel-planner/internal/planner"
	"travel-planner/internal/planner/usecase"
	"travel-planner/pkg/gemini"
)

const sampleItinerary = `**Hari 1**
- **Kuil Fushimi Inari**: 08:00 - 11:00 | Estimasi Biaya: Gratis | [Cek Harga](https://inari.jp)
- **Makan siang di Nishiki Market**: 12:00 - 13:30 | Estimasi Biaya: JPY 1,500 | [Cek Harga](#)

**Hari 2**
- **Arashiyama Bamboo Grove**: 09:00 - 11:00 | Estimasi Biaya: JPY 500 | [Cek Harga](https://arashiyama.example)
`

func newTestUseCase(llm *mockGemini, cal *mockCalendar) (planner.UseCase, *planner.SessionStore) {
	store := planner.NewSessionStore(time.Minute)
	var calendar usecase.Calendar
	if cal != nil {
		calendar = cal
	}
	uc := usecase.New(&mockLogger{}, llm, calendar, store, "Asia/Jakarta", "primary")
	return uc, store
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Flow", func(t *testing.T) {
		llm := &mockGemini{response: textResponse(sampleItinerary)}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)

		out, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination:  "Kyoto, Japan",
			DurationDays: 2,
			Interests:    "Kuliner dan Sejarah",
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if llm.calls != 1 {
			t.Fatalf("expected 1 generation call, got %d", llm.calls)
		}
		if len(llm.lastReq.Tools) != 1 || llm.lastReq.Tools[0].GoogleSearch == nil {
			t.Error("expected the google search tool on the request")
		}

		if out.Itinerary.Destination != "Kyoto, Japan" {
			t.Errorf("Destination = %q", out.Itinerary.Destination)
		}
		if len(out.Itinerary.DailyItineraries) != 2 {
			t.Fatalf("expected 2 days, got %d", len(out.Itinerary.DailyItineraries))
		}
		day1 := out.Itinerary.DailyItineraries[0]
		if len(day1.Activities) != 2 {
			t.Fatalf("day 1: expected 2 activities, got %d", len(day1.Activities))
		}
		if day1.Activities[1].Link != "" {
			t.Errorf("placeholder link should be cleared, got %q", day1.Activities[1].Link)
		}

		// JPY 1,500 + JPY 500; Gratis does not parse and contributes nothing.
		if out.Summary.TotalEstimatedCost != 2000 {
			t.Errorf("TotalEstimatedCost = %v, want 2000", out.Summary.TotalEstimatedCost)
		}
		if out.Summary.Currency != "JPY" {
			t.Errorf("Currency = %q, want JPY", out.Summary.Currency)
		}
	})

	t.Run("Validation Before Generation Call", func(t *testing.T) {
		llm := &mockGemini{response: textResponse(sampleItinerary)}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)
		sc := model.Scope{SessionID: s.ID}

		cases := []struct {
			name    string
			input   planner.GenerateInput
			wantErr error
		}{
			{"missing destination", planner.GenerateInput{DurationDays: 2, Interests: "Kuliner"}, planner.ErrMissingDestination},
			{"zero duration", planner.GenerateInput{Destination: "Kyoto", Interests: "Kuliner"}, planner.ErrInvalidDuration},
			{"negative duration", planner.GenerateInput{Destination: "Kyoto", DurationDays: -1, Interests: "Kuliner"}, planner.ErrInvalidDuration},
			{"missing interests", planner.GenerateInput{Destination: "Kyoto", DurationDays: 2, Interests: "  "}, planner.ErrMissingInterests},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Generate(ctx, sc, tc.input)
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tc.wantErr)
				}
			})
		}
		if llm.calls != 0 {
			t.Errorf("invalid input must not reach the model, got %d calls", llm.calls)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockGemini{}, nil)
		_, err := uc.Generate(ctx, model.Scope{SessionID: "nope"}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		})
		if !errors.Is(err, planner.ErrSessionNotFound) {
			t.Errorf("Generate() error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("Key Not Selected", func(t *testing.T) {
		llm := &mockGemini{response: textResponse(sampleItinerary)}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(false)

		_, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		})
		if !errors.Is(err, planner.ErrAPIKeyNotSelected) {
			t.Errorf("Generate() error = %v, want ErrAPIKeyNotSelected", err)
		}
		if llm.calls != 0 {
			t.Errorf("gating must happen before the model call, got %d calls", llm.calls)
		}
	})

	t.Run("Overlapping Generation Rejected", func(t *testing.T) {
		llm := &mockGemini{response: textResponse(sampleItinerary)}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)
		if !s.BeginGeneration() {
			t.Fatal("BeginGeneration() = false on fresh session")
		}

		_, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		})
		if !errors.Is(err, planner.ErrGenerationInProgress) {
			t.Errorf("Generate() error = %v, want ErrGenerationInProgress", err)
		}

		s.EndGeneration()
		if _, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		}); err != nil {
			t.Errorf("Generate() after EndGeneration error = %v", err)
		}
	})

	t.Run("Credential Failure Resets Key", func(t *testing.T) {
		llm := &mockGemini{err: errors.New(`gemini: API error 404: {"error": {"message": "Requested entity was not found."}}`)}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)

		_, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		})
		if !errors.Is(err, planner.ErrAPIKeyInvalid) {
			t.Fatalf("Generate() error = %v, want ErrAPIKeyInvalid", err)
		}
		if s.KeySelected() {
			t.Error("key selection should be reset after a credential failure")
		}

		// A later attempt is gated until the key is selected again.
		_, err = uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		})
		if !errors.Is(err, planner.ErrAPIKeyNotSelected) {
			t.Errorf("Generate() error = %v, want ErrAPIKeyNotSelected", err)
		}
	})

	t.Run("Other Errors Pass Through", func(t *testing.T) {
		llm := &mockGemini{err: errors.New("gemini: API error 500: upstream exploded")}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)

		_, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		})
		if err == nil || errors.Is(err, planner.ErrAPIKeyInvalid) {
			t.Fatalf("Generate() error = %v, want wrapped transport error", err)
		}
		if !s.KeySelected() {
			t.Error("non-credential failures must not reset key selection")
		}
		if !s.BeginGeneration() {
			t.Error("busy flag must be released after a failed generation")
		}
	})

	t.Run("Empty Response", func(t *testing.T) {
		llm := &mockGemini{response: textResponse("")}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)

		_, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 1, Interests: "Kuliner",
		})
		if !errors.Is(err, planner.ErrEmptyResponse) {
			t.Errorf("Generate() error = %v, want ErrEmptyResponse", err)
		}
	})

	t.Run("Regenerate Discards Overrides", func(t *testing.T) {
		llm := &mockGemini{response: textResponse(sampleItinerary)}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)
		sc := model.Scope{SessionID: s.ID}
		input := planner.GenerateInput{Destination: "Kyoto", DurationDays: 2, Interests: "Kuliner"}

		if _, err := uc.Generate(ctx, sc, input); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		withOverride, err := uc.SetActualCost(ctx, sc, planner.SetActualCostInput{Day: 1, ActivityIndex: 1, Cost: floatPtr(9999)})
		if err != nil {
			t.Fatalf("SetActualCost() error = %v", err)
		}
		if withOverride.Summary.TotalActualCost != 9999+500 {
			t.Fatalf("TotalActualCost = %v, want 10499", withOverride.Summary.TotalActualCost)
		}

		out, err := uc.Generate(ctx, sc, input)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if out.Summary.TotalActualCost != out.Summary.TotalEstimatedCost {
			t.Errorf("stale override survived regeneration: actual=%v estimated=%v",
				out.Summary.TotalActualCost, out.Summary.TotalEstimatedCost)
		}
	})

	t.Run("Sources Attached By Link", func(t *testing.T) {
		resp := textResponse(sampleItinerary)
		resp.Candidates[0].GroundingMetadata = &gemini.GroundingMetadata{
			GroundingChunks: []gemini.GroundingChunk{
				{Web: &gemini.GroundingWeb{URI: "https://inari.jp", Title: "Fushimi Inari Taisha"}},
				{Web: &gemini.GroundingWeb{URI: "https://unrelated.example", Title: "Unrelated"}},
			},
		}
		llm := &mockGemini{response: resp}
		uc, store := newTestUseCase(llm, nil)
		s := store.Create(true)

		out, err := uc.Generate(ctx, model.Scope{SessionID: s.ID}, planner.GenerateInput{
			Destination: "Kyoto", DurationDays: 2, Interests: "Kuliner",
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		inari := out.Itinerary.DailyItineraries[0].Activities[0]
		if len(inari.Sources) != 1 || inari.Sources[0].Title != "Fushimi Inari Taisha" {
			t.Errorf("Sources = %+v, want the matching citation attached", inari.Sources)
		}
		noMatch := out.Itinerary.DailyItineraries[1].Activities[0]
		if len(noMatch.Sources) != 0 {
			t.Errorf("unmatched activity got sources: %+v", noMatch.Sources)
		}
	})
}
