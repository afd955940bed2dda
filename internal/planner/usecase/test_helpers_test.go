package usecase_test

import (
	"context"

	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/gemini"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockGemini implements gemini.IGemini.
type mockGemini struct {
	response *gemini.GenerateResponse
	err      error
	calls    int
	lastReq  gemini.GenerateRequest
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

func (m *mockGemini) Model() string { return "gemini-test" }

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

// mockCalendar implements usecase.Calendar.
type mockCalendar struct {
	created []gcalendar.CreateEventRequest
	calls   int
	err     error
	failOn  int // 1-based call number to fail on; 0 means every call fails when err is set
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	if m.err != nil && (m.failOn == 0 || m.failOn == m.calls) {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "ev", HtmlLink: "https://calendar.example/ev"}, nil
}

func floatPtr(v float64) *float64 { return &v }
