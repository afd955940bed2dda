package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrSessionNotFound      = errors.New("planner session not found")
	ErrMissingDestination   = errors.New("destination is required")
	ErrInvalidDuration      = errors.New("duration must be a positive number of days")
	ErrMissingInterests     = errors.New("interests are required")
	ErrGenerationInProgress = errors.New("a generation request is already in progress")
	ErrAPIKeyNotSelected    = errors.New("no API key selected for this session")
	ErrAPIKeyInvalid        = errors.New("API key is invalid or not entitled")
	ErrEmptyResponse        = errors.New("empty response from the generator")
	ErrNoItinerary          = errors.New("no itinerary generated yet")
	ErrCalendarUnavailable  = errors.New("calendar export is not configured")
)
