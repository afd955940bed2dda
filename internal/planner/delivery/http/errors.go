package http

import (
	"errors"

	"travel-planner/internal/planner"
	"travel-planner/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/response.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrSessionNotFound):
		return response.NewHTTPError(404, "session not found or expired")
	case errors.Is(err, planner.ErrMissingDestination),
		errors.Is(err, planner.ErrInvalidDuration),
		errors.Is(err, planner.ErrMissingInterests):
		return response.NewHTTPError(400, err.Error())
	case errors.Is(err, planner.ErrGenerationInProgress):
		return response.NewHTTPError(409, "a generation is already in progress for this session")
	case errors.Is(err, planner.ErrAPIKeyNotSelected):
		return response.NewHTTPError(401, "no API key selected for this session")
	case errors.Is(err, planner.ErrAPIKeyInvalid):
		return response.NewHTTPError(401, "the selected API key was rejected, select a key again")
	case errors.Is(err, planner.ErrEmptyResponse):
		return response.NewHTTPError(502, "the model returned an empty response, try again")
	case errors.Is(err, planner.ErrNoItinerary):
		return response.NewHTTPError(404, "no itinerary has been generated for this session")
	case errors.Is(err, planner.ErrCalendarUnavailable):
		return response.NewHTTPError(503, "calendar export is not configured on this server")
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
