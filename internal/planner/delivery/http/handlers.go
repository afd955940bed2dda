package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// CreateSession godoc
// @Summary     Create a planner session
// @Description Starts a new planning session and reports whether an API key is already selected.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CreateSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// GetSession godoc
// @Summary     Get session state
// @Description Returns the session's gating state (key selection).
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetSession(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SelectKey godoc
// @Summary     Select the API key for a session
// @Description Marks the session's API key as selected, enabling generation.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions/{id}/key [POST]
func (h *handler) SelectKey(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SelectKey(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.SelectKey: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Generate godoc
// @Summary     Generate an itinerary
// @Description Generates a day-by-day itinerary for the destination and replaces the session's current one. Actual-cost overrides from the previous itinerary are discarded.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body generateReq true "Trip parameters"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "API key not selected or invalid"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     409 {object} response.Resp "Generation already in progress"
// @Failure     502 {object} response.Resp "Empty model response"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions/{id}/itinerary [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// SetActualCost godoc
// @Summary     Record an actual cost
// @Description Sets or clears (null cost) the user-entered actual cost for one activity and returns the recomputed budget summary.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Session ID"
// @Param       body body actualCostReq true "Override position and cost"
// @Success     200 {object} summaryOnlyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session or itinerary not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions/{id}/actual-cost [PUT]
func (h *handler) SetActualCost(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processActualCostReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetActualCost(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetActualCost: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Summary godoc
// @Summary     Get the budget summary
// @Description Returns the aggregated budget summary for the session's current itinerary.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} summaryOnlyResp
// @Failure     404 {object} response.Resp "Session or itinerary not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions/{id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// ExportCalendar godoc
// @Summary     Export the itinerary to Google Calendar
// @Description Creates one all-day-block event per itinerary day. Days whose event creation fails are skipped and counted.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       id   path string            true  "Session ID"
// @Param       body body exportCalendarReq false "Export options"
// @Success     200 {object} exportCalendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session or itinerary not found"
// @Failure     503 {object} response.Resp "Calendar export not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions/{id}/calendar-export [POST]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processExportCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportCalendar(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportCalendarResp(output))
}
