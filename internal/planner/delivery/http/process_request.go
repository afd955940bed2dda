package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/model"
	"travel-planner/pkg/response"
)

// scope extracts the session scope from the URI.
func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	id := c.Param("id")
	if id == "" {
		return model.Scope{}, response.NewHTTPError(400, "session id is required")
	}
	return model.Scope{SessionID: id}, nil
}

// processGenerateReq binds and validates the generation request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processActualCostReq binds and validates the actual-cost override body.
func (h *handler) processActualCostReq(c *gin.Context) (actualCostReq, error) {
	var req actualCostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExportCalendarReq binds and validates the calendar export body.
// The body is optional: an empty body exports starting today to the default
// calendar.
func (h *handler) processExportCalendarReq(c *gin.Context) (exportCalendarReq, error) {
	var req exportCalendarReq
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, req.validate()
}
