package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Generation is rate limited per client IP; the cheap read paths are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sessions := rg.Group("/planner/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/key", h.SelectKey)
		sessions.POST("/:id/itinerary", mw.RateLimit(), h.Generate)
		sessions.PUT("/:id/actual-cost", h.SetActualCost)
		sessions.GET("/:id/summary", h.Summary)
		sessions.POST("/:id/calendar-export", mw.RateLimit(), h.ExportCalendar)
	}
}
