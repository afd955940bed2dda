package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/planner"
	pkgLog "travel-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	SelectKey(c *gin.Context)
	Generate(c *gin.Context)
	SetActualCost(c *gin.Context)
	Summary(c *gin.Context)
	ExportCalendar(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l pkgLog.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

var _ Handler = (*handler)(nil)
