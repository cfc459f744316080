package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/tasknotes-backend/internal/http/response"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/services"
)

type DashboardHandler struct {
	log       *logger.Logger
	dashboard services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:       log.With("handler", "DashboardHandler"),
		dashboard: dashboard,
	}
}

// GET /api/dashboard
// Todo lists and notes merged into one feed, most recently updated first.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	items, err := h.dashboard.BuildDashboard(c.Request.Context())
	if err != nil {
		h.log.Error("GetDashboard failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}
