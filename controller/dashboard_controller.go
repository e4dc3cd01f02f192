package controller

import (
	"context"
	"elevatorops-console/services"
	"elevatorops-console/utils/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	ctx              context.Context
	dashboardService services.DashboardServiceInterface
	logger           logger.Logger
}

func NewDashboardController(ctx context.Context, dashboardService services.DashboardServiceInterface, logger logger.Logger) *DashboardController {
	return &DashboardController{
		ctx:              ctx,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard handles GET /dashboard. Failed analytics sources are listed in
// failedSources while the rest of the dashboard is still returned.
func (h *DashboardController) GetDashboard(c *gin.Context) {
	view, err := h.dashboardService.Load(c.Request.Context())
	if err != nil {
		respondError(c, "Dashboard unavailable", err)
		return
	}
	message := "Dashboard loaded"
	if len(view.Failed) > 0 {
		message = "Dashboard loaded with missing widgets"
	}
	respondOK(c, http.StatusOK, message, view)
}
