package controller

import (
	"context"
	"elevatorops-console/models"
	"elevatorops-console/services"
	"elevatorops-console/utils/logger"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ctx           context.Context
	reportService services.ReportServiceInterface
	logger        logger.Logger
}

func NewReportController(ctx context.Context, reportService services.ReportServiceInterface, logger logger.Logger) *ReportController {
	return &ReportController{
		ctx:           ctx,
		reportService: reportService,
		logger:        logger,
	}
}

// GetReport handles GET /reports/:id
func (h *ReportController) GetReport(c *gin.Context) {
	id := models.ID(c.Param("id"))
	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to retrieve report", err)
		return
	}
	respondOK(c, http.StatusOK, "Report retrieved successfully", gin.H{
		"report":   report,
		"exported": h.reportService.IsExported(id),
	})
}

// CreateReport handles POST /reports
func (h *ReportController) CreateReport(c *gin.Context) {
	var req models.CreateReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err)
		return
	}

	created, err := h.reportService.CreateReport(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorf("Failed to create report: %v", err)
		respondError(c, "Failed to create report", err)
		return
	}
	respondOK(c, http.StatusCreated, "Report created successfully", created)
}

// UpdateReport handles PATCH /reports/:id
func (h *ReportController) UpdateReport(c *gin.Context) {
	var req models.UpdateReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err)
		return
	}

	updated, err := h.reportService.UpdateReport(c.Request.Context(), models.ID(c.Param("id")), &req)
	if err != nil {
		h.logger.Errorf("Failed to update report %s: %v", c.Param("id"), err)
		respondError(c, "Failed to update report", err)
		return
	}
	respondOK(c, http.StatusOK, "Report updated successfully", updated)
}

// DeleteReport handles DELETE /reports/:id
func (h *ReportController) DeleteReport(c *gin.Context) {
	if err := h.reportService.DeleteReport(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		h.logger.Errorf("Failed to delete report %s: %v", c.Param("id"), err)
		respondError(c, "Failed to delete report", err)
		return
	}
	respondOK(c, http.StatusOK, "Report deleted successfully", nil)
}

// ExportReport handles GET /reports/:id/export and streams the workbook
func (h *ReportController) ExportReport(c *gin.Context) {
	export, err := h.reportService.ExportReport(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		h.logger.Errorf("Failed to export report %s: %v", c.Param("id"), err)
		respondError(c, "Failed to export report", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}
