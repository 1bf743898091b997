package handlers

import (
	"fmt"
	"net/http"

	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	BaseHandler
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportService: reportService,
	}
}

// GetInstitutionStats returns dashboard counters for an institution
// @Summary Institution statistics
// @Tags reports
// @Produce json
// @Param institution_id path string true "Institution ID"
// @Success 200 {object} repositories.InstitutionStats
// @Failure 404 {object} ErrorResponse
// @Router /reports/institutions/{institution_id}/stats [get]
func (h *ReportHandler) GetInstitutionStats(c *gin.Context) {
	institutionID := ParseStringIDParam(c, "institution_id")
	if institutionID == "" {
		return
	}

	stats, err := h.reportService.InstitutionStats(c.Request.Context(), institutionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ExportGradebook downloads the section gradebook as an xlsx file
// @Summary Export gradebook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param section_id path string true "Course section ID"
// @Param period_id path string true "Academic period ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /reports/sections/{section_id}/periods/{period_id}/gradebook.xlsx [get]
func (h *ReportHandler) ExportGradebook(c *gin.Context) {
	sectionID := ParseStringIDParam(c, "section_id")
	if sectionID == "" {
		return
	}
	periodID := ParseStringIDParam(c, "period_id")
	if periodID == "" {
		return
	}

	h.LogRequest(c, "Exporting gradebook", "section_id", sectionID, "period_id", periodID)

	content, filename, err := h.reportService.ExportGradebook(c.Request.Context(), sectionID, periodID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
