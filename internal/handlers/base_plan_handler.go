package handlers

import (
	"net/http"

	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type BasePlanHandler struct {
	BaseHandler
	basePlanService services.BasePlanService
}

type CopyPlanRequest struct {
	SourcePlanID string `json:"source_plan_id" validate:"required"`
	TargetPlanID string `json:"target_plan_id" validate:"required"`
}

func NewBasePlanHandler(basePlanService services.BasePlanService, logger utils.Logger) *BasePlanHandler {
	return &BasePlanHandler{
		BaseHandler:     NewBaseHandler(logger),
		basePlanService: basePlanService,
	}
}

// CreateBasePlan creates a plan template for a subject
// @Summary Create base plan
// @Tags base-plans
// @Accept json
// @Produce json
// @Param plan body services.CreateBasePlanRequest true "Template data"
// @Success 201 {object} models.BaseEvaluationPlan
// @Failure 400 {object} ErrorResponse
// @Router /base-plans [post]
func (h *BasePlanHandler) CreateBasePlan(c *gin.Context) {
	var req services.CreateBasePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	plan, err := h.basePlanService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetBasePlan returns a template by id
// @Summary Get base plan
// @Tags base-plans
// @Produce json
// @Param id path string true "Base plan ID"
// @Success 200 {object} models.BaseEvaluationPlan
// @Failure 404 {object} ErrorResponse
// @Router /base-plans/{id} [get]
func (h *BasePlanHandler) GetBasePlan(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	plan, err := h.basePlanService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListBasePlans lists templates by subject or institution
// @Summary List base plans
// @Tags base-plans
// @Produce json
// @Param subject_id query string false "Subject ID"
// @Param institution_id query string false "Institution ID"
// @Success 200 {array} models.BaseEvaluationPlan
// @Failure 400 {object} ErrorResponse
// @Router /base-plans [get]
func (h *BasePlanHandler) ListBasePlans(c *gin.Context) {
	if subjectID := c.Query("subject_id"); subjectID != "" {
		plans, err := h.basePlanService.GetBySubject(c.Request.Context(), subjectID)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, plans)
		return
	}

	institutionID := c.Query("institution_id")
	if institutionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "subject_id or institution_id query parameter is required",
		})
		return
	}

	plans, err := h.basePlanService.GetByInstitution(c.Request.Context(), institutionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdateBasePlan replaces template fields and items
// @Summary Update base plan
// @Tags base-plans
// @Accept json
// @Produce json
// @Param id path string true "Base plan ID"
// @Param plan body services.UpdateBasePlanRequest true "Fields to change"
// @Success 200 {object} models.BaseEvaluationPlan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /base-plans/{id} [put]
func (h *BasePlanHandler) UpdateBasePlan(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateBasePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	plan, err := h.basePlanService.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteBasePlan removes a template
// @Summary Delete base plan
// @Tags base-plans
// @Produce json
// @Param id path string true "Base plan ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /base-plans/{id} [delete]
func (h *BasePlanHandler) DeleteBasePlan(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	if err := h.basePlanService.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CopyPlan copies one section plan over another
// @Summary Copy plan between periods
// @Description Overwrites the target plan's items with copies of the source plan's items; due dates are not copied
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Course section ID"
// @Param copy body CopyPlanRequest true "Source and target plan ids"
// @Success 200 {object} services.PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sections/{id}/plans/copy [post]
func (h *BasePlanHandler) CopyPlan(c *gin.Context) {
	sectionID := ParseStringIDParam(c, "id")
	if sectionID == "" {
		return
	}

	h.LogRequest(c, "Copying plan", "section_id", sectionID)

	var req CopyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if req.SourcePlanID == "" || req.TargetPlanID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "source_plan_id and target_plan_id are required",
		})
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	response, err := h.basePlanService.CopyPlan(c.Request.Context(), sectionID, req.SourcePlanID, req.TargetPlanID, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
