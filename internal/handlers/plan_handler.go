package handlers

import (
	"net/http"

	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	BaseHandler
	planService services.PlanService
}

func NewPlanHandler(planService services.PlanService, logger utils.Logger) *PlanHandler {
	return &PlanHandler{
		BaseHandler: NewBaseHandler(logger),
		planService: planService,
	}
}

// GetPlan returns an evaluation plan with its validation state
// @Summary Get evaluation plan
// @Description Returns a plan, its items and the current weight validation
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} services.PlanResponse
// @Failure 404 {object} ErrorResponse
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID := ParseStringIDParam(c, "id")
	if planID == "" {
		return
	}

	response, err := h.planService.GetByID(c.Request.Context(), planID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPlanForPeriod returns the plan of a section for one academic period
// @Summary Get plan by section and period
// @Tags plans
// @Produce json
// @Param id path string true "Course section ID"
// @Param period_id path string true "Academic period ID"
// @Success 200 {object} services.PlanResponse
// @Failure 404 {object} ErrorResponse
// @Router /sections/{id}/plans/{period_id} [get]
func (h *PlanHandler) GetPlanForPeriod(c *gin.Context) {
	sectionID := ParseStringIDParam(c, "id")
	if sectionID == "" {
		return
	}
	periodID := ParseStringIDParam(c, "period_id")
	if periodID == "" {
		return
	}

	response, err := h.planService.GetBySectionAndPeriod(c.Request.Context(), sectionID, periodID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSectionPlans returns every plan of a section, one per period
// @Summary List section plans
// @Tags plans
// @Produce json
// @Param id path string true "Course section ID"
// @Success 200 {array} services.PlanResponse
// @Failure 404 {object} ErrorResponse
// @Router /sections/{id}/plans [get]
func (h *PlanHandler) GetSectionPlans(c *gin.Context) {
	sectionID := ParseStringIDParam(c, "id")
	if sectionID == "" {
		return
	}

	responses, err := h.planService.GetBySection(c.Request.Context(), sectionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// AddItem appends an item to a plan
// @Summary Add plan item
// @Description Appends an evaluation item; omitted weight defaults to zero
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param item body services.AddItemRequest true "Item data"
// @Success 201 {object} services.PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plans/{id}/items [post]
func (h *PlanHandler) AddItem(c *gin.Context) {
	planID := ParseStringIDParam(c, "id")
	if planID == "" {
		return
	}

	h.LogRequest(c, "Adding plan item", "plan_id", planID)

	var req services.AddItemRequest
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

	response, err := h.planService.AddItem(c.Request.Context(), planID, &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// UpdateItem updates a single plan item
// @Summary Update plan item
// @Description Updates the provided fields; weight outside 0-100 is rejected
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param item_id path string true "Item ID"
// @Param item body services.UpdateItemRequest true "Fields to change"
// @Success 200 {object} services.PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /plans/{id}/items/{item_id} [put]
func (h *PlanHandler) UpdateItem(c *gin.Context) {
	planID := ParseStringIDParam(c, "id")
	if planID == "" {
		return
	}
	itemID := ParseStringIDParam(c, "item_id")
	if itemID == "" {
		return
	}

	h.LogRequest(c, "Updating plan item", "plan_id", planID, "item_id", itemID)

	var req services.UpdateItemRequest
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

	response, err := h.planService.UpdateItem(c.Request.Context(), planID, itemID, &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RemoveItem deletes an item from a plan
// @Summary Remove plan item
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} services.PlanResponse
// @Failure 404 {object} ErrorResponse
// @Router /plans/{id}/items/{item_id} [delete]
func (h *PlanHandler) RemoveItem(c *gin.Context) {
	planID := ParseStringIDParam(c, "id")
	if planID == "" {
		return
	}
	itemID := ParseStringIDParam(c, "item_id")
	if itemID == "" {
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	response, err := h.planService.RemoveItem(c.Request.Context(), planID, itemID, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetValidation returns the weight validation state of a plan
// @Summary Validate plan weights
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} models.ValidationState
// @Failure 404 {object} ErrorResponse
// @Router /plans/{id}/validation [get]
func (h *PlanHandler) GetValidation(c *gin.Context) {
	planID := ParseStringIDParam(c, "id")
	if planID == "" {
		return
	}

	state, err := h.planService.Validation(c.Request.Context(), planID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
