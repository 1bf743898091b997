package handlers

import (
	"net/http"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService, logger utils.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       NewBaseHandler(logger),
		submissionService: submissionService,
	}
}

// CreateSubmission records a student delivery for an evaluation item
// @Summary Create submission
// @Description Stores a link submission; one submission per item per student
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body services.CreateSubmissionRequest true "Submission data"
// @Success 201 {object} models.Submission
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	h.LogRequest(c, "Creating submission")

	var req services.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	studentID := h.currentUserID(c)
	if studentID == "" {
		return
	}

	submission, err := h.submissionService.Create(c.Request.Context(), &req, studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GetSubmission returns one submission
// @Summary Get submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 404 {object} ErrorResponse
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	submission, err := h.submissionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// ListSubmissions lists submissions by item, section or student
// @Summary List submissions
// @Tags submissions
// @Produce json
// @Param item_id query string false "Evaluation item ID"
// @Param section_id query string false "Course section ID"
// @Param student_id query string false "Student ID"
// @Param status query string false "Submission status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} services.SubmissionListResponse
// @Failure 400 {object} ErrorResponse
// @Router /submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	filters := repositories.SubmissionFilters{
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if status := c.Query("status"); status != "" {
		s := models.SubmissionStatus(status)
		filters.Status = &s
	}
	filters.DateFrom = parseTimeQuery(c, "date_from")
	filters.DateTo = parseTimeQuery(c, "date_to")

	ctx := c.Request.Context()

	if itemID := c.Query("item_id"); itemID != "" {
		response, err := h.submissionService.ListByItem(ctx, itemID, filters)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
		return
	}

	if sectionID := c.Query("section_id"); sectionID != "" {
		response, err := h.submissionService.ListBySection(ctx, sectionID, filters)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
		return
	}

	if studentID := c.Query("student_id"); studentID != "" {
		response, err := h.submissionService.ListByStudent(ctx, studentID, filters)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, response)
		return
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "item_id, section_id or student_id query parameter is required",
	})
}
