package handlers

import (
	"net/http"

	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type GradingHandler struct {
	BaseHandler
	gradingService services.GradingService
}

func NewGradingHandler(gradingService services.GradingService, logger utils.Logger) *GradingHandler {
	return &GradingHandler{
		BaseHandler:    NewBaseHandler(logger),
		gradingService: gradingService,
	}
}

// RecordGrade records or overwrites a grade for a plan item
// @Summary Record grade
// @Description Records a grade; an existing grade for the same item and student is overwritten and the item weight re-snapshotted
// @Tags grading
// @Accept json
// @Produce json
// @Param grade body services.RecordGradeRequest true "Grade data"
// @Success 201 {object} models.Grade
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /grading/grades [post]
func (h *GradingHandler) RecordGrade(c *gin.Context) {
	h.LogRequest(c, "Recording grade")

	var req services.RecordGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	graderID := h.currentUserID(c)
	if graderID == "" {
		return
	}

	grade, err := h.gradingService.RecordGrade(c.Request.Context(), &req, graderID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, grade)
}

// GradeSubmission grades a pending submission
// @Summary Grade submission
// @Description Sets the submission grade and feedback, flips it to graded and records the grade in the gradebook
// @Tags grading
// @Accept json
// @Produce json
// @Param submission_id path string true "Submission ID"
// @Param grade body services.GradeSubmissionRequest true "Grading data"
// @Success 200 {object} models.Submission
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /grading/submissions/{submission_id} [post]
func (h *GradingHandler) GradeSubmission(c *gin.Context) {
	submissionID := ParseStringIDParam(c, "submission_id")
	if submissionID == "" {
		return
	}

	h.LogRequest(c, "Grading submission", "submission_id", submissionID)

	var req services.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	graderID := h.currentUserID(c)
	if graderID == "" {
		return
	}

	submission, err := h.gradingService.GradeSubmission(c.Request.Context(), submissionID, &req, graderID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// GetStudentAverage returns a student's weighted average for one period
// @Summary Student period average
// @Tags grading
// @Produce json
// @Param section_id path string true "Course section ID"
// @Param period_id path string true "Academic period ID"
// @Param student_id path string true "Student ID"
// @Success 200 {object} services.AverageResponse
// @Failure 404 {object} ErrorResponse
// @Router /grading/sections/{section_id}/periods/{period_id}/students/{student_id}/average [get]
func (h *GradingHandler) GetStudentAverage(c *gin.Context) {
	sectionID := ParseStringIDParam(c, "section_id")
	if sectionID == "" {
		return
	}
	periodID := ParseStringIDParam(c, "period_id")
	if periodID == "" {
		return
	}
	studentID := ParseStringIDParam(c, "student_id")
	if studentID == "" {
		return
	}

	response, err := h.gradingService.StudentPeriodAverage(c.Request.Context(), studentID, sectionID, periodID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetGradebook returns the full gradebook of a section for one period
// @Summary Section gradebook
// @Tags grading
// @Produce json
// @Param section_id path string true "Course section ID"
// @Param period_id path string true "Academic period ID"
// @Success 200 {object} services.GradebookResponse
// @Failure 404 {object} ErrorResponse
// @Router /grading/sections/{section_id}/periods/{period_id}/gradebook [get]
func (h *GradingHandler) GetGradebook(c *gin.Context) {
	sectionID := ParseStringIDParam(c, "section_id")
	if sectionID == "" {
		return
	}
	periodID := ParseStringIDParam(c, "period_id")
	if periodID == "" {
		return
	}

	response, err := h.gradingService.SectionGradebook(c.Request.Context(), sectionID, periodID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
