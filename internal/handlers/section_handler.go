package handlers

import (
	"net/http"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type SectionHandler struct {
	BaseHandler
	sectionService services.SectionService
}

func NewSectionHandler(sectionService services.SectionService, logger utils.Logger) *SectionHandler {
	return &SectionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sectionService: sectionService,
	}
}

// CreateSection creates a course section with one plan per period
// @Summary Create course section
// @Tags sections
// @Accept json
// @Produce json
// @Param section body services.CreateSectionRequest true "Section data"
// @Success 201 {object} models.CourseSection
// @Failure 400 {object} ErrorResponse
// @Router /sections [post]
func (h *SectionHandler) CreateSection(c *gin.Context) {
	h.LogRequest(c, "Creating course section")

	var req services.CreateSectionRequest
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

	section, err := h.sectionService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

// GetSection returns a section with its plans
// @Summary Get course section
// @Tags sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} models.CourseSection
// @Failure 404 {object} ErrorResponse
// @Router /sections/{id} [get]
func (h *SectionHandler) GetSection(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	section, err := h.sectionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// ListSections lists sections of an institution
// @Summary List course sections
// @Tags sections
// @Produce json
// @Param institution_id query string true "Institution ID"
// @Param status query string false "Section status filter"
// @Param teacher_id query string false "Teacher filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} services.SectionListResponse
// @Failure 400 {object} ErrorResponse
// @Router /sections [get]
func (h *SectionHandler) ListSections(c *gin.Context) {
	institutionID := c.Query("institution_id")
	if institutionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "institution_id query parameter is required",
		})
		return
	}

	filters := repositories.SectionFilters{
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if status := c.Query("status"); status != "" {
		s := models.SectionStatus(status)
		filters.Status = &s
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		filters.TeacherID = &teacherID
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		filters.SubjectID = &subjectID
	}

	response, err := h.sectionService.List(c.Request.Context(), institutionID, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateSection updates section fields
// @Summary Update course section
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param section body services.UpdateSectionRequest true "Fields to change"
// @Success 200 {object} models.CourseSection
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sections/{id} [put]
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.UpdateSectionRequest
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

	section, err := h.sectionService.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// DeleteSection removes a section and its plans
// @Summary Delete course section
// @Tags sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /sections/{id} [delete]
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// EnrollStudent enrolls a student into a section
// @Summary Enroll student
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param enrollment body services.EnrollStudentRequest true "Student data"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sections/{id}/enrollments [post]
func (h *SectionHandler) EnrollStudent(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req services.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	enrollment, err := h.sectionService.EnrollStudent(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// ListEnrollments lists the active enrollments of a section
// @Summary List enrollments
// @Tags sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {array} models.Enrollment
// @Failure 404 {object} ErrorResponse
// @Router /sections/{id}/enrollments [get]
func (h *SectionHandler) ListEnrollments(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	enrollments, err := h.sectionService.ListEnrollments(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// DropEnrollment marks an enrollment as dropped
// @Summary Drop enrollment
// @Tags sections
// @Produce json
// @Param enrollment_id path string true "Enrollment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /enrollments/{enrollment_id} [delete]
func (h *SectionHandler) DropEnrollment(c *gin.Context) {
	enrollmentID := ParseStringIDParam(c, "enrollment_id")
	if enrollmentID == "" {
		return
	}

	if err := h.sectionService.DropEnrollment(c.Request.Context(), enrollmentID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
