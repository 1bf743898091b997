package handlers

import (
	"net/http"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/services"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	BaseHandler
	sessionService services.SessionService
}

func NewSessionHandler(sessionService services.SessionService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:    NewBaseHandler(logger),
		sessionService: sessionService,
	}
}

// CreateSession schedules a live session
// @Summary Create live session
// @Description Schedules a session and seeds pending attendance for every active enrollment
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body services.CreateSessionRequest true "Session data"
// @Success 201 {object} models.LiveSession
// @Failure 400 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	h.LogRequest(c, "Creating live session")

	var req services.CreateSessionRequest
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

	session, err := h.sessionService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession returns one live session
// @Summary Get live session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.LiveSession
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListSessions lists the sessions of a section
// @Summary List live sessions
// @Tags sessions
// @Produce json
// @Param section_id query string true "Course section ID"
// @Param status query string false "Session status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} services.SessionListResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sectionID := c.Query("section_id")
	if sectionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "section_id query parameter is required",
		})
		return
	}

	filters := repositories.SessionFilters{
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if status := c.Query("status"); status != "" {
		s := models.LiveSessionStatus(status)
		filters.Status = &s
	}
	filters.DateFrom = parseTimeQuery(c, "date_from")
	filters.DateTo = parseTimeQuery(c, "date_to")

	response, err := h.sessionService.ListBySection(c.Request.Context(), sectionID, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// StartSession flips a scheduled session to live
// @Summary Start live session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.LiveSession
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/start [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	session, err := h.sessionService.Start(c.Request.Context(), id, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// FinishSession closes a session and marks no-shows absent
// @Summary Finish live session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.LiveSession
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/finish [post]
func (h *SessionHandler) FinishSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	session, err := h.sessionService.Finish(c.Request.Context(), id, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ConfirmAttendance confirms the calling student's attendance
// @Summary Confirm attendance
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Attendance
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/attendance/confirm [post]
func (h *SessionHandler) ConfirmAttendance(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	studentID := h.currentUserID(c)
	if studentID == "" {
		return
	}

	record, err := h.sessionService.ConfirmAttendance(c.Request.Context(), id, studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// JoinSession marks the calling student as attended
// @Summary Join live session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Attendance
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /sessions/{id}/join [post]
func (h *SessionHandler) JoinSession(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	studentID := h.currentUserID(c)
	if studentID == "" {
		return
	}

	record, err := h.sessionService.JoinSession(c.Request.Context(), id, studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetAttendance lists the attendance records of a session
// @Summary Session attendance
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} models.Attendance
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/attendance [get]
func (h *SessionHandler) GetAttendance(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	records, err := h.sessionService.GetAttendance(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
