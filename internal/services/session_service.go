package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/dcampus/evaluation-service/internal/validator"
)

// SessionService manages live class sessions and their attendance records.
// Attendance moves pending -> confirmed -> attended; students still pending
// or confirmed when the session finishes are marked absent.
type SessionService interface {
	Create(ctx context.Context, req *CreateSessionRequest, userID string) (*models.LiveSession, error)
	GetByID(ctx context.Context, id string) (*models.LiveSession, error)
	ListBySection(ctx context.Context, sectionID string, filters repositories.SessionFilters) (*SessionListResponse, error)
	Start(ctx context.Context, id string, userID string) (*models.LiveSession, error)
	Finish(ctx context.Context, id string, userID string) (*models.LiveSession, error)

	ConfirmAttendance(ctx context.Context, sessionID, studentID string) (*models.Attendance, error)
	JoinSession(ctx context.Context, sessionID, studentID string) (*models.Attendance, error)
	GetAttendance(ctx context.Context, sessionID string) ([]*models.Attendance, error)
}

// ===== REQUEST / RESPONSE TYPES =====

type CreateSessionRequest struct {
	CourseSectionID string                 `json:"course_section_id" validate:"required"`
	Title           string                 `json:"title" validate:"required,max=200"`
	Platform        models.SessionPlatform `json:"platform" validate:"required,oneof=zoom meet jitsi"`
	MeetingURL      string                 `json:"meeting_url" validate:"omitempty,url"`
	ScheduledAt     time.Time              `json:"scheduled_at" validate:"required"`
	DurationMinutes int                    `json:"duration_minutes" validate:"omitempty,min=5,max=480"`
}

type SessionListResponse struct {
	Sessions []*models.LiveSession `json:"sessions"`
	Total    int64                 `json:"total"`
}

// ===== SERVICE IMPLEMENTATION =====

type sessionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	newID     utils.IDGenerator
}

func NewSessionService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, newID utils.IDGenerator) SessionService {
	return &sessionService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		newID:     newID,
	}
}

// ===== SESSION LIFECYCLE =====

func (s *sessionService) Create(ctx context.Context, req *CreateSessionRequest, userID string) (*models.LiveSession, error) {
	s.logger.Info("Creating live session", "section_id", req.CourseSectionID, "user_id", userID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	if _, err := s.repo.Section().GetByID(ctx, req.CourseSectionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	teacher, err := s.repo.User().GetByID(ctx, userID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}

	session := &models.LiveSession{
		ID:              s.newID(),
		CourseSectionID: req.CourseSectionID,
		Title:           req.Title,
		Platform:        req.Platform,
		MeetingURL:      req.MeetingURL,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Status:          models.SessionScheduled,
		TeacherID:       userID,
	}
	if session.DurationMinutes == 0 {
		session.DurationMinutes = 60
	}
	if teacher != nil {
		session.TeacherName = teacher.Name
	}

	if err := s.repo.LiveSession().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Seed pending attendance for every active enrollment.
	enrollments, err := s.repo.Enrollment().GetActiveBySection(ctx, req.CourseSectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %w", err)
	}
	for _, enrollment := range enrollments {
		attendance := &models.Attendance{
			ID:            s.newID(),
			LiveSessionID: session.ID,
			StudentID:     enrollment.StudentID,
			StudentName:   enrollment.StudentName,
			Status:        models.AttendancePending,
		}
		if err := s.repo.LiveSession().SaveAttendance(ctx, attendance); err != nil {
			return nil, fmt.Errorf("failed to seed attendance: %w", err)
		}
	}

	s.logger.Info("Live session created", "session_id", session.ID, "attendees", len(enrollments))
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*models.LiveSession, error) {
	return s.loadSession(ctx, id)
}

func (s *sessionService) ListBySection(ctx context.Context, sectionID string, filters repositories.SessionFilters) (*SessionListResponse, error) {
	sessions, total, err := s.repo.LiveSession().GetBySection(ctx, sectionID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &SessionListResponse{Sessions: sessions, Total: total}, nil
}

func (s *sessionService) Start(ctx context.Context, id string, userID string) (*models.LiveSession, error) {
	session, err := s.loadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionFinished {
		return nil, ErrSessionFinished
	}

	session.Status = models.SessionLive
	if err := s.repo.LiveSession().Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.publishStatus(ctx, session, events.EventSessionStarted)
	s.logger.Info("Live session started", "session_id", session.ID, "user_id", userID)
	return session, nil
}

func (s *sessionService) Finish(ctx context.Context, id string, userID string) (*models.LiveSession, error) {
	session, err := s.loadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionFinished {
		return nil, ErrSessionFinished
	}

	session.Status = models.SessionFinished
	if err := s.repo.LiveSession().Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to finish session: %w", err)
	}

	// Everyone who never joined is absent.
	records, err := s.repo.LiveSession().GetAttendance(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	for _, record := range records {
		if record.Status == models.AttendancePending || record.Status == models.AttendanceConfirmed {
			record.Status = models.AttendanceAbsent
			if err := s.repo.LiveSession().SaveAttendance(ctx, record); err != nil {
				return nil, fmt.Errorf("failed to mark absence: %w", err)
			}
		}
	}

	s.publishStatus(ctx, session, events.EventSessionFinished)
	s.logger.Info("Live session finished", "session_id", session.ID, "user_id", userID)
	return session, nil
}

// ===== ATTENDANCE =====

func (s *sessionService) ConfirmAttendance(ctx context.Context, sessionID, studentID string) (*models.Attendance, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionFinished {
		return nil, ErrSessionFinished
	}

	record, err := s.loadAttendance(ctx, sessionID, studentID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.AttendancePending {
		return nil, fmt.Errorf("%w: %s cannot confirm", ErrInvalidAttendanceChange, record.Status)
	}

	now := time.Now()
	record.Status = models.AttendanceConfirmed
	record.ConfirmedAt = &now
	if err := s.repo.LiveSession().SaveAttendance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return record, nil
}

func (s *sessionService) JoinSession(ctx context.Context, sessionID, studentID string) (*models.Attendance, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.SessionFinished {
		return nil, ErrSessionFinished
	}

	record, err := s.loadAttendance(ctx, sessionID, studentID)
	if err != nil {
		return nil, err
	}
	if record.Status == models.AttendanceAbsent {
		return nil, fmt.Errorf("%w: %s cannot join", ErrInvalidAttendanceChange, record.Status)
	}

	if record.Status != models.AttendanceAttended {
		now := time.Now()
		record.Status = models.AttendanceAttended
		record.JoinedAt = &now
		if err := s.repo.LiveSession().SaveAttendance(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save attendance: %w", err)
		}
	}
	return record, nil
}

func (s *sessionService) GetAttendance(ctx context.Context, sessionID string) ([]*models.Attendance, error) {
	if _, err := s.loadSession(ctx, sessionID); err != nil {
		return nil, err
	}
	records, err := s.repo.LiveSession().GetAttendance(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return records, nil
}

// ===== HELPERS =====

func (s *sessionService) loadSession(ctx context.Context, id string) (*models.LiveSession, error) {
	session, err := s.repo.LiveSession().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (s *sessionService) loadAttendance(ctx context.Context, sessionID, studentID string) (*models.Attendance, error) {
	record, err := s.repo.LiveSession().GetAttendanceByStudent(ctx, sessionID, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrNotEnrolled
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return record, nil
}

func (s *sessionService) publishStatus(ctx context.Context, session *models.LiveSession, eventType events.EventType) {
	event := events.NewEvent(eventType, events.SessionStatusEvent{
		SessionID:       session.ID,
		CourseSectionID: session.CourseSectionID,
		Status:          string(session.Status),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish session event", "session_id", session.ID, "error", err)
	}
}
