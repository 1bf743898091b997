package services

import (
	"context"
	"testing"

	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSessionService() (SessionService, *MockRepository, *events.MockEventPublisher) {
	mockRepo := NewMockRepository()
	publisher := events.NewMockEventPublisher()
	service := NewSessionService(mockRepo, testLogger(), validator.New(), publisher, sequentialIDs())
	return service, mockRepo, publisher
}

func liveSession(status models.LiveSessionStatus) *models.LiveSession {
	return &models.LiveSession{
		ID:              "session-1",
		CourseSectionID: "section-1",
		Title:           "Clase 5",
		Platform:        models.PlatformMeet,
		Status:          status,
		ScheduledAt:     someTime(),
		DurationMinutes: 60,
	}
}

func TestSessionService_Create_SeedsAttendance(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	teacher := &models.UserProfile{ID: "teacher-1", Name: "Prof. Díaz", Role: models.RoleTeacher}
	mockRepo.section.On("GetByID", mock.Anything, "section-1").Return(&models.CourseSection{ID: "section-1"}, nil)
	mockRepo.user.On("GetByID", mock.Anything, "teacher-1").Return(teacher, nil)
	mockRepo.liveSession.On("Create", mock.Anything, mock.AnythingOfType("*models.LiveSession")).Return(nil)
	mockRepo.enrollment.On("GetActiveBySection", mock.Anything, "section-1").Return(activeEnrollments("student-1", "student-2"), nil)

	var seeded []*models.Attendance
	mockRepo.liveSession.On("SaveAttendance", mock.Anything, mock.AnythingOfType("*models.Attendance")).
		Run(func(args mock.Arguments) {
			seeded = append(seeded, args.Get(1).(*models.Attendance))
		}).Return(nil)

	session, err := service.Create(context.Background(), &CreateSessionRequest{
		CourseSectionID: "section-1",
		Title:           "Clase 5",
		Platform:        models.PlatformMeet,
		ScheduledAt:     someTime(),
	}, "teacher-1")

	assert.NoError(t, err)
	assert.Equal(t, models.SessionScheduled, session.Status)
	assert.Equal(t, 60, session.DurationMinutes)
	assert.Equal(t, "Prof. Díaz", session.TeacherName)

	assert.Len(t, seeded, 2)
	for _, record := range seeded {
		assert.Equal(t, session.ID, record.LiveSessionID)
		assert.Equal(t, models.AttendancePending, record.Status)
	}
}

func TestSessionService_Create_SectionNotFound(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	mockRepo.section.On("GetByID", mock.Anything, "missing").Return(nil, notFoundErr())

	_, err := service.Create(context.Background(), &CreateSessionRequest{
		CourseSectionID: "missing",
		Title:           "Clase 1",
		Platform:        models.PlatformZoom,
		ScheduledAt:     someTime(),
	}, "teacher-1")

	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestSessionService_StartAndFinish(t *testing.T) {
	service, mockRepo, publisher := setupSessionService()

	session := liveSession(models.SessionScheduled)
	records := []*models.Attendance{
		{ID: "att-1", LiveSessionID: "session-1", StudentID: "student-1", Status: models.AttendanceAttended},
		{ID: "att-2", LiveSessionID: "session-1", StudentID: "student-2", Status: models.AttendanceConfirmed},
		{ID: "att-3", LiveSessionID: "session-1", StudentID: "student-3", Status: models.AttendancePending},
	}

	mockRepo.liveSession.On("GetByID", mock.Anything, "session-1").Return(session, nil)
	mockRepo.liveSession.On("Update", mock.Anything, session).Return(nil)
	mockRepo.liveSession.On("GetAttendance", mock.Anything, "session-1").Return(records, nil)
	mockRepo.liveSession.On("SaveAttendance", mock.Anything, mock.AnythingOfType("*models.Attendance")).Return(nil)

	started, err := service.Start(context.Background(), "session-1", "teacher-1")
	assert.NoError(t, err)
	assert.Equal(t, models.SessionLive, started.Status)

	finished, err := service.Finish(context.Background(), "session-1", "teacher-1")
	assert.NoError(t, err)
	assert.Equal(t, models.SessionFinished, finished.Status)

	// Whoever joined stays attended; confirmed and pending become absent.
	assert.Equal(t, models.AttendanceAttended, records[0].Status)
	assert.Equal(t, models.AttendanceAbsent, records[1].Status)
	assert.Equal(t, models.AttendanceAbsent, records[2].Status)

	assert.Len(t, publisher.EventsOfType(events.EventSessionStarted), 1)
	assert.Len(t, publisher.EventsOfType(events.EventSessionFinished), 1)
}

func TestSessionService_Finish_AlreadyFinished(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	mockRepo.liveSession.On("GetByID", mock.Anything, "session-1").Return(liveSession(models.SessionFinished), nil)

	_, err := service.Finish(context.Background(), "session-1", "teacher-1")

	assert.ErrorIs(t, err, ErrSessionFinished)
	mockRepo.liveSession.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSessionService_ConfirmAttendance(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	record := &models.Attendance{ID: "att-1", LiveSessionID: "session-1", StudentID: "student-1", Status: models.AttendancePending}
	mockRepo.liveSession.On("GetByID", mock.Anything, "session-1").Return(liveSession(models.SessionScheduled), nil)
	mockRepo.liveSession.On("GetAttendanceByStudent", mock.Anything, "session-1", "student-1").Return(record, nil)
	mockRepo.liveSession.On("SaveAttendance", mock.Anything, record).Return(nil)

	confirmed, err := service.ConfirmAttendance(context.Background(), "session-1", "student-1")

	assert.NoError(t, err)
	assert.Equal(t, models.AttendanceConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)
}

func TestSessionService_ConfirmAttendance_OnlyFromPending(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	tests := []struct {
		name   string
		status models.AttendanceStatus
	}{
		{"already confirmed", models.AttendanceConfirmed},
		{"already attended", models.AttendanceAttended},
		{"absent", models.AttendanceAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &models.Attendance{ID: "att-1", LiveSessionID: "session-1", StudentID: "student-1", Status: tt.status}
			mockRepo.liveSession.ExpectedCalls = nil
			mockRepo.liveSession.On("GetByID", mock.Anything, "session-1").Return(liveSession(models.SessionLive), nil)
			mockRepo.liveSession.On("GetAttendanceByStudent", mock.Anything, "session-1", "student-1").Return(record, nil)

			_, err := service.ConfirmAttendance(context.Background(), "session-1", "student-1")

			assert.ErrorIs(t, err, ErrInvalidAttendanceChange)
			mockRepo.liveSession.AssertNotCalled(t, "SaveAttendance", mock.Anything, mock.Anything)
		})
	}
}

func TestSessionService_JoinSession(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	record := &models.Attendance{ID: "att-1", LiveSessionID: "session-1", StudentID: "student-1", Status: models.AttendanceConfirmed}
	mockRepo.liveSession.On("GetByID", mock.Anything, "session-1").Return(liveSession(models.SessionLive), nil)
	mockRepo.liveSession.On("GetAttendanceByStudent", mock.Anything, "session-1", "student-1").Return(record, nil)
	mockRepo.liveSession.On("SaveAttendance", mock.Anything, record).Return(nil)

	joined, err := service.JoinSession(context.Background(), "session-1", "student-1")

	assert.NoError(t, err)
	assert.Equal(t, models.AttendanceAttended, joined.Status)
	assert.NotNil(t, joined.JoinedAt)
}

func TestSessionService_JoinSession_AbsentCannotJoin(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	record := &models.Attendance{ID: "att-1", LiveSessionID: "session-1", StudentID: "student-1", Status: models.AttendanceAbsent}
	mockRepo.liveSession.On("GetByID", mock.Anything, "session-1").Return(liveSession(models.SessionLive), nil)
	mockRepo.liveSession.On("GetAttendanceByStudent", mock.Anything, "session-1", "student-1").Return(record, nil)

	_, err := service.JoinSession(context.Background(), "session-1", "student-1")

	assert.ErrorIs(t, err, ErrInvalidAttendanceChange)
}

func TestSessionService_JoinSession_NotEnrolled(t *testing.T) {
	service, mockRepo, _ := setupSessionService()

	mockRepo.liveSession.On("GetByID", mock.Anything, "session-1").Return(liveSession(models.SessionLive), nil)
	mockRepo.liveSession.On("GetAttendanceByStudent", mock.Anything, "session-1", "stranger").Return(nil, notFoundErr())

	_, err := service.JoinSession(context.Background(), "session-1", "stranger")

	assert.ErrorIs(t, err, ErrNotEnrolled)
}
