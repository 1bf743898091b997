package services

import (
	"context"
	"testing"

	"github.com/dcampus/evaluation-service/internal/cache"
	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSubmissionService() (SubmissionService, *MockRepository, *events.MockEventPublisher) {
	mockRepo := NewMockRepository()
	publisher := events.NewMockEventPublisher()
	service := NewSubmissionService(mockRepo, testLogger(), validator.New(), publisher, cache.NewNoopCache(), sequentialIDs())
	return service, mockRepo, publisher
}

func submissionRequest() *CreateSubmissionRequest {
	return &CreateSubmissionRequest{
		EvaluationItemID: "item-exam",
		CourseSectionID:  "section-1",
		LinkURL:          "https://drive.google.com/file/d/abc123",
		LinkProvider:     models.LinkDrive,
		Comment:          "Entrega final",
	}
}

func activeEnrollments(studentIDs ...string) []*models.Enrollment {
	enrollments := make([]*models.Enrollment, 0, len(studentIDs))
	for _, id := range studentIDs {
		enrollments = append(enrollments, &models.Enrollment{
			StudentID:       id,
			CourseSectionID: "section-1",
			Status:          models.EnrollmentActive,
		})
	}
	return enrollments
}

func TestSubmissionService_Create(t *testing.T) {
	service, mockRepo, publisher := setupSubmissionService()

	student := &models.UserProfile{ID: "student-1", Name: "Ana", Role: models.RoleStudent}
	section := &models.CourseSection{ID: "section-1", InstitutionID: "inst-1"}

	mockRepo.user.On("GetByID", mock.Anything, "student-1").Return(student, nil)
	mockRepo.enrollment.On("GetActiveBySection", mock.Anything, "section-1").Return(activeEnrollments("student-1"), nil)
	mockRepo.plan.On("GetBySection", mock.Anything, "section-1").Return([]*models.EvaluationPlan{gradedPlan()}, nil)
	mockRepo.submission.On("ExistsForItemAndStudent", mock.Anything, "item-exam", "student-1").Return(false, nil)
	mockRepo.submission.On("Create", mock.Anything, mock.AnythingOfType("*models.Submission")).Return(nil)
	mockRepo.section.On("GetByID", mock.Anything, "section-1").Return(section, nil)

	submission, err := service.Create(context.Background(), submissionRequest(), "student-1")

	assert.NoError(t, err)
	assert.Equal(t, "id-1", submission.ID)
	assert.Equal(t, models.SubmissionPending, submission.Status)
	assert.Equal(t, "Ana", submission.StudentName)
	assert.Nil(t, submission.Grade)
	assert.False(t, submission.SubmittedAt.IsZero())

	created := publisher.EventsOfType(events.EventSubmissionCreated)
	assert.Len(t, created, 1)
	mockRepo.submission.AssertExpectations(t)
}

func TestSubmissionService_Create_NotEnrolled(t *testing.T) {
	service, mockRepo, _ := setupSubmissionService()

	student := &models.UserProfile{ID: "student-9", Name: "Beto", Role: models.RoleStudent}
	mockRepo.user.On("GetByID", mock.Anything, "student-9").Return(student, nil)
	mockRepo.enrollment.On("GetActiveBySection", mock.Anything, "section-1").Return(activeEnrollments("student-1", "student-2"), nil)

	_, err := service.Create(context.Background(), submissionRequest(), "student-9")

	assert.ErrorIs(t, err, ErrNotEnrolled)
	mockRepo.submission.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmissionService_Create_ItemNotInSection(t *testing.T) {
	service, mockRepo, _ := setupSubmissionService()

	student := &models.UserProfile{ID: "student-1", Name: "Ana", Role: models.RoleStudent}
	mockRepo.user.On("GetByID", mock.Anything, "student-1").Return(student, nil)
	mockRepo.enrollment.On("GetActiveBySection", mock.Anything, "section-1").Return(activeEnrollments("student-1"), nil)
	mockRepo.plan.On("GetBySection", mock.Anything, "section-1").Return([]*models.EvaluationPlan{}, nil)

	_, err := service.Create(context.Background(), submissionRequest(), "student-1")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSubmissionService_Create_Duplicate(t *testing.T) {
	service, mockRepo, _ := setupSubmissionService()

	student := &models.UserProfile{ID: "student-1", Name: "Ana", Role: models.RoleStudent}
	mockRepo.user.On("GetByID", mock.Anything, "student-1").Return(student, nil)
	mockRepo.enrollment.On("GetActiveBySection", mock.Anything, "section-1").Return(activeEnrollments("student-1"), nil)
	mockRepo.plan.On("GetBySection", mock.Anything, "section-1").Return([]*models.EvaluationPlan{gradedPlan()}, nil)
	mockRepo.submission.On("ExistsForItemAndStudent", mock.Anything, "item-exam", "student-1").Return(true, nil)

	_, err := service.Create(context.Background(), submissionRequest(), "student-1")

	assert.ErrorIs(t, err, ErrDuplicateSubmission)
	mockRepo.submission.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmissionService_Create_InvalidLink(t *testing.T) {
	service, mockRepo, _ := setupSubmissionService()

	req := submissionRequest()
	req.LinkURL = "not-a-url"

	_, err := service.Create(context.Background(), req, "student-1")

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	mockRepo.user.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSubmissionService_ListBySection(t *testing.T) {
	service, mockRepo, _ := setupSubmissionService()

	submissions := []*models.Submission{
		{ID: "sub-1", CourseSectionID: "section-1", Status: models.SubmissionPending},
		{ID: "sub-2", CourseSectionID: "section-1", Status: models.SubmissionGraded},
	}
	pending := models.SubmissionPending
	filters := repositories.SubmissionFilters{Status: &pending}
	mockRepo.submission.On("GetBySection", mock.Anything, "section-1", filters).Return(submissions, int64(2), nil)

	response, err := service.ListBySection(context.Background(), "section-1", filters)

	assert.NoError(t, err)
	assert.Len(t, response.Submissions, 2)
	assert.Equal(t, int64(2), response.Total)
}
