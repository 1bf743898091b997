package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dcampus/evaluation-service/internal/cache"
	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/dcampus/evaluation-service/internal/validator"
)

// SubmissionService manages student deliveries for evaluation items. A
// submission is a link (drive, mega or external) plus an optional comment;
// grading it is GradingService's job.
type SubmissionService interface {
	Create(ctx context.Context, req *CreateSubmissionRequest, studentID string) (*models.Submission, error)
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	ListByItem(ctx context.Context, itemID string, filters repositories.SubmissionFilters) (*SubmissionListResponse, error)
	ListBySection(ctx context.Context, sectionID string, filters repositories.SubmissionFilters) (*SubmissionListResponse, error)
	ListByStudent(ctx context.Context, studentID string, filters repositories.SubmissionFilters) (*SubmissionListResponse, error)
}

// ===== REQUEST / RESPONSE TYPES =====

type CreateSubmissionRequest struct {
	EvaluationItemID string              `json:"evaluation_item_id" validate:"required"`
	CourseSectionID  string              `json:"course_section_id" validate:"required"`
	LinkURL          string              `json:"link_url" validate:"required,url,max=2048"`
	LinkProvider     models.LinkProvider `json:"link_provider" validate:"required,link_provider"`
	Comment          string              `json:"comment" validate:"max=1000"`
}

type SubmissionListResponse struct {
	Submissions []*models.Submission `json:"submissions"`
	Total       int64                `json:"total"`
}

// ===== SERVICE IMPLEMENTATION =====

type submissionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	cache     cache.CacheService
	newID     utils.IDGenerator
}

func NewSubmissionService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, c cache.CacheService, newID utils.IDGenerator) SubmissionService {
	return &submissionService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		cache:     c,
		newID:     newID,
	}
}

func (s *submissionService) Create(ctx context.Context, req *CreateSubmissionRequest, studentID string) (*models.Submission, error) {
	s.logger.Info("Creating submission", "item_id", req.EvaluationItemID, "student_id", studentID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	student, err := s.repo.User().GetByID(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	if err := s.checkEnrollment(ctx, studentID, req.CourseSectionID); err != nil {
		return nil, err
	}
	if err := s.checkItemInSection(ctx, req.CourseSectionID, req.EvaluationItemID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Submission().ExistsForItemAndStudent(ctx, req.EvaluationItemID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing submission: %w", err)
	}
	if exists {
		return nil, ErrDuplicateSubmission
	}

	submission := &models.Submission{
		ID:               s.newID(),
		EvaluationItemID: req.EvaluationItemID,
		StudentID:        studentID,
		StudentName:      student.Name,
		CourseSectionID:  req.CourseSectionID,
		LinkURL:          req.LinkURL,
		LinkProvider:     req.LinkProvider,
		Comment:          req.Comment,
		Status:           models.SubmissionPending,
		SubmittedAt:      time.Now(),
	}

	if err := s.repo.Submission().Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	s.invalidateInstitutionStats(ctx, req.CourseSectionID)

	event := events.NewEvent(events.EventSubmissionCreated, events.SubmissionCreatedEvent{
		SubmissionID:     submission.ID,
		EvaluationItemID: submission.EvaluationItemID,
		CourseSectionID:  submission.CourseSectionID,
		StudentID:        submission.StudentID,
		SubmittedAt:      submission.SubmittedAt,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish submission.created", "submission_id", submission.ID, "error", err)
	}

	s.logger.Info("Submission created", "submission_id", submission.ID)
	return submission, nil
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	submission, err := s.repo.Submission().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}

func (s *submissionService) ListByItem(ctx context.Context, itemID string, filters repositories.SubmissionFilters) (*SubmissionListResponse, error) {
	submissions, total, err := s.repo.Submission().GetByItem(ctx, itemID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list item submissions: %w", err)
	}
	return &SubmissionListResponse{Submissions: submissions, Total: total}, nil
}

func (s *submissionService) ListBySection(ctx context.Context, sectionID string, filters repositories.SubmissionFilters) (*SubmissionListResponse, error) {
	submissions, total, err := s.repo.Submission().GetBySection(ctx, sectionID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list section submissions: %w", err)
	}
	return &SubmissionListResponse{Submissions: submissions, Total: total}, nil
}

func (s *submissionService) ListByStudent(ctx context.Context, studentID string, filters repositories.SubmissionFilters) (*SubmissionListResponse, error) {
	submissions, total, err := s.repo.Submission().GetByStudent(ctx, studentID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list student submissions: %w", err)
	}
	return &SubmissionListResponse{Submissions: submissions, Total: total}, nil
}

// ===== HELPERS =====

func (s *submissionService) checkEnrollment(ctx context.Context, studentID, sectionID string) error {
	enrollments, err := s.repo.Enrollment().GetActiveBySection(ctx, sectionID)
	if err != nil {
		return fmt.Errorf("failed to get enrollments: %w", err)
	}
	for _, enrollment := range enrollments {
		if enrollment.StudentID == studentID {
			return nil
		}
	}
	return ErrNotEnrolled
}

func (s *submissionService) checkItemInSection(ctx context.Context, sectionID, itemID string) error {
	plans, err := s.repo.Plan().GetBySection(ctx, sectionID)
	if err != nil {
		return fmt.Errorf("failed to get section plans: %w", err)
	}
	for _, plan := range plans {
		if plan.ItemByID(itemID) != nil {
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *submissionService) invalidateInstitutionStats(ctx context.Context, sectionID string) {
	section, err := s.repo.Section().GetByID(ctx, sectionID)
	if err != nil {
		s.logger.Warn("stats cache invalidation skipped", "section_id", sectionID, "error", err)
		return
	}
	key := cache.InstitutionStatsKey(section.InstitutionID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("stats cache invalidation failed", "key", key, "error", err)
	}
}
