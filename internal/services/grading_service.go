package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dcampus/evaluation-service/internal/cache"
	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/grading"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/dcampus/evaluation-service/internal/validator"
)

const averageCacheTTL = 10 * time.Minute

// GradingService records grades, grades submissions and aggregates weighted
// averages. Every Grade row snapshots the item weight at grading time, so
// later plan edits never move historical averages.
type GradingService interface {
	RecordGrade(ctx context.Context, req *RecordGradeRequest, graderID string) (*models.Grade, error)
	GradeSubmission(ctx context.Context, submissionID string, req *GradeSubmissionRequest, graderID string) (*models.Submission, error)
	StudentPeriodAverage(ctx context.Context, studentID, sectionID, periodID string) (*AverageResponse, error)
	SectionGradebook(ctx context.Context, sectionID, periodID string) (*GradebookResponse, error)
}

// ===== REQUEST / RESPONSE TYPES =====

type RecordGradeRequest struct {
	StudentID        string  `json:"student_id" validate:"required"`
	StudentName      string  `json:"student_name" validate:"max=200"`
	CourseSectionID  string  `json:"course_section_id" validate:"required"`
	PeriodID         string  `json:"period_id" validate:"required"`
	EvaluationItemID string  `json:"evaluation_item_id" validate:"required"`
	Score            float64 `json:"score" validate:"min=0"`
	MaxScore         float64 `json:"max_score" validate:"min=0"`
}

type GradeSubmissionRequest struct {
	Grade    float64 `json:"grade" validate:"min=0"`
	MaxScore float64 `json:"max_score" validate:"min=0"`
	PeriodID string  `json:"period_id" validate:"required"`
	Feedback *string `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}

type AverageResponse struct {
	StudentID       string            `json:"student_id"`
	CourseSectionID string            `json:"course_section_id"`
	PeriodID        string            `json:"period_id"`
	Average         float64           `json:"average"`
	Passing         bool              `json:"passing"`
	GradeCount      int               `json:"grade_count"`
	Warnings        []grading.Warning `json:"warnings,omitempty"`
}

type GradebookRow struct {
	StudentID   string            `json:"student_id"`
	StudentName string            `json:"student_name"`
	Grades      []models.Grade    `json:"grades"`
	Average     float64           `json:"average"`
	Passing     bool              `json:"passing"`
	Warnings    []grading.Warning `json:"warnings,omitempty"`
}

type GradebookResponse struct {
	CourseSectionID string         `json:"course_section_id"`
	PeriodID        string         `json:"period_id"`
	Rows            []GradebookRow `json:"rows"`
}

// ===== SERVICE IMPLEMENTATION =====

type gradingService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	cache     cache.CacheService
	newID     utils.IDGenerator
	threshold float64
}

func NewGradingService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, c cache.CacheService, newID utils.IDGenerator, passingThreshold float64) GradingService {
	if passingThreshold <= 0 {
		passingThreshold = grading.DefaultPassingThreshold
	}
	return &gradingService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		cache:     c,
		newID:     newID,
		threshold: passingThreshold,
	}
}

// ===== GRADE RECORDING =====

func (s *gradingService) RecordGrade(ctx context.Context, req *RecordGradeRequest, graderID string) (*models.Grade, error) {
	s.logger.Info("Recording grade",
		"student_id", req.StudentID,
		"item_id", req.EvaluationItemID,
		"grader_id", graderID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}
	if err := s.validator.Plan().ValidateScore(req.Score, req.MaxScore); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScore, err)
	}
	if err := s.checkGraderRole(ctx, graderID); err != nil {
		return nil, err
	}

	plan, err := s.repo.Plan().GetBySectionAndPeriod(ctx, req.CourseSectionID, req.PeriodID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	item := plan.ItemByID(req.EvaluationItemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	grade, regrade, err := s.upsertGrade(ctx, req, item)
	if err != nil {
		return nil, err
	}

	s.invalidateAverage(ctx, req.StudentID, req.CourseSectionID, req.PeriodID)
	s.publishGradeRecorded(ctx, grade, regrade)

	s.logger.Info("Grade recorded", "grade_id", grade.ID, "weight_snapshot", grade.Weight, "regrade", regrade)
	return grade, nil
}

func (s *gradingService) GradeSubmission(ctx context.Context, submissionID string, req *GradeSubmissionRequest, graderID string) (*models.Submission, error) {
	s.logger.Info("Grading submission", "submission_id", submissionID, "grader_id", graderID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}
	if err := s.validator.Plan().ValidateScore(req.Grade, req.MaxScore); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScore, err)
	}
	if err := s.checkGraderRole(ctx, graderID); err != nil {
		return nil, err
	}

	submission, err := s.repo.Submission().GetByID(ctx, submissionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	plan, err := s.repo.Plan().GetBySectionAndPeriod(ctx, submission.CourseSectionID, req.PeriodID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	item := plan.ItemByID(submission.EvaluationItemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	// Pending -> Graded is monotonic; re-grading only refreshes grade,
	// feedback and graded-at.
	now := time.Now()
	submission.Grade = &req.Grade
	submission.GradedAt = &now
	submission.Feedback = req.Feedback
	submission.Status = models.SubmissionGraded

	gradeReq := &RecordGradeRequest{
		StudentID:        submission.StudentID,
		StudentName:      submission.StudentName,
		CourseSectionID:  submission.CourseSectionID,
		PeriodID:         req.PeriodID,
		EvaluationItemID: submission.EvaluationItemID,
		Score:            req.Grade,
		MaxScore:         req.MaxScore,
	}

	var grade *models.Grade
	var regrade bool
	err = s.repo.WithTx(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Submission().Update(ctx, submission); err != nil {
			return err
		}
		g, rg, err := s.upsertGradeWith(ctx, txRepo, gradeReq, item)
		if err != nil {
			return err
		}
		grade, regrade = g, rg
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to grade submission: %w", err)
	}

	s.invalidateAverage(ctx, submission.StudentID, submission.CourseSectionID, req.PeriodID)
	s.invalidateInstitutionStats(ctx, submission.CourseSectionID)
	s.publishGradeRecorded(ctx, grade, regrade)

	event := events.NewEvent(events.EventSubmissionGraded, events.SubmissionGradedEvent{
		SubmissionID:     submission.ID,
		EvaluationItemID: submission.EvaluationItemID,
		StudentID:        submission.StudentID,
		Grade:            req.Grade,
		GradedBy:         graderID,
		GradedAt:         now,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish submission.graded", "submission_id", submission.ID, "error", err)
	}

	s.logger.Info("Submission graded", "submission_id", submission.ID, "grade_id", grade.ID)
	return submission, nil
}

// ===== AGGREGATION =====

func (s *gradingService) StudentPeriodAverage(ctx context.Context, studentID, sectionID, periodID string) (*AverageResponse, error) {
	key := cache.StudentAverageKey(studentID, sectionID, periodID)

	var cached AverageResponse
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("average cache read failed", "key", key, "error", err)
	}

	grades, err := s.repo.Grade().GetByStudentScope(ctx, studentID, sectionID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student grades: %w", err)
	}

	response := s.buildAverage(studentID, sectionID, periodID, grades)

	if err := s.cache.Set(ctx, key, response, averageCacheTTL); err != nil {
		s.logger.Warn("average cache write failed", "key", key, "error", err)
	}

	return response, nil
}

func (s *gradingService) SectionGradebook(ctx context.Context, sectionID, periodID string) (*GradebookResponse, error) {
	enrollments, err := s.repo.Enrollment().GetActiveBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %w", err)
	}

	grades, err := s.repo.Grade().GetBySectionPeriod(ctx, sectionID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get section grades: %w", err)
	}

	byStudent := make(map[string][]models.Grade, len(enrollments))
	for _, g := range grades {
		byStudent[g.StudentID] = append(byStudent[g.StudentID], g)
	}

	rows := make([]GradebookRow, 0, len(enrollments))
	for _, enrollment := range enrollments {
		studentGrades := byStudent[enrollment.StudentID]
		average, warnings := grading.WeightedAverage(studentGrades)
		rows = append(rows, GradebookRow{
			StudentID:   enrollment.StudentID,
			StudentName: enrollment.StudentName,
			Grades:      studentGrades,
			Average:     average,
			Passing:     grading.IsPassing(average, s.threshold),
			Warnings:    warnings,
		})
	}

	return &GradebookResponse{
		CourseSectionID: sectionID,
		PeriodID:        periodID,
		Rows:            rows,
	}, nil
}

// ===== HELPERS =====

func (s *gradingService) checkGraderRole(ctx context.Context, graderID string) error {
	grader, err := s.repo.User().GetByID(ctx, graderID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get grader: %w", err)
	}
	if !grader.CanManagePlans() {
		return NewPermissionError(graderID, "", "grade", "record", "role cannot grade")
	}
	return nil
}

func (s *gradingService) upsertGrade(ctx context.Context, req *RecordGradeRequest, item *models.EvaluationItem) (*models.Grade, bool, error) {
	return s.upsertGradeWith(ctx, s.repo, req, item)
}

// upsertGradeWith overwrites an existing grade for (item, student) or creates
// a new one, snapshotting the item's current weight either way.
func (s *gradingService) upsertGradeWith(ctx context.Context, repo repositories.Repository, req *RecordGradeRequest, item *models.EvaluationItem) (*models.Grade, bool, error) {
	existing, err := repo.Grade().GetByItemAndStudent(ctx, req.EvaluationItemID, req.StudentID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, false, fmt.Errorf("failed to look up existing grade: %w", err)
	}

	if existing != nil {
		existing.Score = req.Score
		existing.MaxScore = req.MaxScore
		existing.Weight = item.Weight
		existing.EvaluationItemTitle = item.Title
		if req.StudentName != "" {
			existing.StudentName = req.StudentName
		}
		if err := repo.Grade().Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("failed to update grade: %w", err)
		}
		return existing, true, nil
	}

	grade := &models.Grade{
		ID:                  s.newID(),
		StudentID:           req.StudentID,
		StudentName:         req.StudentName,
		CourseSectionID:     req.CourseSectionID,
		PeriodID:            req.PeriodID,
		EvaluationItemID:    req.EvaluationItemID,
		EvaluationItemTitle: item.Title,
		Score:               req.Score,
		MaxScore:            req.MaxScore,
		Weight:              item.Weight,
	}
	if err := repo.Grade().Create(ctx, grade); err != nil {
		return nil, false, fmt.Errorf("failed to create grade: %w", err)
	}
	return grade, false, nil
}

func (s *gradingService) buildAverage(studentID, sectionID, periodID string, grades []models.Grade) *AverageResponse {
	average, warnings := grading.WeightedAverage(grades)
	return &AverageResponse{
		StudentID:       studentID,
		CourseSectionID: sectionID,
		PeriodID:        periodID,
		Average:         average,
		Passing:         grading.IsPassing(average, s.threshold),
		GradeCount:      len(grades),
		Warnings:        warnings,
	}
}

func (s *gradingService) invalidateAverage(ctx context.Context, studentID, sectionID, periodID string) {
	key := cache.StudentAverageKey(studentID, sectionID, periodID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("average cache invalidation failed", "key", key, "error", err)
	}
}

func (s *gradingService) invalidateInstitutionStats(ctx context.Context, sectionID string) {
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

func (s *gradingService) publishGradeRecorded(ctx context.Context, grade *models.Grade, regrade bool) {
	event := events.NewEvent(events.EventGradeRecorded, events.GradeRecordedEvent{
		GradeID:          grade.ID,
		StudentID:        grade.StudentID,
		CourseSectionID:  grade.CourseSectionID,
		PeriodID:         grade.PeriodID,
		EvaluationItemID: grade.EvaluationItemID,
		Score:            grade.Score,
		MaxScore:         grade.MaxScore,
		Weight:           grade.Weight,
		Regrade:          regrade,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish grade.recorded", "grade_id", grade.ID, "error", err)
	}
}
