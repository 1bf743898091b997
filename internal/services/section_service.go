package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/dcampus/evaluation-service/internal/validator"
)

// SectionService manages course sections and their enrollments. A section is
// created with exactly one evaluation plan per academic period of its
// institution; the plans start empty unless a base plan seeds them, and they
// are deleted only together with the section.
type SectionService interface {
	Create(ctx context.Context, req *CreateSectionRequest, userID string) (*models.CourseSection, error)
	GetByID(ctx context.Context, id string) (*models.CourseSection, error)
	List(ctx context.Context, institutionID string, filters repositories.SectionFilters) (*SectionListResponse, error)
	Update(ctx context.Context, id string, req *UpdateSectionRequest, userID string) (*models.CourseSection, error)
	Delete(ctx context.Context, id string, userID string) error

	EnrollStudent(ctx context.Context, sectionID string, req *EnrollStudentRequest) (*models.Enrollment, error)
	DropEnrollment(ctx context.Context, enrollmentID string) error
	ListEnrollments(ctx context.Context, sectionID string) ([]*models.Enrollment, error)
}

// ===== REQUEST / RESPONSE TYPES =====

type CreateSectionRequest struct {
	SubjectID      string  `json:"subject_id" validate:"required"`
	InstitutionID  string  `json:"institution_id" validate:"required"`
	PeriodID       string  `json:"period_id"`
	TeacherID      string  `json:"teacher_id"`
	TeacherName    string  `json:"teacher_name" validate:"max=200"`
	AccentColor    string  `json:"accent_color" validate:"omitempty,hexcolor"`
	WelcomeMessage string  `json:"welcome_message" validate:"max=5000"`
	Year           int     `json:"year"`
	BasePlanID     *string `json:"base_plan_id,omitempty"`
}

type UpdateSectionRequest struct {
	TeacherID      *string               `json:"teacher_id,omitempty"`
	TeacherName    *string               `json:"teacher_name,omitempty" validate:"omitempty,max=200"`
	AccentColor    *string               `json:"accent_color,omitempty" validate:"omitempty,hexcolor"`
	WelcomeMessage *string               `json:"welcome_message,omitempty" validate:"omitempty,max=5000"`
	Status         *models.SectionStatus `json:"status,omitempty" validate:"omitempty,section_status"`
}

type SectionListResponse struct {
	Sections []*models.CourseSection `json:"sections"`
	Total    int64                   `json:"total"`
}

type EnrollStudentRequest struct {
	StudentID    string `json:"student_id" validate:"required"`
	StudentName  string `json:"student_name" validate:"max=200"`
	StudentEmail string `json:"student_email" validate:"omitempty,email"`
}

// ===== SERVICE IMPLEMENTATION =====

type sectionService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	basePlans BasePlanService
	newID     utils.IDGenerator
}

func NewSectionService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, basePlans BasePlanService, newID utils.IDGenerator) SectionService {
	return &sectionService{
		repo:      repo,
		logger:    logger,
		validator: v,
		basePlans: basePlans,
		newID:     newID,
	}
}

// ===== SECTION CRUD =====

func (s *sectionService) Create(ctx context.Context, req *CreateSectionRequest, userID string) (*models.CourseSection, error) {
	s.logger.Info("Creating course section", "subject_id", req.SubjectID, "institution_id", req.InstitutionID, "user_id", userID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	institution, err := s.repo.Institution().GetByID(ctx, req.InstitutionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("failed to get institution: %w", err)
	}

	section := &models.CourseSection{
		ID:                   s.newID(),
		SubjectID:            req.SubjectID,
		InstitutionID:        req.InstitutionID,
		PeriodID:             req.PeriodID,
		TeacherID:            req.TeacherID,
		TeacherName:          req.TeacherName,
		AccentColor:          req.AccentColor,
		WelcomeMessage:       req.WelcomeMessage,
		Status:               models.SectionDraft,
		Year:                 req.Year,
		BaseEvaluationPlanID: req.BasePlanID,
	}
	if section.Year == 0 {
		section.Year = time.Now().Year()
	}
	if lead := institution.PeriodByID(req.PeriodID); lead != nil {
		section.PeriodName = lead.Name
	}

	// One plan per configured period, seeded from the base plan when given.
	for i := range institution.Periods {
		period := &institution.Periods[i]

		var plan *models.EvaluationPlan
		if req.BasePlanID != nil {
			plan, err = s.basePlans.InstantiateFromBase(ctx, *req.BasePlanID, section.ID, period)
			if err != nil {
				return nil, err
			}
		} else {
			plan = &models.EvaluationPlan{
				ID:              s.newID(),
				CourseSectionID: section.ID,
				PeriodID:        period.ID,
				PeriodName:      period.Name,
			}
		}
		section.EvaluationPlans = append(section.EvaluationPlans, *plan)
	}

	if err := s.repo.Section().Create(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	s.logger.Info("Course section created", "section_id", section.ID, "plans", len(section.EvaluationPlans))
	return section, nil
}

func (s *sectionService) GetByID(ctx context.Context, id string) (*models.CourseSection, error) {
	section, err := s.repo.Section().GetByIDWithPlans(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return section, nil
}

func (s *sectionService) List(ctx context.Context, institutionID string, filters repositories.SectionFilters) (*SectionListResponse, error) {
	sections, total, err := s.repo.Section().List(ctx, institutionID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return &SectionListResponse{Sections: sections, Total: total}, nil
}

func (s *sectionService) Update(ctx context.Context, id string, req *UpdateSectionRequest, userID string) (*models.CourseSection, error) {
	s.logger.Info("Updating course section", "section_id", id, "user_id", userID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	section, err := s.repo.Section().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	if req.TeacherID != nil {
		section.TeacherID = *req.TeacherID
	}
	if req.TeacherName != nil {
		section.TeacherName = *req.TeacherName
	}
	if req.AccentColor != nil {
		section.AccentColor = *req.AccentColor
	}
	if req.WelcomeMessage != nil {
		section.WelcomeMessage = *req.WelcomeMessage
	}
	if req.Status != nil {
		section.Status = *req.Status
	}

	if err := s.repo.Section().Update(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return section, nil
}

func (s *sectionService) Delete(ctx context.Context, id string, userID string) error {
	s.logger.Info("Deleting course section", "section_id", id, "user_id", userID)

	if _, err := s.repo.Section().GetByID(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrSectionNotFound
		}
		return fmt.Errorf("failed to get section: %w", err)
	}

	if err := s.repo.Section().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}

	s.logger.Info("Course section deleted", "section_id", id)
	return nil
}

// ===== ENROLLMENTS =====

func (s *sectionService) EnrollStudent(ctx context.Context, sectionID string, req *EnrollStudentRequest) (*models.Enrollment, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	if _, err := s.repo.Section().GetByID(ctx, sectionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	existing, err := s.repo.Enrollment().GetActiveBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollments: %w", err)
	}
	for _, enrollment := range existing {
		if enrollment.StudentID == req.StudentID {
			return nil, ErrConflict
		}
	}

	enrollment := &models.Enrollment{
		ID:              s.newID(),
		StudentID:       req.StudentID,
		StudentName:     req.StudentName,
		StudentEmail:    req.StudentEmail,
		CourseSectionID: sectionID,
		EnrolledAt:      time.Now(),
		Status:          models.EnrollmentActive,
	}
	if err := s.repo.Enrollment().Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	s.logger.Info("Student enrolled", "section_id", sectionID, "student_id", req.StudentID)
	return enrollment, nil
}

func (s *sectionService) DropEnrollment(ctx context.Context, enrollmentID string) error {
	err := s.repo.Enrollment().UpdateStatus(ctx, enrollmentID, models.EnrollmentDropped)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("failed to drop enrollment: %w", err)
	}
	return nil
}

func (s *sectionService) ListEnrollments(ctx context.Context, sectionID string) ([]*models.Enrollment, error) {
	enrollments, err := s.repo.Enrollment().GetActiveBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}
