package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/dcampus/evaluation-service/internal/validator"
)

// BasePlanService manages institution-level plan templates and the two copy
// operations built on them: instantiating a template into a section plan and
// copying one section plan over another.
type BasePlanService interface {
	Create(ctx context.Context, req *CreateBasePlanRequest, userID string) (*models.BaseEvaluationPlan, error)
	GetByID(ctx context.Context, id string) (*models.BaseEvaluationPlan, error)
	GetBySubject(ctx context.Context, subjectID string) ([]*models.BaseEvaluationPlan, error)
	GetByInstitution(ctx context.Context, institutionID string) ([]*models.BaseEvaluationPlan, error)
	Update(ctx context.Context, id string, req *UpdateBasePlanRequest, userID string) (*models.BaseEvaluationPlan, error)
	Delete(ctx context.Context, id string, userID string) error

	// CopyPlan overwrites the target plan's items with deep copies of the
	// source plan's items: fresh ids, cleared due dates, never a merge.
	// Both plans must belong to the given section.
	CopyPlan(ctx context.Context, sectionID, sourcePlanID, targetPlanID, userID string) (*PlanResponse, error)

	// InstantiateFromBase builds (without persisting) a section plan for one
	// period whose items are deep copies of the template items.
	InstantiateFromBase(ctx context.Context, basePlanID, sectionID string, period *models.AcademicPeriod) (*models.EvaluationPlan, error)
}

// ===== REQUEST TYPES =====

type BasePlanItemRequest struct {
	Type        models.EvaluationItemType `json:"type" validate:"required,evaluation_item_type"`
	Title       string                    `json:"title" validate:"max=200"`
	Description string                    `json:"description" validate:"max=1000"`
	Weight      int                       `json:"weight" validate:"min=0,max=100"`
}

type CreateBasePlanRequest struct {
	SubjectID     string                `json:"subject_id" validate:"required"`
	InstitutionID string                `json:"institution_id" validate:"required"`
	Name          string                `json:"name" validate:"required,max=200"`
	Items         []BasePlanItemRequest `json:"items" validate:"dive"`
}

// UpdateBasePlanRequest replaces the template wholesale; Items == nil leaves
// the item list untouched.
type UpdateBasePlanRequest struct {
	Name  *string                `json:"name,omitempty" validate:"omitempty,max=200"`
	Items *[]BasePlanItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// ===== SERVICE IMPLEMENTATION =====

type basePlanService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	newID     utils.IDGenerator
}

func NewBasePlanService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, newID utils.IDGenerator) BasePlanService {
	return &basePlanService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		newID:     newID,
	}
}

// ===== TEMPLATE CRUD =====

func (s *basePlanService) Create(ctx context.Context, req *CreateBasePlanRequest, userID string) (*models.BaseEvaluationPlan, error) {
	s.logger.Info("Creating base plan", "subject_id", req.SubjectID, "user_id", userID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	plan := &models.BaseEvaluationPlan{
		ID:            s.newID(),
		SubjectID:     req.SubjectID,
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		CreatedBy:     userID,
		Items:         make([]models.BasePlanItem, 0, len(req.Items)),
	}
	for i, item := range req.Items {
		plan.Items = append(plan.Items, models.BasePlanItem{
			ID:          s.newID(),
			BasePlanID:  plan.ID,
			Type:        item.Type,
			Title:       item.Title,
			Description: item.Description,
			Weight:      item.Weight,
			Position:    i,
		})
	}
	plan.RecomputeTotalWeight()

	if err := s.repo.BasePlan().Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create base plan: %w", err)
	}

	s.logger.Info("Base plan created", "base_plan_id", plan.ID, "total_weight", plan.TotalWeight)
	return plan, nil
}

func (s *basePlanService) GetByID(ctx context.Context, id string) (*models.BaseEvaluationPlan, error) {
	return s.loadBasePlan(ctx, id)
}

func (s *basePlanService) GetBySubject(ctx context.Context, subjectID string) ([]*models.BaseEvaluationPlan, error) {
	plans, err := s.repo.BasePlan().GetBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subject base plans: %w", err)
	}
	return plans, nil
}

func (s *basePlanService) GetByInstitution(ctx context.Context, institutionID string) ([]*models.BaseEvaluationPlan, error) {
	plans, err := s.repo.BasePlan().GetByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get institution base plans: %w", err)
	}
	return plans, nil
}

func (s *basePlanService) Update(ctx context.Context, id string, req *UpdateBasePlanRequest, userID string) (*models.BaseEvaluationPlan, error) {
	s.logger.Info("Updating base plan", "base_plan_id", id, "user_id", userID)

	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	plan, err := s.loadBasePlan(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Items != nil {
		items := make([]models.BasePlanItem, 0, len(*req.Items))
		for i, item := range *req.Items {
			items = append(items, models.BasePlanItem{
				ID:          s.newID(),
				BasePlanID:  plan.ID,
				Type:        item.Type,
				Title:       item.Title,
				Description: item.Description,
				Weight:      item.Weight,
				Position:    i,
			})
		}
		plan.Items = items
	}
	plan.RecomputeTotalWeight()

	if err := s.repo.BasePlan().Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save base plan: %w", err)
	}

	s.logger.Info("Base plan updated", "base_plan_id", plan.ID, "total_weight", plan.TotalWeight)
	return plan, nil
}

func (s *basePlanService) Delete(ctx context.Context, id string, userID string) error {
	s.logger.Info("Deleting base plan", "base_plan_id", id, "user_id", userID)

	if _, err := s.loadBasePlan(ctx, id); err != nil {
		return err
	}

	if err := s.repo.BasePlan().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete base plan: %w", err)
	}
	return nil
}

// ===== COPY OPERATIONS =====

func (s *basePlanService) CopyPlan(ctx context.Context, sectionID, sourcePlanID, targetPlanID, userID string) (*PlanResponse, error) {
	s.logger.Info("Copying plan", "section_id", sectionID, "source_plan_id", sourcePlanID, "target_plan_id", targetPlanID, "user_id", userID)

	section, err := s.repo.Section().GetByIDWithPlans(ctx, sectionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSectionNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	source := section.PlanByID(sourcePlanID)
	if source == nil {
		return nil, fmt.Errorf("%w: source %s not in section", ErrPlanNotFound, sourcePlanID)
	}
	target := section.PlanByID(targetPlanID)
	if target == nil {
		return nil, fmt.Errorf("%w: target %s not in section", ErrPlanNotFound, targetPlanID)
	}

	items := make([]models.EvaluationItem, 0, len(source.Items))
	for i := range source.Items {
		src := &source.Items[i]
		items = append(items, models.EvaluationItem{
			ID:          s.newID(),
			PlanID:      target.ID,
			Type:        src.Type,
			Title:       src.Title,
			Description: src.Description,
			Weight:      src.Weight,
			DueDate:     nil, // due dates are period-specific, never copied
			Position:    src.Position,
		})
	}
	target.Items = items
	target.RecomputeTotalWeight()

	if err := s.repo.Plan().Save(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to save copied plan: %w", err)
	}

	state := target.ValidationState()
	event := events.NewEvent(events.EventPlanUpdated, events.PlanUpdatedEvent{
		PlanID:          target.ID,
		CourseSectionID: target.CourseSectionID,
		PeriodID:        target.PeriodID,
		TotalWeight:     state.TotalWeight,
		WeightStatus:    string(state.Status),
		ChangedBy:       userID,
		Change:          "plan_copied",
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish plan.updated", "plan_id", target.ID, "error", err)
	}

	s.logger.Info("Plan copied", "target_plan_id", target.ID, "items", len(target.Items), "total_weight", target.TotalWeight)
	return planResponse(target), nil
}

func (s *basePlanService) InstantiateFromBase(ctx context.Context, basePlanID, sectionID string, period *models.AcademicPeriod) (*models.EvaluationPlan, error) {
	base, err := s.loadBasePlan(ctx, basePlanID)
	if err != nil {
		return nil, err
	}

	plan := &models.EvaluationPlan{
		ID:              s.newID(),
		CourseSectionID: sectionID,
		PeriodID:        period.ID,
		PeriodName:      period.Name,
		Items:           make([]models.EvaluationItem, 0, len(base.Items)),
	}
	for i := range base.Items {
		src := &base.Items[i]
		plan.Items = append(plan.Items, models.EvaluationItem{
			ID:          s.newID(),
			PlanID:      plan.ID,
			Type:        src.Type,
			Title:       src.Title,
			Description: src.Description,
			Weight:      src.Weight,
			Position:    src.Position,
		})
	}
	plan.RecomputeTotalWeight()

	return plan, nil
}

// ===== HELPERS =====

func (s *basePlanService) loadBasePlan(ctx context.Context, id string) (*models.BaseEvaluationPlan, error) {
	plan, err := s.repo.BasePlan().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrBasePlanNotFound
		}
		return nil, fmt.Errorf("failed to get base plan: %w", err)
	}
	return plan, nil
}
