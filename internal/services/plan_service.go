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

// PlanService manages the weighted item list of evaluation plans. Callers
// serialize writes per (section, period); the service itself takes no locks.
type PlanService interface {
	GetByID(ctx context.Context, planID string) (*PlanResponse, error)
	GetBySection(ctx context.Context, sectionID string) ([]*PlanResponse, error)
	GetBySectionAndPeriod(ctx context.Context, sectionID, periodID string) (*PlanResponse, error)
	AddItem(ctx context.Context, planID string, req *AddItemRequest, userID string) (*PlanResponse, error)
	UpdateItem(ctx context.Context, planID, itemID string, req *UpdateItemRequest, userID string) (*PlanResponse, error)
	RemoveItem(ctx context.Context, planID, itemID string, userID string) (*PlanResponse, error)
	Validation(ctx context.Context, planID string) (*models.ValidationState, error)
}

// ===== REQUEST / RESPONSE TYPES =====

type AddItemRequest struct {
	Type        models.EvaluationItemType `json:"type" validate:"required,evaluation_item_type"`
	Title       string                    `json:"title" validate:"max=200"`
	Description string                    `json:"description" validate:"max=1000"`
	Weight      *int                      `json:"weight,omitempty"`
	DueDate     *time.Time                `json:"due_date,omitempty"`
}

// UpdateItemRequest updates one item per-field; nil fields are left untouched.
// ClearDueDate removes the due date since a nil DueDate alone means "no
// change".
type UpdateItemRequest struct {
	Type         *models.EvaluationItemType `json:"type,omitempty" validate:"omitempty,evaluation_item_type"`
	Title        *string                    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description  *string                    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Weight       *int                       `json:"weight,omitempty"`
	DueDate      *time.Time                 `json:"due_date,omitempty"`
	ClearDueDate bool                       `json:"clear_due_date,omitempty"`
}

type PlanResponse struct {
	Plan       *models.EvaluationPlan `json:"plan"`
	Validation models.ValidationState `json:"validation"`
}

// ===== SERVICE IMPLEMENTATION =====

type planService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	newID     utils.IDGenerator
}

func NewPlanService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, newID utils.IDGenerator) PlanService {
	return &planService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		newID:     newID,
	}
}

// ===== READ OPERATIONS =====

func (s *planService) GetByID(ctx context.Context, planID string) (*PlanResponse, error) {
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return planResponse(plan), nil
}

func (s *planService) GetBySection(ctx context.Context, sectionID string) ([]*PlanResponse, error) {
	plans, err := s.repo.Plan().GetBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get section plans: %w", err)
	}

	responses := make([]*PlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, planResponse(plan))
	}
	return responses, nil
}

func (s *planService) GetBySectionAndPeriod(ctx context.Context, sectionID, periodID string) (*PlanResponse, error) {
	plan, err := s.repo.Plan().GetBySectionAndPeriod(ctx, sectionID, periodID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan for period: %w", err)
	}
	return planResponse(plan), nil
}

func (s *planService) Validation(ctx context.Context, planID string) (*models.ValidationState, error) {
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	state := plan.ValidationState()
	return &state, nil
}

// ===== ITEM MUTATIONS =====

func (s *planService) AddItem(ctx context.Context, planID string, req *AddItemRequest, userID string) (*PlanResponse, error) {
	s.logger.Info("Adding plan item", "plan_id", planID, "type", req.Type, "user_id", userID)

	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidItemType, req.Type)
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	weight := 0
	if req.Weight != nil {
		if err := s.validator.Plan().ValidateWeightChange(*req.Weight); err != nil {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWeight, *req.Weight)
		}
		weight = *req.Weight
	}

	if req.DueDate != nil && !req.Type.AllowsDueDate() {
		return nil, NewBusinessRuleError("item_due_date", fmt.Sprintf("items of type %s cannot carry a due date", req.Type), nil)
	}

	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	item := models.EvaluationItem{
		ID:          s.newID(),
		PlanID:      plan.ID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Weight:      weight,
		DueDate:     req.DueDate,
		Position:    len(plan.Items),
	}
	plan.Items = append(plan.Items, item)
	plan.RecomputeTotalWeight()

	if err := s.repo.Plan().Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	s.publishPlanUpdated(ctx, plan, userID, "item_added")
	s.logger.Info("Plan item added", "plan_id", plan.ID, "item_id", item.ID, "total_weight", plan.TotalWeight)

	return planResponse(plan), nil
}

func (s *planService) UpdateItem(ctx context.Context, planID, itemID string, req *UpdateItemRequest, userID string) (*PlanResponse, error) {
	s.logger.Info("Updating plan item", "plan_id", planID, "item_id", itemID, "user_id", userID)

	if req.Type != nil && !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidItemType, *req.Type)
	}
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	item := plan.ItemByID(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidItemType, *req.Type)
		}
		item.Type = *req.Type
		if !item.Type.AllowsDueDate() {
			item.DueDate = nil
		}
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Weight != nil {
		if err := s.validator.Plan().ValidateWeightChange(*req.Weight); err != nil {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWeight, *req.Weight)
		}
		item.Weight = *req.Weight
	}
	if req.ClearDueDate {
		item.DueDate = nil
	} else if req.DueDate != nil {
		if !item.Type.AllowsDueDate() {
			return nil, NewBusinessRuleError("item_due_date", fmt.Sprintf("items of type %s cannot carry a due date", item.Type), nil)
		}
		item.DueDate = req.DueDate
	}

	plan.RecomputeTotalWeight()

	if err := s.repo.Plan().Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	s.publishPlanUpdated(ctx, plan, userID, "item_updated")
	s.logger.Info("Plan item updated", "plan_id", plan.ID, "item_id", itemID, "total_weight", plan.TotalWeight)

	return planResponse(plan), nil
}

func (s *planService) RemoveItem(ctx context.Context, planID, itemID string, userID string) (*PlanResponse, error) {
	s.logger.Info("Removing plan item", "plan_id", planID, "item_id", itemID, "user_id", userID)

	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range plan.Items {
		if plan.Items[i].ID == itemID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrItemNotFound
	}

	plan.Items = append(plan.Items[:index], plan.Items[index+1:]...)
	for i := range plan.Items {
		plan.Items[i].Position = i
	}
	plan.RecomputeTotalWeight()

	if err := s.repo.Plan().Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	s.publishPlanUpdated(ctx, plan, userID, "item_removed")
	s.logger.Info("Plan item removed", "plan_id", plan.ID, "item_id", itemID, "total_weight", plan.TotalWeight)

	return planResponse(plan), nil
}

// ===== HELPERS =====

func (s *planService) loadPlan(ctx context.Context, planID string) (*models.EvaluationPlan, error) {
	plan, err := s.repo.Plan().GetByID(ctx, planID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return plan, nil
}

func (s *planService) publishPlanUpdated(ctx context.Context, plan *models.EvaluationPlan, userID, change string) {
	state := plan.ValidationState()
	event := events.NewEvent(events.EventPlanUpdated, events.PlanUpdatedEvent{
		PlanID:          plan.ID,
		CourseSectionID: plan.CourseSectionID,
		PeriodID:        plan.PeriodID,
		TotalWeight:     state.TotalWeight,
		WeightStatus:    string(state.Status),
		ChangedBy:       userID,
		Change:          change,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish plan.updated", "plan_id", plan.ID, "error", err)
	}
}

func planResponse(plan *models.EvaluationPlan) *PlanResponse {
	return &PlanResponse{
		Plan:       plan,
		Validation: plan.ValidationState(),
	}
}
