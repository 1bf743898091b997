package validator

import (
	"fmt"

	"github.com/dcampus/evaluation-service/internal/models"
)

// PlanValidator handles evaluation-plan-specific validation
type PlanValidator struct{}

// NewPlanValidator creates a new plan validator
func NewPlanValidator() *PlanValidator {
	return &PlanValidator{}
}

// ValidateItem checks one item independent of its plan context.
func (v *PlanValidator) ValidateItem(item *models.EvaluationItem) error {
	if !item.Type.IsValid() {
		return fmt.Errorf("unsupported evaluation item type: %s", item.Type)
	}

	if item.Weight < 0 || item.Weight > 100 {
		return fmt.Errorf("item weight must be between 0 and 100, got %d", item.Weight)
	}

	if item.DueDate != nil && !item.Type.AllowsDueDate() {
		return fmt.Errorf("items of type %s cannot carry a due date", item.Type)
	}

	return nil
}

// ValidateWeightChange checks a proposed weight before it is applied.
// Out-of-range weights are rejected outright rather than clamped; the
// under/over classification of the plan total is a separate, non-blocking
// concern.
func (v *PlanValidator) ValidateWeightChange(weight int) error {
	if weight < 0 || weight > 100 {
		return fmt.Errorf("item weight must be between 0 and 100, got %d", weight)
	}
	return nil
}

// ValidateBaseItems validates the template items of a base plan.
func (v *PlanValidator) ValidateBaseItems(items []models.BasePlanItem) error {
	for i := range items {
		item := &items[i]
		if !item.Type.IsValid() {
			return fmt.Errorf("item %d: unsupported evaluation item type: %s", i+1, item.Type)
		}
		if item.Weight < 0 || item.Weight > 100 {
			return fmt.Errorf("item %d: weight must be between 0 and 100, got %d", i+1, item.Weight)
		}
	}
	return nil
}

// ValidateScore checks a raw score against the item's maximum.
func (v *PlanValidator) ValidateScore(score, maxScore float64) error {
	if maxScore < 0 {
		return fmt.Errorf("max score cannot be negative, got %g", maxScore)
	}
	if score < 0 {
		return fmt.Errorf("score cannot be negative, got %g", score)
	}
	if maxScore > 0 && score > maxScore {
		return fmt.Errorf("score %g exceeds max score %g", score, maxScore)
	}
	return nil
}
