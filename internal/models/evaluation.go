package models

import (
	"time"
)

type EvaluationItemType string

const (
	ItemTask          EvaluationItemType = "task"
	ItemExam          EvaluationItemType = "exam"
	ItemParticipation EvaluationItemType = "participation"
	ItemProject       EvaluationItemType = "project"
)

// EvaluationItemTypes lists the closed set of item types in display order.
var EvaluationItemTypes = []EvaluationItemType{
	ItemTask,
	ItemExam,
	ItemParticipation,
	ItemProject,
}

// IsValid reports whether t is one of the known item types.
func (t EvaluationItemType) IsValid() bool {
	switch t {
	case ItemTask, ItemExam, ItemParticipation, ItemProject:
		return true
	}
	return false
}

// AllowsDueDate reports whether items of this type carry a due date.
// Participation is graded continuously and has none.
func (t EvaluationItemType) AllowsDueDate() bool {
	return t != ItemParticipation
}

// EvaluationItem is one weighted gradable entry of an evaluation plan.
// Items are owned exclusively by a single plan; copies across plans always
// get fresh identifiers.
type EvaluationItem struct {
	ID          string             `json:"id" gorm:"primaryKey;size:36"`
	PlanID      string             `json:"plan_id" gorm:"not null;index;size:36"`
	Type        EvaluationItemType `json:"type" gorm:"not null;size:20" validate:"required,evaluation_item_type"`
	Title       string             `json:"title" gorm:"size:200" validate:"max=200"`
	Description string             `json:"description" gorm:"type:text" validate:"max=1000"`
	Weight      int                `json:"weight" gorm:"not null;default:0" validate:"min=0,max=100"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	Position    int                `json:"position" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EvaluationItem) TableName() string {
	return "evaluation_items"
}

type WeightStatus string

const (
	WeightValid WeightStatus = "valid"
	WeightUnder WeightStatus = "under"
	WeightOver  WeightStatus = "over"
)

// ValidationState is the three-way classification of a plan's total weight,
// rendered by callers as a non-blocking warning while the plan is edited.
type ValidationState struct {
	Status      WeightStatus `json:"status"`
	TotalWeight int          `json:"total_weight"`
}

// EvaluationPlan is the weighted set of gradable items for one course section
// in one academic period. TotalWeight is derived from the items and must never
// be set independently; every mutation path recomputes it from the final item
// list.
type EvaluationPlan struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	CourseSectionID string    `json:"course_section_id" gorm:"not null;index;size:36"`
	PeriodID        string    `json:"period_id" gorm:"not null;index;size:36"`
	PeriodName      string    `json:"period_name" gorm:"size:100"`
	TotalWeight     int       `json:"total_weight" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Items []EvaluationItem `json:"items" gorm:"foreignKey:PlanID"`
}

func (EvaluationPlan) TableName() string {
	return "evaluation_plans"
}

// RecomputeTotalWeight derives TotalWeight from the current item list.
// This is the single site where the weight-sum invariant is enforced.
func (p *EvaluationPlan) RecomputeTotalWeight() {
	total := 0
	for i := range p.Items {
		total += p.Items[i].Weight
	}
	p.TotalWeight = total
}

// ItemByID returns the item with the given id, or nil.
func (p *EvaluationPlan) ItemByID(itemID string) *EvaluationItem {
	for i := range p.Items {
		if p.Items[i].ID == itemID {
			return &p.Items[i]
		}
	}
	return nil
}

// IsValid reports whether the plan's weights sum to exactly 100.
func (p *EvaluationPlan) IsValid() bool {
	return p.weightSum() == 100
}

// ValidationState classifies the plan's weight sum. It is a pure function of
// the items and ignores the stored TotalWeight column.
func (p *EvaluationPlan) ValidationState() ValidationState {
	total := p.weightSum()
	state := ValidationState{TotalWeight: total}
	switch {
	case total == 100:
		state.Status = WeightValid
	case total < 100:
		state.Status = WeightUnder
	default:
		state.Status = WeightOver
	}
	return state
}

func (p *EvaluationPlan) weightSum() int {
	total := 0
	for i := range p.Items {
		total += p.Items[i].Weight
	}
	return total
}

// BasePlanItem is a template item of a BaseEvaluationPlan. Same shape as
// EvaluationItem minus the due date, which is period-specific and never part
// of a template.
type BasePlanItem struct {
	ID          string             `json:"id" gorm:"primaryKey;size:36"`
	BasePlanID  string             `json:"base_plan_id" gorm:"not null;index;size:36"`
	Type        EvaluationItemType `json:"type" gorm:"not null;size:20" validate:"required,evaluation_item_type"`
	Title       string             `json:"title" gorm:"size:200" validate:"max=200"`
	Description string             `json:"description" gorm:"type:text" validate:"max=1000"`
	Weight      int                `json:"weight" gorm:"not null;default:0" validate:"min=0,max=100"`
	Position    int                `json:"position" gorm:"not null"`
}

func (BasePlanItem) TableName() string {
	return "base_plan_items"
}

// BaseEvaluationPlan is the institution-level default plan for a subject.
// It is a distinct entity from EvaluationPlan: it lives in its own table,
// its ids never collide with plan ids, and sections only ever read it —
// instantiation deep-copies items with fresh identifiers.
type BaseEvaluationPlan struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	SubjectID     string    `json:"subject_id" gorm:"not null;index;size:36"`
	InstitutionID string    `json:"institution_id" gorm:"not null;index;size:36"`
	Name          string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	TotalWeight   int       `json:"total_weight" gorm:"not null;default:0"`
	CreatedBy     string    `json:"created_by" gorm:"size:36"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Items []BasePlanItem `json:"items" gorm:"foreignKey:BasePlanID"`
}

func (BaseEvaluationPlan) TableName() string {
	return "base_evaluation_plans"
}

// RecomputeTotalWeight derives TotalWeight from the template items.
func (b *BaseEvaluationPlan) RecomputeTotalWeight() {
	total := 0
	for i := range b.Items {
		total += b.Items[i].Weight
	}
	b.TotalWeight = total
}
