package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func planWithWeights(weights ...int) *EvaluationPlan {
	plan := &EvaluationPlan{ID: "plan-1", PeriodID: "p1", PeriodName: "Trimestre 1"}
	for i, w := range weights {
		plan.Items = append(plan.Items, EvaluationItem{
			ID:       string(rune('a' + i)),
			PlanID:   plan.ID,
			Type:     ItemTask,
			Weight:   w,
			Position: i,
		})
	}
	plan.RecomputeTotalWeight()
	return plan
}

func TestRecomputeTotalWeight(t *testing.T) {
	plan := planWithWeights(20, 40, 15, 25)
	assert.Equal(t, 100, plan.TotalWeight)

	plan.Items = plan.Items[:2]
	plan.RecomputeTotalWeight()
	assert.Equal(t, 60, plan.TotalWeight)

	plan.Items = nil
	plan.RecomputeTotalWeight()
	assert.Equal(t, 0, plan.TotalWeight)
}

func TestValidationState(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		status  WeightStatus
		total   int
	}{
		{"complete plan", []int{20, 40, 15, 25}, WeightValid, 100},
		{"under after removal", []int{20, 15, 25}, WeightUnder, 60},
		{"over allocated", []int{50, 60}, WeightOver, 110},
		{"empty plan", nil, WeightUnder, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planWithWeights(tt.weights...)
			state := plan.ValidationState()
			assert.Equal(t, tt.status, state.Status)
			assert.Equal(t, tt.total, state.TotalWeight)
			assert.Equal(t, tt.status == WeightValid, plan.IsValid())
		})
	}
}

func TestValidationStateIgnoresStoredTotal(t *testing.T) {
	plan := planWithWeights(50, 50)
	plan.TotalWeight = 7 // stale column value must not matter

	state := plan.ValidationState()
	assert.Equal(t, WeightValid, state.Status)
	assert.Equal(t, 100, state.TotalWeight)
	assert.True(t, plan.IsValid())
}

func TestItemTypeEnum(t *testing.T) {
	for _, typ := range EvaluationItemTypes {
		assert.True(t, typ.IsValid())
	}
	assert.False(t, EvaluationItemType("homework").IsValid())
	assert.False(t, EvaluationItemType("").IsValid())

	assert.False(t, ItemParticipation.AllowsDueDate())
	assert.True(t, ItemExam.AllowsDueDate())
}

func TestItemByID(t *testing.T) {
	plan := planWithWeights(30, 70)
	assert.NotNil(t, plan.ItemByID("a"))
	assert.Nil(t, plan.ItemByID("missing"))
}

func TestSubmissionIsGraded(t *testing.T) {
	sub := &Submission{Status: SubmissionPending}
	assert.False(t, sub.IsGraded())

	now := time.Now()
	score := 92.0
	sub.Status = SubmissionGraded
	sub.Grade = &score
	sub.GradedAt = &now
	assert.True(t, sub.IsGraded())
}
