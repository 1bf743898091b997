package services

import (
	"context"
	"testing"
	"time"

	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupPlanService() (PlanService, *MockRepository, *events.MockEventPublisher) {
	mockRepo := NewMockRepository()
	publisher := events.NewMockEventPublisher()
	service := NewPlanService(mockRepo, testLogger(), validator.New(), publisher, sequentialIDs())
	return service, mockRepo, publisher
}

func testPlan(weights ...int) *models.EvaluationPlan {
	plan := &models.EvaluationPlan{
		ID:              "plan-1",
		CourseSectionID: "section-1",
		PeriodID:        "period-1",
		PeriodName:      "Trimestre 1",
	}
	for i, w := range weights {
		plan.Items = append(plan.Items, models.EvaluationItem{
			ID:       itemID(i),
			PlanID:   plan.ID,
			Type:     models.ItemTask,
			Title:    "Item",
			Weight:   w,
			Position: i,
		})
	}
	plan.RecomputeTotalWeight()
	return plan
}

func itemID(i int) string {
	return "item-" + string(rune('a'+i))
}

func TestPlanService_AddItem(t *testing.T) {
	service, mockRepo, publisher := setupPlanService()
	plan := testPlan(30, 30)

	mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)
	mockRepo.plan.On("Save", mock.Anything, mock.AnythingOfType("*models.EvaluationPlan")).Return(nil)

	response, err := service.AddItem(context.Background(), "plan-1", &AddItemRequest{Type: models.ItemExam}, "teacher-1")

	assert.NoError(t, err)
	assert.Len(t, response.Plan.Items, 3)

	added := response.Plan.Items[2]
	assert.Equal(t, "id-1", added.ID)
	assert.Equal(t, models.ItemExam, added.Type)
	assert.Equal(t, 0, added.Weight)
	assert.Empty(t, added.Title)
	assert.Nil(t, added.DueDate)
	assert.Equal(t, 2, added.Position)

	// A zero-weight append leaves the total alone but the plan stays flagged.
	assert.Equal(t, 60, response.Plan.TotalWeight)
	assert.Equal(t, models.WeightUnder, response.Validation.Status)

	assert.Len(t, publisher.EventsOfType(events.EventPlanUpdated), 1)
	mockRepo.plan.AssertExpectations(t)
}

func TestPlanService_AddItem_InvalidType(t *testing.T) {
	service, mockRepo, _ := setupPlanService()

	_, err := service.AddItem(context.Background(), "plan-1", &AddItemRequest{Type: "quiz"}, "teacher-1")

	assert.ErrorIs(t, err, ErrInvalidItemType)
	mockRepo.plan.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPlanService_AddItem_PlanNotFound(t *testing.T) {
	service, mockRepo, _ := setupPlanService()

	mockRepo.plan.On("GetByID", mock.Anything, "missing").Return(nil, notFoundErr())

	_, err := service.AddItem(context.Background(), "missing", &AddItemRequest{Type: models.ItemTask}, "teacher-1")

	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPlanService_UpdateItem_WeightsToValid(t *testing.T) {
	service, mockRepo, _ := setupPlanService()
	plan := testPlan(40, 40)

	mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)
	mockRepo.plan.On("Save", mock.Anything, mock.AnythingOfType("*models.EvaluationPlan")).Return(nil)

	weight := 60
	response, err := service.UpdateItem(context.Background(), "plan-1", itemID(1), &UpdateItemRequest{Weight: &weight}, "teacher-1")

	assert.NoError(t, err)
	assert.Equal(t, 100, response.Plan.TotalWeight)
	assert.Equal(t, models.WeightValid, response.Validation.Status)
	assert.Equal(t, 0, response.Validation.TotalWeight-100)
}

func TestPlanService_UpdateItem_RejectsOutOfRangeWeight(t *testing.T) {
	service, mockRepo, _ := setupPlanService()

	tests := []struct {
		name   string
		weight int
	}{
		{"negative", -5},
		{"above hundred", 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := testPlan(40, 40)
			mockRepo.plan.ExpectedCalls = nil
			mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)

			_, err := service.UpdateItem(context.Background(), "plan-1", itemID(0), &UpdateItemRequest{Weight: &tt.weight}, "teacher-1")

			assert.ErrorIs(t, err, ErrInvalidWeight)
			mockRepo.plan.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestPlanService_UpdateItem_ItemNotFound(t *testing.T) {
	service, mockRepo, _ := setupPlanService()
	plan := testPlan(50, 50)

	mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)

	title := "Parcial"
	_, err := service.UpdateItem(context.Background(), "plan-1", "item-zz", &UpdateItemRequest{Title: &title}, "teacher-1")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestPlanService_UpdateItem_TypeChangeDropsDueDate(t *testing.T) {
	service, mockRepo, _ := setupPlanService()
	plan := testPlan(100)
	due := someTime()
	plan.Items[0].DueDate = &due

	mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)
	mockRepo.plan.On("Save", mock.Anything, mock.AnythingOfType("*models.EvaluationPlan")).Return(nil)

	participation := models.ItemParticipation
	response, err := service.UpdateItem(context.Background(), "plan-1", itemID(0), &UpdateItemRequest{Type: &participation}, "teacher-1")

	assert.NoError(t, err)
	assert.Equal(t, models.ItemParticipation, response.Plan.Items[0].Type)
	assert.Nil(t, response.Plan.Items[0].DueDate)
}

func TestPlanService_RemoveItem(t *testing.T) {
	service, mockRepo, publisher := setupPlanService()
	plan := testPlan(20, 30, 50)

	mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)
	mockRepo.plan.On("Save", mock.Anything, mock.AnythingOfType("*models.EvaluationPlan")).Return(nil)

	response, err := service.RemoveItem(context.Background(), "plan-1", itemID(1), "teacher-1")

	assert.NoError(t, err)
	assert.Len(t, response.Plan.Items, 2)
	assert.Equal(t, 70, response.Plan.TotalWeight)
	assert.Equal(t, models.WeightUnder, response.Validation.Status)

	// Positions stay dense after removal.
	assert.Equal(t, 0, response.Plan.Items[0].Position)
	assert.Equal(t, 1, response.Plan.Items[1].Position)

	assert.Len(t, publisher.EventsOfType(events.EventPlanUpdated), 1)
}

func TestPlanService_RemoveItem_NotFound(t *testing.T) {
	service, mockRepo, _ := setupPlanService()
	plan := testPlan(100)

	mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)

	_, err := service.RemoveItem(context.Background(), "plan-1", "item-zz", "teacher-1")

	assert.ErrorIs(t, err, ErrItemNotFound)
	mockRepo.plan.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlanService_Validation(t *testing.T) {
	service, mockRepo, _ := setupPlanService()

	tests := []struct {
		name    string
		weights []int
		status  models.WeightStatus
		total   int
	}{
		{"exactly hundred", []int{20, 40, 15, 25}, models.WeightValid, 100},
		{"under", []int{30, 30}, models.WeightUnder, 60},
		{"over", []int{60, 60}, models.WeightOver, 120},
		{"empty plan", nil, models.WeightUnder, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := testPlan(tt.weights...)
			mockRepo.plan.ExpectedCalls = nil
			mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)

			state, err := service.Validation(context.Background(), "plan-1")

			assert.NoError(t, err)
			assert.Equal(t, tt.status, state.Status)
			assert.Equal(t, tt.total, state.TotalWeight)
		})
	}
}

// Total weight must track the item list through any mutation sequence.
func TestPlanService_TotalWeightInvariant(t *testing.T) {
	service, mockRepo, _ := setupPlanService()
	plan := testPlan(25, 25)

	mockRepo.plan.On("GetByID", mock.Anything, "plan-1").Return(plan, nil)
	mockRepo.plan.On("Save", mock.Anything, mock.AnythingOfType("*models.EvaluationPlan")).Return(nil)

	ctx := context.Background()

	response, err := service.AddItem(ctx, "plan-1", &AddItemRequest{Type: models.ItemProject}, "teacher-1")
	assert.NoError(t, err)
	assertWeightSum(t, response.Plan)

	weight := 50
	response, err = service.UpdateItem(ctx, "plan-1", "id-1", &UpdateItemRequest{Weight: &weight}, "teacher-1")
	assert.NoError(t, err)
	assertWeightSum(t, response.Plan)
	assert.Equal(t, 100, response.Plan.TotalWeight)

	response, err = service.RemoveItem(ctx, "plan-1", itemID(0), "teacher-1")
	assert.NoError(t, err)
	assertWeightSum(t, response.Plan)
	assert.Equal(t, 75, response.Plan.TotalWeight)
}

func assertWeightSum(t *testing.T, plan *models.EvaluationPlan) {
	t.Helper()
	sum := 0
	for i := range plan.Items {
		sum += plan.Items[i].Weight
	}
	assert.Equal(t, sum, plan.TotalWeight)
}

func notFoundErr() error {
	return gorm.ErrRecordNotFound
}

func someTime() time.Time {
	return time.Date(2025, 5, 10, 23, 59, 0, 0, time.UTC)
}
