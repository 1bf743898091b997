package services

import (
	"context"
	"testing"

	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupBasePlanService() (BasePlanService, *MockRepository, *events.MockEventPublisher) {
	mockRepo := NewMockRepository()
	publisher := events.NewMockEventPublisher()
	service := NewBasePlanService(mockRepo, testLogger(), validator.New(), publisher, sequentialIDs())
	return service, mockRepo, publisher
}

func TestBasePlanService_Create(t *testing.T) {
	service, mockRepo, _ := setupBasePlanService()

	mockRepo.basePlan.On("Create", mock.Anything, mock.AnythingOfType("*models.BaseEvaluationPlan")).Return(nil)

	plan, err := service.Create(context.Background(), &CreateBasePlanRequest{
		SubjectID:     "subject-1",
		InstitutionID: "inst-1",
		Name:          "Plan estándar",
		Items: []BasePlanItemRequest{
			{Type: models.ItemTask, Title: "Tareas", Weight: 30},
			{Type: models.ItemExam, Title: "Parcial", Weight: 70},
		},
	}, "coordinator-1")

	assert.NoError(t, err)
	assert.Equal(t, 100, plan.TotalWeight)
	assert.Equal(t, "coordinator-1", plan.CreatedBy)
	assert.Len(t, plan.Items, 2)
	assert.Equal(t, plan.ID, plan.Items[0].BasePlanID)
	mockRepo.basePlan.AssertExpectations(t)
}

func TestBasePlanService_CopyPlan(t *testing.T) {
	service, mockRepo, publisher := setupBasePlanService()

	due := someTime()
	source := models.EvaluationPlan{
		ID:              "plan-src",
		CourseSectionID: "section-1",
		PeriodID:        "period-1",
		Items: []models.EvaluationItem{
			{ID: "src-a", PlanID: "plan-src", Type: models.ItemTask, Title: "Tareas", Weight: 30, DueDate: &due, Position: 0},
			{ID: "src-b", PlanID: "plan-src", Type: models.ItemExam, Title: "Parcial", Weight: 70, Position: 1},
		},
		TotalWeight: 100,
	}
	target := models.EvaluationPlan{
		ID:              "plan-dst",
		CourseSectionID: "section-1",
		PeriodID:        "period-2",
		Items: []models.EvaluationItem{
			{ID: "dst-old", PlanID: "plan-dst", Type: models.ItemProject, Title: "Viejo", Weight: 40, Position: 0},
		},
		TotalWeight: 40,
	}
	section := &models.CourseSection{
		ID:              "section-1",
		EvaluationPlans: []models.EvaluationPlan{source, target},
	}

	mockRepo.section.On("GetByIDWithPlans", mock.Anything, "section-1").Return(section, nil)
	mockRepo.plan.On("Save", mock.Anything, mock.AnythingOfType("*models.EvaluationPlan")).Return(nil)

	response, err := service.CopyPlan(context.Background(), "section-1", "plan-src", "plan-dst", "teacher-1")

	assert.NoError(t, err)
	copied := response.Plan
	assert.Equal(t, "plan-dst", copied.ID)
	assert.Equal(t, "period-2", copied.PeriodID)

	// Overwrite, never merge: the old target item is gone.
	assert.Len(t, copied.Items, 2)
	for i := range copied.Items {
		item := &copied.Items[i]
		assert.NotEqual(t, "dst-old", item.ID)
		assert.NotEqual(t, source.Items[i].ID, item.ID)
		assert.Equal(t, "plan-dst", item.PlanID)
		assert.Nil(t, item.DueDate)
		assert.Equal(t, source.Items[i].Weight, item.Weight)
		assert.Equal(t, source.Items[i].Title, item.Title)
	}
	assert.Equal(t, 100, copied.TotalWeight)
	assert.Equal(t, models.WeightValid, response.Validation.Status)

	assert.Len(t, publisher.EventsOfType(events.EventPlanUpdated), 1)
}

func TestBasePlanService_CopyPlan_TargetNotInSection(t *testing.T) {
	service, mockRepo, _ := setupBasePlanService()

	section := &models.CourseSection{
		ID: "section-1",
		EvaluationPlans: []models.EvaluationPlan{
			{ID: "plan-src", CourseSectionID: "section-1"},
		},
	}
	mockRepo.section.On("GetByIDWithPlans", mock.Anything, "section-1").Return(section, nil)

	_, err := service.CopyPlan(context.Background(), "section-1", "plan-src", "plan-other", "teacher-1")

	assert.ErrorIs(t, err, ErrPlanNotFound)
	mockRepo.plan.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBasePlanService_InstantiateFromBase(t *testing.T) {
	service, mockRepo, _ := setupBasePlanService()

	base := &models.BaseEvaluationPlan{
		ID:        "base-1",
		SubjectID: "subject-1",
		Name:      "Plan estándar",
		Items: []models.BasePlanItem{
			{ID: "tpl-a", BasePlanID: "base-1", Type: models.ItemTask, Title: "Tareas", Weight: 20, Position: 0},
			{ID: "tpl-b", BasePlanID: "base-1", Type: models.ItemExam, Title: "Parcial", Weight: 40, Position: 1},
			{ID: "tpl-c", BasePlanID: "base-1", Type: models.ItemParticipation, Title: "Participación", Weight: 15, Position: 2},
			{ID: "tpl-d", BasePlanID: "base-1", Type: models.ItemProject, Title: "Proyecto", Weight: 25, Position: 3},
		},
		TotalWeight: 100,
	}
	mockRepo.basePlan.On("GetByID", mock.Anything, "base-1").Return(base, nil)

	period := &models.AcademicPeriod{ID: "period-2", Name: "Trimestre 2"}
	plan, err := service.InstantiateFromBase(context.Background(), "base-1", "section-9", period)

	assert.NoError(t, err)
	assert.Equal(t, "section-9", plan.CourseSectionID)
	assert.Equal(t, "period-2", plan.PeriodID)
	assert.Equal(t, "Trimestre 2", plan.PeriodName)
	assert.Equal(t, 100, plan.TotalWeight)
	assert.Len(t, plan.Items, 4)

	for i := range plan.Items {
		item := &plan.Items[i]
		assert.NotEqual(t, base.Items[i].ID, item.ID)
		assert.Equal(t, plan.ID, item.PlanID)
		assert.Nil(t, item.DueDate)
		assert.Equal(t, base.Items[i].Weight, item.Weight)
	}
}

func TestBasePlanService_InstantiateFromBase_NotFound(t *testing.T) {
	service, mockRepo, _ := setupBasePlanService()

	mockRepo.basePlan.On("GetByID", mock.Anything, "missing").Return(nil, notFoundErr())

	period := &models.AcademicPeriod{ID: "period-1", Name: "Trimestre 1"}
	_, err := service.InstantiateFromBase(context.Background(), "missing", "section-1", period)

	assert.ErrorIs(t, err, ErrBasePlanNotFound)
}

func TestBasePlanService_Update_ReplacesItems(t *testing.T) {
	service, mockRepo, _ := setupBasePlanService()

	existing := &models.BaseEvaluationPlan{
		ID:   "base-1",
		Name: "Plan viejo",
		Items: []models.BasePlanItem{
			{ID: "tpl-a", BasePlanID: "base-1", Type: models.ItemTask, Weight: 100},
		},
		TotalWeight: 100,
	}
	mockRepo.basePlan.On("GetByID", mock.Anything, "base-1").Return(existing, nil)
	mockRepo.basePlan.On("Save", mock.Anything, mock.AnythingOfType("*models.BaseEvaluationPlan")).Return(nil)

	name := "Plan nuevo"
	items := []BasePlanItemRequest{
		{Type: models.ItemExam, Title: "Final", Weight: 60},
		{Type: models.ItemProject, Title: "Proyecto", Weight: 40},
	}
	plan, err := service.Update(context.Background(), "base-1", &UpdateBasePlanRequest{Name: &name, Items: &items}, "coordinator-1")

	assert.NoError(t, err)
	assert.Equal(t, "Plan nuevo", plan.Name)
	assert.Len(t, plan.Items, 2)
	assert.Equal(t, 100, plan.TotalWeight)
	assert.NotEqual(t, "tpl-a", plan.Items[0].ID)
}
