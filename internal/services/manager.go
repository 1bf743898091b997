package services

import (
	"log/slog"

	"github.com/dcampus/evaluation-service/internal/cache"
	"github.com/dcampus/evaluation-service/internal/events"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/dcampus/evaluation-service/internal/validator"
)

// Dependencies bundles everything the services need; main wires it once.
type Dependencies struct {
	Repo             repositories.Repository
	Logger           *slog.Logger
	Validator        *validator.Validator
	Publisher        events.EventPublisher
	Cache            cache.CacheService
	NewID            utils.IDGenerator
	PassingThreshold float64
}

// ServiceManager aggregates all domain services behind one handle.
type ServiceManager struct {
	Plan       PlanService
	BasePlan   BasePlanService
	Grading    GradingService
	Submission SubmissionService
	Section    SectionService
	Report     ReportService
	Session    SessionService
}

func NewServiceManager(deps Dependencies) *ServiceManager {
	if deps.NewID == nil {
		deps.NewID = utils.NewIDGenerator()
	}
	if deps.Cache == nil {
		deps.Cache = cache.NewNoopCache()
	}

	basePlan := NewBasePlanService(deps.Repo, deps.Logger, deps.Validator, deps.Publisher, deps.NewID)
	grading := NewGradingService(deps.Repo, deps.Logger, deps.Validator, deps.Publisher, deps.Cache, deps.NewID, deps.PassingThreshold)

	return &ServiceManager{
		Plan:       NewPlanService(deps.Repo, deps.Logger, deps.Validator, deps.Publisher, deps.NewID),
		BasePlan:   basePlan,
		Grading:    grading,
		Submission: NewSubmissionService(deps.Repo, deps.Logger, deps.Validator, deps.Publisher, deps.Cache, deps.NewID),
		Section:    NewSectionService(deps.Repo, deps.Logger, deps.Validator, basePlan, deps.NewID),
		Report:     NewReportService(deps.Repo, deps.Logger, grading, deps.Cache),
		Session:    NewSessionService(deps.Repo, deps.Logger, deps.Validator, deps.Publisher, deps.NewID),
	}
}
