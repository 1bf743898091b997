package postgres

import (
	"context"

	"github.com/dcampus/evaluation-service/internal/repositories"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB

	institution repositories.InstitutionRepository
	section     repositories.SectionRepository
	plan        repositories.EvaluationPlanRepository
	basePlan    repositories.BasePlanRepository
	grade       repositories.GradeRepository
	submission  repositories.SubmissionRepository
	enrollment  repositories.EnrollmentRepository
	user        repositories.UserRepository
	liveSession repositories.LiveSessionRepository
}

// NewRepository wires all entity repositories over one gorm handle.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &gormRepository{
		db:          db,
		institution: NewInstitutionPostgreSQL(db),
		section:     NewSectionPostgreSQL(db),
		plan:        NewEvaluationPlanPostgreSQL(db),
		basePlan:    NewBasePlanPostgreSQL(db),
		grade:       NewGradePostgreSQL(db),
		submission:  NewSubmissionPostgreSQL(db),
		enrollment:  NewEnrollmentPostgreSQL(db),
		user:        NewUserPostgreSQL(db),
		liveSession: NewLiveSessionPostgreSQL(db),
	}
}

func (r *gormRepository) Institution() repositories.InstitutionRepository { return r.institution }
func (r *gormRepository) Section() repositories.SectionRepository         { return r.section }
func (r *gormRepository) Plan() repositories.EvaluationPlanRepository    { return r.plan }
func (r *gormRepository) BasePlan() repositories.BasePlanRepository      { return r.basePlan }
func (r *gormRepository) Grade() repositories.GradeRepository            { return r.grade }
func (r *gormRepository) Submission() repositories.SubmissionRepository  { return r.submission }
func (r *gormRepository) Enrollment() repositories.EnrollmentRepository  { return r.enrollment }
func (r *gormRepository) User() repositories.UserRepository              { return r.user }
func (r *gormRepository) LiveSession() repositories.LiveSessionRepository {
	return r.liveSession
}

func (r *gormRepository) WithTx(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
