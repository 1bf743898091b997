package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/dcampus/evaluation-service/internal/models"
	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type SubmissionFilters struct {
	Status    *models.SubmissionStatus `json:"status"`
	StudentID *string                  `json:"student_id"`
	DateFrom  *time.Time               `json:"date_from"`
	DateTo    *time.Time               `json:"date_to"`
	Limit     int                      `json:"limit"`
	Offset    int                      `json:"offset"`
}

type SectionFilters struct {
	Status    *models.SectionStatus `json:"status"`
	TeacherID *string               `json:"teacher_id"`
	SubjectID *string               `json:"subject_id"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
}

type SessionFilters struct {
	Status   *models.LiveSessionStatus `json:"status"`
	DateFrom *time.Time                `json:"date_from"`
	DateTo   *time.Time                `json:"date_to"`
	Limit    int                       `json:"limit"`
	Offset   int                       `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type InstitutionStats struct {
	CareersCount     int `json:"careers_count"`
	SubjectsCount    int `json:"subjects_count"`
	SectionsCount    int `json:"sections_count"`
	StudentsCount    int `json:"students_count"`
	TeachersCount    int `json:"teachers_count"`
	EnrollmentsCount int `json:"enrollments_count"`
	SubmissionsCount int `json:"submissions_count"`
	// Percentage of submissions already graded, rounded to the nearest
	// integer; 0 when there are no submissions.
	SubmissionRate int `json:"submission_rate"`
}

// ===== REPOSITORY INTERFACES =====

type InstitutionRepository interface {
	Create(ctx context.Context, institution *models.Institution) error
	GetByID(ctx context.Context, id string) (*models.Institution, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Institution, error)
	List(ctx context.Context) ([]*models.Institution, error)
	GetStats(ctx context.Context, id string) (*InstitutionStats, error)
}

type SectionRepository interface {
	// Create persists the section together with its per-period plans in one
	// transaction.
	Create(ctx context.Context, section *models.CourseSection) error
	GetByID(ctx context.Context, id string) (*models.CourseSection, error)
	// GetByIDWithPlans preloads the section's plans and their ordered items.
	GetByIDWithPlans(ctx context.Context, id string) (*models.CourseSection, error)
	Update(ctx context.Context, section *models.CourseSection) error
	// Delete removes the section and, via its plans, the plans' items.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, institutionID string, filters SectionFilters) ([]*models.CourseSection, int64, error)
}

type EvaluationPlanRepository interface {
	Create(ctx context.Context, plan *models.EvaluationPlan) error
	// GetByID loads the plan with its items in insertion order.
	GetByID(ctx context.Context, id string) (*models.EvaluationPlan, error)
	GetBySection(ctx context.Context, sectionID string) ([]*models.EvaluationPlan, error)
	GetBySectionAndPeriod(ctx context.Context, sectionID, periodID string) (*models.EvaluationPlan, error)
	// Save writes the plan row and reconciles evaluation_items with
	// plan.Items: rows are upserted and rows absent from the list are
	// deleted. plan.Items is authoritative.
	Save(ctx context.Context, plan *models.EvaluationPlan) error
}

type BasePlanRepository interface {
	Create(ctx context.Context, plan *models.BaseEvaluationPlan) error
	GetByID(ctx context.Context, id string) (*models.BaseEvaluationPlan, error)
	GetBySubject(ctx context.Context, subjectID string) ([]*models.BaseEvaluationPlan, error)
	GetByInstitution(ctx context.Context, institutionID string) ([]*models.BaseEvaluationPlan, error)
	Save(ctx context.Context, plan *models.BaseEvaluationPlan) error
	Delete(ctx context.Context, id string) error
}

type GradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id string) (*models.Grade, error)
	// GetByStudentScope returns the grades of one (student, section, period)
	// triple, the exact slice the aggregator contract expects.
	GetByStudentScope(ctx context.Context, studentID, sectionID, periodID string) ([]models.Grade, error)
	GetBySectionPeriod(ctx context.Context, sectionID, periodID string) ([]models.Grade, error)
	// GetByItemAndStudent finds an existing grade for re-grade overwrites.
	GetByItemAndStudent(ctx context.Context, itemID, studentID string) (*models.Grade, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	Update(ctx context.Context, submission *models.Submission) error
	GetByItem(ctx context.Context, itemID string, filters SubmissionFilters) ([]*models.Submission, int64, error)
	GetBySection(ctx context.Context, sectionID string, filters SubmissionFilters) ([]*models.Submission, int64, error)
	GetByStudent(ctx context.Context, studentID string, filters SubmissionFilters) ([]*models.Submission, int64, error)
	ExistsForItemAndStudent(ctx context.Context, itemID, studentID string) (bool, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetActiveBySection(ctx context.Context, sectionID string) ([]*models.Enrollment, error)
	GetByStudent(ctx context.Context, studentID string) ([]*models.Enrollment, error)
	UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.UserProfile) error
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	GetByInstitutionAndRole(ctx context.Context, institutionID string, role models.UserRole) ([]*models.UserProfile, error)
}

type LiveSessionRepository interface {
	Create(ctx context.Context, session *models.LiveSession) error
	GetByID(ctx context.Context, id string) (*models.LiveSession, error)
	Update(ctx context.Context, session *models.LiveSession) error
	GetBySection(ctx context.Context, sectionID string, filters SessionFilters) ([]*models.LiveSession, int64, error)
	GetAttendance(ctx context.Context, sessionID string) ([]*models.Attendance, error)
	GetAttendanceByStudent(ctx context.Context, sessionID, studentID string) (*models.Attendance, error)
	SaveAttendance(ctx context.Context, attendance *models.Attendance) error
}

// Repository aggregates entity repositories behind one injection point, so
// services never reach for ambient storage.
type Repository interface {
	Institution() InstitutionRepository
	Section() SectionRepository
	Plan() EvaluationPlanRepository
	BasePlan() BasePlanRepository
	Grade() GradeRepository
	Submission() SubmissionRepository
	Enrollment() EnrollmentRepository
	User() UserRepository
	LiveSession() LiveSessionRepository

	// WithTx runs fn against a repository bound to one transaction,
	// committing when fn returns nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(Repository) error) error
}

// IsNotFoundError reports whether err is the storage layer's "no such row".
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
