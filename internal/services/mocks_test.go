package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/dcampus/evaluation-service/internal/utils"
	"github.com/stretchr/testify/mock"
)

// ===== MOCK REPOSITORIES =====

type MockInstitutionRepository struct {
	mock.Mock
}

func (m *MockInstitutionRepository) Create(ctx context.Context, institution *models.Institution) error {
	args := m.Called(ctx, institution)
	return args.Error(0)
}

func (m *MockInstitutionRepository) GetByID(ctx context.Context, id string) (*models.Institution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Institution, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) List(ctx context.Context) ([]*models.Institution, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) GetStats(ctx context.Context, id string) (*repositories.InstitutionStats, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.InstitutionStats), args.Error(1)
}

type MockSectionRepository struct {
	mock.Mock
}

func (m *MockSectionRepository) Create(ctx context.Context, section *models.CourseSection) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockSectionRepository) GetByID(ctx context.Context, id string) (*models.CourseSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CourseSection), args.Error(1)
}

func (m *MockSectionRepository) GetByIDWithPlans(ctx context.Context, id string) (*models.CourseSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CourseSection), args.Error(1)
}

func (m *MockSectionRepository) Update(ctx context.Context, section *models.CourseSection) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockSectionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSectionRepository) List(ctx context.Context, institutionID string, filters repositories.SectionFilters) ([]*models.CourseSection, int64, error) {
	args := m.Called(ctx, institutionID, filters)
	return args.Get(0).([]*models.CourseSection), args.Get(1).(int64), args.Error(2)
}

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *models.EvaluationPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetByID(ctx context.Context, id string) (*models.EvaluationPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EvaluationPlan), args.Error(1)
}

func (m *MockPlanRepository) GetBySection(ctx context.Context, sectionID string) ([]*models.EvaluationPlan, error) {
	args := m.Called(ctx, sectionID)
	return args.Get(0).([]*models.EvaluationPlan), args.Error(1)
}

func (m *MockPlanRepository) GetBySectionAndPeriod(ctx context.Context, sectionID, periodID string) (*models.EvaluationPlan, error) {
	args := m.Called(ctx, sectionID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EvaluationPlan), args.Error(1)
}

func (m *MockPlanRepository) Save(ctx context.Context, plan *models.EvaluationPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

type MockBasePlanRepository struct {
	mock.Mock
}

func (m *MockBasePlanRepository) Create(ctx context.Context, plan *models.BaseEvaluationPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockBasePlanRepository) GetByID(ctx context.Context, id string) (*models.BaseEvaluationPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BaseEvaluationPlan), args.Error(1)
}

func (m *MockBasePlanRepository) GetBySubject(ctx context.Context, subjectID string) ([]*models.BaseEvaluationPlan, error) {
	args := m.Called(ctx, subjectID)
	return args.Get(0).([]*models.BaseEvaluationPlan), args.Error(1)
}

func (m *MockBasePlanRepository) GetByInstitution(ctx context.Context, institutionID string) ([]*models.BaseEvaluationPlan, error) {
	args := m.Called(ctx, institutionID)
	return args.Get(0).([]*models.BaseEvaluationPlan), args.Error(1)
}

func (m *MockBasePlanRepository) Save(ctx context.Context, plan *models.BaseEvaluationPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockBasePlanRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGradeRepository struct {
	mock.Mock
}

func (m *MockGradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	args := m.Called(ctx, grade)
	return args.Error(0)
}

func (m *MockGradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	args := m.Called(ctx, grade)
	return args.Error(0)
}

func (m *MockGradeRepository) GetByID(ctx context.Context, id string) (*models.Grade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Grade), args.Error(1)
}

func (m *MockGradeRepository) GetByStudentScope(ctx context.Context, studentID, sectionID, periodID string) ([]models.Grade, error) {
	args := m.Called(ctx, studentID, sectionID, periodID)
	return args.Get(0).([]models.Grade), args.Error(1)
}

func (m *MockGradeRepository) GetBySectionPeriod(ctx context.Context, sectionID, periodID string) ([]models.Grade, error) {
	args := m.Called(ctx, sectionID, periodID)
	return args.Get(0).([]models.Grade), args.Error(1)
}

func (m *MockGradeRepository) GetByItemAndStudent(ctx context.Context, itemID, studentID string) (*models.Grade, error) {
	args := m.Called(ctx, itemID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Grade), args.Error(1)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) Update(ctx context.Context, submission *models.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetByItem(ctx context.Context, itemID string, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	args := m.Called(ctx, itemID, filters)
	return args.Get(0).([]*models.Submission), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionRepository) GetBySection(ctx context.Context, sectionID string, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	args := m.Called(ctx, sectionID, filters)
	return args.Get(0).([]*models.Submission), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionRepository) GetByStudent(ctx context.Context, studentID string, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	args := m.Called(ctx, studentID, filters)
	return args.Get(0).([]*models.Submission), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionRepository) ExistsForItemAndStudent(ctx context.Context, itemID, studentID string) (bool, error) {
	args := m.Called(ctx, itemID, studentID)
	return args.Bool(0), args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) GetActiveBySection(ctx context.Context, sectionID string) ([]*models.Enrollment, error) {
	args := m.Called(ctx, sectionID)
	return args.Get(0).([]*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) GetByStudent(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]*models.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetByInstitutionAndRole(ctx context.Context, institutionID string, role models.UserRole) ([]*models.UserProfile, error) {
	args := m.Called(ctx, institutionID, role)
	return args.Get(0).([]*models.UserProfile), args.Error(1)
}

type MockLiveSessionRepository struct {
	mock.Mock
}

func (m *MockLiveSessionRepository) Create(ctx context.Context, session *models.LiveSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockLiveSessionRepository) GetByID(ctx context.Context, id string) (*models.LiveSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LiveSession), args.Error(1)
}

func (m *MockLiveSessionRepository) Update(ctx context.Context, session *models.LiveSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockLiveSessionRepository) GetBySection(ctx context.Context, sectionID string, filters repositories.SessionFilters) ([]*models.LiveSession, int64, error) {
	args := m.Called(ctx, sectionID, filters)
	return args.Get(0).([]*models.LiveSession), args.Get(1).(int64), args.Error(2)
}

func (m *MockLiveSessionRepository) GetAttendance(ctx context.Context, sessionID string) ([]*models.Attendance, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]*models.Attendance), args.Error(1)
}

func (m *MockLiveSessionRepository) GetAttendanceByStudent(ctx context.Context, sessionID, studentID string) (*models.Attendance, error) {
	args := m.Called(ctx, sessionID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *MockLiveSessionRepository) SaveAttendance(ctx context.Context, attendance *models.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

// ===== AGGREGATE MOCK =====

// MockRepository satisfies repositories.Repository with per-entity mocks.
// WithTx runs the callback against the same mocks, which is enough for
// asserting what got written.
type MockRepository struct {
	institution *MockInstitutionRepository
	section     *MockSectionRepository
	plan        *MockPlanRepository
	basePlan    *MockBasePlanRepository
	grade       *MockGradeRepository
	submission  *MockSubmissionRepository
	enrollment  *MockEnrollmentRepository
	user        *MockUserRepository
	liveSession *MockLiveSessionRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		institution: new(MockInstitutionRepository),
		section:     new(MockSectionRepository),
		plan:        new(MockPlanRepository),
		basePlan:    new(MockBasePlanRepository),
		grade:       new(MockGradeRepository),
		submission:  new(MockSubmissionRepository),
		enrollment:  new(MockEnrollmentRepository),
		user:        new(MockUserRepository),
		liveSession: new(MockLiveSessionRepository),
	}
}

func (m *MockRepository) Institution() repositories.InstitutionRepository { return m.institution }
func (m *MockRepository) Section() repositories.SectionRepository         { return m.section }
func (m *MockRepository) Plan() repositories.EvaluationPlanRepository     { return m.plan }
func (m *MockRepository) BasePlan() repositories.BasePlanRepository       { return m.basePlan }
func (m *MockRepository) Grade() repositories.GradeRepository             { return m.grade }
func (m *MockRepository) Submission() repositories.SubmissionRepository   { return m.submission }
func (m *MockRepository) Enrollment() repositories.EnrollmentRepository   { return m.enrollment }
func (m *MockRepository) User() repositories.UserRepository               { return m.user }
func (m *MockRepository) LiveSession() repositories.LiveSessionRepository { return m.liveSession }

func (m *MockRepository) WithTx(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

// ===== TEST HELPERS =====

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequentialIDs returns a deterministic id generator: id-1, id-2, ...
func sequentialIDs() utils.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
