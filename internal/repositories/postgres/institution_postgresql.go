package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"gorm.io/gorm"
)

type InstitutionPostgreSQL struct {
	db *gorm.DB
}

func NewInstitutionPostgreSQL(db *gorm.DB) repositories.InstitutionRepository {
	return &InstitutionPostgreSQL{db: db}
}

func (i *InstitutionPostgreSQL) Create(ctx context.Context, institution *models.Institution) error {
	if err := i.db.WithContext(ctx).Create(institution).Error; err != nil {
		return fmt.Errorf("failed to create institution: %w", err)
	}
	return nil
}

func (i *InstitutionPostgreSQL) GetByID(ctx context.Context, id string) (*models.Institution, error) {
	var institution models.Institution
	err := i.db.WithContext(ctx).
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&institution, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

func (i *InstitutionPostgreSQL) GetBySubdomain(ctx context.Context, subdomain string) (*models.Institution, error) {
	var institution models.Institution
	err := i.db.WithContext(ctx).
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&institution, "subdomain = ?", subdomain).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

func (i *InstitutionPostgreSQL) List(ctx context.Context) ([]*models.Institution, error) {
	var institutions []*models.Institution
	err := i.db.WithContext(ctx).
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("name ASC").
		Find(&institutions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list institutions: %w", err)
	}
	return institutions, nil
}

// GetStats aggregates the dashboard counters for one institution.
func (i *InstitutionPostgreSQL) GetStats(ctx context.Context, id string) (*repositories.InstitutionStats, error) {
	db := i.db.WithContext(ctx)
	stats := &repositories.InstitutionStats{}

	counts := []struct {
		model any
		dest  *int
	}{
		{&models.Career{}, &stats.CareersCount},
		{&models.Subject{}, &stats.SubjectsCount},
		{&models.CourseSection{}, &stats.SectionsCount},
	}
	for _, c := range counts {
		var n int64
		if err := db.Model(c.model).Where("institution_id = ?", id).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count institution records: %w", err)
		}
		*c.dest = int(n)
	}

	var n int64
	if err := db.Model(&models.UserProfile{}).
		Where("institution_id = ? AND role = ?", id, models.RoleStudent).
		Count(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	stats.StudentsCount = int(n)

	if err := db.Model(&models.UserProfile{}).
		Where("institution_id = ? AND role = ?", id, models.RoleTeacher).
		Count(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to count teachers: %w", err)
	}
	stats.TeachersCount = int(n)

	sectionIDs := db.Model(&models.CourseSection{}).Select("id").Where("institution_id = ?", id)

	if err := db.Model(&models.Enrollment{}).
		Where("course_section_id IN (?)", sectionIDs).
		Count(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}
	stats.EnrollmentsCount = int(n)

	if err := db.Model(&models.Submission{}).
		Where("course_section_id IN (?)", sectionIDs).
		Count(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}
	stats.SubmissionsCount = int(n)

	if stats.SubmissionsCount > 0 {
		var graded int64
		if err := db.Model(&models.Submission{}).
			Where("course_section_id IN (?) AND status = ?", sectionIDs, models.SubmissionGraded).
			Count(&graded).Error; err != nil {
			return nil, fmt.Errorf("failed to count graded submissions: %w", err)
		}
		stats.SubmissionRate = int(math.Round(float64(graded) / float64(stats.SubmissionsCount) * 100))
	}

	return stats, nil
}
