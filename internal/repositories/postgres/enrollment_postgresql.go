package postgres

import (
	"context"
	"fmt"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"gorm.io/gorm"
)

type EnrollmentPostgreSQL struct {
	db *gorm.DB
}

func NewEnrollmentPostgreSQL(db *gorm.DB) repositories.EnrollmentRepository {
	return &EnrollmentPostgreSQL{db: db}
}

func (e *EnrollmentPostgreSQL) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if err := e.db.WithContext(ctx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (e *EnrollmentPostgreSQL) GetActiveBySection(ctx context.Context, sectionID string) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	err := e.db.WithContext(ctx).
		Where("course_section_id = ? AND status = ?", sectionID, models.EnrollmentActive).
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get section enrollments: %w", err)
	}
	return enrollments, nil
}

func (e *EnrollmentPostgreSQL) GetByStudent(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	err := e.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get student enrollments: %w", err)
	}
	return enrollments, nil
}

func (e *EnrollmentPostgreSQL) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) error {
	result := e.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update enrollment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
