package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"gorm.io/gorm"
)

type GradePostgreSQL struct {
	db *gorm.DB
}

func NewGradePostgreSQL(db *gorm.DB) repositories.GradeRepository {
	return &GradePostgreSQL{db: db}
}

func (g *GradePostgreSQL) Create(ctx context.Context, grade *models.Grade) error {
	if err := g.db.WithContext(ctx).Create(grade).Error; err != nil {
		return fmt.Errorf("failed to create grade: %w", err)
	}
	return nil
}

func (g *GradePostgreSQL) Update(ctx context.Context, grade *models.Grade) error {
	grade.UpdatedAt = time.Now()
	if err := g.db.WithContext(ctx).Save(grade).Error; err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}
	return nil
}

func (g *GradePostgreSQL) GetByID(ctx context.Context, id string) (*models.Grade, error) {
	var grade models.Grade
	if err := g.db.WithContext(ctx).First(&grade, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

func (g *GradePostgreSQL) GetByStudentScope(ctx context.Context, studentID, sectionID, periodID string) ([]models.Grade, error) {
	var grades []models.Grade
	err := g.db.WithContext(ctx).
		Where("student_id = ? AND course_section_id = ? AND period_id = ?", studentID, sectionID, periodID).
		Order("created_at ASC").
		Find(&grades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get grades for student scope: %w", err)
	}
	return grades, nil
}

func (g *GradePostgreSQL) GetBySectionPeriod(ctx context.Context, sectionID, periodID string) ([]models.Grade, error) {
	var grades []models.Grade
	err := g.db.WithContext(ctx).
		Where("course_section_id = ? AND period_id = ?", sectionID, periodID).
		Order("student_id ASC, created_at ASC").
		Find(&grades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get grades for section period: %w", err)
	}
	return grades, nil
}

func (g *GradePostgreSQL) GetByItemAndStudent(ctx context.Context, itemID, studentID string) (*models.Grade, error) {
	var grade models.Grade
	err := g.db.WithContext(ctx).
		First(&grade, "evaluation_item_id = ? AND student_id = ?", itemID, studentID).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}
