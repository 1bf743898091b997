package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"gorm.io/gorm"
)

type SectionPostgreSQL struct {
	db *gorm.DB
}

func NewSectionPostgreSQL(db *gorm.DB) repositories.SectionRepository {
	return &SectionPostgreSQL{db: db}
}

// Create persists the section together with any attached plans and items in
// one transaction (gorm walks the associations).
func (s *SectionPostgreSQL) Create(ctx context.Context, section *models.CourseSection) error {
	if err := s.db.WithContext(ctx).Create(section).Error; err != nil {
		return fmt.Errorf("failed to create course section: %w", err)
	}
	return nil
}

func (s *SectionPostgreSQL) GetByID(ctx context.Context, id string) (*models.CourseSection, error) {
	var section models.CourseSection
	err := s.db.WithContext(ctx).First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (s *SectionPostgreSQL) GetByIDWithPlans(ctx context.Context, id string) (*models.CourseSection, error) {
	var section models.CourseSection
	err := s.db.WithContext(ctx).
		Preload("EvaluationPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("period_id ASC")
		}).
		Preload("EvaluationPlans.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (s *SectionPostgreSQL) Update(ctx context.Context, section *models.CourseSection) error {
	section.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Omit("EvaluationPlans", "Modules").Save(section).Error; err != nil {
		return fmt.Errorf("failed to update course section: %w", err)
	}
	return nil
}

// Delete removes the section with its plans, items and modules. Grades and
// submissions are kept; their section scope simply dangles, matching the
// "plans deleted only with the owning section" lifecycle.
func (s *SectionPostgreSQL) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planIDs []string
		if err := tx.Model(&models.EvaluationPlan{}).
			Where("course_section_id = ?", id).
			Pluck("id", &planIDs).Error; err != nil {
			return fmt.Errorf("failed to collect section plans: %w", err)
		}

		if len(planIDs) > 0 {
			if err := tx.Where("plan_id IN ?", planIDs).Delete(&models.EvaluationItem{}).Error; err != nil {
				return fmt.Errorf("failed to delete plan items: %w", err)
			}
			if err := tx.Where("id IN ?", planIDs).Delete(&models.EvaluationPlan{}).Error; err != nil {
				return fmt.Errorf("failed to delete plans: %w", err)
			}
		}

		if err := tx.Delete(&models.CourseSection{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete course section: %w", err)
		}
		return nil
	})
}

func (s *SectionPostgreSQL) List(ctx context.Context, institutionID string, filters repositories.SectionFilters) ([]*models.CourseSection, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.CourseSection{}).
		Where("institution_id = ?", institutionID)

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.TeacherID != nil {
		query = query.Where("teacher_id = ?", *filters.TeacherID)
	}
	if filters.SubjectID != nil {
		query = query.Where("subject_id = ?", *filters.SubjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sections: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var sections []*models.CourseSection
	if err := query.Order("created_at DESC").Find(&sections).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list sections: %w", err)
	}

	return sections, total, nil
}
