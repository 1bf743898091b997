package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BasePlanPostgreSQL struct {
	db *gorm.DB
}

func NewBasePlanPostgreSQL(db *gorm.DB) repositories.BasePlanRepository {
	return &BasePlanPostgreSQL{db: db}
}

func (b *BasePlanPostgreSQL) Create(ctx context.Context, plan *models.BaseEvaluationPlan) error {
	if err := b.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create base plan: %w", err)
	}
	return nil
}

func (b *BasePlanPostgreSQL) GetByID(ctx context.Context, id string) (*models.BaseEvaluationPlan, error) {
	var plan models.BaseEvaluationPlan
	err := b.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (b *BasePlanPostgreSQL) GetBySubject(ctx context.Context, subjectID string) ([]*models.BaseEvaluationPlan, error) {
	var plans []*models.BaseEvaluationPlan
	err := b.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("subject_id = ?", subjectID).
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get base plans for subject: %w", err)
	}
	return plans, nil
}

func (b *BasePlanPostgreSQL) GetByInstitution(ctx context.Context, institutionID string) ([]*models.BaseEvaluationPlan, error) {
	var plans []*models.BaseEvaluationPlan
	err := b.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("institution_id = ?", institutionID).
		Order("name ASC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get base plans for institution: %w", err)
	}
	return plans, nil
}

func (b *BasePlanPostgreSQL) Save(ctx context.Context, plan *models.BaseEvaluationPlan) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan.UpdatedAt = time.Now()
		if err := tx.Omit(clause.Associations).Save(plan).Error; err != nil {
			return fmt.Errorf("failed to save base plan: %w", err)
		}

		keep := make([]string, 0, len(plan.Items))
		for i := range plan.Items {
			item := &plan.Items[i]
			item.BasePlanID = plan.ID
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(item).Error; err != nil {
				return fmt.Errorf("failed to save base plan item: %w", err)
			}
			keep = append(keep, item.ID)
		}

		stale := tx.Where("base_plan_id = ?", plan.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&models.BasePlanItem{}).Error; err != nil {
			return fmt.Errorf("failed to prune removed base plan items: %w", err)
		}

		return nil
	})
}

func (b *BasePlanPostgreSQL) Delete(ctx context.Context, id string) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("base_plan_id = ?", id).Delete(&models.BasePlanItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete base plan items: %w", err)
		}
		if err := tx.Delete(&models.BaseEvaluationPlan{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete base plan: %w", err)
		}
		return nil
	})
}
