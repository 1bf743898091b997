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

type EvaluationPlanPostgreSQL struct {
	db *gorm.DB
}

func NewEvaluationPlanPostgreSQL(db *gorm.DB) repositories.EvaluationPlanRepository {
	return &EvaluationPlanPostgreSQL{db: db}
}

func (p *EvaluationPlanPostgreSQL) Create(ctx context.Context, plan *models.EvaluationPlan) error {
	if err := p.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create evaluation plan: %w", err)
	}
	return nil
}

// GetByID loads the plan with its items in insertion order.
func (p *EvaluationPlanPostgreSQL) GetByID(ctx context.Context, id string) (*models.EvaluationPlan, error) {
	var plan models.EvaluationPlan
	err := p.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (p *EvaluationPlanPostgreSQL) GetBySection(ctx context.Context, sectionID string) ([]*models.EvaluationPlan, error) {
	var plans []*models.EvaluationPlan
	err := p.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("course_section_id = ?", sectionID).
		Order("period_id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get plans for section: %w", err)
	}
	return plans, nil
}

func (p *EvaluationPlanPostgreSQL) GetBySectionAndPeriod(ctx context.Context, sectionID, periodID string) (*models.EvaluationPlan, error) {
	var plan models.EvaluationPlan
	err := p.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&plan, "course_section_id = ? AND period_id = ?", sectionID, periodID).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Save reconciles the plan row and its items with plan.Items as the
// authoritative list: items are upserted by primary key and rows no longer
// present are deleted.
func (p *EvaluationPlanPostgreSQL) Save(ctx context.Context, plan *models.EvaluationPlan) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan.UpdatedAt = time.Now()
		if err := tx.Omit(clause.Associations).Save(plan).Error; err != nil {
			return fmt.Errorf("failed to save evaluation plan: %w", err)
		}

		keep := make([]string, 0, len(plan.Items))
		for i := range plan.Items {
			item := &plan.Items[i]
			item.PlanID = plan.ID
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(item).Error; err != nil {
				return fmt.Errorf("failed to save evaluation item: %w", err)
			}
			keep = append(keep, item.ID)
		}

		stale := tx.Where("plan_id = ?", plan.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&models.EvaluationItem{}).Error; err != nil {
			return fmt.Errorf("failed to prune removed items: %w", err)
		}

		return nil
	})
}
