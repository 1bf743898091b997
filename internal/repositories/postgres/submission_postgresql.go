package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"gorm.io/gorm"
)

type SubmissionPostgreSQL struct {
	db *gorm.DB
}

func NewSubmissionPostgreSQL(db *gorm.DB) repositories.SubmissionRepository {
	return &SubmissionPostgreSQL{db: db}
}

func (s *SubmissionPostgreSQL) Create(ctx context.Context, submission *models.Submission) error {
	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (s *SubmissionPostgreSQL) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (s *SubmissionPostgreSQL) Update(ctx context.Context, submission *models.Submission) error {
	submission.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(submission).Error; err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	return nil
}

func (s *SubmissionPostgreSQL) GetByItem(ctx context.Context, itemID string, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	return s.list(ctx, s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("evaluation_item_id = ?", itemID), filters)
}

func (s *SubmissionPostgreSQL) GetBySection(ctx context.Context, sectionID string, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	return s.list(ctx, s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("course_section_id = ?", sectionID), filters)
}

func (s *SubmissionPostgreSQL) GetByStudent(ctx context.Context, studentID string, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	return s.list(ctx, s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("student_id = ?", studentID), filters)
}

func (s *SubmissionPostgreSQL) ExistsForItemAndStudent(ctx context.Context, itemID, studentID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Submission{}).
		Where("evaluation_item_id = ? AND student_id = ?", itemID, studentID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check submission existence: %w", err)
	}
	return count > 0, nil
}

func (s *SubmissionPostgreSQL) list(ctx context.Context, query *gorm.DB, filters repositories.SubmissionFilters) ([]*models.Submission, int64, error) {
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.StudentID != nil {
		query = query.Where("student_id = ?", *filters.StudentID)
	}
	if filters.DateFrom != nil {
		query = query.Where("submitted_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("submitted_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var submissions []*models.Submission
	if err := query.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, total, nil
}
