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

type LiveSessionPostgreSQL struct {
	db *gorm.DB
}

func NewLiveSessionPostgreSQL(db *gorm.DB) repositories.LiveSessionRepository {
	return &LiveSessionPostgreSQL{db: db}
}

func (l *LiveSessionPostgreSQL) Create(ctx context.Context, session *models.LiveSession) error {
	if err := l.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create live session: %w", err)
	}
	return nil
}

func (l *LiveSessionPostgreSQL) GetByID(ctx context.Context, id string) (*models.LiveSession, error) {
	var session models.LiveSession
	if err := l.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (l *LiveSessionPostgreSQL) Update(ctx context.Context, session *models.LiveSession) error {
	session.UpdatedAt = time.Now()
	if err := l.db.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("failed to update live session: %w", err)
	}
	return nil
}

func (l *LiveSessionPostgreSQL) GetBySection(ctx context.Context, sectionID string, filters repositories.SessionFilters) ([]*models.LiveSession, int64, error) {
	query := l.db.WithContext(ctx).Model(&models.LiveSession{}).
		Where("course_section_id = ?", sectionID)

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.DateFrom != nil {
		query = query.Where("scheduled_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("scheduled_at <= ?", *filters.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count live sessions: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var sessions []*models.LiveSession
	if err := query.Order("scheduled_at ASC").Find(&sessions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list live sessions: %w", err)
	}

	return sessions, total, nil
}

func (l *LiveSessionPostgreSQL) GetAttendance(ctx context.Context, sessionID string) ([]*models.Attendance, error) {
	var records []*models.Attendance
	err := l.db.WithContext(ctx).
		Where("live_session_id = ?", sessionID).
		Order("student_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return records, nil
}

func (l *LiveSessionPostgreSQL) GetAttendanceByStudent(ctx context.Context, sessionID, studentID string) (*models.Attendance, error) {
	var record models.Attendance
	err := l.db.WithContext(ctx).
		First(&record, "live_session_id = ? AND student_id = ?", sessionID, studentID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (l *LiveSessionPostgreSQL) SaveAttendance(ctx context.Context, attendance *models.Attendance) error {
	err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(attendance).Error
	if err != nil {
		return fmt.Errorf("failed to save attendance: %w", err)
	}
	return nil
}
