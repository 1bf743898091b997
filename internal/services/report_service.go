package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dcampus/evaluation-service/internal/cache"
	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/dcampus/evaluation-service/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const statsCacheTTL = 5 * time.Minute

// ReportService produces the read-side artifacts: institution dashboard
// counters and the gradebook export.
type ReportService interface {
	InstitutionStats(ctx context.Context, institutionID string) (*repositories.InstitutionStats, error)
	// ExportGradebook renders the section+period gradebook as an xlsx file:
	// one row per enrolled student, one column per plan item, then the
	// weighted average and pass/fail columns.
	ExportGradebook(ctx context.Context, sectionID, periodID string) ([]byte, string, error)
}

type reportService struct {
	repo    repositories.Repository
	logger  *slog.Logger
	grading GradingService
	cache   cache.CacheService
}

func NewReportService(repo repositories.Repository, logger *slog.Logger, grading GradingService, c cache.CacheService) ReportService {
	return &reportService{
		repo:    repo,
		logger:  logger,
		grading: grading,
		cache:   c,
	}
}

func (s *reportService) InstitutionStats(ctx context.Context, institutionID string) (*repositories.InstitutionStats, error) {
	key := cache.InstitutionStatsKey(institutionID)

	var cached repositories.InstitutionStats
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("stats cache read failed", "key", key, "error", err)
	}

	if _, err := s.repo.Institution().GetByID(ctx, institutionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("failed to get institution: %w", err)
	}

	stats, err := s.repo.Institution().GetStats(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute institution stats: %w", err)
	}

	if err := s.cache.Set(ctx, key, stats, statsCacheTTL); err != nil {
		s.logger.Warn("stats cache write failed", "key", key, "error", err)
	}

	return stats, nil
}

func (s *reportService) ExportGradebook(ctx context.Context, sectionID, periodID string) ([]byte, string, error) {
	s.logger.Info("Exporting gradebook", "section_id", sectionID, "period_id", periodID)

	plan, err := s.repo.Plan().GetBySectionAndPeriod(ctx, sectionID, periodID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, "", ErrPlanNotFound
		}
		return nil, "", fmt.Errorf("failed to get plan: %w", err)
	}

	gradebook, err := s.grading.SectionGradebook(ctx, sectionID, periodID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Gradebook"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Header row: student column, one column per item (title + weight), then
	// the aggregate columns.
	headers := []string{"Student"}
	for i := range plan.Items {
		item := &plan.Items[i]
		title := item.Title
		if title == "" {
			title = string(item.Type)
		}
		headers = append(headers, fmt.Sprintf("%s (%d%%)", title, item.Weight))
	}
	headers = append(headers, "Weighted Average", "Passing")

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to compute cell name: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, row := range gradebook.Rows {
		gradeByItem := make(map[string]*models.Grade, len(row.Grades))
		for i := range row.Grades {
			gradeByItem[row.Grades[i].EvaluationItemID] = &row.Grades[i]
		}

		values := []interface{}{row.StudentName}
		for i := range plan.Items {
			if g, ok := gradeByItem[plan.Items[i].ID]; ok {
				values = append(values, fmt.Sprintf("%g/%g", g.Score, g.MaxScore))
			} else {
				values = append(values, "")
			}
		}
		values = append(values, row.Average)
		if row.Passing {
			values = append(values, "yes")
		} else {
			values = append(values, "no")
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIndex+2)
			if err != nil {
				return nil, "", fmt.Errorf("failed to compute cell name: %w", err)
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("gradebook_%s_%s.xlsx", sectionID, periodID)
	s.logger.Info("Gradebook exported", "section_id", sectionID, "rows", len(gradebook.Rows))
	return buf.Bytes(), filename, nil
}
