package pkg

import (
	"fmt"

	"github.com/dcampus/evaluation-service/internal/config"
	"github.com/dcampus/evaluation-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	} else {
		logLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate keeps the schema in sync with the model set. Join tables and
// owned rows (items, periods, attendance) migrate through their parents'
// associations, but are listed explicitly so fresh databases come up complete.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Institution{},
		&models.AcademicPeriod{},
		&models.Career{},
		&models.Subject{},
		&models.Curriculum{},
		&models.CurriculumEntry{},
		&models.CourseModule{},
		&models.Lesson{},
		&models.UserProfile{},
		&models.CourseSection{},
		&models.Enrollment{},
		&models.BaseEvaluationPlan{},
		&models.BasePlanItem{},
		&models.EvaluationPlan{},
		&models.EvaluationItem{},
		&models.Grade{},
		&models.Submission{},
		&models.LiveSession{},
		&models.Attendance{},
	)
}
