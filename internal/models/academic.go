package models

import (
	"time"
)

type PeriodType string

const (
	PeriodTrimester    PeriodType = "trimestre"
	PeriodBimester     PeriodType = "bimestre"
	PeriodSemester     PeriodType = "semestre"
	PeriodQuadrimester PeriodType = "cuatrimestre"
)

// AcademicPeriod is one term within an institution's calendar. Periods are
// created once by institution configuration and never mutated afterwards.
type AcademicPeriod struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	InstitutionID string     `json:"institution_id" gorm:"not null;index;size:36"`
	Name          string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	SortOrder     int        `json:"order" gorm:"column:sort_order;not null"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

type Institution struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	Name         string     `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Subdomain    string     `json:"subdomain" gorm:"not null;size:63;uniqueIndex" validate:"required,hostname_rfc1123"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	PrimaryColor string     `json:"primary_color" gorm:"size:7"`
	AdminID      string     `json:"admin_id" gorm:"size:36"`
	PeriodType   PeriodType `json:"period_type" gorm:"not null;default:trimestre" validate:"omitempty,oneof=trimestre bimestre semestre cuatrimestre"`
	PeriodsCount int        `json:"periods_count" gorm:"not null;default:3" validate:"min=1,max=12"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Periods []AcademicPeriod `json:"periods" gorm:"foreignKey:InstitutionID"`
}

func (Institution) TableName() string {
	return "institutions"
}

func (AcademicPeriod) TableName() string {
	return "academic_periods"
}

// PeriodByID scans the institution's configured periods. Period sets are
// small (2..6 entries), a linear scan is fine.
func (i *Institution) PeriodByID(periodID string) *AcademicPeriod {
	for idx := range i.Periods {
		if i.Periods[idx].ID == periodID {
			return &i.Periods[idx]
		}
	}
	return nil
}
