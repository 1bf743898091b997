package models

import (
	"time"

	"gorm.io/datatypes"
)

type Career struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	InstitutionID string    `json:"institution_id" gorm:"not null;index;size:36"`
	Name          string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Code          string    `json:"code" gorm:"size:20" validate:"max=20"`
	Description   string    `json:"description" gorm:"type:text"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Career) TableName() string {
	return "careers"
}

type Subject struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	CareerID      string    `json:"career_id" gorm:"not null;index;size:36"`
	InstitutionID string    `json:"institution_id" gorm:"not null;index;size:36"`
	Name          string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Code          string    `json:"code" gorm:"size:20" validate:"max=20"`
	Credits       int       `json:"credits" gorm:"default:0" validate:"min=0,max=20"`
	Semester      int       `json:"semester" gorm:"default:1"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Subject) TableName() string {
	return "subjects"
}

// Curriculum is a career's pensum for a given year.
type Curriculum struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	CareerID      string    `json:"career_id" gorm:"not null;index;size:36"`
	InstitutionID string    `json:"institution_id" gorm:"not null;index;size:36"`
	Name          string    `json:"name" gorm:"not null;size:200"`
	Year          int       `json:"year" gorm:"not null"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Entries []CurriculumEntry `json:"entries" gorm:"foreignKey:CurriculumID"`
}

func (Curriculum) TableName() string {
	return "curricula"
}

type CurriculumEntry struct {
	ID           string `json:"id" gorm:"primaryKey;size:36"`
	CurriculumID string `json:"curriculum_id" gorm:"not null;index;size:36"`
	SubjectID    string `json:"subject_id" gorm:"not null;index;size:36"`
	Semester     int    `json:"semester" gorm:"not null"`
	IsRequired   bool   `json:"is_required" gorm:"default:true"`

	// Subject ids that must be approved before enrolling, stored as a jsonb
	// array.
	Prerequisites datatypes.JSON `json:"prerequisites" gorm:"type:jsonb"`
}

func (CurriculumEntry) TableName() string {
	return "curriculum_entries"
}
