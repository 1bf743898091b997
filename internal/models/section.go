package models

import (
	"time"
)

type SectionStatus string

const (
	SectionActive   SectionStatus = "active"
	SectionDraft    SectionStatus = "draft"
	SectionArchived SectionStatus = "archived"
)

// CourseSection is one offering of a subject, taught by one teacher, in one
// lead period. A section owns exactly one EvaluationPlan per academic period
// of its institution; the plans are created with the section and deleted only
// with it.
type CourseSection struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	SubjectID      string        `json:"subject_id" gorm:"not null;index;size:36"`
	InstitutionID  string        `json:"institution_id" gorm:"not null;index;size:36"`
	PeriodID       string        `json:"period_id" gorm:"size:36"`
	PeriodName     string        `json:"period_name" gorm:"size:100"`
	TeacherID      string        `json:"teacher_id" gorm:"index;size:36"`
	TeacherName    string        `json:"teacher_name" gorm:"size:200"`
	AccentColor    string        `json:"accent_color" gorm:"size:7"`
	WelcomeMessage string        `json:"welcome_message" gorm:"type:text"`
	Status         SectionStatus `json:"status" gorm:"default:draft;index" validate:"omitempty,section_status"`
	Year           int           `json:"year"`

	// Optional institution-level template this section's plans were seeded
	// from.
	BaseEvaluationPlanID *string `json:"base_evaluation_plan_id,omitempty" gorm:"size:36"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	EvaluationPlans []EvaluationPlan `json:"evaluation_plans" gorm:"foreignKey:CourseSectionID"`
	Modules         []CourseModule   `json:"modules" gorm:"foreignKey:CourseSectionID"`
}

func (CourseSection) TableName() string {
	return "course_sections"
}

// PlanByID returns the section's plan with the given id, or nil when the plan
// does not belong to this section.
func (s *CourseSection) PlanByID(planID string) *EvaluationPlan {
	for i := range s.EvaluationPlans {
		if s.EvaluationPlans[i].ID == planID {
			return &s.EvaluationPlans[i]
		}
	}
	return nil
}

// PlanByPeriod returns the section's plan for the given period, or nil.
func (s *CourseSection) PlanByPeriod(periodID string) *EvaluationPlan {
	for i := range s.EvaluationPlans {
		if s.EvaluationPlans[i].PeriodID == periodID {
			return &s.EvaluationPlans[i]
		}
	}
	return nil
}

type VideoProvider string

const (
	VideoYouTube VideoProvider = "youtube"
	VideoVimeo   VideoProvider = "vimeo"
	VideoNone    VideoProvider = "none"
)

type CourseModule struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	CourseSectionID string    `json:"course_section_id" gorm:"not null;index;size:36"`
	Title           string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	SortOrder       int       `json:"sort_order" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Lessons []Lesson `json:"lessons" gorm:"foreignKey:ModuleID"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

type Lesson struct {
	ID            string        `json:"id" gorm:"primaryKey;size:36"`
	ModuleID      string        `json:"module_id" gorm:"not null;index;size:36"`
	Title         string        `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	ContentText   string        `json:"content_text" gorm:"type:text"`
	VideoProvider VideoProvider `json:"video_provider" gorm:"size:20;default:none" validate:"omitempty,oneof=youtube vimeo none"`
	VideoID       string        `json:"video_id" gorm:"size:100"`
	IsFree        bool          `json:"is_free" gorm:"default:false"`
	SortOrder     int           `json:"sort_order" gorm:"not null"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type EnrollmentStatus string

const (
	EnrollmentActive  EnrollmentStatus = "active"
	EnrollmentDropped EnrollmentStatus = "dropped"
)

type Enrollment struct {
	ID              string           `json:"id" gorm:"primaryKey;size:36"`
	StudentID       string           `json:"student_id" gorm:"not null;index;size:36"`
	StudentName     string           `json:"student_name" gorm:"size:200"`
	StudentEmail    string           `json:"student_email" gorm:"size:254"`
	CourseSectionID string           `json:"course_section_id" gorm:"not null;index;size:36"`
	EnrolledAt      time.Time        `json:"enrolled_at"`
	Status          EnrollmentStatus `json:"status" gorm:"default:active;index" validate:"omitempty,oneof=active dropped"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
