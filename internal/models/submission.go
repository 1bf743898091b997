package models

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "pending"
	SubmissionGraded  SubmissionStatus = "graded"
)

type LinkProvider string

const (
	LinkDrive    LinkProvider = "drive"
	LinkMega     LinkProvider = "mega"
	LinkExternal LinkProvider = "external"
)

// Submission is a student's delivery for one evaluation item. It starts
// Pending and moves to Graded exactly once a grade is assigned; there is no
// transition back. Re-grading overwrites grade, feedback and graded-at while
// the submission stays Graded.
type Submission struct {
	ID               string           `json:"id" gorm:"primaryKey;size:36"`
	EvaluationItemID string           `json:"evaluation_item_id" gorm:"not null;index;size:36"`
	StudentID        string           `json:"student_id" gorm:"not null;index;size:36"`
	StudentName      string           `json:"student_name" gorm:"size:200"`
	CourseSectionID  string           `json:"course_section_id" gorm:"not null;index;size:36"`
	LinkURL          string           `json:"link_url" gorm:"not null;size:2048" validate:"required,url"`
	LinkProvider     LinkProvider     `json:"link_provider" gorm:"not null;size:20" validate:"required,link_provider"`
	Comment          string           `json:"comment" gorm:"type:text" validate:"max=1000"`
	Status           SubmissionStatus `json:"status" gorm:"default:pending;index"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	Grade            *float64         `json:"grade,omitempty"`
	GradedAt         *time.Time       `json:"graded_at,omitempty"`
	Feedback         *string          `json:"feedback,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

// IsGraded reports whether a grade has been assigned.
func (s *Submission) IsGraded() bool {
	return s.Status == SubmissionGraded
}
