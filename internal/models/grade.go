package models

import (
	"time"
)

// Grade is one scored evaluation item for one student in one period.
//
// Weight is a snapshot of the evaluation item's weight at grading time, not a
// live lookup into the plan. Editing a plan after grades exist must not move
// historical averages; re-grading refreshes the snapshot.
type Grade struct {
	ID                  string  `json:"id" gorm:"primaryKey;size:36"`
	StudentID           string  `json:"student_id" gorm:"not null;index:idx_grades_scope;size:36"`
	StudentName         string  `json:"student_name" gorm:"size:200"`
	CourseSectionID     string  `json:"course_section_id" gorm:"not null;index:idx_grades_scope;size:36"`
	PeriodID            string  `json:"period_id" gorm:"not null;index:idx_grades_scope;size:36"`
	EvaluationItemID    string  `json:"evaluation_item_id" gorm:"not null;index;size:36"`
	EvaluationItemTitle string  `json:"evaluation_item_title" gorm:"size:200"`
	Score               float64 `json:"score" gorm:"not null" validate:"min=0"`
	MaxScore            float64 `json:"max_score" gorm:"not null" validate:"min=0"`
	Weight              int     `json:"weight" gorm:"not null" validate:"min=0,max=100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Grade) TableName() string {
	return "grades"
}
