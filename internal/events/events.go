package events

import (
	"time"
)

// EventType represents different types of domain events
type EventType string

const (
	// Plan events
	EventPlanUpdated EventType = "plan.updated"

	// Submission events
	EventSubmissionCreated EventType = "submission.created"
	EventSubmissionGraded  EventType = "submission.graded"

	// Grading events
	EventGradeRecorded EventType = "grade.recorded"

	// Session events
	EventSessionStarted  EventType = "session.started"
	EventSessionFinished EventType = "session.finished"
)

// Event is the base structure for all published events
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Plan event payloads

type PlanUpdatedEvent struct {
	PlanID          string `json:"plan_id"`
	CourseSectionID string `json:"course_section_id"`
	PeriodID        string `json:"period_id"`
	TotalWeight     int    `json:"total_weight"`
	WeightStatus    string `json:"weight_status"`
	ChangedBy       string `json:"changed_by"`
	Change          string `json:"change"` // item_added, item_updated, item_removed, plan_copied
}

// Submission event payloads

type SubmissionCreatedEvent struct {
	SubmissionID     string    `json:"submission_id"`
	EvaluationItemID string    `json:"evaluation_item_id"`
	CourseSectionID  string    `json:"course_section_id"`
	StudentID        string    `json:"student_id"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

type SubmissionGradedEvent struct {
	SubmissionID     string    `json:"submission_id"`
	EvaluationItemID string    `json:"evaluation_item_id"`
	StudentID        string    `json:"student_id"`
	Grade            float64   `json:"grade"`
	GradedBy         string    `json:"graded_by"`
	GradedAt         time.Time `json:"graded_at"`
}

// Grading event payloads

type GradeRecordedEvent struct {
	GradeID          string  `json:"grade_id"`
	StudentID        string  `json:"student_id"`
	CourseSectionID  string  `json:"course_section_id"`
	PeriodID         string  `json:"period_id"`
	EvaluationItemID string  `json:"evaluation_item_id"`
	Score            float64 `json:"score"`
	MaxScore         float64 `json:"max_score"`
	Weight           int     `json:"weight"`
	Regrade          bool    `json:"regrade"`
}

// Session event payloads

type SessionStatusEvent struct {
	SessionID       string `json:"session_id"`
	CourseSectionID string `json:"course_section_id"`
	Status          string `json:"status"`
}
