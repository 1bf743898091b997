package models

import (
	"time"
)

type SessionPlatform string

const (
	PlatformZoom  SessionPlatform = "zoom"
	PlatformMeet  SessionPlatform = "meet"
	PlatformJitsi SessionPlatform = "jitsi"
)

type LiveSessionStatus string

const (
	SessionScheduled LiveSessionStatus = "scheduled"
	SessionLive      LiveSessionStatus = "live"
	SessionFinished  LiveSessionStatus = "finished"
)

type LiveSession struct {
	ID              string            `json:"id" gorm:"primaryKey;size:36"`
	CourseSectionID string            `json:"course_section_id" gorm:"not null;index;size:36"`
	Title           string            `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Platform        SessionPlatform   `json:"platform" gorm:"not null;size:20" validate:"required,oneof=zoom meet jitsi"`
	MeetingURL      string            `json:"meeting_url" gorm:"size:2048" validate:"omitempty,url"`
	ScheduledAt     time.Time         `json:"scheduled_at"`
	DurationMinutes int               `json:"duration_minutes" gorm:"default:60" validate:"min=5,max=480"`
	Status          LiveSessionStatus `json:"status" gorm:"default:scheduled;index"`
	TeacherID       string            `json:"teacher_id" gorm:"size:36"`
	TeacherName     string            `json:"teacher_name" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LiveSession) TableName() string {
	return "live_sessions"
}

type AttendanceStatus string

const (
	AttendancePending   AttendanceStatus = "pending"
	AttendanceConfirmed AttendanceStatus = "confirmed"
	AttendanceAttended  AttendanceStatus = "attended"
	AttendanceAbsent    AttendanceStatus = "absent"
)

// Attendance tracks one student's participation in a live session:
// pending -> confirmed -> attended, or absent when the session closes without
// the student joining.
type Attendance struct {
	ID            string           `json:"id" gorm:"primaryKey;size:36"`
	LiveSessionID string           `json:"live_session_id" gorm:"not null;index;size:36"`
	StudentID     string           `json:"student_id" gorm:"not null;index;size:36"`
	StudentName   string           `json:"student_name" gorm:"size:200"`
	Status        AttendanceStatus `json:"status" gorm:"default:pending"`
	ConfirmedAt   *time.Time       `json:"confirmed_at,omitempty"`
	JoinedAt      *time.Time       `json:"joined_at,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}
