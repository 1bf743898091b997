package models

import (
	"time"
)

type UserRole string

const (
	RoleSuperAdmin  UserRole = "superadmin"
	RoleAdmin       UserRole = "admin"
	RoleCoordinator UserRole = "coordinator"
	RoleTeacher     UserRole = "teacher"
	RoleStudent     UserRole = "student"
)

type UserProfile struct {
	ID            string   `json:"id" gorm:"primaryKey;size:36"`
	Name          string   `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email         string   `json:"email" gorm:"not null;size:254;uniqueIndex" validate:"required,email"`
	InstitutionID string   `json:"institution_id" gorm:"index;size:36"`
	Role          UserRole `json:"role" gorm:"not null;size:20;index" validate:"required,user_role"`
	IsActive      bool     `json:"is_active" gorm:"default:true"`
	Bio           string   `json:"bio" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// CanManagePlans reports whether the role may edit evaluation plans.
func (u *UserProfile) CanManagePlans() bool {
	switch u.Role {
	case RoleTeacher, RoleCoordinator, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
