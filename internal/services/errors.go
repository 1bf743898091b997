package services

import (
	"errors"
	"fmt"

	apperrors "github.com/dcampus/evaluation-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("resource conflict")

	// Plan specific errors
	ErrPlanNotFound     = errors.New("evaluation plan not found")
	ErrItemNotFound     = errors.New("evaluation item not found")
	ErrInvalidItemType  = errors.New("invalid evaluation item type")
	ErrInvalidWeight    = errors.New("item weight must be between 0 and 100")
	ErrBasePlanNotFound = errors.New("base evaluation plan not found")
	ErrPeriodNotFound   = errors.New("academic period not found")

	// Section specific errors
	ErrSectionNotFound     = errors.New("course section not found")
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrNotEnrolled         = errors.New("student is not enrolled in this section")

	// Submission specific errors
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrDuplicateSubmission = errors.New("student already submitted for this item")
	ErrSubmissionGraded    = errors.New("submission is already graded")

	// Grading specific errors
	ErrInvalidScore      = errors.New("invalid score value")
	ErrGradeNotFound     = errors.New("grade not found")
	ErrGradingNotAllowed = errors.New("grading not allowed for this user")

	// Session specific errors
	ErrSessionNotFound         = errors.New("live session not found")
	ErrSessionFinished         = errors.New("live session already finished")
	ErrInvalidAttendanceChange = errors.New("invalid attendance status transition")

	// User/Permission errors
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidRole             = errors.New("invalid user role")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

type PermissionError struct {
	UserID     string `json:"user_id"`
	ResourceID string `json:"resource_id"`
	Resource   string `json:"resource"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
}

func (pe *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %s cannot %s %s %s - %s",
		pe.UserID, pe.Action, pe.Resource, pe.ResourceID, pe.Reason)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

func NewPermissionError(userID, resourceID, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:     userID,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
		Reason:     reason,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPlanNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrBasePlanNotFound) ||
		errors.Is(err, ErrPeriodNotFound) ||
		errors.Is(err, ErrSectionNotFound) ||
		errors.Is(err, ErrInstitutionNotFound) ||
		errors.Is(err, ErrEnrollmentNotFound) ||
		errors.Is(err, ErrSubmissionNotFound) ||
		errors.Is(err, ErrGradeNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsUnauthorized checks if error represents an "unauthorized" condition
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrGradingNotAllowed) ||
		errors.Is(err, ErrInsufficientPermissions) {
		return true
	}
	var pe *PermissionError
	return errors.As(err, &pe)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrInvalidItemType) ||
		errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrInvalidScore) ||
		errors.Is(err, ErrInvalidAttendanceChange) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrDuplicateSubmission)
}
