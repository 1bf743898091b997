package validator

import (
	"reflect"
	"strings"

	"github.com/dcampus/evaluation-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator combines struct-tag validation with the plan business rules.
type Validator struct {
	structValidator *validator.Validate
	planValidator   *PlanValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
		planValidator:   NewPlanValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Plan returns the plan validator
func (v *Validator) Plan() *PlanValidator {
	return v.planValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("evaluation_item_type", validateEvaluationItemType)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("section_status", validateSectionStatus)
	validate.RegisterValidation("link_provider", validateLinkProvider)
	validate.RegisterValidation("period_type", validatePeriodType)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validation functions
func validateEvaluationItemType(fl validator.FieldLevel) bool {
	return models.EvaluationItemType(fl.Field().String()).IsValid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	validRoles := []models.UserRole{
		models.RoleSuperAdmin,
		models.RoleAdmin,
		models.RoleCoordinator,
		models.RoleTeacher,
		models.RoleStudent,
	}

	value := fl.Field().String()
	for _, validRole := range validRoles {
		if string(validRole) == value {
			return true
		}
	}
	return false
}

func validateSectionStatus(fl validator.FieldLevel) bool {
	validStatuses := []models.SectionStatus{
		models.SectionActive,
		models.SectionDraft,
		models.SectionArchived,
	}

	value := fl.Field().String()
	for _, validStatus := range validStatuses {
		if string(validStatus) == value {
			return true
		}
	}
	return false
}

func validateLinkProvider(fl validator.FieldLevel) bool {
	validProviders := []models.LinkProvider{
		models.LinkDrive,
		models.LinkMega,
		models.LinkExternal,
	}

	value := fl.Field().String()
	for _, validProvider := range validProviders {
		if string(validProvider) == value {
			return true
		}
	}
	return false
}

func validatePeriodType(fl validator.FieldLevel) bool {
	validTypes := []models.PeriodType{
		models.PeriodTrimester,
		models.PeriodBimester,
		models.PeriodSemester,
		models.PeriodQuadrimester,
	}

	value := fl.Field().String()
	for _, validType := range validTypes {
		if string(validType) == value {
			return true
		}
	}
	return false
}
