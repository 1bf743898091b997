package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("weight", "must be between 0 and 100", 150)

	if err.Field != "weight" {
		t.Errorf("Expected field to be 'weight', got '%s'", err.Field)
	}

	if err.Message != "must be between 0 and 100" {
		t.Errorf("Expected message to be 'must be between 0 and 100', got '%s'", err.Message)
	}

	if err.Value != 150 {
		t.Errorf("Expected value to be 150, got '%v'", err.Value)
	}

	expected := "validation error on field 'weight': must be between 0 and 100"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("name", "is required", nil))
	expected := "validation failed: name is required"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("weight", "must be between 0 and 100", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("item_type", "must be a valid evaluation item type", "evaluation_item_type", "quiz")

	if err.Rule != "evaluation_item_type" {
		t.Errorf("Expected rule to be 'evaluation_item_type', got '%s'", err.Rule)
	}

	if err.Field != "item_type" {
		t.Errorf("Expected field to be 'item_type', got '%s'", err.Field)
	}
}

func TestToValidationErrors(t *testing.T) {
	type itemRequest struct {
		Name   string `validate:"required"`
		Weight int    `validate:"min=0,max=100"`
	}

	v := validator.New()
	err := v.Struct(itemRequest{Name: "", Weight: 150})
	if err == nil {
		t.Fatal("Expected struct validation to fail")
	}

	errs := ToValidationErrors(err)
	if len(errs) != 2 {
		t.Fatalf("Expected 2 validation errors, got %d", len(errs))
	}

	if errs[0].Rule != "required" || errs[0].Message != "is required" {
		t.Errorf("Unexpected first error: %+v", errs[0])
	}

	if errs[1].Rule != "max" || errs[1].Message != "must be at most 100" {
		t.Errorf("Unexpected second error: %+v", errs[1])
	}
}
