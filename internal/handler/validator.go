package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// Validation tags for plan inputs
const (
	TagTierLevel = "tierlevel"
	TagTierTable = "tiertable"
	TagHorizon   = "min=0,max=3650"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report JSON field names instead of Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Tier bounds follow domain.TierCount rather than literal min/max/len tags
	_ = v.RegisterValidation(TagTierLevel, func(fl validator.FieldLevel) bool {
		return domain.ValidLevel(int(fl.Field().Int()))
	})
	_ = v.RegisterValidation(TagTierTable, func(fl validator.FieldLevel) bool {
		return fl.Field().Len() == domain.TierCount
	})

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against a tag such as TagTierLevel
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagTierTable:
			errs[field] = fmt.Sprintf("Must contain exactly %d values", domain.TierCount)
		case TagTierLevel:
			errs[field] = fmt.Sprintf("Must be a tier level between %d and %d", domain.MinLevel, domain.MaxLevel)
		case "len":
			errs[field] = fmt.Sprintf("Must contain exactly %s values", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
