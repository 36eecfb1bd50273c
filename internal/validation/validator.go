package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("report_date", validateReportDate)
	_ = v.RegisterValidation("report_datetime", validateReportDatetime)
	_ = v.RegisterValidation("group_by", validateGroupBy)
	_ = v.RegisterValidation("payment_intent_id", validatePaymentIntentID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validation tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors converts validator errors into a field -> message map for
// the standardized error response
func (v *Validator) FormatErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		fieldErrors[fieldErr.Field()] = messageForTag(fieldErr)
	}

	return fieldErrors
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "report_date":
		return "must be a calendar date in YYYY-MM-DD format"
	case "report_datetime":
		return "must be a datetime in YYYY-MM-DD HH:MM:SS format"
	case "group_by":
		return "must be one of: day, week, month"
	case "payment_intent_id":
		return "must start with 'pi_'"
	case "gt":
		return "must be greater than " + fieldErr.Param()
	default:
		return "is invalid"
	}
}

// Custom validation functions

// validateReportDate validates a calendar date in YYYY-MM-DD format
func validateReportDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateReportDatetime validates a local datetime in YYYY-MM-DD HH:MM:SS format
func validateReportDatetime(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02 15:04:05", fl.Field().String())
	return err == nil
}

// validateGroupBy validates the bucketing granularity
func validateGroupBy(fl validator.FieldLevel) bool {
	groupBy := strings.ToLower(fl.Field().String())
	validGranularities := map[string]bool{
		"day":   true,
		"week":  true,
		"month": true,
	}
	return validGranularities[groupBy]
}

// validatePaymentIntentID validates the documented payment identifier format
func validatePaymentIntentID(fl validator.FieldLevel) bool {
	paymentIntentID := fl.Field().String()
	if paymentIntentID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^pi_[A-Za-z0-9]+$`, paymentIntentID)
	return matched
}
