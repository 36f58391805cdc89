package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "request validation failed"
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return validCPF(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// validateStruct runs the tag rules on s and converts failures to a ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = validationMessage(e)
	}
	return &ValidationError{Fields: fields}
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "cpf":
		return "Invalid CPF"
	case "datetime":
		return "Must be a date in " + e.Param() + " format"
	case "min":
		return "Must be at least " + e.Param()
	case "max":
		return "Must be at most " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	default:
		return "Invalid value"
	}
}

// validCPF checks a Brazilian taxpayer id: 11 digits, optionally formatted as
// 000.000.000-00, not all equal, with both mod-11 check digits matching.
func validCPF(s string) bool {
	digits := make([]int, 0, 11)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return cpfCheckDigit(digits[:9]) == digits[9] && cpfCheckDigit(digits[:10]) == digits[10]
}

func cpfCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// parsePositiveID parses a numeric identifier from a path or query parameter.
func parsePositiveID(field, raw string) (int64, error) {
	if raw == "" {
		return 0, fieldError(field, "This field is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fieldError(field, "Must be a positive integer")
	}
	return id, nil
}
