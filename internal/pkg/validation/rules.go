// Package validation provides field-level validation rules used at the
// service boundary.
package validation

import (
	"fmt"
	"strings"
)

// FieldError describes a single failed rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates field errors across rule checks
type Validator struct {
	errs []FieldError
}

// New creates an empty Validator
func New() *Validator {
	return &Validator{}
}

// Required checks that the value is not blank after trimming
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, fmt.Sprintf("%s is required", field))
	}
	return v
}

// MaxLength checks that the value does not exceed max characters
func (v *Validator) MaxLength(field, value string, max int) *Validator {
	if len([]rune(value)) > max {
		v.add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return v
}

// MinLength checks that a non-empty value has at least min characters
func (v *Validator) MinLength(field, value string, min int) *Validator {
	if value != "" && len([]rune(value)) < min {
		v.add(field, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	return v
}

// OneOf checks that the value is one of the allowed values
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
	return v
}

// Valid reports whether all checks passed
func (v *Validator) Valid() bool {
	return len(v.errs) == 0
}

// Errors returns the accumulated field errors
func (v *Validator) Errors() []FieldError {
	return v.errs
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}
