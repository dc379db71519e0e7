package model

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// ValidationErrors collects every validation failure of one input
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, ve := range e {
		errs = append(errs, ve)
	}
	return errs
}

// ValidationMessages flattens err into one message per validation failure.
// Errors that are not validation errors yield their own message.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}
	var many ValidationErrors
	if errors.As(err, &many) {
		msgs := make([]string, 0, len(many))
		for _, ve := range many {
			msgs = append(msgs, ve.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}

// UnknownTemplateError is returned when a template id is not registered
type UnknownTemplateError struct {
	Template  string
	Available []string
}

func (e *UnknownTemplateError) Error() string {
	if len(e.Available) > 0 {
		return fmt.Sprintf("unknown template %q (available: %s)", e.Template, strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("unknown template %q", e.Template)
}

// NewUnknownTemplateError creates a new unknown template error
func NewUnknownTemplateError(template string, available []string) *UnknownTemplateError {
	return &UnknownTemplateError{
		Template:  template,
		Available: available,
	}
}

// IsValidation reports whether err is or wraps a validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUnknownTemplate reports whether err is or wraps an unknown template error
func IsUnknownTemplate(err error) bool {
	var te *UnknownTemplateError
	return errors.As(err, &te)
}
