package snapshot

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rezonia/invoice-renderer/internal/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON field names so errors match the payload
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the structural rules of a raw invoice: required party
// fields, invoice number, currency, item names, email format and the
// signature font charset.
func Validate(input *model.Input) error {
	if input == nil {
		return model.NewValidationError("invoice", nil, "required", "is required")
	}

	err := getValidator().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return model.NewValidationError("invoice", nil, "struct", err.Error())
	}

	out := make(model.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, model.NewValidationError(fieldPath(fe), fieldValue(fe), fe.Tag(), ruleMessage(fe)))
	}
	return out
}

// fieldPath drops the root type name: "Input.sender.name" -> "sender.name"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldValue(fe validator.FieldError) interface{} {
	if s, ok := fe.Value().(string); ok && s != "" {
		return s
	}
	return nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "excludesall":
		return "contains a character that is not allowed: " + fe.Param()
	default:
		return "failed " + fe.Tag() + " rule"
	}
}
