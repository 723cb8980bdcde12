// Package validator wraps go-playground/validator with JSON-aware field names
// so validation messages reference the wire field (e.g. "destino"), not the
// Go struct field.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// Message converts a validation error into a single human-readable line,
// e.g. "destino é obrigatório". Non-validator errors pass through unchanged.
// Messages are in Portuguese because they are user-facing product copy.
func Message(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, formatFieldError(e))
	}
	return strings.Join(parts, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", e.Field())
	default:
		return fmt.Sprintf("%s é inválido", e.Field())
	}
}
