package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"datetime": "{field} must match the format {param}",
	"hourtime": "{field} must be a whole hour in HH:00 format",
}

// Length rules on text read better in characters.
var stringMessages = map[string]string{
	"max": "{field} must be at most {param} characters",
	"min": "{field} must be at least {param} characters",
}

func template(fieldErr val.FieldError) string {
	if fieldErr.Kind() == reflect.String {
		if msg, ok := stringMessages[fieldErr.Tag()]; ok {
			return msg
		}
	}

	return messages[fieldErr.Tag()]
}

func format(fieldErr val.FieldError) string {
	tmpl := template(fieldErr)
	if tmpl == "" {
		return ""
	}

	param := fieldErr.Param()
	if fieldErr.Tag() == "oneof" {
		param = strings.Join(strings.Fields(param), ", ")
	}

	return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", param).Replace(tmpl)
}

// message reports the first validation failure that has a readable template.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		if msg := format(fieldErr); msg != "" {
			return msg
		}
	}

	return valErrors.Error()
}
