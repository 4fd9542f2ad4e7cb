package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// templates by validation tag. {field} is the JSON name, {param} the tag parameter.
var templates = map[string]string{
	"required":         "{field} is required",
	"required_without": "{field} is required when {param} is empty",
	"min":              "{field} must be at least {param}",
	"max":              "{field} must be at most {param}",
	"oneof":            "{field} must be one of {param}",
	"uuid":             "{field} must be a valid UUID",
	"dive":             "{field} contains an invalid item",
	"date":             "{field} must be a date in YYYY-MM-DD format",
	"idempotencykey":   "{field} must be 1 to 255 printable characters without spaces",
}

// message renders the first field error that has a template. Errors without one
// fall back to the validator's own text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		tmpl, ok := templates[fieldErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl)
	}

	return fieldErrors.Error()
}
