package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"required_if": "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"email":       "{field} must be a valid email address",
	"uuid":        "{field} must be a valid UUID",

	"supported_timezone": "{field} must be a supported IANA timezone",
	"supported_locale":   "{field} must be a supported locale",
	"preset":             "{field} must be one of today yesterday 7days 30days max custom",
	"orderstatus":        "{field} must be one of paid pending refused refunded chargeback",
	"instant":            "{field} must be an RFC 3339 timestamp or YYYY-MM-DD date",
}

// jsonName reports fields by their json name so messages match the request.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// message renders every field error, in struct order, joined by "; ".
// Tags without a template fall back to the validator's own text.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		tmpl, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl))
	}

	return strings.Join(parts, "; ")
}
