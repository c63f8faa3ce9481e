package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"risecheckout/shared/constant"
	"risecheckout/shared/daterange"
	"risecheckout/shared/failure"
	"risecheckout/shared/orderstatus"
	"risecheckout/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerTimezoneValidation(field val.FieldLevel) bool {
	tz, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if !constant.IsSupportedTimezone(tz) {
		return false
	}

	_, err := time.LoadLocation(tz)

	return err == nil
}

func registerLocaleValidation(field val.FieldLevel) bool {
	locale, ok := field.Field().Interface().(string)

	return ok && constant.IsSupportedLocale(locale)
}

func registerPresetValidation(field val.FieldLevel) bool {
	preset, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := daterange.ParsePreset(preset)

	return err == nil
}

func registerOrderStatusValidation(field val.FieldLevel) bool {
	status, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := orderstatus.Validate(status)

	return err == nil
}

func registerInstantValidation(field val.FieldLevel) bool {
	instant, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseInstant(instant)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	custom := map[string]val.Func{
		"supported_timezone": registerTimezoneValidation,
		"supported_locale":   registerLocaleValidation,
		"preset":             registerPresetValidation,
		"orderstatus":        registerOrderStatusValidation,
		"instant":            registerInstantValidation,
	}

	for tag, fn := range custom {
		if err = validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
