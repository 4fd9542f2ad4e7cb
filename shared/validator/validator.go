package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
	"tripavail/shared/failure"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

const (
	maxIdempotencyKeyLength = 255
	dateLayout              = time.DateOnly
)

var validate *val.Validate

// jsonName reports fields by their JSON name so messages match the request body.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// registerDateValidation accepts calendar dates in YYYY-MM-DD form.
func registerDateValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(dateLayout, str)

	return err == nil
}

// registerIdempotencyKeyValidation accepts 1 to 255 printable, non-space characters.
func registerIdempotencyKeyValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok || str == "" || len(str) > maxIdempotencyKeyLength {
		return false
	}

	for _, r := range str {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	err := validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("idempotencykey", registerIdempotencyKeyValidation)
	if err != nil {
		panic(err)
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

// IdempotencyKey prefers the key sent in the body and falls back to the
// Idempotency-Key header, which is validated the same way.
func IdempotencyKey(body, header string) (string, error) {
	if body != "" {
		return body, nil
	}

	if err := ValidateVar(header, "omitempty,idempotencykey"); err != nil {
		return "", err
	}

	return header, nil
}
