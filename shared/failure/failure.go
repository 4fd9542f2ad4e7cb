package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error a client can act on. Code is the HTTP status it maps to.
// Any other error reaching a handler is reported as a bare 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest wraps a validation error as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// NotFound takes the full message, e.g. "booking not found".
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// StateConflict rejects a transition attempted from the wrong booking status.
// The message names both statuses so the caller can see what blocked it.
func StateConflict(current, required string) error {
	return newFailure(http.StatusBadRequest, fmt.Sprintf("Booking must be in %s state (current: %s)", required, current))
}

// PaymentDeclined is a 402 carrying the processor's reason.
func PaymentDeclined(reason string) error {
	return newFailure(http.StatusPaymentRequired, reason)
}

func Internal(msg string) error {
	return newFailure(http.StatusInternalServerError, msg)
}

// GetCode returns the status of the outermost Failure in err, 500 if there is none.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
