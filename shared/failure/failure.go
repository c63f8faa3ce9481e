package failure

import (
	"errors"
	"net/http"
)

// MessageInternal is shown to clients in place of unexpected errors.
const MessageInternal = "internal server error"

// Failure is an error that is safe to show to clients, carrying the HTTP
// status it maps to.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam     = New(http.StatusBadRequest, "invalid page parameter")
	InvalidLimitParam    = New(http.StatusBadRequest, "invalid limit parameter")
	InvalidDateParam     = New(http.StatusBadRequest, "invalid date parameter, expected RFC 3339 or YYYY-MM-DD")
	InvalidTimezoneParam = New(http.StatusBadRequest, "unsupported timezone")
	TooManyRequestsError = New(http.StatusTooManyRequests, "Too many requests, please try again later")
)

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

func NotFound(entityName string) error {
	return New(http.StatusNotFound, entityName)
}

// ServiceUnavailable is returned when a downstream dependency is refusing work.
func ServiceUnavailable(msg string) error {
	return New(http.StatusServiceUnavailable, msg)
}

// GetCode returns the status of the first Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Public returns what a client may see of err. Errors without a Failure in
// their chain become a generic 500 and exposed is false.
func Public(err error) (fail *Failure, exposed bool) {
	if errors.As(err, &fail) {
		return fail, true
	}

	return New(http.StatusInternalServerError, MessageInternal), false
}
