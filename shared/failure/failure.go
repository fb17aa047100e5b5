package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be reported with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam   = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
	InvalidLimitParam  = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
	InvalidStatusParam = &Failure{Code: http.StatusBadRequest, Message: "invalid status parameter"}
	InvalidKindParam   = &Failure{Code: http.StatusBadRequest, Message: "invalid kind parameter"}
	EmptyUpdateRequest = &Failure{Code: http.StatusBadRequest, Message: "update request cannot be empty"}
	UnauthorizedError  = &Failure{Code: http.StatusUnauthorized, Message: "unauthorized"}
	ForbiddenError     = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

// IsClientError reports whether err carries a 4xx code whose message is safe to show to callers.
func IsClientError(err error) bool {
	code := GetCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}

// GetCode returns the status carried by err, or 500 when it carries none.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
