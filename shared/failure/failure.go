package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Err optionally carries the underlying cause and is reachable through errors.Is/As.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

var (
	ForbiddenError        = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	InvalidCredentials    = &Failure{Code: http.StatusUnauthorized, Message: "invalid email or password"}
	LecturerRoleRequired  = &Failure{Code: http.StatusForbidden, Message: "lecturer does not exist or does not have lecturer role"}
	MissingSessionToken   = &Failure{Code: http.StatusUnauthorized, Message: "missing token"}
	InvalidPaginationArgs = &Failure{Code: http.StatusBadRequest, Message: "limit must be >= 1 and offset must be >= 0"}
)

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.Err
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Err:     err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized is raised when the session credential or the login credentials are not valid.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Err:     err,
		}
	}

	return nil
}

// InternalErrorWithCause is used when a write fails part way and has been rolled back.
func InternalErrorWithCause(message string, err error) error {
	if err != nil {
		message = message + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(message string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// ConflictWithCause returns a conflict that keeps a typed cause for callers using errors.As.
func ConflictWithCause(message string, err error) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
		Err:     err,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
