package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the session role may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrMissingData indicates a record lacks data needed for the requested action
// (for example a phone number when building a WhatsApp link).
var ErrMissingData = errors.New("missing data")

// ErrConfiguration indicates a required external-service setting is absent.
var ErrConfiguration = errors.New("configuration error")

// ErrUnavailable indicates an external collaborator (text generator, store) failed.
var ErrUnavailable = errors.New("service unavailable")

// ErrConflict indicates the resource is in a state that does not allow the action.
var ErrConflict = errors.New("conflict")

// AppError is the JSON error body returned by handlers.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Hint    string `json:"hint,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an HTTP status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// FromError maps a service error onto an AppError, keeping the message of
// client-facing failures and hiding internal ones behind fallback.
func FromError(err error, fallback string) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, ErrValidation):
		return &AppError{Code: http.StatusBadRequest, Message: err.Error(), Err: err}
	case errors.Is(err, ErrUnauthorized):
		return &AppError{Code: http.StatusUnauthorized, Message: err.Error(), Err: err}
	case errors.Is(err, ErrForbidden):
		return &AppError{Code: http.StatusForbidden, Message: err.Error(), Err: err}
	case errors.Is(err, ErrNotFound):
		return &AppError{Code: http.StatusNotFound, Message: err.Error(), Err: err}
	case errors.Is(err, ErrMissingData):
		return &AppError{Code: http.StatusUnprocessableEntity, Message: err.Error(), Err: err}
	case errors.Is(err, ErrConflict):
		return &AppError{Code: http.StatusConflict, Message: err.Error(), Err: err}
	case errors.Is(err, ErrConfiguration):
		return &AppError{Code: http.StatusServiceUnavailable, Message: err.Error(), Err: err}
	case errors.Is(err, ErrUnavailable):
		return &AppError{Code: http.StatusBadGateway, Message: err.Error(), Err: err}
	default:
		return &AppError{Code: http.StatusInternalServerError, Message: fallback, Err: err}
	}
}
