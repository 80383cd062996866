// Package apperrors defines the sentinel errors the services surface and
// the middleware maps to HTTP statuses.
package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	ErrPermissionDenied = errors.New("permission denied")

	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Profile errors
var (
	ErrStudentProfileNotFound = errors.New("student profile not found")
	ErrAlumniProfileNotFound  = errors.New("alumni profile not found")
)

// Mentorship errors
var (
	ErrMentorNotFound        = errors.New("mentor not found or unavailable")
	ErrMentorProfileNotFound = errors.New("no mentorship profile found for this alumni")
	ErrRequestNotFound       = errors.New("mentorship request not found")
	ErrRequestAlreadyExists  = errors.New("mentorship request already exists for this mentor")
	ErrInvalidRequestStatus  = errors.New("status must be either 'Accepted' or 'Rejected'")
)

// Job errors
var (
	ErrJobNotFound              = errors.New("job not found")
	ErrApplicationNotFound      = errors.New("job application not found")
	ErrAlreadyApplied           = errors.New("already applied to this job")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)

// Event errors
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrNotRegistered     = errors.New("not registered for this event")
)

// CustomError pairs a sentinel with a caller-facing message; errors.Is
// keeps matching the sentinel through Unwrap.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewBadRequestError wraps ErrBadRequest with a specific message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
