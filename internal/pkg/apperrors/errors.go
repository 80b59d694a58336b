package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Partial success: the primary write is persisted, a follow-up step failed
	ErrPartialSuccess = errors.New("partial success")
)

// Advisor errors
var (
	ErrAdvisorNotFound = errors.New("advisor not found")
)

// Council errors
var (
	ErrCouncilNotFound      = errors.New("council not found")
	ErrCouncilAlreadyExists = errors.New("council already exists")
)

// Committee errors
var (
	ErrCommitteeNotFound = errors.New("committee not found")
)

// Member errors
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberUnassigned   = errors.New("member is not assigned to a committee")
	ErrMemberOutOfCouncil = errors.New("member does not belong to this council")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// Storage errors
var (
	ErrObjectExists = errors.New("object already exists")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// PartialSuccessError reports that the primary write of a multi-step operation
// succeeded while a later step did not. The primary entity stays persisted.
type PartialSuccessError struct {
	Primary string // what was persisted, e.g. "advisor"
	Step    string // the step that failed, e.g. "photo upload"
	Err     error
}

func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("%s saved, but %s failed: %v", e.Primary, e.Step, e.Err)
}

// Unwrap lets errors.Is match both ErrPartialSuccess and the step's own cause.
func (e *PartialSuccessError) Unwrap() []error {
	return []error{ErrPartialSuccess, e.Err}
}
