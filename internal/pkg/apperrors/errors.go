package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Reference errors
	ErrInvalidReference = errors.New("referenced record does not exist")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student Errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Teacher Errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
)

// Department Errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists")
)

// Subject Errors
var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrSubjectAlreadyExists = errors.New("subject with this name already exists in the department")
)

// Attendance Errors
var (
	ErrAttendanceAlreadyExists = errors.New("attendance already recorded for this student and date")
)

// Result Errors
var (
	ErrResultAlreadyExists = errors.New("result already recorded for this student and subject")
)

// Fee Errors
var (
	ErrFeeNotFound    = errors.New("fee not found")
	ErrFeeAlreadyPaid = errors.New("fee already paid")
)

// Notice Errors
var (
	ErrNoticeNotFound = errors.New("notice not found")
)

// NewValidationError creates a new custom error for field-level validation failures
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
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
	Err     error
	Message string
	Details map[string]interface{}
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
