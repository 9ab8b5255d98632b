package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Validation errors, raised before anything is mutated
	ErrPathNotFound    ErrorCode = "PATH_NOT_FOUND"
	ErrAlreadyExists   ErrorCode = "ALREADY_EXISTS"
	ErrTemplateMissing ErrorCode = "TEMPLATE_MISSING"
	ErrNotAWikiFolder  ErrorCode = "NOT_A_WIKI_FOLDER"

	// Mutation errors
	ErrCreationFailed     ErrorCode = "CREATION_FAILED"
	ErrLinkCreationFailed ErrorCode = "LINK_CREATION_FAILED"
	ErrLinkRemovalFailed  ErrorCode = "LINK_REMOVAL_FAILED"
	ErrRemovalFailed      ErrorCode = "REMOVAL_FAILED"
	ErrTagUpdateFailed    ErrorCode = "TAG_UPDATE_FAILED"

	// Collaborator errors
	ErrCloneFailed ErrorCode = "CLONE_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// WikiError represents a structured error with code and details
type WikiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WikiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WikiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WikiError) Is(target error) bool {
	var targetErr *WikiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WikiError with the given code and message
func New(code ErrorCode, message string) *WikiError {
	return &WikiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WikiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WikiError {
	return &WikiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WikiError
func Wrap(err error, code ErrorCode, message string) *WikiError {
	if err == nil {
		return nil
	}
	return &WikiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WikiError {
	if err == nil {
		return nil
	}
	return &WikiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WikiError) WithDetail(key string, value interface{}) *WikiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *WikiError) WithDetails(details map[string]interface{}) *WikiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wikiErr *WikiError
	if errors.As(err, &wikiErr) {
		return wikiErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WikiError
func GetErrorCode(err error) ErrorCode {
	var wikiErr *WikiError
	if errors.As(err, &wikiErr) {
		return wikiErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WikiError
func GetErrorDetails(err error) map[string]interface{} {
	var wikiErr *WikiError
	if errors.As(err, &wikiErr) {
		return wikiErr.Details
	}
	return nil
}

// UserMessage returns the message meant for display. For a WikiError this is
// the path-centric message without the low-level cause; other errors are
// returned verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var wikiErr *WikiError
	if errors.As(err, &wikiErr) {
		return wikiErr.Message
	}
	return err.Error()
}

// Join combines errors from independent steps. It returns nil when every
// err is nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
