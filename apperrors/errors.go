package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType buckets failures by how the HTTP layer should surface them.
type ErrorType string

const (
	// TypeNotFound: a referenced entity does not exist (404).
	TypeNotFound ErrorType = "not_found"
	// TypeBusinessRule: the request is well-formed but violates a domain rule (409).
	TypeBusinessRule ErrorType = "business_rule"
	// TypeValidation: the request itself is malformed (400).
	TypeValidation ErrorType = "validation"
	// TypeDataIntegrity: catalog data is broken; an authoring defect, not user error (500).
	TypeDataIntegrity ErrorType = "data_integrity"
)

// AppError carries a machine-readable code alongside the human message.
type AppError struct {
	Type    ErrorType
	Code    string
	Message string
	Wrapped error
}

func (e *AppError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Wrapped }

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// HTTPStatus maps the error type to the status the controller should return.
func (e *AppError) HTTPStatus() int {
	switch e.Type {
	case TypeNotFound:
		return http.StatusNotFound
	case TypeBusinessRule:
		return http.StatusConflict
	case TypeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(t ErrorType, code, format string, args ...interface{}) *AppError {
	return &AppError{Type: t, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(err error, t ErrorType, code, message string) *AppError {
	return &AppError{Type: t, Code: code, Message: message, Wrapped: err}
}

// As unwraps err into an *AppError, or nil if it is not one.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// --- domain errors ---

func NotFound(entity string, id interface{}) *AppError {
	return New(TypeNotFound, "NOT_FOUND", "%s %v not found", entity, id)
}

func TargetNotFound(kind string, id uint) *AppError {
	return New(TypeNotFound, "TARGET_NOT_FOUND", "%s %d not found", kind, id)
}

func TargetDisabled(kind string, id uint) *AppError {
	return New(TypeBusinessRule, "TARGET_DISABLED", "%s %d is disabled", kind, id)
}

func OverlappingEnrollment(kind string) *AppError {
	return New(TypeBusinessRule, "OVERLAPPING_ENROLLMENT",
		"an active or paused %s enrollment already covers the requested dates", kind)
}

func InvalidTransition(current, requested string) *AppError {
	return New(TypeBusinessRule, "INVALID_TRANSITION",
		"cannot %s an enrollment in state %s", requested, current)
}

func OwnershipMismatch(enrollmentID uint) *AppError {
	return New(TypeBusinessRule, "OWNERSHIP_MISMATCH",
		"enrollment %d does not belong to the caller", enrollmentID)
}

func DuplicateName(entity, name string) *AppError {
	return New(TypeBusinessRule, "DUPLICATE_NAME", "%s %q already exists", entity, name)
}

func DivisionByZero(detail string) *AppError {
	return New(TypeDataIntegrity, "DIVISION_BY_ZERO", "%s", detail)
}
