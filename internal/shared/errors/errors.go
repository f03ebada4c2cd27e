// Package errors defines the error taxonomy shared by the battlefield packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeDuplicateEntity indicates an entity with the same identity already exists
	ErrorTypeDuplicateEntity ErrorType = "duplicate_entity"
	// ErrorTypeMissingEntity indicates a referenced entity does not exist
	ErrorTypeMissingEntity ErrorType = "missing_entity"
	// ErrorTypeInvalidGeometry indicates coordinates that break hex geometry rules
	ErrorTypeInvalidGeometry ErrorType = "invalid_geometry"
	// ErrorTypeInsufficientPoints indicates a movement cost above the remaining budget
	ErrorTypeInsufficientPoints ErrorType = "insufficient_points"
	// ErrorTypeValidation indicates an out-of-range parameter
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal indicates a broken internal invariant
	ErrorTypeInternal ErrorType = "internal"
)

// Sentinels usable with errors.Is; matching compares the ErrorType only.
var (
	ErrDuplicateEntity    = &AppError{Type: ErrorTypeDuplicateEntity, Message: "duplicate entity"}
	ErrMissingEntity      = &AppError{Type: ErrorTypeMissingEntity, Message: "missing entity"}
	ErrInvalidGeometry    = &AppError{Type: ErrorTypeInvalidGeometry, Message: "invalid geometry"}
	ErrInsufficientPoints = &AppError{Type: ErrorTypeInsufficientPoints, Message: "insufficient movement points"}
	ErrValidation         = &AppError{Type: ErrorTypeValidation, Message: "validation failed"}
	ErrInternal           = &AppError{Type: ErrorTypeInternal, Message: "internal inconsistency"}
)

// AppError is the base error type for battlefield errors
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Type == t.Type
}

// Duplicatef creates a duplicate entity error with formatting
func Duplicatef(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeDuplicateEntity,
		Message: fmt.Sprintf(format, args...),
	}
}

// Missingf creates a missing entity error with formatting
func Missingf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeMissingEntity,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidGeometryf creates an invalid geometry error with formatting
func InvalidGeometryf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeInvalidGeometry,
		Message: fmt.Sprintf(format, args...),
	}
}

// InsufficientPointsf creates an insufficient points error with formatting
func InsufficientPointsf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeInsufficientPoints,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validationf creates a validation error with formatting
func Validationf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// Internalf creates an internal inconsistency error with formatting
func Internalf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: fmt.Sprintf(format, args...),
	}
}

// GetType returns the error type of an error
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}
