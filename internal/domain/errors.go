package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrForbidden    ErrorCode = "FORBIDDEN"
	ErrValidation   ErrorCode = "VALIDATION_ERROR"

	// Interview specific errors
	ErrInterviewNotFound ErrorCode = "INTERVIEW_NOT_FOUND"
	ErrQuestionNotFound  ErrorCode = "QUESTION_NOT_FOUND"
	ErrInvalidAnswer     ErrorCode = "INVALID_ANSWER"
	ErrInterviewClosed   ErrorCode = "INTERVIEW_COMPLETED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewForbiddenError(message string) *DomainError {
	return NewError(ErrForbidden, message, nil)
}

func NewInterviewNotFoundError(interviewID string) *DomainError {
	return NewError(ErrInterviewNotFound, fmt.Sprintf("Interview not found with ID: %s", interviewID), nil)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(ErrQuestionNotFound, fmt.Sprintf("Question not found with ID: %s", questionID), nil)
}

func NewInvalidAnswerError(message string) *DomainError {
	return NewError(ErrInvalidAnswer, message, nil)
}

func NewInterviewClosedError(interviewID string) *DomainError {
	return NewError(ErrInterviewClosed, fmt.Sprintf("Interview %s is already completed", interviewID), nil)
}

// ValidationError describes a single invalid request field
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationErrors collects every invalid field of a request
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Reason: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Reason: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Reason: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max)}
}
