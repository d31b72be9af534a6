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
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz specific errors
	CodeQuizNotFound       ErrorCode = "QUIZ_NOT_FOUND"
	CodeQuizResultNotFound ErrorCode = "QUIZ_RESULT_NOT_FOUND"
	CodeGenerationFailed   ErrorCode = "GENERATION_FAILED"
	CodeLLMServiceError    ErrorCode = "LLM_SERVICE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
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
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewDatabaseError(message string, cause error) *DomainError {
	return NewError(CodeDatabaseError, message, cause)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewQuizResultNotFoundError(resultID string) *DomainError {
	return NewError(CodeQuizResultNotFound, fmt.Sprintf("Quiz result not found with ID: %s", resultID), nil)
}

// NewGenerationFailedError signals that the generator's output could not be
// turned into a valid quiz. The cause carries the parsing detail; the message
// stays generic so raw generator text never reaches a caller.
func NewGenerationFailedError(cause error) *DomainError {
	return NewError(CodeGenerationFailed, "Failed to generate quiz", cause)
}

func NewLLMServiceError(cause error) *DomainError {
	return NewError(CodeLLMServiceError, "Failed to process with LLM service", cause)
}

// ValidationError represents a single invalid request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures for one request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %s", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d, got %d", min, max, value)}
}
