package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a Polish error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrUnknownCategory ErrorCode = "UNKNOWN_CATEGORY" // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrPromptTooLarge  ErrorCode = "PROMPT_TOO_LARGE" // 413
	ErrCancelled       ErrorCode = "CANCELLED"        // 499
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// PolishError represents a structured error with code, status, and details.
type PolishError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *PolishError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *PolishError {
	return &PolishError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnknownCategory creates a 400 error for a category outside text|image|video.
func NewUnknownCategory(category string) *PolishError {
	return &PolishError{
		Code:    ErrUnknownCategory,
		Status:  400,
		Message: fmt.Sprintf("unknown prompt type %q (want text, image or video)", category),
		Details: map[string]any{"type": category},
	}
}

// NewNotFound creates a 404 error for when a prompt record cannot be found.
func NewNotFound(id string) *PolishError {
	return &PolishError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("prompt not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewPromptTooLarge creates a 413 error when prompt text exceeds the size limit.
func NewPromptTooLarge(max, actual int) *PolishError {
	return &PolishError{
		Code:    ErrPromptTooLarge,
		Status:  413,
		Message: fmt.Sprintf("prompt exceeds maximum size: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewCancelled creates an error for an operation aborted by context cancellation.
func NewCancelled(op string) *PolishError {
	return &PolishError{
		Code:    ErrCancelled,
		Status:  499,
		Message: fmt.Sprintf("%s cancelled", op),
		Details: map[string]any{"operation": op},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *PolishError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &PolishError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is (or wraps) a PolishError with the given code.
func Is(err error, code ErrorCode) bool {
	var pErr *PolishError
	if stderrors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}
