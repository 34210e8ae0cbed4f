package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure kind reported to API clients.
type ErrorCode string

const (
	CodeBadRequest    ErrorCode = "BAD_REQUEST"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnprocessable ErrorCode = "UNPROCESSABLE"
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// AppError is the error type services hand to the HTTP layer.
// Message is for logs only; clients always receive the fixed text for Code.
type AppError struct {
	Code    ErrorCode
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

// NewError creates a new AppError
func NewError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBadRequestError(message string, err error) *AppError {
	return NewError(CodeBadRequest, message, err)
}

func NewNotFoundError(message string) *AppError {
	return NewError(CodeNotFound, message, nil)
}

func NewUnprocessableError(message string, err error) *AppError {
	return NewError(CodeUnprocessable, message, err)
}

func NewInternalError(message string, err error) *AppError {
	return NewError(CodeInternal, message, err)
}

func NewQuestionNotFoundError(questionID int64) *AppError {
	return NewNotFoundError(fmt.Sprintf("question not found: %d", questionID))
}

func NewCategoryNotFoundError(categoryID int64) *AppError {
	return NewNotFoundError(fmt.Sprintf("category not found: %d", categoryID))
}

// CodeOf returns the ErrorCode carried by err, or CodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// ErrNoRowsAffected is returned by repository writes that matched nothing.
var ErrNoRowsAffected = errors.New("no rows affected")
