package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common application errors
var (
	// ErrNotFound marks missing catalog rows; the server layer maps it
	// to a NotFound status.
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// UnresolvedIssuerError: no organization matched and auto-create was
// not possible. Recoverable; the document proceeds as "unidentified"
// and all mapping falls back to the default tier.
type UnresolvedIssuerError struct {
	Name       string
	BestScore  float64
	Confidence float64
}

func (e *UnresolvedIssuerError) Error() string {
	return fmt.Sprintf("unresolved issuer %q (best score %.2f, recognizer confidence %.2f)",
		e.Name, e.BestScore, e.Confidence)
}

// UnknownPatternError: a regex transform requested a name outside the
// fixed pattern table. Local to one field.
type UnknownPatternError struct {
	Name string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown regex pattern name %q", e.Name)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
