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

// Hard-failure codes. Field-extraction failures never become AppErrors; they
// are recorded on the document. These codes abort the current unit of work
// and route it to the exception path.
const (
	CodeRemoteFailure     = "REMOTE_FAILURE"     // non-2xx from the recognition service
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT" // image extension outside jpg/jpeg/png/tiff
	CodeContractViolation = "CONTRACT_VIOLATION" // unrecognized status or malformed envelope
	CodeAbandoned         = "ABANDONED"          // poll retry budget exhausted
	CodeCancelled         = "CANCELLED"          // context cancelled mid-submit or mid-poll
	CodeStorageFailure    = "STORAGE_FAILURE"
	CodeConfigError       = "CONFIG_ERROR"
)

// ErrInvalidInput is the sentinel cause for configuration and argument
// validation failures.
var ErrInvalidInput = errors.New("invalid input")

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the AppError code wrapped anywhere in err, or "".
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
