package errors

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios
var (
	ErrInvalidRequest    = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrMissingFile       = New(http.StatusBadRequest, "MISSING_FILE", "Upload request carries no file")
	ErrRateLimitExceeded = New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")
	ErrInternalServer    = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// statusByType maps fatal pipeline classes to HTTP statuses. Load failures
// are the client's input being unusable, hence 422.
var statusByType = map[ErrorType]int{
	ErrTypeParse:      http.StatusUnprocessableEntity,
	ErrTypeSchema:     http.StatusUnprocessableEntity,
	ErrTypeDateFormat: http.StatusUnprocessableEntity,
	ErrTypeValidation: http.StatusBadRequest,
	ErrTypeConfig:     http.StatusInternalServerError,
	ErrTypeStorage:    http.StatusInternalServerError,
}

// FromError converts any error into an APIError, preserving the pipeline
// error type as the error code so clients can report the right format
// guidance.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status, ok := statusByType[appErr.Type]
		if !ok {
			status = http.StatusInternalServerError
		}
		details := interface{}(nil)
		if appErr.Cause != nil {
			details = appErr.Cause.Error()
		}
		return NewWithDetails(status, string(appErr.Type)+"_ERROR", appErr.Message, details)
	}

	return ErrInternalServer
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   err,
	}
}

// Render implements the render.Renderer interface
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.Error.Render(w, r)
}
