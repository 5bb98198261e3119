package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used to map application errors onto HTTP statuses.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is a custom application error. Key, when set, is the JSON field
// the message is reported under (e.g. "noprofile", "alreadyliked"), matching
// the error payload contract consumed by the client.
type AppError struct {
	Code    string
	Key     string
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

// NewNotFoundError builds a 404-class error reported under the given key.
func NewNotFoundError(key, message string) *AppError {
	return &AppError{Code: CodeNotFound, Key: key, Message: message}
}

// NewFieldError builds a validation error reported under a single field key.
func NewFieldError(key, message string) *AppError {
	return &AppError{Code: CodeValidation, Key: key, Message: message}
}

// NewConflictError builds a conflict error (duplicate email, duplicate handle)
// reported under the offending field key.
func NewConflictError(key, message string) *AppError {
	return &AppError{Code: CodeConflict, Key: key, Message: message}
}

// NewUnauthorizedError builds an authorization error, distinct from not-found.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Key: "notauthorized", Message: message}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}

// ErrorResponse is the fallback error body for errors without a field key.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// RespondWithError writes a standardized error response. Keyed application
// errors render as {key: message} so clients can surface them per field;
// everything else renders as an ErrorResponse envelope.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok {
		if appErr.Key != "" {
			return c.Status(status).JSON(fiber.Map{appErr.Key: appErr.Message})
		}
		response := ErrorResponse{Error: appErr.Message, Code: appErr.Code}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
		return c.Status(status).JSON(response)
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

// RespondWithFieldErrors writes a validator's field→message map as a 400 body.
func RespondWithFieldErrors(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errs)
}
