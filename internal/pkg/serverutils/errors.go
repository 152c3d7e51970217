package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error codes for the query/session pipeline.
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeStoreUnavailable    = "STORE_UNAVAILABLE"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamRejected    = "UPSTREAM_REJECTED"
)

// AppError is a domain error with a stable code and HTTP mapping.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewInvalidRequest(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: CodeInvalidRequest, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Code: CodeNotFound, Message: message}
}

func NewStoreUnavailable(cause error) *AppError {
	return &AppError{
		Status:  fiber.StatusServiceUnavailable,
		Code:    CodeStoreUnavailable,
		Message: "durable store unreachable",
		cause:   cause,
	}
}

func NewUpstreamUnavailable(cause error) *AppError {
	return &AppError{
		Status:  fiber.StatusServiceUnavailable,
		Code:    CodeUpstreamUnavailable,
		Message: "answering service unreachable",
		cause:   cause,
	}
}

func NewUpstreamRejected(message string, cause error) *AppError {
	return &AppError{
		Status:  fiber.StatusBadGateway,
		Code:    CodeUpstreamRejected,
		Message: message,
		cause:   cause,
	}
}

// AsAppError unwraps err to an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
