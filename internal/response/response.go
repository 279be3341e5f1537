package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes used across the service layer. Handlers translate these to
// HTTP status codes in a single place, so services never import net/http.
const (
	ErrCodeValidation    = "VALIDATION"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the error type returned by services. It distinguishes
// validation failures (caller has access but the request is inconsistent)
// from authorization failures (caller lacks a role), which must map to
// different transport statuses.
type AppError struct {
	Code    string
	Message string
	Details string
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorDetail carries the structured reason for a failed request
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SuccessResponse documents the shape of trivial success bodies for swagger
type SuccessResponse struct {
	Message string `json:"message"`
}

// SendError writes a structured error response
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// SendSuccess writes the resource body as-is
func SendSuccess(c *gin.Context, status int, data interface{}) {
	if data == nil {
		c.Status(status)
		return
	}
	c.JSON(status, data)
}
