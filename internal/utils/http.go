package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/models"
)

// Status kinds for codes outside the call error kinds
const (
	StatusInvalidArgument    = "invalid-argument"
	StatusFailedPrecondition = "failed-precondition"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
	Status  string `json:"status,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response whose status kind follows the code
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return StatusErrorResponse(c, statusCode, StatusKind(statusCode), errorMessage)
}

// StatusKind maps an HTTP status code to the error kind clients switch on
func StatusKind(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return StatusInvalidArgument
	case http.StatusUnauthorized, http.StatusForbidden:
		return string(models.CallErrUnauthenticated)
	case http.StatusNotFound:
		return string(models.CallErrNotFound)
	case http.StatusConflict:
		return StatusFailedPrecondition
	case http.StatusTooManyRequests:
		return string(models.CallErrResourceExhausted)
	default:
		return string(models.CallErrInternal)
	}
}

// StatusErrorResponse sends an error response carrying a machine-readable status kind
func StatusErrorResponse(c echo.Context, statusCode int, status, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
		Status:  status,
	})
}

func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

func ConflictResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusConflict, errorMessage)
}

func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
