package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/carpool/internal/pkg/apperror"
	"github.com/piresc/carpool/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Status  int    `json:"status"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, code, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    code,
		Status:  statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, string(apperror.KindValidation), errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, string(apperror.KindUnauthorized), errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, string(apperror.KindForbidden), errorMessage)
}

// StatusForKind maps an error kind onto its HTTP status
func StatusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindInvalidState, apperror.KindCapacityExceeded, apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorResponse renders err with the status and machine code of its kind.
// Unclassified errors are logged and hidden behind a generic message.
func DomainErrorResponse(c echo.Context, err error) error {
	appErr, ok := apperror.As(err)
	if !ok {
		logger.ErrorCtx(c.Request().Context(), "Unhandled error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return ErrorResponseHandler(c, http.StatusInternalServerError, string(apperror.KindInternal), "Internal server error")
	}
	return ErrorResponseHandler(c, StatusForKind(appErr.Kind), appErr.Code, appErr.Message)
}
