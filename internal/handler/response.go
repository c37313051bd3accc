package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"busriya/internal/backend"
	"busriya/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	// Structured backend rejections pass through with their own
	// status and message so the client can show what the backend said.
	if se, ok := backend.Rejected(err); ok {
		c.JSON(se.StatusCode, ErrorResponse{Error: se.Message})
		return
	}

	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/backend errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, backend.ErrNotFound),
		errors.Is(err, service.ErrWorkflowNotFound),
		errors.Is(err, service.ErrFlowNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrFirstNameRequired),
		errors.Is(err, service.ErrLastNameRequired),
		errors.Is(err, service.ErrNICRequired),
		errors.Is(err, service.ErrInvalidNIC),
		errors.Is(err, service.ErrMobileRequired),
		errors.Is(err, service.ErrInvalidMobile),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidSeat),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrETicketRequired),
		errors.Is(err, service.ErrMissingCredentials):
		return http.StatusBadRequest

	// Sequencing errors - Conflict
	case errors.Is(err, service.ErrInvalidStep),
		errors.Is(err, service.ErrOTPNotPending),
		errors.Is(err, service.ErrNotVerified),
		errors.Is(err, service.ErrSubmissionInFlight):
		return http.StatusConflict

	// Abandoned workflow
	case errors.Is(err, service.ErrWorkflowClosed):
		return http.StatusGone

	// Authentication errors
	case errors.Is(err, backend.ErrUnauthorized),
		errors.Is(err, service.ErrSessionNotFound):
		return http.StatusUnauthorized

	// Upstream gave a success without a usable payload
	case errors.Is(err, service.ErrRedirectUnavailable):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
