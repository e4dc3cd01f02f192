package controller

import (
	"elevatorops-console/console"
	"elevatorops-console/models"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusFor maps a failure to the HTTP status returned to the console UI
func statusFor(err error) (int, string) {
	if errors.Is(err, console.ErrSessionNotFound) || errors.Is(err, console.ErrScreenNotFound) {
		return http.StatusNotFound, "NotFoundError"
	}

	var f *models.Failure
	if !errors.As(err, &f) {
		return http.StatusInternalServerError, "InternalError"
	}

	switch f.Kind {
	case models.ErrorKindLocalGuard:
		if errors.Is(f, models.ErrValidation) || errors.Is(f, models.ErrTechnicianRequired) {
			return http.StatusBadRequest, "ValidationError"
		}
		return http.StatusConflict, "GuardError"
	case models.ErrorKindRemoteRejected:
		if f.StatusCode >= 400 && f.StatusCode < 500 {
			return f.StatusCode, "RemoteError"
		}
		return http.StatusBadGateway, "RemoteError"
	case models.ErrorKindShapeMismatch:
		return http.StatusNotFound, "NotFoundError"
	case models.ErrorKindTransport:
		return http.StatusBadGateway, "TransportError"
	}
	return http.StatusInternalServerError, "InternalError"
}

// respondError writes a failure in the APIResponse envelope
func respondError(c *gin.Context, message string, err error) {
	code, kind := statusFor(err)
	details := err.Error()
	var f *models.Failure
	if errors.As(err, &f) {
		details = f.Message
	}
	c.JSON(code, models.APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error: &models.APIError{
			Type:    kind,
			Details: details,
		},
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: err.Error(),
		},
	})
}

func respondOK(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, models.APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}
