package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Storage
// failures all collapse to the same generic message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case IsValidationError(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid phone number or password")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, ErrAccountDisabled):
		RespondError(c, http.StatusForbidden, "This account has been disabled")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrPhoneAlreadyExists):
		RespondError(c, http.StatusConflict, "This phone number is already registered")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrDatabaseError):
		logrus.WithField("trace_id", c.GetString("trace_id")).WithError(err).Error("Database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logrus.WithField("trace_id", c.GetString("trace_id")).WithError(err).Error("Unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
