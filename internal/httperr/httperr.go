package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func ForbiddenResponse(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusFor maps a business kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict, KindInvalidTransition, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var messages = map[string]string{
	"service_not_found":         "Service not found.",
	"provider_not_found":        "Hairdresser not found.",
	"appointment_not_found":     "Appointment not found.",
	"slot_taken":                "This time slot is already booked.",
	"forbidden":                 "Not authorized.",
	"invalid_transition":        "This status change is not allowed.",
	"invalid_status":            "Invalid status.",
	"invalid_date":              "Invalid date.",
	"invalid_time":              "Invalid time.",
	"time_outside_grid":         "Time is not a bookable slot.",
	"invalid_payment_method":    "Invalid payment method.",
	"transaction_id_required":   "Online payments require a transaction id.",
	"service_provider_mismatch": "Service is not offered by this hairdresser.",
}

// Respond writes err to the client. Business errors keep their code;
// anything else is logged and reported as a generic server error.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg, ok := messages[be.Code]
		if !ok {
			msg = "Invalid request."
		}
		Write(c, StatusFor(be.Kind), be.Code, msg)
		return
	}

	log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "internal_error", "Server error.")
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}
