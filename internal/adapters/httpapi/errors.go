package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetmatch/internal/domain"
)

const (
	codeInvalidRequest = "invalid_request"
	codeInternal       = "internal_error"
)

var statusByCode = map[string]int{
	"event_not_found":       http.StatusNotFound,
	"participant_not_found": http.StatusNotFound,
	"time_slot_not_found":   http.StatusNotFound,
	"invalid_edit_token":    http.StatusForbidden,
	"participant_mismatch":  http.StatusForbidden,
	"selection_mode":        http.StatusConflict,
}

// statusFor maps a domain error code to its HTTP status. Every other domain
// code is a validation failure.
func statusFor(code string) int {
	if code == "" {
		return http.StatusInternalServerError
	}
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// respondError writes {"error", "code"} with a localized message. Errors that
// carry no domain code are logged and hidden behind a generic message.
func (h *Handler) respondError(c *gin.Context, err error) {
	locale := h.locale(c)
	code := domain.Code(err)
	status := statusFor(code)

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(status, gin.H{
			"error": h.translator.T(locale, "error_generic", nil),
			"code":  codeInternal,
		})
		return
	}

	c.JSON(status, gin.H{
		"error":  h.translator.T(locale, "error_"+code, nil),
		"code":   code,
		"detail": err.Error(),
	})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
		"code":  codeInvalidRequest,
	})
}

