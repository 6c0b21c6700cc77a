package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code        string `json:"error_code"`
	Message     string `json:"message"`
	Alternative string `json:"alternative,omitempty"`
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

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusFor maps an error kind to its HTTP status. Conflicts stay 400 for
// compatibility with existing clients; error_code tells them apart.
func StatusFor(kind Kind) int {
	switch kind {
	case KindInvalidArgument, KindInvalidState, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err as a JSON error response. Internal errors are logged
// and replaced by an opaque message.
func FromError(c *gin.Context, log *zap.Logger, err error) {
	var be BusinessError
	if errors.As(err, &be) && be.Kind != KindInternal {
		c.JSON(StatusFor(be.Kind), HTTPError{
			Code:        be.Code,
			Message:     be.Message,
			Alternative: be.Alternative,
		})
		return
	}

	if log != nil {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	Internal(c, "internal_error", "Server error")
}
