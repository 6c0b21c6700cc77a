package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PingFunc checks a backing store.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	ping PingFunc
	log  *zap.Logger
}

func NewHealthHandler(ping PingFunc, log *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			h.log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
