package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// BackendPinger reports whether the hosted service is reachable.
type BackendPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	backend     BackendPinger
	redisClient *redis.Client
}

func NewHealthHandler(backend BackendPinger, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{backend: backend, redisClient: redisClient}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "redis": "unavailable"})
		return
	}
	if err := h.backend.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "backend": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"redis":   "connected",
		"backend": "connected",
	})
}
