package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	StartedAt time.Time
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Boost Studio API is running",
	})
}

// GET /health — external uptime monitoring.
func (h SystemHandler) Monitoring(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime":    time.Since(h.StartedAt).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
