package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	redisHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil checker means Redis is not in use.
func NewHealthController(redisHealthChecker func() bool) *HealthController {
	return &HealthController{
		redisHealthChecker: redisHealthChecker,
	}
}

// Check handles GET /health requests.
// Evaluation never depends on Redis, so the service reports ok either way.
func (h *HealthController) Check(c *gin.Context) {
	redisStatus := "disabled"
	if h.redisHealthChecker != nil {
		redisStatus = "disconnected"
		if h.redisHealthChecker() {
			redisStatus = "connected"
		}
	}

	response := HealthResponse{
		Status:    "ok",
		Redis:     redisStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
