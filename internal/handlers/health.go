package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"board-banker-backend/internal/services"
)

type HealthHandler struct {
	coordinator *services.Coordinator
}

func NewHealthHandler(coordinator *services.Coordinator) *HealthHandler {
	return &HealthHandler{coordinator: coordinator}
}

// Status reports process liveness plus the live room count.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rooms":  h.coordinator.RoomCount(),
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
