// README: Root, health, and ping handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": "Welcome to Minicab API"})
}

func (h *SystemHandler) Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "healthy"})
}

type pingRequest struct {
	Data string `json:"data"`
}

func (h *SystemHandler) Ping(c *gin.Context) {
	var req pingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Data != "ping" {
		writeError(c, http.StatusBadRequest, "Invalid ping data")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "pong", "status": "success"})
}
