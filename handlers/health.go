package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"gemini": s.aiConfigured(),
	})
}
