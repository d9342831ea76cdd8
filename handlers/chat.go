package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripideas/services"
)

type ChatRequest struct {
	Query string `json:"query"`
}

// SearchGenerateHandler answers freeform with Google Search grounding.
// Unlike the structured variant, AI problems surface as HTTP errors.
func (s *Server) SearchGenerateHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	if s.Searcher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI is not available. Set GOOGLE_API_KEY to enable it."})
		return
	}

	log := s.requestLogger(c)

	resp, err := s.Searcher.CompleteWithSearch(c.Request.Context(), services.BuildSearchPrompt(query))
	if err != nil {
		log.Error("gemini search completion failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI request failed"})
		return
	}

	answer := services.ExtractAnswer(resp)
	if answer == "" {
		log.Warn("gemini returned an empty answer")
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI returned an empty answer"})
		return
	}

	refs := services.ExtractReferences(resp)
	log.Info("answer generated", zap.Int("references", len(refs)))

	c.JSON(http.StatusOK, services.ChatAnswer{
		Answer:     answer,
		References: refs,
	})
}
