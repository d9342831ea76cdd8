package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripideas/metrics"
	"tripideas/services"
)

type GenerateRequest struct {
	Query string `json:"query"`
	Date  string `json:"date"`
}

// GenerateHandler serves structured trip plans. Every AI failure degrades to
// the sample payload; only a malformed request body is rejected.
func (s *Server) GenerateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	log := s.requestLogger(c)

	if s.Planner == nil {
		metrics.PlanFallbacks.WithLabelValues(metrics.ReasonAIUnavailable).Inc()
		c.JSON(http.StatusOK, services.FallbackPlan())
		return
	}

	ctx := c.Request.Context()
	raw, err := s.Planner.CompletePlan(ctx, services.BuildPlanPrompt(req.Query, req.Date))
	if err != nil {
		log.Error("gemini failed, using sample plan", zap.Error(err))
		metrics.PlanFallbacks.WithLabelValues(metrics.ReasonAIError).Inc()
		c.JSON(http.StatusOK, services.FallbackPlan())
		return
	}

	plan, err := services.NormalizePlan(raw)
	if err != nil {
		log.Error("parse error, using sample plan", zap.Error(err))
		metrics.PlanFallbacks.WithLabelValues(metrics.ReasonParseError).Inc()
		c.JSON(http.StatusOK, plan)
		return
	}

	s.Enricher.Enrich(ctx, &plan)

	log.Info("plan generated",
		zap.Int("ideas", len(plan.Ideas)),
		zap.Int("timeline", len(plan.Timeline)),
	)
	c.JSON(http.StatusOK, plan)
}
