package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripideas/services"
)

type ExportRequest struct {
	Query    string                   `json:"query"`
	Date     string                   `json:"date"`
	Ideas    []services.TripIdea      `json:"ideas"`
	Timeline []services.TimelineEvent `json:"timeline"`
}

// ExportPDFHandler renders a plan the client already holds. Nothing is stored.
func (s *Server) ExportPDFHandler(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	pdfBytes, err := services.GeneratePlanPDF(services.PlanPDFData{
		Query: req.Query,
		Date:  req.Date,
		Plan: services.GeneratePayload{
			Ideas:    req.Ideas,
			Timeline: req.Timeline,
		},
	})
	if errors.Is(err, services.ErrEmptyPlan) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan must contain ideas or timeline events"})
		return
	}
	if err != nil {
		s.requestLogger(c).Error("PDF generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=trip-plan.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
