package handlers

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tripideas/config"
	"tripideas/metrics"
	"tripideas/services"
)

const requestIDHeader = "X-Request-ID"

// Server carries the process-wide, read-only dependencies of every handler.
// Planner and Searcher are nil when no Gemini key is configured.
type Server struct {
	Config   *config.Config
	Planner  services.PlanCompleter
	Searcher services.SearchCompleter
	Enricher *services.Enricher
	Logger   *zap.Logger
}

func (s *Server) aiConfigured() bool {
	if s.Config.Mode == config.ModeSearch {
		return s.Searcher != nil
	}
	return s.Planner != nil
}

// NewRouter wires middleware and routes. POST /generate is bound to the
// variant selected by SERVICE_MODE.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.Logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if s.Config.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.Config.AllowedOrigins()
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", s.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/export/pdf", s.ExportPDFHandler)

	if s.Config.Mode == config.ModeSearch {
		r.POST("/generate", s.SearchGenerateHandler)
	} else {
		r.POST("/generate", s.GenerateHandler)
	}

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("requestID", c.GetString("requestID")),
		)
	}
}

// requestLogger scopes the server logger to the current request.
func (s *Server) requestLogger(c *gin.Context) *zap.Logger {
	return s.Logger.With(zap.String("requestID", c.GetString("requestID")))
}
