package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripideas/config"
	"tripideas/handlers"
	"tripideas/logger"
	"tripideas/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer logr.Sync()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	images := services.NewImageClient(cfg.ImageSearchAPIKey, cfg.SearchEngineID, cfg.ImageSearchURL, cfg.ImageTimeout, logr)
	if !images.Configured() {
		logr.Warn("GOOGLE_CSE_ID or image search key not set, images will only come from the AI")
	}

	srv := &handlers.Server{
		Config:   cfg,
		Enricher: services.NewEnricher(images, cfg.EnrichConcurrency),
		Logger:   logr,
	}

	// Only assign the interfaces when a client exists so they stay nil otherwise.
	if cfg.AIEnabled() {
		gemini, err := services.NewGeminiClient(context.Background(), cfg.GoogleAPIKey, cfg.Model, cfg.AITimeout, logr)
		if err != nil {
			logr.Error("Gemini init failed, AI disabled", zap.Error(err))
		} else {
			srv.Planner = gemini
			srv.Searcher = gemini
			logr.Info("Gemini initialized", zap.String("model", cfg.Model))
		}
	} else {
		logr.Warn("No GOOGLE_API_KEY, AI disabled", zap.String("mode", cfg.Mode))
	}

	r := handlers.NewRouter(srv)

	logr.Info("🚀 Trip Ideas backend starting", zap.String("port", cfg.Port), zap.String("mode", cfg.Mode))
	if err := r.Run(":" + cfg.Port); err != nil {
		logr.Fatal("Failed to start server", zap.Error(err))
	}
}
