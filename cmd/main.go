package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/hanifn/suara/adapters/storage"
	"github.com/hanifn/suara/adapters/tts"
	"github.com/hanifn/suara/internal/api"
	"github.com/hanifn/suara/internal/config"
	"github.com/hanifn/suara/internal/sweeper"
	"github.com/hanifn/suara/usecase"
)

const sweepInterval = 10 * time.Minute

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env when present; real deployments set the environment directly.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize adapters
	synthesizer, err := tts.NewElevenLabs(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize speech synthesizer", zap.Error(err))
	}
	store := storage.NewLocalStore(cfg.Storage.Path, cfg.Storage.PublicBaseURL)

	// Initialize usecase services
	speechService := usecase.NewSpeechService(synthesizer, store, cfg, logger)

	// Start the background storage sweeper
	sweep := sweeper.NewService(speechService, sweepInterval, logger)
	sweep.Start()
	defer sweep.Stop()

	// Initialize API routes
	api.InitRoutes(e, speechService, cfg, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("storagePath", cfg.Storage.Path),
		zap.Duration("artifactTTL", cfg.Storage.TTL))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
