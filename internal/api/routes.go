package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hanifn/suara/adapters/tts"
	"github.com/hanifn/suara/internal/config"
	"github.com/hanifn/suara/usecase"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, service *usecase.SpeechService, cfg *config.Config, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "suara",
		})
	})

	// Artifacts are public under the configured prefix when it is a
	// local path rather than an external URL.
	if strings.HasPrefix(cfg.Storage.PublicBaseURL, "/") {
		e.Static(cfg.Storage.PublicBaseURL, cfg.Storage.Path)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.POST("/speech", func(c echo.Context) error {
		return synthesizeSpeech(c, service, logger)
	}, perMinuteRateLimiter(cfg.SpeechPerMinute))

	v1.GET("/voices", func(c echo.Context) error {
		return listVoices(c, service, logger)
	}, perMinuteRateLimiter(cfg.VoicesPerMinute))
}

// perMinuteRateLimiter admits up to perMinute requests per minute per
// client IP and rejects the rest with 429 before the handler runs.
func perMinuteRateLimiter(perMinute int) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(perMinute) / 60.0),
			Burst: perMinute,
		},
	))
}

func synthesizeSpeech(c echo.Context, service *usecase.SpeechService, logger *zap.Logger) error {
	var req SynthesisRequest

	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind synthesis request", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Success: false,
			Message: "validation error",
			Errors:  map[string][]string{"body": {"invalid request format"}},
		})
	}

	result, err := service.Synthesize(c.Request().Context(), req.Text, req.VoiceID)
	if err != nil {
		return synthesisFailure(c, err, logger)
	}

	return c.JSON(http.StatusOK, SynthesisResponse{
		Success:    true,
		Message:    "speech synthesized successfully",
		AudioURL:   result.URL,
		TextLength: result.TextLength,
	})
}

func listVoices(c echo.Context, service *usecase.SpeechService, logger *zap.Logger) error {
	voices, err := service.Voices(c.Request().Context())
	if err != nil {
		return synthesisFailure(c, err, logger)
	}

	return c.JSON(http.StatusOK, VoicesResponse{
		Success: true,
		Voices:  voices,
	})
}

// synthesisFailure renders the error envelope: field-level detail for
// validation failures, the classified message and code for remote
// failures, and a generic 500 for everything else.
func synthesisFailure(c echo.Context, err error, logger *zap.Logger) error {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Success: false,
			Message: "validation error",
			Errors:  map[string][]string{validationErr.Field: {validationErr.Message}},
		})
	}

	var synthErr *tts.SynthesisError
	if errors.As(err, &synthErr) {
		status := http.StatusBadRequest
		if synthErr.StatusCode >= http.StatusInternalServerError {
			status = http.StatusInternalServerError
		}
		return c.JSON(status, ErrorResponse{
			Success:   false,
			Message:   synthErr.Message,
			ErrorCode: synthErr.StatusCode,
		})
	}

	logger.Error("Unclassified failure", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: "internal server error",
	})
}
