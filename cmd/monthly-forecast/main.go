package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/monthly-forecast/internal/api/http"
	"github.com/i474232898/monthly-forecast/internal/cache"
	"github.com/i474232898/monthly-forecast/internal/config"
	"github.com/i474232898/monthly-forecast/internal/forecast"
	"github.com/i474232898/monthly-forecast/internal/forecast/providers"
	"github.com/i474232898/monthly-forecast/internal/geo"
	"github.com/i474232898/monthly-forecast/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Credential chain: secrets file, environment, interactive prompt.
	apiKey := config.ResolveAPIKey(os.Stdin, os.Stderr)
	if apiKey == "" {
		log.Fatal("no weather API key configured; set WEATHER_API_KEY or provide a secrets file")
	}
	cfg.WeatherAPIKey = apiKey

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Report cache with configured retention.
	reportCache := cache.New(cfg.CacheTTL, cfg.CacheFailures)

	provider := providers.NewVisualCrossingProvider(httpClient, cfg.WeatherAPIKey)

	// Optional geocoding of free-text city names to coordinates.
	var resolver forecast.LocationResolver
	if cfg.GeocoderAPIKey != "" {
		resolver = geo.New(cfg.GeocoderAPIKey)
	}

	// Core service orchestrating provider and cache.
	service := forecast.NewService(provider, reportCache, resolver)

	// Periodic eviction of expired cache entries.
	sweeper := scheduler.New(reportCache, cfg.CacheSweepInterval)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("failed to start cache sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "monthly-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "monthly-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
