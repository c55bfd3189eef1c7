package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	httpapi "github.com/i474232898/sloc-weather/internal/api/http"
	"github.com/i474232898/sloc-weather/internal/config"
	"github.com/i474232898/sloc-weather/internal/scheduler"
	"github.com/i474232898/sloc-weather/internal/store"
	"github.com/i474232898/sloc-weather/internal/weather"
	"github.com/i474232898/sloc-weather/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Failed to load config")
	}
	log.SetLevel(cfg.LogLevel)

	opts := cfg.WeatherOptions()
	labels := weather.NewLabels(cfg.LanguageTag(), nil)

	manual := providers.NewManual(opts...)
	if cfg.Latitude != "" || cfg.Longitude != "" {
		if !manual.SetLocation(cfg.Latitude, cfg.Longitude) {
			log.WithFields(log.Fields{
				"latitude":  cfg.Latitude,
				"longitude": cfg.Longitude,
			}).Warn("Ignoring invalid configured location")
		}
	}
	if err := manual.Set(cfg.ManualConditions()); err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("Ignoring invalid manual conditions")
	}

	// Providers with resilience (backoff + circuit breaker). Manual never
	// fails; the wrapper guards providers that fetch from external APIs.
	provs := []weather.Provider{
		providers.NewResilient(manual, providers.DefaultBackoff),
	}

	// Core service orchestrating providers and the conditions cache.
	cache := store.NewMemoryStore()
	service := weather.NewService(cache, provs)

	// Scheduler that periodically refreshes cached conditions and drops
	// expired entries.
	sched := scheduler.New(cfg.RefreshInterval, service, cache)
	if err := sched.Start(); err != nil {
		log.WithFields(log.Fields{"err": err}).Fatal("Failed to start scheduler")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "sloc-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "sloc-weather",
		})
	})

	httpapi.RegisterRoutes(app, service, labels)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithFields(log.Fields{"err": err}).Error("Fiber server stopped")
		}
	}()
	log.WithFields(log.Fields{"port": cfg.Port, "providers": service.Providers()}).Info("Weather service started")

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Error during shutdown")
	}
}
