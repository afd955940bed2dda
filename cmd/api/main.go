package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-planner/config"
	_ "travel-planner/docs" // Swagger docs
	"travel-planner/internal/httpserver"
	"travel-planner/internal/planner"
	plannerHTTP "travel-planner/internal/planner/delivery/http"
	"travel-planner/internal/planner/usecase"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/gemini"
	"travel-planner/pkg/log"
)

// @title       Travel Planner API
// @description AI-powered travel itinerary planner with budget tracking and Google Calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini client (optional: without it, sessions start without a key
	// and generation is gated until one is configured)
	var llm gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		llm, err = gemini.New(gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
			APIURL: cfg.Gemini.APIURL,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Gemini client: ", err)
			return
		}
		logger.Infof(ctx, "Gemini client initialized (model=%s)", llm.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY not set: itinerary generation disabled until a key is selected")
	}

	// 4. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Planner domain
	sessions := planner.NewSessionStore(time.Duration(cfg.Planner.SessionTTLMinutes) * time.Minute)
	plannerUC := usecase.New(logger, llm, calendar, sessions, cfg.Planner.Timezone, cfg.GoogleCalendar.CalendarID)
	plannerHandler := plannerHTTP.New(logger, plannerUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PlannerHandler:  plannerHandler,
		RateLimitPerMin: cfg.Planner.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
