package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"one-on-one-backend/internal/api/routes"
	"one-on-one-backend/internal/config"
	"one-on-one-backend/internal/database"
	"one-on-one-backend/internal/observability"
	"one-on-one-backend/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "one-on-one-backend/docs" // This is needed for swag
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

const shutdownTimeout = 15 * time.Second

//	@title			One-on-One Review API
//	@version		1.0
//	@description	Backend API for monthly developer/manager one-on-one reviews: teams, sessions, answers, action items, metrics and notifications.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize tracing
	shutdownTracing, err := observability.InitTracing(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize tracing:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	app, err := routes.SetupRoutes(ctx, db, cfg, version)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Background jobs
	var jobs *scheduler.Scheduler
	var locker *scheduler.RedisLocker
	if cfg.SchedulerEnabled {
		var gocronLocker gocron.Locker
		if cfg.RedisURL != "" {
			locker, err = scheduler.NewRedisLocker(ctx, cfg.RedisURL, 10*time.Minute)
			if err != nil {
				logrus.Fatal("Failed to initialize job locker:", err)
			}
			gocronLocker = locker
		}
		jobs, err = scheduler.New(cfg, app.Notifications, app.Metrics, gocronLocker)
		if err != nil {
			logrus.Fatal("Failed to initialize scheduler:", err)
		}
		jobs.Start()
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown failed")
	}
	if jobs != nil {
		if err := jobs.Shutdown(); err != nil {
			logrus.WithError(err).Error("Scheduler shutdown failed")
		}
	}
	if locker != nil {
		_ = locker.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Tracing shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
