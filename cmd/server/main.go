package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/HAKEEM243/Masambukidi/internal/config"
	"github.com/HAKEEM243/Masambukidi/internal/handlers"
	"github.com/HAKEEM243/Masambukidi/internal/logging"
	"github.com/HAKEEM243/Masambukidi/internal/middleware"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/routes"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"github.com/HAKEEM243/Masambukidi/internal/store/memory"
	"github.com/HAKEEM243/Masambukidi/internal/store/postgres"
	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.AdminToken == "" {
		slog.Error("ADMIN_TOKEN environment variable is required")
		os.Exit(1)
	}
	if cfg.AdminPassword == "" {
		slog.Error("ADMIN_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Storage backend
	var stores *store.Stores
	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.Connect(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		stores = postgres.New(db)
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					slog.Error("database close error", "error", err)
				}
			}
		}()
	case "memory":
		stores = memory.New()
		// The memory backend starts cold on every boot.
		if err := services.SeedProfiles(stores.Profiles); err != nil {
			slog.Error("profile seeding failed", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("unknown STORAGE_DRIVER", "driver", cfg.StorageDriver)
		os.Exit(1)
	}
	slog.Info("storage ready", "driver", cfg.StorageDriver)

	// Persistent log handler (ERROR+ async batch)
	storeLogHandler := logging.NewStoreHandler(stores.SystemLogs)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		storeLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(stores.SystemLogs, cleanupDone)

	// Services
	clk := clock.New()
	refs := refcode.New(clk)

	authService, err := services.NewAuthService(cfg)
	if err != nil {
		slog.Error("admin credential setup failed", "error", err)
		os.Exit(1)
	}
	reportService := services.NewReportService(stores, refs, clk)
	whitelistService := services.NewWhitelistService(stores.Authorized, refs, clk)
	permissionService := services.NewPermissionService(stores.Permissions, refs, clk)
	legalService := services.NewLegalService(stores.LegalCases, stores.Reports, refs, clk)
	alertService := services.NewAlertService(stores.Alerts, stores.Subscribers, clk)
	analysisService := services.NewAnalysisService()
	profileService := services.NewProfileService(stores.Profiles)

	// Handlers
	h := &routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Reports:   handlers.NewReportHandler(reportService),
		Whitelist: handlers.NewWhitelistHandler(whitelistService),
		Perms:     handlers.NewPermissionHandler(permissionService),
		Legal:     handlers.NewLegalHandler(legalService, clk),
		Alerts:    handlers.NewAlertHandler(alertService),
		Analysis:  handlers.NewAnalysisHandler(analysisService),
		Profiles:  handlers.NewProfileHandler(profileService),
		Health:    handlers.NewHealthHandler(cfg, clk),
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	storeLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Erreur serveur"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose details for client errors (4xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Erreur serveur"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
