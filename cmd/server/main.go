package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps/platform"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps/romance"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps/vendor"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/imagestore"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Structured logging (JSON to stdout)
	stdout := logging.Setup(os.Stdout)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	evaluator, err := risk.NewRomanceEvaluator(cfg.RomanceRuleSet)
	if err != nil {
		slog.Error("invalid romance rule set", "rule_set", cfg.RomanceRuleSet, "error", err)
		os.Exit(1)
	}

	plugins := []apps.Plugin{
		romance.New(evaluator),
		platform.New(),
		vendor.New(),
	}

	ctx := context.Background()

	// Persistence
	var (
		reportStore  store.Store
		mongoDB      *mongo.Database
		pgLogHandler *logging.PGHandler
		cleanupDone  = make(chan struct{})
	)
	switch cfg.StoreBackend {
	case "mongo":
		mongoDB, err = database.ConnectMongo(ctx, cfg)
		if err != nil {
			slog.Error("mongodb connection failed", "error", err)
			os.Exit(1)
		}
		ms := store.NewMongoStore(mongoDB)
		if err := ms.EnsureIndexes(ctx); err != nil {
			slog.Error("mongodb index creation failed", "error", err)
			os.Exit(1)
		}
		reportStore = ms

	default:
		if err := database.Connect(cfg); err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := database.MigrateShared(); err != nil {
			slog.Error("shared migration failed", "error", err)
			os.Exit(1)
		}
		for _, p := range plugins {
			if err := database.MigrateModels(p.Models()); err != nil {
				slog.Error("plugin migration failed", "plugin", p.ID(), "error", err)
				os.Exit(1)
			}
			slog.Info("plugin migrated", "plugin", p.ID())
		}

		// PostgreSQL log handler (ERROR+ async batch)
		pgLogHandler = logging.NewPGHandler(database.DB)
		logging.Attach(stdout, pgLogHandler)
		logging.StartCleanup(database.DB, cfg.LogRetentionDays, cleanupDone)

		reportStore = store.NewGormStore(database.DB)
	}

	images, err := newImageStore(ctx, cfg)
	if err != nil {
		slog.Error("image store init failed", "image_store", cfg.ImageStore, "error", err)
		os.Exit(1)
	}

	// Services and handlers
	admins := middleware.NewAdminChecker(reportStore, cfg)
	authService := services.NewAuthService(reportStore, cfg)
	reportService := services.NewReportService(reportStore)

	h := routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService, admins),
		Health: handlers.NewHealthHandler(reportStore, cfg.StoreBackend),
		Report: handlers.NewReportHandler(reportService),
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
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
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.Metrics())
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, admins, h, plugins, apps.Deps{Reports: reportStore, Images: images})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "store", cfg.StoreBackend, "image_store", cfg.ImageStore)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	if pgLogHandler != nil {
		pgLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	// Close database connections
	if mongoDB != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := database.DisconnectMongo(shutdownCtx, mongoDB); err != nil {
			slog.Error("mongodb disconnect error", "error", err)
		}
		cancel()
	}
	if err := database.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func newImageStore(ctx context.Context, cfg *config.Config) (imagestore.Store, error) {
	switch cfg.ImageStore {
	case "cloudinary":
		return imagestore.NewCloudinary(imagestore.CloudinaryConfig{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
		})
	case "s3":
		return imagestore.NewS3(ctx, imagestore.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3BaseURL,
		})
	case "none", "":
		slog.Warn("image storage disabled, uploads will be rejected")
		return imagestore.Disabled{}, nil
	}
	return nil, fmt.Errorf("unknown image store %q", cfg.ImageStore)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"trace_id", c.Locals("requestid"),
			"error", err.Error(),
		)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
