package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
	Report *handlers.ReportHandler
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	admins *middleware.AdminChecker,
	h Handlers,
	plugins []apps.Plugin,
	deps apps.Deps,
) {
	// Prometheus scrape endpoint, outside the API rate limit
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", h.Auth.Signup)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/check-admin", middleware.JWTProtected(cfg), h.Auth.CheckAdmin)

	// Analyst dashboard (JWT + admin)
	reports := api.Group("/reports", middleware.JWTProtected(cfg), middleware.AdminRequired(admins))
	reports.Get("/", h.Report.List)
	reports.Get("/:id", h.Report.Get)
	reports.Patch("/:id", h.Report.UpdateStatus)

	// Public report submission, one plugin per report type
	for _, p := range plugins {
		p.RegisterRoutes(api, deps)
	}
}
