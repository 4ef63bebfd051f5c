package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps/platform"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps/romance"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps/vendor"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Hour}
	reports, analysts := new(testutils.ReportStore), new(testutils.AnalystStore)
	reports.On("Ping", mock.Anything).Return(nil)
	admins := middleware.NewAdminChecker(analysts, cfg)

	app := fiber.New()
	Setup(app, cfg, admins, Handlers{
		Auth:   handlers.NewAuthHandler(services.NewAuthService(analysts, cfg), admins),
		Health: handlers.NewHealthHandler(reports, "postgres"),
		Report: handlers.NewReportHandler(services.NewReportService(reports)),
	}, []apps.Plugin{
		romance.New(risk.NewRuleSetB(risk.DefaultRomanceRulesB())),
		platform.New(),
		vendor.New(),
	}, apps.Deps{Reports: reports, Images: new(testutils.ImageStore)})
	return app
}

func TestSetup(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/api/health", fiber.StatusOK},
		{"GET", "/metrics", fiber.StatusOK},
		{"GET", "/api/reports", fiber.StatusUnauthorized},
		{"PATCH", "/api/reports/abc", fiber.StatusUnauthorized},
		{"GET", "/api/auth/check-admin", fiber.StatusUnauthorized},
		// Empty multipart bodies fail body parsing or validation, never routing.
		{"POST", "/api/submit-romance", fiber.StatusBadRequest},
		{"POST", "/api/submit-onlineplatform", fiber.StatusBadRequest},
		{"POST", "/api/submit-socialvendor", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuthRateLimit(t *testing.T) {
	app := newTestApp(t)

	var last int
	for i := 0; i < 11; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/login", nil))
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}
