package platform

import (
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return string(models.ReportTypePlatform) }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&models.PlatformReport{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, deps apps.Deps) {
	handler := NewHandler(NewService(deps.Reports, deps.Images))
	router.Post("/submit-onlineplatform", handler.Submit)
}
