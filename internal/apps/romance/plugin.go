package romance

import (
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/gofiber/fiber/v2"
)

type Plugin struct {
	evaluator risk.RomanceEvaluator
}

func New(evaluator risk.RomanceEvaluator) *Plugin {
	return &Plugin{evaluator: evaluator}
}

func (p *Plugin) ID() string { return string(models.ReportTypeRomance) }

func (p *Plugin) Models() []interface{} {
	return []interface{}{&models.RomanceReport{}}
}

func (p *Plugin) RegisterRoutes(router fiber.Router, deps apps.Deps) {
	handler := NewHandler(NewService(deps.Reports, deps.Images, p.evaluator))
	router.Post("/submit-romance", handler.Submit)
}
