package romance

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Submit(c *fiber.Ctx) error {
	var sub Submission
	if err := c.BodyParser(&sub.Intake); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if fh, err := c.FormFile("photoUpload"); err == nil {
		upload, f, err := apps.OpenUpload(fh)
		if err != nil {
			slog.Warn("failed to read romance photo", "error", err)
		} else {
			defer f.Close()
			sub.Photo = &upload
		}
	}

	res, err := h.service.Submit(c.UserContext(), sub)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: verr.Message(),
			})
		}
		slog.Error("romance report submission failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Report submission failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RomanceSubmissionResponse{
		Report:         res.Report,
		RiskAssessment: res.RiskAssessment,
		DetailedReport: res.DetailedReport,
	})
}
