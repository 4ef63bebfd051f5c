package middleware

import (
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

// AdminChecker decides whether a request is made by an administrator:
// 1. X-Admin-Token header matching ADMIN_TOKEN
// 2. stored analyst role
// Token claims other than sub are never trusted; signup does not verify email.
type AdminChecker struct {
	analysts store.AnalystStore
	token    string
}

func NewAdminChecker(analysts store.AnalystStore, cfg *config.Config) *AdminChecker {
	return &AdminChecker{
		analysts: analysts,
		token:    cfg.AdminToken,
	}
}

func (a *AdminChecker) IsAdmin(c *fiber.Ctx) bool {
	if a.token != "" {
		if got := c.Get("X-Admin-Token"); got != "" &&
			subtle.ConstantTimeCompare([]byte(got), []byte(a.token)) == 1 {
			return true
		}
	}

	claims, ok := GetClaims(c)
	if !ok {
		return false
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return false
	}
	analyst, err := a.analysts.FindAnalystByID(c.UserContext(), sub)
	return err == nil && analyst.Role == models.RoleAdmin
}

// AdminRequired must run after JWTProtected.
func AdminRequired(admins *AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := GetClaims(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if admins.IsAdmin(c) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
