package platform

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/imagestore"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
)

// Intake is the multipart platform verification request as submitted.
type Intake struct {
	FullName           string `form:"fullName" validate:"required"`
	Email              string `form:"email" validate:"required,report_email"`
	WebsiteURL         string `form:"websiteURL" validate:"required,website"`
	PlatformType       string `form:"platformType" validate:"required,oneof=investment ecommerce crypto gaming social other"`
	MoneyInvolved      string `form:"moneyInvolved" validate:"required,oneof=yes no"`
	InvestmentAmount   string `form:"investmentAmount" validate:"required_if=MoneyInvolved yes"`
	SuspiciousFeatures string `form:"suspiciousFeatures" validate:"required,min=10"`
	ContactMethods     string `form:"contactMethods" validate:"required,oneof=full limited none"`
}

func (in *Intake) normalize() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)
}

func (in Intake) form() risk.PlatformForm {
	return risk.PlatformForm{
		FullName:           in.FullName,
		Email:              in.Email,
		WebsiteURL:         in.WebsiteURL,
		PlatformType:       in.PlatformType,
		MoneyInvolved:      in.MoneyInvolved,
		InvestmentAmount:   in.InvestmentAmount,
		SuspiciousFeatures: in.SuspiciousFeatures,
		ContactMethods:     in.ContactMethods,
	}
}

// Submission is an intake plus the optional screenshot.
type Submission struct {
	Intake     Intake
	Screenshot *imagestore.Upload
}

type Result struct {
	Report         *models.PlatformReport
	RiskAssessment risk.Assessment
	DetailedReport risk.PlatformDetailedReport
}
