package dto

import (
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Type   string `json:"type"`
}

type ReportResponse struct {
	Report models.Report     `json:"report"`
	Type   models.ReportType `json:"type"`
}

type ReportListResponse struct {
	Romance  []models.Report `json:"romance"`
	Platform []models.Report `json:"platform"`
	Vendor   []models.Report `json:"vendor"`
}

type RomanceSubmissionResponse struct {
	Error          bool                  `json:"error"`
	Report         *models.RomanceReport `json:"report"`
	RiskAssessment risk.Assessment       `json:"riskAssessment"`
	DetailedReport risk.DetailedReport   `json:"detailedReport"`
}

// PlatformSubmissionResponse carries the detailed report under "report".
type PlatformSubmissionResponse struct {
	Error          bool                        `json:"error"`
	Report         risk.PlatformDetailedReport `json:"report"`
	RiskAssessment risk.Assessment             `json:"riskAssessment"`
}

type VendorSubmissionResponse struct {
	Error          bool                 `json:"error"`
	Report         *models.VendorReport `json:"report"`
	RiskAssessment risk.Assessment      `json:"riskAssessment"`
}
