package models

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
)

type ReportType string

const (
	ReportTypeRomance  ReportType = "romance"
	ReportTypePlatform ReportType = "platform"
	ReportTypeVendor   ReportType = "vendor"
)

// ReportTypes is the lookup order used when a report is fetched by id alone.
var ReportTypes = []ReportType{ReportTypeRomance, ReportTypePlatform, ReportTypeVendor}

func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeRomance, ReportTypePlatform, ReportTypeVendor:
		return true
	}
	return false
}

type ReportStatus string

const (
	StatusPending   ReportStatus = "pending"
	StatusInReview  ReportStatus = "in-review"
	StatusCompleted ReportStatus = "completed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusCompleted:
		return true
	}
	return false
}

// Report is implemented by the three persisted report kinds.
type Report interface {
	ReportID() string
	Type() ReportType
	Assessment() risk.Assessment
	SetStatus(ReportStatus)
}

// RomanceReport is a romance-scam submission with its scoring and detailed report.
type RomanceReport struct {
	risk.RomanceForm `bson:",inline"`

	ID             string              `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	RiskAssessment risk.Assessment     `gorm:"type:jsonb;serializer:json" json:"riskAssessment" bson:"riskAssessment"`
	DetailedReport risk.DetailedReport `gorm:"type:jsonb;serializer:json" json:"detailedReport" bson:"detailedReport"`
	SubmissionDate time.Time           `gorm:"not null;index" json:"submissionDate" bson:"submissionDate"`
	Status         ReportStatus        `gorm:"size:20;not null;default:'pending';index" json:"status" bson:"status"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

func (RomanceReport) TableName() string { return "romance_reports" }

func (r *RomanceReport) ReportID() string { return r.ID }
func (r *RomanceReport) Type() ReportType { return ReportTypeRomance }
func (r *RomanceReport) Assessment() risk.Assessment { return r.RiskAssessment }
func (r *RomanceReport) SetStatus(s ReportStatus) { r.Status = s }

// PlatformReport is an online-platform verification request.
type PlatformReport struct {
	risk.PlatformForm `bson:",inline"`

	ID             string                      `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	RiskAssessment risk.Assessment             `gorm:"type:jsonb;serializer:json" json:"riskAssessment" bson:"riskAssessment"`
	DetailedReport risk.PlatformDetailedReport `gorm:"type:jsonb;serializer:json" json:"detailedReport" bson:"detailedReport"`
	SubmissionDate time.Time                   `gorm:"not null;index" json:"submissionDate" bson:"submissionDate"`
	Status         ReportStatus                `gorm:"size:20;not null;default:'pending';index" json:"status" bson:"status"`
	CreatedAt      time.Time                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt" bson:"updatedAt"`
}

func (PlatformReport) TableName() string { return "platform_reports" }

func (r *PlatformReport) ReportID() string { return r.ID }
func (r *PlatformReport) Type() ReportType { return ReportTypePlatform }
func (r *PlatformReport) Assessment() risk.Assessment { return r.RiskAssessment }
func (r *PlatformReport) SetStatus(s ReportStatus) { r.Status = s }

// VendorReport is a social-media vendor check.
type VendorReport struct {
	risk.VendorForm `bson:",inline"`

	ID             string          `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	RiskAssessment risk.Assessment `gorm:"type:jsonb;serializer:json" json:"riskAssessment" bson:"riskAssessment"`
	SubmissionDate time.Time       `gorm:"not null;index" json:"submissionDate" bson:"submissionDate"`
	Status         ReportStatus    `gorm:"size:20;not null;default:'pending';index" json:"status" bson:"status"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
}

func (VendorReport) TableName() string { return "vendor_reports" }

func (r *VendorReport) ReportID() string { return r.ID }
func (r *VendorReport) Type() ReportType { return ReportTypeVendor }
func (r *VendorReport) Assessment() risk.Assessment { return r.RiskAssessment }
func (r *VendorReport) SetStatus(s ReportStatus) { r.Status = s }

// ReportModels lists the report tables for AutoMigrate.
func ReportModels() []interface{} {
	return []interface{}{&RomanceReport{}, &PlatformReport{}, &VendorReport{}}
}
