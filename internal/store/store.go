package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// ReportStore persists submitted reports of every type.
type ReportStore interface {
	Create(ctx context.Context, r models.Report) error
	FindByID(ctx context.Context, kind models.ReportType, id string) (models.Report, error)
	// List returns reports of one type, newest submission first.
	List(ctx context.Context, kind models.ReportType) ([]models.Report, error)
	// UpdateStatus changes an existing report's status. It never creates one.
	UpdateStatus(ctx context.Context, kind models.ReportType, id string, status models.ReportStatus) (models.Report, error)
	Ping(ctx context.Context) error
}

type AnalystStore interface {
	CreateAnalyst(ctx context.Context, a *models.Analyst) error
	FindAnalystByEmail(ctx context.Context, email string) (*models.Analyst, error)
	FindAnalystByID(ctx context.Context, id string) (*models.Analyst, error)
}

// Store is what a backend has to provide.
type Store interface {
	ReportStore
	AnalystStore
}

func newReport(kind models.ReportType) (models.Report, error) {
	switch kind {
	case models.ReportTypeRomance:
		return &models.RomanceReport{}, nil
	case models.ReportTypePlatform:
		return &models.PlatformReport{}, nil
	case models.ReportTypeVendor:
		return &models.VendorReport{}, nil
	}
	return nil, fmt.Errorf("unknown report type %q", kind)
}

// validID reports whether id could be a stored key. Malformed ids are
// treated as absent rather than as errors.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
