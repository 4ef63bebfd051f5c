package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/store"
)

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrMissingFields     = errors.New("status and type are required")
	ErrInvalidStatus     = errors.New("invalid status: must be pending, in-review or completed")
	ErrInvalidReportType = errors.New("invalid type: must be romance, platform or vendor")
)

// ReportService backs the analyst dashboard: listing, lookup and the
// pending -> in-review -> completed status workflow. Any status may be set
// from any other; concurrent updates are last-write-wins.
type ReportService struct {
	reports store.ReportStore
}

func NewReportService(reports store.ReportStore) *ReportService {
	return &ReportService{reports: reports}
}

func (s *ReportService) ListAll(ctx context.Context) (*dto.ReportListResponse, error) {
	var out dto.ReportListResponse
	for _, t := range models.ReportTypes {
		list, err := s.reports.List(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("list %s reports: %w", t, err)
		}
		switch t {
		case models.ReportTypeRomance:
			out.Romance = list
		case models.ReportTypePlatform:
			out.Platform = list
		case models.ReportTypeVendor:
			out.Vendor = list
		}
	}
	return &out, nil
}

// Get looks the id up in romance, platform then vendor reports.
func (s *ReportService) Get(ctx context.Context, id string) (models.Report, models.ReportType, error) {
	for _, t := range models.ReportTypes {
		r, err := s.reports.FindByID(ctx, t, id)
		if err == nil {
			return r, t, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, "", err
		}
	}
	return nil, "", ErrReportNotFound
}

func (s *ReportService) UpdateStatus(ctx context.Context, id, reportType, status string) (models.Report, error) {
	if status == "" || reportType == "" {
		return nil, ErrMissingFields
	}
	st := models.ReportStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	t := models.ReportType(reportType)
	if !t.Valid() {
		return nil, ErrInvalidReportType
	}

	r, err := s.reports.UpdateStatus(ctx, t, id, st)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return r, nil
}
