package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"gorm.io/gorm"
)

// GormStore keeps reports and analysts in PostgreSQL.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, r models.Report) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("create %s report: %w", r.Type(), err)
	}
	return nil
}

func (s *GormStore) FindByID(ctx context.Context, kind models.ReportType, id string) (models.Report, error) {
	r, err := newReport(kind)
	if err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}

	if err := s.db.WithContext(ctx).First(r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s report: %w", kind, err)
	}
	return r, nil
}

func (s *GormStore) List(ctx context.Context, kind models.ReportType) ([]models.Report, error) {
	switch kind {
	case models.ReportTypeRomance:
		return findAll[models.RomanceReport](ctx, s.db)
	case models.ReportTypePlatform:
		return findAll[models.PlatformReport](ctx, s.db)
	case models.ReportTypeVendor:
		return findAll[models.VendorReport](ctx, s.db)
	}
	return nil, fmt.Errorf("unknown report type %q", kind)
}

func findAll[T any, PT interface {
	*T
	models.Report
}](ctx context.Context, db *gorm.DB) ([]models.Report, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("submission_date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	out := make([]models.Report, len(rows))
	for i := range rows {
		out[i] = PT(&rows[i])
	}
	return out, nil
}

func (s *GormStore) UpdateStatus(ctx context.Context, kind models.ReportType, id string, status models.ReportStatus) (models.Report, error) {
	r, err := s.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).Model(r).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("update %s report status: %w", kind, result.Error)
	}
	// Deleted between the read and the write.
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	r.SetStatus(status)
	return r, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) CreateAnalyst(ctx context.Context, a *models.Analyst) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("create analyst: %w", err)
	}
	return nil
}

func (s *GormStore) FindAnalystByEmail(ctx context.Context, email string) (*models.Analyst, error) {
	var a models.Analyst
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find analyst: %w", err)
	}
	return &a, nil
}

func (s *GormStore) FindAnalystByID(ctx context.Context, id string) (*models.Analyst, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var a models.Analyst
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find analyst: %w", err)
	}
	return &a, nil
}
