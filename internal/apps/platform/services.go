package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/imagestore"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/store"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/validation"
	"github.com/google/uuid"
)

var ErrScreenshotUpload = errors.New("failed to upload screenshot")

type Service struct {
	reports   store.ReportStore
	images    imagestore.Store
	evaluator *risk.PlatformEvaluator
	builder   *risk.PlatformReportBuilder
	now       func() time.Time
}

func NewService(reports store.ReportStore, images imagestore.Store) *Service {
	return &Service{
		reports:   reports,
		images:    images,
		evaluator: risk.NewPlatformEvaluator(risk.DefaultPlatformRules()),
		builder:   risk.NewPlatformReportBuilder(),
		now:       time.Now,
	}
}

func (s *Service) withClock(now func() time.Time) *Service {
	s.now = now
	s.builder.WithClock(now)
	return s
}

// Submit validates, scores and persists a verification request. Unlike the
// romance flow a screenshot that fails to upload rejects the whole request.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	sub.Intake.normalize()
	if err := validation.Struct(sub.Intake); err != nil {
		return nil, err
	}
	form := sub.Intake.form()

	if sub.Screenshot != nil {
		img, err := s.images.Upload(ctx, *sub.Screenshot, imagestore.FolderPlatform)
		metrics.ImageUploaded(imagestore.FolderPlatform, err)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScreenshotUpload, err)
		}
		form.Screenshot = &img
	}

	assessment := s.evaluator.Evaluate(form)
	detailed := s.builder.Build(form, assessment)

	report := &models.PlatformReport{
		PlatformForm:   form,
		ID:             uuid.NewString(),
		RiskAssessment: assessment,
		DetailedReport: detailed,
		SubmissionDate: s.now().UTC(),
		Status:         models.StatusPending,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		if form.Screenshot != nil {
			slog.Error("platform screenshot orphaned", "public_id", form.Screenshot.PublicID, "error", err)
		}
		return nil, fmt.Errorf("failed to save platform report: %w", err)
	}

	metrics.ReportSubmitted(string(models.ReportTypePlatform), string(assessment.RiskLevel))
	slog.Info("report submitted",
		"report_type", models.ReportTypePlatform,
		"report_id", report.ID,
		"risk_level", assessment.RiskLevel,
	)

	return &Result{Report: report, RiskAssessment: assessment, DetailedReport: detailed}, nil
}
