package romance

import (
	"context"
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

// Service scores and stores romance-scam reports.
type Service struct {
	reports   store.ReportStore
	images    imagestore.Store
	evaluator risk.RomanceEvaluator
	builder   *risk.RomanceReportBuilder
	now       func() time.Time
}

func NewService(reports store.ReportStore, images imagestore.Store, evaluator risk.RomanceEvaluator) *Service {
	return &Service{
		reports:   reports,
		images:    images,
		evaluator: evaluator,
		builder:   risk.NewRomanceReportBuilder(risk.DefaultRomanceReportRules()),
		now:       time.Now,
	}
}

func (s *Service) withClock(now func() time.Time) *Service {
	s.now = now
	s.builder.WithClock(now)
	return s
}

// Submit validates, scores and persists one report. A failed photo upload
// does not stop the submission; the report is stored without the photo.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	sub.Intake.normalize()
	if err := validation.Struct(sub.Intake); err != nil {
		return nil, err
	}
	form := sub.Intake.form()

	if sub.Photo != nil && form.SharedPhotosVideos == "yes" && form.PhotosAuthentic == "yes" {
		img, err := s.images.Upload(ctx, *sub.Photo, imagestore.FolderRomance)
		metrics.ImageUploaded(imagestore.FolderRomance, err)
		if err != nil {
			slog.Warn("romance photo upload failed, continuing without photo", "error", err)
		} else {
			form.PhotoUpload = &img
		}
	}

	assessment := s.evaluator.Evaluate(form)
	detailed := s.builder.Build(form, assessment)

	report := &models.RomanceReport{
		RomanceForm:    form,
		ID:             uuid.NewString(),
		RiskAssessment: assessment,
		DetailedReport: detailed,
		SubmissionDate: s.now().UTC(),
		Status:         models.StatusPending,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		if form.PhotoUpload != nil {
			slog.Error("romance photo orphaned", "public_id", form.PhotoUpload.PublicID, "error", err)
		}
		return nil, fmt.Errorf("failed to save romance report: %w", err)
	}

	metrics.ReportSubmitted(string(models.ReportTypeRomance), string(assessment.RiskLevel))
	slog.Info("report submitted",
		"report_type", models.ReportTypeRomance,
		"report_id", report.ID,
		"risk_level", assessment.RiskLevel,
	)

	return &Result{Report: report, RiskAssessment: assessment, DetailedReport: detailed}, nil
}
