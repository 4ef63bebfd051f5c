package platform

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/imagestore"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/testutils"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func validIntake() Intake {
	return Intake{
		FullName:           "Sam Lee",
		Email:              "  Sam.Lee@Example.com ",
		WebsiteURL:         "https://quickcoin.example.com",
		PlatformType:       "crypto",
		MoneyInvolved:      "yes",
		InvestmentAmount:   "$5000",
		SuspiciousFeatures: "guarantee quick profit",
		ContactMethods:     "none",
	}
}

func newTestService(reports *testutils.ReportStore, images *testutils.ImageStore) *Service {
	return NewService(reports, images).withClock(func() time.Time { return fixedNow })
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("scores and stores", func(t *testing.T) {
		reports := new(testutils.ReportStore)
		reports.On("Create", mock.Anything, mock.MatchedBy(func(r *models.PlatformReport) bool {
			return r.Email == "sam.lee@example.com" && r.Status == models.StatusPending
		})).Return(nil)

		res, err := newTestService(reports, new(testutils.ImageStore)).Submit(ctx, Submission{Intake: validIntake()})
		require.NoError(t, err)

		assert.Equal(t, 135, res.RiskAssessment.Score)
		assert.Equal(t, risk.LevelCritical, res.RiskAssessment.RiskLevel)
		assert.Equal(t, "$5000", res.DetailedReport.FinancialAmount)
		assert.Equal(t, "Not provided", res.DetailedReport.ScreenshotURL)
		assert.Equal(t, fixedNow, res.DetailedReport.SubmissionDate)
		reports.AssertExpectations(t)
	})

	t.Run("with screenshot", func(t *testing.T) {
		reports, images := new(testutils.ReportStore), new(testutils.ImageStore)
		images.On("Upload", mock.Anything, mock.Anything, imagestore.FolderPlatform).
			Return(risk.Image{URL: "https://img.example/s.png", PublicID: "s"}, nil)
		reports.On("Create", mock.Anything, mock.Anything).Return(nil)

		res, err := newTestService(reports, images).Submit(ctx, Submission{
			Intake:     validIntake(),
			Screenshot: &imagestore.Upload{Filename: "s.png"},
		})
		require.NoError(t, err)
		assert.True(t, res.DetailedReport.HasScreenshot)
		assert.Equal(t, "https://img.example/s.png", res.DetailedReport.ScreenshotURL)
	})

	t.Run("screenshot failure rejects request", func(t *testing.T) {
		reports, images := new(testutils.ReportStore), new(testutils.ImageStore)
		images.On("Upload", mock.Anything, mock.Anything, imagestore.FolderPlatform).
			Return(risk.Image{}, errors.New("timeout"))

		_, err := newTestService(reports, images).Submit(ctx, Submission{
			Intake:     validIntake(),
			Screenshot: &imagestore.Upload{Filename: "s.png"},
		})
		assert.ErrorIs(t, err, ErrScreenshotUpload)
		reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("investment amount required when money involved", func(t *testing.T) {
		in := validIntake()
		in.InvestmentAmount = ""
		_, err := newTestService(new(testutils.ReportStore), new(testutils.ImageStore)).Submit(ctx, Submission{Intake: in})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"investmentAmount"}, verr.Missing)
	})

	t.Run("investment amount optional otherwise", func(t *testing.T) {
		reports := new(testutils.ReportStore)
		reports.On("Create", mock.Anything, mock.Anything).Return(nil)

		in := validIntake()
		in.MoneyInvolved = "no"
		in.InvestmentAmount = ""
		res, err := newTestService(reports, new(testutils.ImageStore)).Submit(ctx, Submission{Intake: in})
		require.NoError(t, err)
		assert.Equal(t, "N/A", res.DetailedReport.FinancialAmount)
	})

	t.Run("invalid values", func(t *testing.T) {
		in := validIntake()
		in.WebsiteURL = "not a url"
		in.PlatformType = "forex"
		in.SuspiciousFeatures = "too short"
		in.ContactMethods = "email"
		_, err := newTestService(new(testutils.ReportStore), new(testutils.ImageStore)).Submit(ctx, Submission{Intake: in})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Empty(t, verr.Missing)
		assert.Equal(t, []string{"websiteURL", "platformType", "suspiciousFeatures", "contactMethods"}, verr.Invalid)
	})
}

func newTestApp(reports *testutils.ReportStore, images *testutils.ImageStore) *fiber.App {
	app := fiber.New()
	New().RegisterRoutes(app.Group("/api"), apps.Deps{Reports: reports, Images: images})
	return app
}

func intakeFields() map[string][]string {
	in := validIntake()
	return map[string][]string{
		"fullName":           {in.FullName},
		"email":              {in.Email},
		"websiteURL":         {in.WebsiteURL},
		"platformType":       {in.PlatformType},
		"moneyInvolved":      {in.MoneyInvolved},
		"investmentAmount":   {in.InvestmentAmount},
		"suspiciousFeatures": {in.SuspiciousFeatures},
		"contactMethods":     {in.ContactMethods},
	}
}

func TestHandlerSubmit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		reports := new(testutils.ReportStore)
		reports.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp, err := newTestApp(reports, new(testutils.ImageStore)).
			Test(testutils.MultipartRequest(t, "/api/submit-onlineplatform", intakeFields()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var body submissionBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Error)
		assert.Contains(t, body.Report.ReportID, "PV-")
		assert.Equal(t, risk.LevelCritical, body.RiskAssessment.RiskLevel)
	})

	t.Run("screenshot upload failure", func(t *testing.T) {
		images := new(testutils.ImageStore)
		images.On("Upload", mock.Anything, mock.Anything, imagestore.FolderPlatform).
			Return(risk.Image{}, imagestore.ErrNotConfigured)

		req := testutils.MultipartRequest(t, "/api/submit-onlineplatform", intakeFields(),
			testutils.File{Field: "screenshot", Filename: "s.png", Content: []byte("png")})
		resp, err := newTestApp(new(testutils.ReportStore), images).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Failed to upload screenshot", body["message"])
	})
}

type submissionBody struct {
	Error          bool                        `json:"error"`
	Report         risk.PlatformDetailedReport `json:"report"`
	RiskAssessment risk.Assessment             `json:"riskAssessment"`
}
