package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformEvaluator_CryptoWithoutContactIsCritical(t *testing.T) {
	f := PlatformForm{
		MoneyInvolved:      "yes",
		InvestmentAmount:   "$5000",
		ContactMethods:     "none",
		PlatformType:       "crypto",
		SuspiciousFeatures: "guarantee quick profit",
	}

	a := NewPlatformEvaluator(DefaultPlatformRules()).Evaluate(f)

	assert.Equal(t, 135, a.Score)
	assert.Equal(t, LevelCritical, a.RiskLevel)
	assert.Equal(t, []string{
		"Platform requires monetary investment",
		"High investment amount required",
		"No contact information available",
		"Cryptocurrency platform - high volatility risk",
		"Contains suspicious keyword: guarantee",
		"Contains suspicious keyword: quick",
	}, a.RiskFactors)
	require.Len(t, a.Recommendations, 6)
	assert.Equal(t, `Be cautious of platforms using "quick" tactics`, a.Recommendations[5])
}

func TestPlatformEvaluator_ZeroScoreOverride(t *testing.T) {
	f := PlatformForm{
		MoneyInvolved:      "no",
		ContactMethods:     "full",
		PlatformType:       "ecommerce",
		SuspiciousFeatures: "looks fine to me",
	}

	a := NewPlatformEvaluator(DefaultPlatformRules()).Evaluate(f)

	assert.Equal(t, 0, a.Score)
	assert.Equal(t, LevelLow, a.RiskLevel)
	assert.Equal(t, []string{"No immediate risk factors detected"}, a.RiskFactors)
	require.Len(t, a.Recommendations, 1)
	assert.Contains(t, a.Recommendations[0], "secure payment platforms like PayPal")
}

func TestPlatformEvaluator_Thresholds(t *testing.T) {
	eval := NewPlatformEvaluator(DefaultPlatformRules())

	a := eval.Evaluate(PlatformForm{MoneyInvolved: "yes", InvestmentAmount: "1,000"})
	assert.Equal(t, 30, a.Score)
	assert.Equal(t, LevelMedium, a.RiskLevel)

	a = eval.Evaluate(PlatformForm{ContactMethods: "limited", PlatformType: "gaming"})
	assert.Equal(t, 30, a.Score)
	assert.Equal(t, LevelMedium, a.RiskLevel)

	a = eval.Evaluate(PlatformForm{ContactMethods: "none", SuspiciousFeatures: "Secret deal"})
	assert.Equal(t, 45, a.Score)
	assert.Equal(t, LevelMedium, a.RiskLevel)

	a = eval.Evaluate(PlatformForm{ContactMethods: "none", PlatformType: "crypto"})
	assert.Equal(t, 50, a.Score)
	assert.Equal(t, LevelHigh, a.RiskLevel)

	a = eval.Evaluate(PlatformForm{ContactMethods: "none", PlatformType: "crypto", SuspiciousFeatures: "guarantee"})
	assert.Equal(t, 75, a.Score)
	assert.Equal(t, LevelCritical, a.RiskLevel)
}

func TestPlatformEvaluator_UnparseableAmountIsSmall(t *testing.T) {
	a := NewPlatformEvaluator(DefaultPlatformRules()).Evaluate(PlatformForm{MoneyInvolved: "yes", InvestmentAmount: "a lot"})

	assert.Equal(t, []string{"Platform requires monetary investment"}, a.RiskFactors)
}

func TestPlatformReportBuilder(t *testing.T) {
	eval := NewPlatformEvaluator(DefaultPlatformRules())
	b := NewPlatformReportBuilder().WithClock(fixedClock).WithIDs(func(time.Time) string { return "PV-TEST" })

	t.Run("risky platform", func(t *testing.T) {
		f := PlatformForm{
			WebsiteURL:         "https://coinmax.example",
			PlatformType:       "crypto",
			ContactMethods:     "none",
			MoneyInvolved:      "yes",
			InvestmentAmount:   "$2500",
			SuspiciousFeatures: "urgent deposit",
			Screenshot:         &Image{URL: "https://img.example/s.png", PublicID: "platform_verification_screenshots/s"},
		}
		a := eval.Evaluate(f)
		r := b.Build(f, a)

		assert.Equal(t, fixedNow, r.SubmissionDate)
		assert.Equal(t, "PV-TEST", r.ReportID)
		assert.Equal(t, "https://coinmax.example", r.PlatformDetailsName)
		assert.Equal(t, "This platform has been assessed as Critical risk based on the provided information.", r.RiskSummary)
		assert.True(t, r.FinancialRequired)
		assert.Equal(t, "$2500", r.FinancialAmount)
		assert.Equal(t, a.RiskFactors, r.SuspiciousAnalyzed)
		assert.Equal(t, a.Recommendations, r.RecommendationsImmediate)
		assert.Len(t, r.RecommendationsGeneral, 4)
		assert.True(t, r.HasScreenshot)
		assert.Equal(t, "https://img.example/s.png", r.ScreenshotURL)
	})

	t.Run("clean platform", func(t *testing.T) {
		f := PlatformForm{WebsiteURL: "https://shop.example", PlatformType: "ecommerce", ContactMethods: "full", MoneyInvolved: "no"}
		r := b.Build(f, eval.Evaluate(f))

		assert.Equal(t, "No immediate risks detected. However, always prioritize secure payment methods.", r.RiskSummary)
		assert.Equal(t, "N/A", r.FinancialAmount)
		assert.Equal(t, []string{"No suspicious patterns detected"}, r.SuspiciousAnalyzed)
		assert.Len(t, r.RecommendationsGeneral, 2)
		assert.False(t, r.HasScreenshot)
		assert.Equal(t, "Not provided", r.ScreenshotURL)
	})
}
