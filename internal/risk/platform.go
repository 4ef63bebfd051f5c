package risk

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// TypeRule adds a fixed weight when a categorical answer equals Value.
type TypeRule struct {
	Value          string
	Weight         int
	Factor         string
	Recommendation string
}

// PlatformRules holds the platform weights and thresholds.
type PlatformRules struct {
	MoneyWeight          int
	LargeAmount          decimal.Decimal
	LargeAmountWeight    int
	NoContactWeight      int
	LimitedContactWeight int
	PlatformTypes        []TypeRule
	FeatureKeywords      []KeywordWeight
	Thresholds           Thresholds
	// Used in place of empty lists when nothing triggered.
	ZeroFactors         []string
	ZeroRecommendations []string
}

func DefaultPlatformRules() PlatformRules {
	return PlatformRules{
		MoneyWeight:          30,
		LargeAmount:          largeAmount,
		LargeAmountWeight:    20,
		NoContactWeight:      25,
		LimitedContactWeight: 15,
		PlatformTypes: []TypeRule{
			{"investment", 20, "Investment/Trading platform - higher inherent risk", "Verify regulatory compliance and licenses"},
			{"crypto", 25, "Cryptocurrency platform - high volatility risk", "Check platform's security measures and regulatory compliance"},
			{"gaming", 15, "Gaming/Gambling platform - potential regulatory concerns", "Verify gambling license and regulatory compliance"},
		},
		FeatureKeywords: []KeywordWeight{
			{"pressure", 20},
			{"guarantee", 25},
			{"urgent", 15},
			{"quick", 10},
			{"easy money", 25},
			{"no risk", 20},
			{"limited time", 15},
			{"secret", 20},
		},
		Thresholds:  Thresholds{Medium: 30, High: 50, Critical: 75},
		ZeroFactors: []string{"No immediate risk factors detected"},
		ZeroRecommendations: []string{
			"Give out only what you can afford to give out. While no immediate risks were detected, always use secure payment platforms like PayPal. Never share your credit/debit card details directly.",
		},
	}
}

type PlatformEvaluator struct {
	rules PlatformRules
}

func NewPlatformEvaluator(rules PlatformRules) *PlatformEvaluator {
	rules.PlatformTypes = slices.Clone(rules.PlatformTypes)
	rules.FeatureKeywords = cloneWeights(rules.FeatureKeywords)
	rules.ZeroFactors = slices.Clone(rules.ZeroFactors)
	rules.ZeroRecommendations = slices.Clone(rules.ZeroRecommendations)
	return &PlatformEvaluator{rules: rules}
}

func (e *PlatformEvaluator) Evaluate(f PlatformForm) Assessment {
	rs := e.rules
	var t tally

	if f.MoneyInvolved == "yes" {
		t.add(rs.MoneyWeight, "Platform requires monetary investment",
			"Verify platform's financial regulations compliance")
		amount, ok := currencyAmount(f.InvestmentAmount)
		if exceeds(amount, ok, rs.LargeAmount) {
			t.add(rs.LargeAmountWeight, "High investment amount required",
				"Research platform's financial history and verify registration")
		}
	}

	switch f.ContactMethods {
	case "none":
		t.add(rs.NoContactWeight, "No contact information available",
			"Legitimate platforms typically provide clear contact information")
	case "limited":
		t.add(rs.LimitedContactWeight, "Limited contact options",
			"Attempt to verify platform's physical presence")
	}

	for _, tr := range rs.PlatformTypes {
		if tr.Value == f.PlatformType {
			t.add(tr.Weight, tr.Factor, tr.Recommendation)
			break
		}
	}

	for _, kw := range rs.FeatureKeywords {
		if containsAny(f.SuspiciousFeatures, []string{kw.Keyword}) {
			t.add(kw.Weight, "Contains suspicious keyword: "+kw.Keyword,
				fmt.Sprintf("Be cautious of platforms using %q tactics", kw.Keyword))
		}
	}

	a := t.assessment(rs.Thresholds.Level(t.score))
	if a.Score == 0 {
		a.RiskFactors = slices.Clone(rs.ZeroFactors)
		a.Recommendations = slices.Clone(rs.ZeroRecommendations)
	}
	return a
}

// PlatformDetailedReport is the summary stored with a platform report.
type PlatformDetailedReport struct {
	ReportID                 string    `json:"reportId" bson:"reportId"`
	SubmissionDate           time.Time `json:"submissionDate" bson:"submissionDate"`
	PlatformDetailsName      string    `json:"platformDetailsName" bson:"platformDetailsName"`
	PlatformDetailsType      string    `json:"platformDetailsType" bson:"platformDetailsType"`
	PlatformDetailsContact   string    `json:"platformDetailsContact" bson:"platformDetailsContact"`
	RiskSummary              string    `json:"riskSummary" bson:"riskSummary"`
	FinancialRequired        bool      `json:"financialRequired" bson:"financialRequired"`
	FinancialAmount          string    `json:"financialAmount" bson:"financialAmount"`
	SuspiciousDetails        string    `json:"suspiciousDetails" bson:"suspiciousDetails"`
	SuspiciousAnalyzed       []string  `json:"suspiciousAnalyzed" bson:"suspiciousAnalyzed"`
	RecommendationsImmediate []string  `json:"recommendationsImmediate" bson:"recommendationsImmediate"`
	RecommendationsGeneral   []string  `json:"recommendationsGeneral" bson:"recommendationsGeneral"`
	HasScreenshot            bool      `json:"hasScreenshot" bson:"hasScreenshot"`
	ScreenshotURL            string    `json:"screenshotURL" bson:"screenshotURL"`
}

type PlatformReportBuilder struct {
	now   func() time.Time
	newID func(time.Time) string
}

func NewPlatformReportBuilder() *PlatformReportBuilder {
	return &PlatformReportBuilder{now: time.Now, newID: PlatformReportID}
}

// WithClock overrides the clock, for tests.
func (b *PlatformReportBuilder) WithClock(now func() time.Time) *PlatformReportBuilder {
	b.now = now
	return b
}

// WithIDs overrides the report id generator.
func (b *PlatformReportBuilder) WithIDs(newID func(time.Time) string) *PlatformReportBuilder {
	b.newID = newID
	return b
}

func (b *PlatformReportBuilder) Build(f PlatformForm, a Assessment) PlatformDetailedReport {
	now := b.now()
	r := PlatformDetailedReport{
		ReportID:               b.newID(now),
		SubmissionDate:         now,
		PlatformDetailsName:    f.WebsiteURL,
		PlatformDetailsType:    f.PlatformType,
		PlatformDetailsContact: f.ContactMethods,
		FinancialRequired:      f.MoneyInvolved == "yes",
		FinancialAmount:        ifElse(f.InvestmentAmount != "", f.InvestmentAmount, "N/A"),
		SuspiciousDetails:      f.SuspiciousFeatures,
		HasScreenshot:          f.Screenshot != nil,
		ScreenshotURL:          "Not provided",
	}
	if f.Screenshot != nil && f.Screenshot.URL != "" {
		r.ScreenshotURL = f.Screenshot.URL
	}

	if a.Score == 0 {
		r.RiskSummary = "No immediate risks detected. However, always prioritize secure payment methods."
		r.SuspiciousAnalyzed = []string{"No suspicious patterns detected"}
		r.RecommendationsImmediate = []string{
			"Give out only what you can afford to give out. Use secure payment platforms like PayPal. Never use credit/debit cards directly.",
		}
		r.RecommendationsGeneral = []string{
			"Always use secure payment platforms like PayPal",
			"Never share credit/debit card details",
		}
		return r
	}

	r.RiskSummary = fmt.Sprintf("This platform has been assessed as %s risk based on the provided information.", a.RiskLevel)
	r.SuspiciousAnalyzed = slices.Clone(a.RiskFactors)
	r.RecommendationsImmediate = slices.Clone(a.Recommendations)
	r.RecommendationsGeneral = []string{
		"Always conduct thorough due diligence",
		"Never invest more than you can afford to lose",
		"Be wary of platforms requiring urgent action",
		"Verify all regulatory compliance claims",
	}
	return r
}
