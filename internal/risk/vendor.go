package risk

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// VendorRules holds the vendor weights and the risky payment and business lists.
type VendorRules struct {
	NoBusinessProfileWeight int
	UnverifiedWeight        int
	RiskyPayments           []string
	RiskyPaymentWeight      int
	UrgencyWeight           int
	LimitedOfferWeight      int
	BankingRequestWeight    int
	PrePaymentWeight        int
	MinFollowers            decimal.Decimal
	LowFollowersWeight      int
	BusinessTypes           []TypeRule
	NoRefundPolicyWeight    int
	Thresholds              Thresholds

	ZeroFactors         []string
	ZeroRecommendations []string
	ZeroSummary         string
	// WarningSummary is a format string taking the reporter's email.
	WarningSummary string
}

func DefaultVendorRules() VendorRules {
	return VendorRules{
		NoBusinessProfileWeight: 15,
		UnverifiedWeight:        10,
		RiskyPayments:           []string{"crypto", "gift cards", "wire transfer", "western union"},
		RiskyPaymentWeight:      20,
		UrgencyWeight:           25,
		LimitedOfferWeight:      15,
		BankingRequestWeight:    30,
		PrePaymentWeight:        20,
		MinFollowers:            decimal.NewFromInt(1000),
		LowFollowersWeight:      15,
		BusinessTypes: []TypeRule{
			{"investment", 25, "High-risk investment business", "Verify regulatory compliance and licenses"},
			{"dropshipping", 15, "Dropshipping business model", "Check product quality and shipping policies"},
		},
		NoRefundPolicyWeight: 20,
		Thresholds:           Thresholds{Medium: 30, High: 50, Critical: 75},

		ZeroFactors:         []string{"No immediate risk factors detected"},
		ZeroRecommendations: []string{"Use secure payment methods like PayPal", "Never share credit/debit card details directly"},
		ZeroSummary:         "Give out only what you can afford to give out. While no immediate risks were detected, always use secure payment platforms like PayPal. Never share your credit/debit card details directly.",
		WarningSummary:      "⚠️ IMPORTANT: There is a chance you might be at risk with this vendor. Our analysts will conduct thorough research and contact you within 24 hours. To protect your cash and investment, we advise you not to proceed with any transactions at this time. Please check your email (%s) for a detailed report from support@scamlens.io",
	}
}

type VendorEvaluator struct {
	rules VendorRules
}

func NewVendorEvaluator(rules VendorRules) *VendorEvaluator {
	rules.RiskyPayments = slices.Clone(rules.RiskyPayments)
	rules.BusinessTypes = slices.Clone(rules.BusinessTypes)
	rules.ZeroFactors = slices.Clone(rules.ZeroFactors)
	rules.ZeroRecommendations = slices.Clone(rules.ZeroRecommendations)
	return &VendorEvaluator{rules: rules}
}

// Evaluate scores the vendor. Any non-zero score yields the same public
// warning summary whatever the triggered factors were; the factors are
// still recorded for analysts.
func (e *VendorEvaluator) Evaluate(f VendorForm) Assessment {
	rs := e.rules
	var t tally

	if !f.HasBusinessProfile {
		t.add(rs.NoBusinessProfileWeight, "No business profile",
			"Verify business legitimacy through official documentation")
	}
	if !f.VerifiedAccount {
		t.add(rs.UnverifiedWeight, "Account not verified",
			"Look for verified badges or official verification")
	}

	for _, method := range f.PaymentMethods {
		if slices.Contains(rs.RiskyPayments, strings.ToLower(method)) {
			t.add(rs.RiskyPaymentWeight, "Risky payment method: "+method,
				"Use secure payment platforms with buyer protection")
		}
	}

	if f.UrgencyTactics {
		t.add(rs.UrgencyWeight, "Uses urgency tactics to push sales",
			"Be cautious of high-pressure sales tactics")
	}
	if f.LimitedTimeOffers {
		t.add(rs.LimitedOfferWeight, "Frequent limited time offers",
			"Verify offer authenticity and don't rush purchases")
	}
	if f.RequestsPersonalBanking {
		t.add(rs.BankingRequestWeight, "Requests personal banking information",
			"Never share personal banking details")
	}
	if f.PrePaymentRequired {
		t.add(rs.PrePaymentWeight, "Requires full payment upfront",
			"Use escrow services or partial payment options")
	}

	// Unparseable counts read as zero followers.
	followers, _ := leadingInt(f.FollowersCount)
	if followers.LessThan(rs.MinFollowers) {
		t.add(rs.LowFollowersWeight, "Low follower count",
			"Verify business reputation through multiple sources")
	}

	for _, tr := range rs.BusinessTypes {
		if tr.Value == f.BusinessType {
			t.add(tr.Weight, tr.Factor, tr.Recommendation)
			break
		}
	}

	if !f.HasRefundPolicy {
		t.add(rs.NoRefundPolicyWeight, "No clear refund policy",
			"Request written refund/return policy before purchase")
	}

	if t.score == 0 {
		return Assessment{
			RiskLevel:       LevelLow,
			Score:           0,
			RiskFactors:     slices.Clone(rs.ZeroFactors),
			Recommendations: slices.Clone(rs.ZeroRecommendations),
			Summary:         rs.ZeroSummary,
		}
	}

	a := t.assessment(rs.Thresholds.Level(t.score))
	a.Summary = fmt.Sprintf(rs.WarningSummary, f.Email)
	return a
}
