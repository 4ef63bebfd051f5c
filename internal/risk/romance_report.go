package risk

import (
	"slices"
	"strings"
	"time"
)

// DetailedReport is the forensic breakdown attached to a romance report.
type DetailedReport struct {
	ReportID           string             `json:"reportId" bson:"reportId"`
	SubmissionDate     time.Time          `json:"submissionDate" bson:"submissionDate"`
	VictimProfile      VictimProfile      `json:"victimProfile" bson:"victimProfile"`
	ScammerProfile     ScammerProfile     `json:"scammerProfile" bson:"scammerProfile"`
	RiskIndicators     RiskIndicators     `json:"riskIndicators" bson:"riskIndicators"`
	AnalysisDetails    AnalysisDetails    `json:"analysisDetails" bson:"analysisDetails"`
	RecommendedActions RecommendedActions `json:"recommendedActions" bson:"recommendedActions"`
	EvidenceAttached   EvidenceAttached   `json:"evidenceAttached" bson:"evidenceAttached"`
}

type VictimProfile struct {
	Location      string `json:"location" bson:"location"`
	ExposureLevel string `json:"exposureLevel" bson:"exposureLevel"`
	FinancialRisk bool   `json:"financialRisk" bson:"financialRisk"`
}

type ScammerProfile struct {
	ReportedLocation     string   `json:"reportedLocation" bson:"reportedLocation"`
	CommunicationPattern string   `json:"communicationPattern" bson:"communicationPattern"`
	IdentityVerification string   `json:"identityVerification" bson:"identityVerification"`
	FinancialRequests    bool     `json:"financialRequests" bson:"financialRequests"`
	RequestedAmount      *float64 `json:"requestedAmount,omitempty" bson:"requestedAmount,omitempty"`
	StatedPurpose        string   `json:"statedPurpose,omitempty" bson:"statedPurpose,omitempty"`
}

// RiskIndicators are five independently derived sub-ratings.
type RiskIndicators struct {
	TimelineRisk   string `json:"timelineRisk" bson:"timelineRisk"`
	LocationRisk   string `json:"locationRisk" bson:"locationRisk"`
	BehavioralRisk string `json:"behavioralRisk" bson:"behavioralRisk"`
	FinancialRisk  string `json:"financialRisk" bson:"financialRisk"`
	IdentityRisk   string `json:"identityRisk" bson:"identityRisk"`
}

type AnalysisDetails struct {
	SuspiciousPatterns   []string `json:"suspiciousPatterns" bson:"suspiciousPatterns"`
	RedFlags             []string `json:"redFlags" bson:"redFlags"`
	VulnerabilityFactors []string `json:"vulnerabilityFactors" bson:"vulnerabilityFactors"`
}

type RecommendedActions struct {
	Immediate        []string `json:"immediate" bson:"immediate"`
	Preventive       []string `json:"preventive" bson:"preventive"`
	SupportResources []string `json:"supportResources" bson:"supportResources"`
}

type EvidenceAttached struct {
	HasPhotos     bool   `json:"hasPhotos" bson:"hasPhotos"`
	PhotoAnalysis string `json:"photoAnalysis" bson:"photoAnalysis"`
	PhotoURL      string `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
}

// RomanceReportRules holds the tables used by the detailed report.
type RomanceReportRules struct {
	ShortDurations      []string
	HighRiskLocations   []string
	BasePreventive      []string
	EscalatedPreventive []string
	SupportResources    []string
}

func DefaultRomanceReportRules() RomanceReportRules {
	return RomanceReportRules{
		ShortDurations:    []string{"less-than-week", "1-4-weeks"},
		HighRiskLocations: []string{"iraq", "afghanistan", "nigeria", "ghana", "united states", "us", "usa"},
		BasePreventive: []string{
			"Keep all communication records",
			"Never share financial information",
			"Use reverse image search for photos",
			"Verify identity through video calls",
		},
		EscalatedPreventive: []string{
			"Block all contact methods",
			"Report to dating platform",
			"Monitor credit reports",
			"Change shared passwords",
		},
		SupportResources: []string{
			"Contact local law enforcement",
			"Report to FBI's Internet Crime Complaint Center (IC3)",
			"Seek support from romance scam victim groups",
			"Consider professional counseling",
		},
	}
}

type RomanceReportBuilder struct {
	rules RomanceReportRules
	now   func() time.Time
	newID func(time.Time) string
}

func NewRomanceReportBuilder(rules RomanceReportRules) *RomanceReportBuilder {
	rules.ShortDurations = slices.Clone(rules.ShortDurations)
	rules.HighRiskLocations = slices.Clone(rules.HighRiskLocations)
	rules.BasePreventive = slices.Clone(rules.BasePreventive)
	rules.EscalatedPreventive = slices.Clone(rules.EscalatedPreventive)
	rules.SupportResources = slices.Clone(rules.SupportResources)
	return &RomanceReportBuilder{
		rules: rules,
		now:   time.Now,
		newID: RomanceReportID,
	}
}

// WithClock overrides the clock, for tests.
func (b *RomanceReportBuilder) WithClock(now func() time.Time) *RomanceReportBuilder {
	b.now = now
	return b
}

// WithIDs overrides the report id generator.
func (b *RomanceReportBuilder) WithIDs(newID func(time.Time) string) *RomanceReportBuilder {
	b.newID = newID
	return b
}

func (b *RomanceReportBuilder) Build(f RomanceForm, a Assessment) DetailedReport {
	now := b.now()
	return DetailedReport{
		ReportID:       b.newID(now),
		SubmissionDate: now,
		VictimProfile: VictimProfile{
			Location:      f.Country,
			ExposureLevel: ifElse(f.infoShared(), "High", "Low"),
			FinancialRisk: f.askedMoney(),
		},
		ScammerProfile: ScammerProfile{
			ReportedLocation:     ifElse(f.LocationOfPartner != "", f.LocationOfPartner, "Unknown"),
			CommunicationPattern: f.CommunicationFrequency,
			IdentityVerification: ifElse(f.MetInRealLife == "yes", "Verified", "Unverified"),
			FinancialRequests:    f.askedMoney(),
			RequestedAmount:      requestedAmount(f.MoneyAmount),
			StatedPurpose:        f.MoneyPurpose,
		},
		RiskIndicators: RiskIndicators{
			TimelineRisk:   ifElse(slices.Contains(b.rules.ShortDurations, f.ContactDuration), "High", "Moderate"),
			LocationRisk:   ifElse(containsAny(f.LocationOfPartner, b.rules.HighRiskLocations), "High", "Moderate"),
			BehavioralRisk: behavioralRisk(f),
			FinancialRisk:  financialRisk(f),
			IdentityRisk:   identityRisk(f),
		},
		AnalysisDetails: AnalysisDetails{
			SuspiciousPatterns:   suspiciousPatterns(f),
			RedFlags:             redFlags(f),
			VulnerabilityFactors: vulnerabilityFactors(f),
		},
		RecommendedActions: RecommendedActions{
			Immediate:        immediateActions(a.Recommendations),
			Preventive:       b.preventive(a.RiskLevel),
			SupportResources: slices.Clone(b.rules.SupportResources),
		},
		EvidenceAttached: evidence(f),
	}
}

func (b *RomanceReportBuilder) preventive(level Level) []string {
	actions := slices.Clone(b.rules.BasePreventive)
	if level == LevelCritical || level == LevelHigh {
		actions = append(actions, b.rules.EscalatedPreventive...)
	}
	return actions
}

func requestedAmount(raw string) *float64 {
	if raw == "" {
		return nil
	}
	d, ok := leadingFloat(raw)
	if !ok {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

func behavioralRisk(f RomanceForm) string {
	n := 0
	for _, hit := range []bool{f.dailyContact(), f.notMet(), f.askedMoney()} {
		if hit {
			n++
		}
	}
	return ifElse(n >= 2, "High", "Moderate")
}

func financialRisk(f RomanceForm) string {
	if !f.askedMoney() {
		return "Low"
	}
	amount, ok := leadingInt(f.MoneyAmount)
	if exceeds(amount, ok, largeAmount) {
		return "Critical"
	}
	return "High"
}

func identityRisk(f RomanceForm) string {
	switch {
	case f.notMet() && f.fakePhotos():
		return "Critical"
	case f.notMet():
		return "High"
	default:
		return "Moderate"
	}
}

func suspiciousPatterns(f RomanceForm) []string {
	out := []string{}
	if f.dailyContact() {
		out = append(out, "Intensive daily communication")
	}
	if f.askedMoney() {
		out = append(out, "Financial requests present")
	}
	if f.notMet() {
		out = append(out, "Avoids in-person meetings")
	}
	return out
}

func redFlags(f RomanceForm) []string {
	out := []string{}
	if f.askedMoney() {
		out = append(out, "Requests for money")
	}
	if f.fakePhotos() {
		out = append(out, "Potentially fake photos")
	}
	if f.infoShared() {
		out = append(out, "Personal information compromised")
	}
	return out
}

func vulnerabilityFactors(f RomanceForm) []string {
	out := []string{}
	if f.infoShared() {
		out = append(out, "Personal information exposed")
	}
	if f.askedMoney() {
		out = append(out, "Financial vulnerability")
	}
	if f.dailyContact() {
		out = append(out, "Emotional dependency risk")
	}
	return out
}

// immediateActions keeps the bulleted lines of a script, without the
// two-character bullet prefix.
func immediateActions(recs []string) []string {
	out := []string{}
	for _, r := range recs {
		if !strings.HasPrefix(r, "•") {
			continue
		}
		runes := []rune(r)
		if len(runes) < 2 {
			out = append(out, "")
			continue
		}
		out = append(out, string(runes[2:]))
	}
	return out
}

func evidence(f RomanceForm) EvidenceAttached {
	e := EvidenceAttached{
		HasPhotos:     f.PhotoUpload != nil,
		PhotoAnalysis: "No photos shared",
	}
	if f.sharedPhotos() {
		e.PhotoAnalysis = ifElse(f.fakePhotos(), "Photos reported as potentially inauthentic", "Photos provided for verification")
	}
	if f.PhotoUpload != nil {
		e.PhotoURL = f.PhotoUpload.URL
	}
	return e
}

func ifElse[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
