package risk

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// RomanceEvaluator scores a romance-scam questionnaire.
type RomanceEvaluator interface {
	Name() string
	Evaluate(form RomanceForm) Assessment
}

const (
	RuleSetAName = "a"
	RuleSetBName = "b"
)

// NewRomanceEvaluator returns the named rule set built from its default table.
// An empty name selects rule set B.
func NewRomanceEvaluator(name string) (RomanceEvaluator, error) {
	switch name {
	case "", RuleSetBName:
		return NewRuleSetB(DefaultRomanceRulesB()), nil
	case RuleSetAName:
		return NewRuleSetA(DefaultRomanceRulesA()), nil
	default:
		return nil, fmt.Errorf("unknown romance rule set %q", name)
	}
}

// RomanceRulesA holds the weights and keyword lists of rule set A.
type RomanceRulesA struct {
	HighRiskRegions     []string
	RegionWeight        int
	NotMetWeight        int
	ExcuseKeywords      []string
	ExcuseWeight        int
	MoneyWeight         int
	PurposeKeywords     []string
	PurposeWeight       int
	LargeAmount         decimal.Decimal
	LargeAmountWeight   int
	FakePhotoWeight     int
	ExcessiveWeight     int
	BehaviorKeywords    []KeywordWeight
	SensitiveInfo       []string
	SensitiveInfoWeight int
	Thresholds          Thresholds
}

// DefaultRomanceRulesA returns a fresh copy of the rule set A table.
func DefaultRomanceRulesA() RomanceRulesA {
	return RomanceRulesA{
		HighRiskRegions:   []string{"Nigeria", "Ghana", "Ivory Coast", "Philippines"},
		RegionWeight:      20,
		NotMetWeight:      15,
		ExcuseKeywords:    []string{"work abroad", "military", "stuck", "visa issues", "accident"},
		ExcuseWeight:      10,
		MoneyWeight:       30,
		PurposeKeywords:   []string{"emergency", "medical", "ticket", "visa", "business", "investment", "family emergency", "stuck"},
		PurposeWeight:     15,
		LargeAmount:       largeAmount,
		LargeAmountWeight: 20,
		FakePhotoWeight:   25,
		ExcessiveWeight:   10,
		BehaviorKeywords: []KeywordWeight{
			{"money", 15},
			{"investment", 20},
			{"urgent", 15},
			{"secret", 10},
			{"business opportunity", 20},
			{"inheritance", 25},
			{"gold", 20},
			{"cryptocurrency", 20},
		},
		SensitiveInfo:       []string{"bank", "credit card", "passport", "social security", "id"},
		SensitiveInfoWeight: 25,
		Thresholds:          Thresholds{Medium: 30, High: 60, Critical: 90},
	}
}

// RuleSetA adds one recommendation per triggered rule and levels the raw score.
type RuleSetA struct {
	rules RomanceRulesA
}

func NewRuleSetA(rules RomanceRulesA) *RuleSetA {
	rules.HighRiskRegions = slices.Clone(rules.HighRiskRegions)
	rules.ExcuseKeywords = slices.Clone(rules.ExcuseKeywords)
	rules.PurposeKeywords = slices.Clone(rules.PurposeKeywords)
	rules.BehaviorKeywords = cloneWeights(rules.BehaviorKeywords)
	rules.SensitiveInfo = slices.Clone(rules.SensitiveInfo)
	return &RuleSetA{rules: rules}
}

func (r *RuleSetA) Name() string { return RuleSetAName }

func (r *RuleSetA) Evaluate(f RomanceForm) Assessment {
	rs := r.rules
	var t tally

	if containsAny(f.LocationOfPartner, rs.HighRiskRegions) {
		t.add(rs.RegionWeight, "Person located in high-risk region for romance scams",
			"Exercise extra caution with individuals from known scam hotspots")
	}

	if f.notMet() {
		t.add(rs.NotMetWeight, "Never met in person", "Request video calls to verify identity")
		if containsAny(f.WhyNotMet, rs.ExcuseKeywords) {
			t.add(rs.ExcuseWeight, "Common scammer excuses for not meeting detected")
		}
	}

	if f.askedMoney() {
		t.add(rs.MoneyWeight, "Requested financial assistance",
			"Never send money to someone you haven't met in person")
		if containsAny(f.MoneyPurpose, rs.PurposeKeywords) {
			t.add(rs.PurposeWeight, "Common scammer financial request patterns detected")
		}
		amount, ok := leadingFloat(f.MoneyAmount)
		if exceeds(amount, ok, rs.LargeAmount) {
			t.add(rs.LargeAmountWeight, "Large amount of money requested",
				"Large financial requests are a major red flag")
		}
	}

	if f.sharedPhotos() && f.fakePhotos() {
		t.add(rs.FakePhotoWeight, "Shared suspicious or unverifiable photos",
			"Perform reverse image searches on shared photos")
	}

	if f.CommunicationFrequency == "excessive" {
		t.add(rs.ExcessiveWeight, "Excessive communication frequency",
			"Be wary of love-bombing and excessive attention")
	}

	for _, kw := range rs.BehaviorKeywords {
		if containsAny(f.SuspiciousBehavior, []string{kw.Keyword}) {
			t.add(kw.Weight, "Suspicious behavior pattern: "+kw.Keyword,
				"Be cautious of discussions involving "+kw.Keyword)
		}
	}

	if containsAny(f.PersonalInfoShared, rs.SensitiveInfo) {
		t.add(rs.SensitiveInfoWeight, "Sensitive personal information requested",
			"Never share sensitive personal or financial information")
	}

	return t.assessment(rs.Thresholds.Level(t.score))
}

// RomanceRulesB holds the weights and keyword lists of rule set B.
type RomanceRulesB struct {
	// DurationWeights match contactDuration exactly.
	DurationWeights    []KeywordWeight
	MeetingPlaces      []string
	MeetingPlaceWeight int
	// HighRiskLocations is matched as substrings of the lower-cased partner
	// location. The list includes "united states", "us" and "usa", and "us"
	// also matches names such as "russia" or "australia".
	// TODO: confirm the US entries with product before changing the weights.
	HighRiskLocations     []string
	LocationWeight        int
	DailyContactWeight    int
	NotMetWeight          int
	ExcuseKeywords        []string
	ExcuseWeight          int
	FakePhotoWeight       int
	UnverifiedPhotoWeight int
	MoneyWeight           int
	LargeAmount           decimal.Decimal
	LargeAmountWeight     int
	PurposeKeywords       []string
	PurposeWeight         int
	PersonalInfoWeight    int
	// Divisor scales the raw sum before capping at MaxScore.
	Divisor    int
	MaxScore   int
	Thresholds Thresholds
	Scripts    map[Level][]string
}

func DefaultRomanceRulesB() RomanceRulesB {
	urgent := []string{
		"IMMEDIATE ACTIONS REQUIRED:",
		"• Cease all contact immediately",
		"• Do not send any money or personal information",
		"• Report to local law enforcement",
		"• Contact your bank if any financial information was shared",
		"• Document and save all communications",
		"• Report to the relevant dating platform or website",
		"• Consider filing a report with national fraud center",
	}
	return RomanceRulesB{
		DurationWeights: []KeywordWeight{
			{"less-than-week", 100},
			{"1-4-weeks", 80},
			{"1-3-months", 60},
			{"3-6-months", 40},
			{"more-than-6-months", 20},
		},
		MeetingPlaces:         []string{"dating-website", "social-media", "chat-room", "messaging-app", "other"},
		MeetingPlaceWeight:    80,
		HighRiskLocations:     []string{"iraq", "afghanistan", "nigeria", "ghana", "united states", "us", "usa", "syria"},
		LocationWeight:        85,
		DailyContactWeight:    60,
		NotMetWeight:          90,
		ExcuseKeywords:        []string{"busy", "work", "travel", "covid", "virus", "cant", "cannot"},
		ExcuseWeight:          70,
		FakePhotoWeight:       90,
		UnverifiedPhotoWeight: 50,
		MoneyWeight:           100,
		LargeAmount:           largeAmount,
		LargeAmountWeight:     50,
		PurposeKeywords:       []string{"emergency", "medical", "business", "investment", "travel"},
		PurposeWeight:         40,
		PersonalInfoWeight:    75,
		Divisor:               5,
		MaxScore:              100,
		Thresholds:            Thresholds{Medium: 40, High: 60, Critical: 80},
		Scripts: map[Level][]string{
			LevelCritical: urgent,
			LevelHigh:     urgent,
			LevelMedium: {
				"PROCEED WITH EXTREME CAUTION:",
				"• Do not share any financial information",
				"• Verify identity through video chat",
				"• Meet in public places only",
				"• Be wary of urgent requests",
				"• Document suspicious behavior",
				"• Consider requesting local references",
			},
			LevelLow: {
				"GENERAL SAFETY GUIDELINES:",
				"• Continue normal online dating precautions",
				"• Meet in public places",
				"• Keep personal information private",
				"• Trust your instincts",
				"• Maintain awareness of common scam tactics",
			},
		},
	}
}

// RuleSetB normalises the raw score to 0-100 and answers with per-level advice.
type RuleSetB struct {
	rules RomanceRulesB
}

func NewRuleSetB(rules RomanceRulesB) *RuleSetB {
	rules.DurationWeights = cloneWeights(rules.DurationWeights)
	rules.MeetingPlaces = slices.Clone(rules.MeetingPlaces)
	rules.HighRiskLocations = slices.Clone(rules.HighRiskLocations)
	rules.ExcuseKeywords = slices.Clone(rules.ExcuseKeywords)
	rules.PurposeKeywords = slices.Clone(rules.PurposeKeywords)
	scripts := make(map[Level][]string, len(rules.Scripts))
	for lvl, lines := range rules.Scripts {
		scripts[lvl] = slices.Clone(lines)
	}
	rules.Scripts = scripts
	if rules.Divisor <= 0 {
		rules.Divisor = 1
	}
	return &RuleSetB{rules: rules}
}

func (r *RuleSetB) Name() string { return RuleSetBName }

func (r *RuleSetB) Evaluate(f RomanceForm) Assessment {
	rs := r.rules
	var t tally

	for _, d := range rs.DurationWeights {
		if d.Keyword == f.ContactDuration {
			t.add(d.Weight, "Contact duration: "+f.ContactDuration)
			break
		}
	}

	if slices.Contains(rs.MeetingPlaces, f.MeetingPlace) {
		t.add(rs.MeetingPlaceWeight, "Met through "+f.MeetingPlace)
	}

	if containsAny(f.LocationOfPartner, rs.HighRiskLocations) {
		t.add(rs.LocationWeight, "High-risk location: "+f.LocationOfPartner)
	}

	if f.dailyContact() {
		t.add(rs.DailyContactWeight, "Intensive daily communication pattern")
	}

	if f.notMet() {
		t.add(rs.NotMetWeight, "No real-life meeting")
		if containsAny(f.WhyNotMet, rs.ExcuseKeywords) {
			t.add(rs.ExcuseWeight, "Suspicious reasons for not meeting")
		}
	}

	if f.sharedPhotos() {
		switch {
		case f.fakePhotos():
			t.add(rs.FakePhotoWeight, "Potentially fake photos shared")
		case f.PhotoUpload == nil:
			t.add(rs.UnverifiedPhotoWeight, "Photos shared but not provided for verification")
		}
	}

	if f.askedMoney() {
		t.add(rs.MoneyWeight, "Requested money")
		amount, ok := leadingInt(f.MoneyAmount)
		if exceeds(amount, ok, rs.LargeAmount) {
			t.add(rs.LargeAmountWeight, "Large amount requested: "+f.MoneyAmount)
		}
		if containsAny(f.MoneyPurpose, rs.PurposeKeywords) {
			t.add(rs.PurposeWeight, "Suspicious purpose for money request")
		}
	}

	if f.infoShared() {
		t.add(rs.PersonalInfoWeight, "Personal information already shared")
	}

	score := normalise(t.score, rs.Divisor, rs.MaxScore)
	level := rs.Thresholds.Level(score)
	return Assessment{
		RiskLevel:       level,
		Score:           score,
		RiskFactors:     nonNil(t.factors),
		Recommendations: nonNil(slices.Clone(rs.Scripts[level])),
	}
}

// normalise divides raw by divisor, rounding halves up, and caps at max.
func normalise(raw, divisor, max int) int {
	n := int(math.Floor(float64(raw)/float64(divisor) + 0.5))
	if n > max {
		return max
	}
	return n
}
