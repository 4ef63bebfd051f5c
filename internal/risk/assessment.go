// Package risk scores scam reports. Every evaluator here is a pure function of
// the submitted form and the rule table it was built with.
package risk

import (
	"slices"
	"strings"
)

// Level is the categorical risk tier shared by every report type.
type Level string

const (
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelCritical Level = "Critical"
)

// Assessment is the scored outcome of one submission.
type Assessment struct {
	RiskLevel       Level    `json:"riskLevel" bson:"riskLevel"`
	Score           int      `json:"score" bson:"score"`
	RiskFactors     []string `json:"riskFactors" bson:"riskFactors"`
	Recommendations []string `json:"recommendations" bson:"recommendations"`
	Summary         string   `json:"summary,omitempty" bson:"summary,omitempty"`
}

// Image is an uploaded evidence file as returned by the image host.
type Image struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"publicId" bson:"publicId"`
}

// Thresholds are the lowest scores of the Medium, High and Critical tiers.
// A score equal to a bound belongs to the higher tier.
type Thresholds struct {
	Medium   int
	High     int
	Critical int
}

func (t Thresholds) Level(score int) Level {
	switch {
	case score < t.Medium:
		return LevelLow
	case score < t.High:
		return LevelMedium
	case score < t.Critical:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// KeywordWeight pairs a lower-case substring with the score it adds.
type KeywordWeight struct {
	Keyword string
	Weight  int
}

// tally accumulates triggered rules in evaluation order.
type tally struct {
	score   int
	factors []string
	recs    []string
}

func (t *tally) add(weight int, factor string, recs ...string) {
	t.score += weight
	t.factors = append(t.factors, factor)
	t.recs = append(t.recs, recs...)
}

func (t *tally) assessment(level Level) Assessment {
	return Assessment{
		RiskLevel:       level,
		Score:           t.score,
		RiskFactors:     nonNil(t.factors),
		Recommendations: nonNil(t.recs),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// containsAny reports whether the lower-cased text contains any needle.
func containsAny(text string, needles []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func cloneWeights(kw []KeywordWeight) []KeywordWeight {
	return slices.Clone(kw)
}
