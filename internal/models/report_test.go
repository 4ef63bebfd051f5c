package models

import (
	"encoding/json"
	"testing"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStatusValid(t *testing.T) {
	for _, s := range []ReportStatus{StatusPending, StatusInReview, StatusCompleted} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ReportStatus("closed").Valid())
	assert.False(t, ReportStatus("").Valid())
}

func TestReportTypeValid(t *testing.T) {
	assert.True(t, ReportTypeVendor.Valid())
	assert.False(t, ReportType("dating").Valid())
}

func TestReportsImplementReport(t *testing.T) {
	reports := []Report{&RomanceReport{ID: "a"}, &PlatformReport{ID: "b"}, &VendorReport{ID: "c"}}
	for i, r := range reports {
		assert.Equal(t, ReportTypes[i], r.Type())
		r.SetStatus(StatusCompleted)
	}
	assert.Equal(t, StatusCompleted, reports[2].(*VendorReport).Status)
}

func TestRomanceReportJSONFlattensForm(t *testing.T) {
	r := RomanceReport{
		ID:             "7b0f0a4e-1c59-4f4f-9f87-2a8c1b0a9d11",
		RomanceForm:    risk.RomanceForm{FullName: "Ada", ContactDuration: "1-4-weeks"},
		RiskAssessment: risk.Assessment{RiskLevel: risk.LevelLow, Score: 16},
		Status:         StatusPending,
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "Ada", m["fullName"])
	assert.Equal(t, "1-4-weeks", m["contactDuration"])
	assert.Equal(t, "pending", m["status"])
	assert.Equal(t, "Low", m["riskAssessment"].(map[string]any)["riskLevel"])
}
