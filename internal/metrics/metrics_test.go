package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReportSubmitted(t *testing.T) {
	before := testutil.ToFloat64(reportsSubmitted.WithLabelValues("vendor", "High"))

	ReportSubmitted("vendor", "High")
	ReportSubmitted("vendor", "High")

	assert.Equal(t, before+2, testutil.ToFloat64(reportsSubmitted.WithLabelValues("vendor", "High")))
}

func TestImageUploaded(t *testing.T) {
	okBefore := testutil.ToFloat64(imageUploads.WithLabelValues("romance_scam_photos", "ok"))
	errBefore := testutil.ToFloat64(imageUploads.WithLabelValues("romance_scam_photos", "error"))

	ImageUploaded("romance_scam_photos", nil)
	ImageUploaded("romance_scam_photos", errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(imageUploads.WithLabelValues("romance_scam_photos", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(imageUploads.WithLabelValues("romance_scam_photos", "error")))
}
