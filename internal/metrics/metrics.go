package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	reportsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scamlens_reports_submitted_total",
			Help: "Accepted report submissions by type and assessed risk level",
		},
		[]string{"type", "risk_level"},
	)

	imageUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scamlens_image_uploads_total",
			Help: "Evidence image uploads by folder and outcome",
		},
		[]string{"folder", "result"},
	)
)

func ReportSubmitted(reportType, riskLevel string) {
	reportsSubmitted.WithLabelValues(reportType, riskLevel).Inc()
}

func ImageUploaded(folder string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	imageUploads.WithLabelValues(folder, result).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
