// Package metrics содержит prometheus-метрики консоли.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamDuration длительность запросов к upstream API.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voucher_console_upstream_duration_seconds",
			Help:    "Duration of upstream API requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"path", "status"}, // status: HTTP code or "error"
	)

	// FormSubmissions количество отправок форм по результату.
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voucher_console_form_submissions_total",
			Help: "Form submissions by form and result",
		},
		[]string{"form", "result"}, // result: success, invalid, failed
	)
)

// Результаты отправки формы.
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultFailed  = "failed"
)

// ObserveUpstream записывает длительность запроса к upstream.
func ObserveUpstream(path, status string, d time.Duration) {
	UpstreamDuration.WithLabelValues(path, status).Observe(d.Seconds())
}

// CountSubmission увеличивает счетчик отправок формы.
func CountSubmission(form, result string) {
	FormSubmissions.WithLabelValues(form, result).Inc()
}
