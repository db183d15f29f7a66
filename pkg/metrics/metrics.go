// Package metrics provides Prometheus metrics for ShareGuard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label constants for metrics.
const (
	LabelResult = "result"
	LabelSource = "source"
	LabelMethod = "method"
	LabelStatus = "status"
)

// Result constants for auth and redemption outcomes.
const (
	ResultOK          = "ok"
	ResultMFARequired = "mfa_required"
	ResultInvalid     = "invalid"
	ResultDisabled    = "disabled"
	ResultLimited     = "limited"
	ResultNotFound    = "not_found"
	ResultExpired     = "expired"
	ResultUsed        = "used"
	ResultForbidden   = "forbidden"
	ResultError       = "error"
)

// Source constants for content access.
const (
	SourceOwner = "owner"
	SourceGrant = "grant"
	SourceLink  = "link"
)

// Metrics provides Prometheus metrics for authentication, sharing, and
// content access.
type Metrics struct {
	registry *prometheus.Registry

	loginTotal      *prometheus.CounterVec
	mfaVerifyTotal  *prometheus.CounterVec
	registerTotal   *prometheus.CounterVec
	redemptionTotal *prometheus.CounterVec

	uploadTotal   prometheus.Counter
	downloadTotal *prometheus.CounterVec
	uploadBytes   prometheus.Counter

	httpRequestDuration *prometheus.HistogramVec

	prunedTotal prometheus.Counter
}

// New creates a Metrics instance backed by a dedicated registry.
//
// A dedicated registry keeps the /metrics output limited to ShareGuard's own
// series plus the standard process and Go collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := NewWithRegisterer(registry)
	m.registry = registry
	return m
}

// NewWithRegisterer creates a Metrics instance registered against the given
// registerer. If registry is nil, metrics are created but not registered
// (useful for testing).
func NewWithRegisterer(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		loginTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "auth",
				Name:      "logins_total",
				Help:      "Total number of login attempts by outcome",
			},
			[]string{LabelResult},
		),

		mfaVerifyTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "auth",
				Name:      "mfa_verifications_total",
				Help:      "Total number of MFA code verifications by outcome",
			},
			[]string{LabelResult},
		),

		registerTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "auth",
				Name:      "registrations_total",
				Help:      "Total number of account registrations by outcome",
			},
			[]string{LabelResult},
		),

		redemptionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "links",
				Name:      "redemptions_total",
				Help:      "Total number of share link redemptions by outcome",
			},
			[]string{LabelResult},
		),

		uploadTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "files",
				Name:      "uploads_total",
				Help:      "Total number of successful file uploads",
			},
		),

		downloadTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "files",
				Name:      "downloads_total",
				Help:      "Total number of content reads by authorization source",
			},
			[]string{LabelSource},
		),

		uploadBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "files",
				Name:      "upload_bytes_total",
				Help:      "Total bytes accepted through uploads",
			},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "shareguard",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by method and status",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{LabelMethod, LabelStatus},
		),

		prunedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "shareguard",
				Subsystem: "janitor",
				Name:      "pruned_total",
				Help:      "Total number of expired grants and links removed",
			},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.loginTotal,
			m.mfaVerifyTotal,
			m.registerTotal,
			m.redemptionTotal,
			m.uploadTotal,
			m.downloadTotal,
			m.uploadBytes,
			m.httpRequestDuration,
			m.prunedTotal,
		)
	}

	return m
}

// Handler returns an HTTP handler serving the registry in Prometheus text
// format. Returns nil when the Metrics was built without its own registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RecordLogin records a login attempt outcome.
func (m *Metrics) RecordLogin(result string) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(result).Inc()
}

// RecordMFAVerification records an MFA code verification outcome.
func (m *Metrics) RecordMFAVerification(result string) {
	if m == nil {
		return
	}
	m.mfaVerifyTotal.WithLabelValues(result).Inc()
}

// RecordRegistration records an account registration outcome.
func (m *Metrics) RecordRegistration(result string) {
	if m == nil {
		return
	}
	m.registerTotal.WithLabelValues(result).Inc()
}

// RecordRedemption records a share link redemption outcome.
func (m *Metrics) RecordRedemption(result string) {
	if m == nil {
		return
	}
	m.redemptionTotal.WithLabelValues(result).Inc()
}

// RecordUpload records a successful upload and its size.
func (m *Metrics) RecordUpload(bytes int64) {
	if m == nil {
		return
	}
	m.uploadTotal.Inc()
	m.uploadBytes.Add(float64(bytes))
}

// RecordDownload records a content read by authorization source.
func (m *Metrics) RecordDownload(source string) {
	if m == nil {
		return
	}
	m.downloadTotal.WithLabelValues(source).Inc()
}

// ObserveHTTPRequest records the latency of a completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestDuration.WithLabelValues(method, status).Observe(seconds)
}

// RecordPruned records expired rows removed by the janitor.
func (m *Metrics) RecordPruned(count int64) {
	if m == nil || count <= 0 {
		return
	}
	m.prunedTotal.Add(float64(count))
}
