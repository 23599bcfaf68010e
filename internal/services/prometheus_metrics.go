package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	partnerCallsTotal    *prometheus.CounterVec
	partnerCallDuration  *prometheus.HistogramVec
	enrichmentOutcomes   *prometheus.CounterVec
	aggregationDuration  prometheus.Histogram
	fxQuotesTotal        *prometheus.CounterVec
	fxDegradedTotal      prometheus.Counter
	consentEventsTotal   *prometheus.CounterVec
	paymentEventsTotal   *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
	httpErrorsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		partnerCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partner_calls_total",
				Help: "Total number of outbound partner API calls",
			},
			[]string{"call", "status"},
		),
		partnerCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "partner_call_duration_milliseconds",
				Help:    "Outbound partner API call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"call"},
		),
		enrichmentOutcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_enrichment_total",
				Help: "Total number of per-account balance enrichment attempts",
			},
			[]string{"outcome"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "account_aggregation_duration_milliseconds",
				Help:    "Account aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		fxQuotesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fx_quotes_total",
				Help: "Total number of FX quotes by match kind",
			},
			[]string{"match"},
		),
		fxDegradedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fx_degraded_responses_total",
				Help: "Total number of degraded FX responses served with a warning",
			},
		),
		consentEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "consent_events_total",
				Help: "Total number of consent lifecycle events",
			},
			[]string{"event"},
		),
		paymentEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_events_total",
				Help: "Total number of payment flow events",
			},
			[]string{"event"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		httpErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of HTTP error responses by code",
			},
			[]string{"error_code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "account.enrichment.success":
		m.enrichmentOutcomes.WithLabelValues("success").Inc()
	case "account.enrichment.failed":
		m.enrichmentOutcomes.WithLabelValues("failed").Inc()
	case "fx.quote.exact":
		m.fxQuotesTotal.WithLabelValues("exact").Inc()
	case "fx.quote.fallback":
		m.fxQuotesTotal.WithLabelValues("fallback").Inc()
	case "fx.degraded":
		m.fxDegradedTotal.Inc()
	case "consent.event":
		if event := tags["event"]; event != "" {
			m.consentEventsTotal.WithLabelValues(event).Inc()
		}
	case "payment.event":
		if event := tags["event"]; event != "" {
			m.paymentEventsTotal.WithLabelValues(event).Inc()
		}
	case "http.error":
		if code := tags["error_code"]; code != "" {
			m.httpErrorsTotal.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "account.aggregation":
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		service := tags["service"]
		if service == "" {
			service = "partner"
		}
		m.circuitBreakerState.WithLabelValues(service).Set(value)
	}
}

func (m *PrometheusMetrics) RecordPartnerCall(call string, statusCode int, duration time.Duration) {
	m.partnerCallsTotal.WithLabelValues(call, strconv.Itoa(statusCode)).Inc()
	m.partnerCallDuration.WithLabelValues(call).Observe(float64(duration.Milliseconds()))
}
