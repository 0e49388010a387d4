package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the distribution ledger.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	announcementsCreated prometheus.Counter
	plantsIssued         prometheus.Counter
	receiptsReconciled   prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	announcementsCreated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cpds_announcements_created_total",
		Help: "Total announcements recorded",
	})

	plantsIssued := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cpds_plants_issued_total",
		Help: "Total plants issued across all announcements",
	})

	receiptsReconciled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cpds_receipt_reconciliations_total",
		Help: "Total receipt reconciliation updates",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, announcementsCreated, plantsIssued, receiptsReconciled, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:             registry,
		handler:              handler,
		requestDuration:      requestDuration,
		requestTotal:         requestTotal,
		announcementsCreated: announcementsCreated,
		plantsIssued:         plantsIssued,
		receiptsReconciled:   receiptsReconciled,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordAnnouncementCreated counts a stored announcement.
func (m *MetricsService) RecordAnnouncementCreated() {
	if m == nil {
		return
	}
	m.announcementsCreated.Inc()
}

// RecordPlantsIssued counts issued stock. Negative corrections are skipped
// since Prometheus counters only move forward.
func (m *MetricsService) RecordPlantsIssued(count int) {
	if m == nil {
		return
	}
	if count > 0 {
		m.plantsIssued.Add(float64(count))
	}
}

// RecordReceiptsReconciled counts a receipt reconciliation update.
func (m *MetricsService) RecordReceiptsReconciled() {
	if m == nil {
		return
	}
	m.receiptsReconciled.Inc()
}
