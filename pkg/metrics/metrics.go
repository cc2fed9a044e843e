package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	externalCallsTotal   *prometheus.CounterVec
	externalCallDuration *prometheus.HistogramVec
	slotsGenerated       prometheus.Histogram
	leadsStored          prometheus.Gauge
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		externalCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "external_calls_total",
				Help:        "Total number of calls to external collaborators",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"target", "outcome"},
		),
		externalCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "external_call_duration_seconds",
				Help:        "External collaborator call duration in seconds",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"target"},
		),
		slotsGenerated: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "availability_slots_generated",
				Help:        "Number of free slots produced per availability request",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     []float64{0, 1, 5, 10, 20, 50, 100, 200},
			},
		),
		leadsStored: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "leads_stored",
				Help:        "Current number of leads in the store",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.externalCallsTotal,
		m.externalCallDuration,
		m.slotsGenerated,
		m.leadsStored,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveExternalCall фиксирует обращение к внешнему сервису
// target: "directory", "voicecall", "calendar", "smtp"
// outcome: "ok" или "error"
func (m *Metrics) ObserveExternalCall(target, outcome string, duration time.Duration) {
	m.externalCallsTotal.WithLabelValues(target, outcome).Inc()
	m.externalCallDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// ObserveSlotsGenerated фиксирует количество слотов в ответе availability
func (m *Metrics) ObserveSlotsGenerated(count int) {
	m.slotsGenerated.Observe(float64(count))
}

// SetLeadsStored обновляет gauge количества лидов в хранилище
func (m *Metrics) SetLeadsStored(count int) {
	m.leadsStored.Set(float64(count))
}
