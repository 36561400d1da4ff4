package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллектор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках компоненты получают nil
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	appointmentsCreated   *prometheus.CounterVec
	appointmentsCancelled prometheus.Counter
	remindersTotal        *prometheus.CounterVec
	persistenceFailures   *prometheus.CounterVec
}

// New создает коллектор метрик с собственным реестром
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		appointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of created appointments",
			ConstLabels: labels,
		}, []string{"source"}),
		appointmentsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_cancelled_total",
			Help:        "Total number of cancelled appointments",
			ConstLabels: labels,
		}),
		remindersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_total",
			Help:        "Reminder notifications by result",
			ConstLabels: labels,
		}, []string{"result"}),
		persistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "persistence_write_failures_total",
			Help:        "Collection snapshot writes that failed after retries",
			ConstLabels: labels,
		}, []string{"collection"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.appointmentsCreated,
		m.appointmentsCancelled,
		m.remindersTotal,
		m.persistenceFailures,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncAppointmentsCreated учитывает созданную запись (source: customer, admin, admin_force)
func (m *Metrics) IncAppointmentsCreated(source string) {
	if m == nil {
		return
	}
	m.appointmentsCreated.WithLabelValues(source).Inc()
}

// IncAppointmentsCancelled учитывает отменённую запись
func (m *Metrics) IncAppointmentsCancelled() {
	if m == nil {
		return
	}
	m.appointmentsCancelled.Inc()
}

// IncReminders учитывает результат напоминания (sent, not_sent, failed, late)
func (m *Metrics) IncReminders(result string) {
	if m == nil {
		return
	}
	m.remindersTotal.WithLabelValues(result).Inc()
}

// IncPersistenceFailures учитывает неудачную запись коллекции
func (m *Metrics) IncPersistenceFailures(collection string) {
	if m == nil {
		return
	}
	m.persistenceFailures.WithLabelValues(collection).Inc()
}
