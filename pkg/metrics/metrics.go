package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec

	bookingsCreated     *prometheus.CounterVec
	capacityRejections  *prometheus.CounterVec
	quotesCalculated    *prometheus.CounterVec
	bookingRevenueTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry (в тестах - prometheus.NewRegistry())
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings persisted, by category and season",
			ConstLabels: constLabels,
		}, []string{"category", "season"}),
		capacityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_capacity_rejections_total",
			Help:        "Booking attempts rejected because the category is full",
			ConstLabels: constLabels,
		}, []string{"category"}),
		quotesCalculated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_quotes_total",
			Help:        "Price quotes calculated, by category and worker flag",
			ConstLabels: constLabels,
		}, []string{"category", "worker"}),
		bookingRevenueTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_revenue_euros_total",
			Help:        "Sum of total prices of persisted bookings",
			ConstLabels: constLabels,
		}, []string{"category"}),
	}

	reg.MustRegister(
		m.httpRequests, m.httpDuration,
		m.dbQueryDuration, m.dbOpenConns, m.dbInUseConns, m.dbIdleConns, m.dbWaitCount,
		m.bookingsCreated, m.capacityRejections, m.quotesCalculated, m.bookingRevenueTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(db string, open, inUse, idle int, waitCount int64) {
	m.dbOpenConns.WithLabelValues(db).Set(float64(open))
	m.dbInUseConns.WithLabelValues(db).Set(float64(inUse))
	m.dbIdleConns.WithLabelValues(db).Set(float64(idle))
	m.dbWaitCount.WithLabelValues(db).Set(float64(waitCount))
}

// IncBookingCreated учитывает созданное бронирование и его сумму
func (m *Metrics) IncBookingCreated(category, season string, totalEuros float64) {
	m.bookingsCreated.WithLabelValues(category, season).Inc()
	m.bookingRevenueTotal.WithLabelValues(category).Add(totalEuros)
}

// IncCapacityRejection учитывает отказ из-за отсутствия мест
func (m *Metrics) IncCapacityRejection(category string) {
	m.capacityRejections.WithLabelValues(category).Inc()
}

// IncQuote учитывает рассчитанную стоимость
func (m *Metrics) IncQuote(category string, worker bool) {
	m.quotesCalculated.WithLabelValues(category, strconv.FormatBool(worker)).Inc()
}
