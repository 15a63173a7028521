// Package metrics holds the process wide Prometheus collectors and the scrape handler
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piptrade_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "piptrade_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "piptrade_api_active_requests",
			Help: "Requests currently being served",
		},
	)

	// Record store
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "piptrade_store_op_duration_seconds",
			Help:    "Record store operation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "op"},
	)

	StoreOpErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piptrade_store_op_errors_total",
			Help: "Record store operations that returned an error",
		},
		[]string{"backend", "op"},
	)

	RecordsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piptrade_records_inserted_total",
			Help: "Records written by bulk insert",
		},
		[]string{"backend"},
	)

	// Charts
	ChartRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "piptrade_chart_renders_total",
			Help: "Charts laid out or rendered, by output format",
		},
		[]string{"format"},
	)

	ChartBars = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "piptrade_chart_bars",
			Help:    "Bars per rendered chart",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// RecordAPIRequest records one finished request
func RecordAPIRequest(method, route string, status int, d time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// TrackActiveRequest moves the in-flight gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}

// RecordStoreOp records one record store call
func RecordStoreOp(backend, op string, d time.Duration, err error) {
	StoreOpDuration.WithLabelValues(backend, op).Observe(d.Seconds())
	if err != nil {
		StoreOpErrors.WithLabelValues(backend, op).Inc()
	}
}

// RecordInserted counts n records written to backend
func RecordInserted(backend string, n int) {
	if n > 0 {
		RecordsInserted.WithLabelValues(backend).Add(float64(n))
	}
}

// RecordChart counts one chart in format with bars bars
func RecordChart(format string, bars int) {
	ChartRenders.WithLabelValues(format).Inc()
	ChartBars.Observe(float64(bars))
}

// Handler serves the default registry in the text exposition format
func Handler() http.Handler { return promhttp.Handler() }
