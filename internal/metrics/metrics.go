package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes the service's Prometheus collectors. A nil *Recorder is
// valid and records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	lastPrice     *prometheus.GaugeVec
	lastRSI       *prometheus.GaugeVec
	signalTotal   *prometheus.CounterVec
}

// New creates a Recorder registered on its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptopulse_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cryptopulse_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route", "method"},
		),
		fetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptopulse_upstream_fetch_total",
				Help: "Upstream market-data fetches by outcome",
			},
			[]string{"source", "outcome"},
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cryptopulse_upstream_fetch_duration_seconds",
				Help:    "Upstream market-data fetch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		lastPrice: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cryptopulse_last_price",
				Help: "Last computed price for a coin",
			},
			[]string{"coin"},
		),
		lastRSI: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cryptopulse_last_rsi",
				Help: "Last computed RSI for a coin",
			},
			[]string{"coin"},
		),
		signalTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cryptopulse_signals_total",
				Help: "Computed trade signals by coin and label",
			},
			[]string{"coin", "signal"},
		),
	}
	r.registry.MustRegister(
		r.httpRequests, r.httpDuration,
		r.fetchTotal, r.fetchDuration,
		r.lastPrice, r.lastRSI, r.signalTotal,
	)
	return r
}

// Registry returns the registry to expose on /metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveHTTP records one served request.
func (r *Recorder) ObserveHTTP(route, method, status string, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// ObserveFetch records one upstream fetch. outcome is "ok", "empty" or "error".
func (r *Recorder) ObserveFetch(source, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.fetchTotal.WithLabelValues(source, outcome).Inc()
	r.fetchDuration.WithLabelValues(source).Observe(d.Seconds())
}

// ObserveSummary records the latest snapshot for a coin.
func (r *Recorder) ObserveSummary(coin string, price, rsi float64, signal string) {
	if r == nil {
		return
	}
	r.lastPrice.WithLabelValues(coin).Set(price)
	r.lastRSI.WithLabelValues(coin).Set(rsi)
	r.signalTotal.WithLabelValues(coin, signal).Inc()
}
