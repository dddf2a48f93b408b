package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.com/tinyland/lab/linechart/pkg/cache"
)

// metrics holds the collectors of one server. Each server owns its
// registry so several can run in one process.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	renders  *prometheus.CounterVec
	reloads  *prometheus.CounterVec
}

func newMetrics(store *cache.Store) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linechart_http_requests_total",
				Help: "Total HTTP requests processed, labeled by status code and method.",
			},
			[]string{"code", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "linechart_http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"handler", "method"},
		),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linechart_renders_total",
				Help: "Charts rendered, labeled by output format. Cache hits are not counted.",
			},
			[]string{"format"},
		),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linechart_reloads_total",
				Help: "Chart data reloads, labeled by result.",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(
		m.requests, m.duration, m.renders, m.reloads,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "linechart_cache_entries",
			Help: "Rendered charts held in the cache.",
		}, func() float64 { return float64(store.Stats().Entries) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "linechart_cache_hits_total",
			Help: "Render cache hits.",
		}, func() float64 { return float64(store.Stats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "linechart_cache_misses_total",
			Help: "Render cache misses.",
		}, func() float64 { return float64(store.Stats().Misses) }),
	)
	return m
}

// instrument wraps h with the request counter and a duration histogram
// labeled name.
func (m *metrics) instrument(name string, h http.HandlerFunc) http.Handler {
	return promhttp.InstrumentHandlerDuration(
		m.duration.MustCurryWith(prometheus.Labels{"handler": name}),
		promhttp.InstrumentHandlerCounter(m.requests, h),
	)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
