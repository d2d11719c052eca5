package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Rhea-16/scholarLink/internal/models"
)

const metricsNamespace = "scholarlink"

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	catalogSize     prometheus.Gauge
	catalogLoads    *prometheus.CounterVec
	filterDuration  *prometheus.HistogramVec
	filterResults   prometheus.Histogram
	reminders       *prometheus.CounterVec

	cacheHitCount        uint64
	cacheMissCount       uint64
	requestCount         uint64
	requestDurationTotal uint64
	filterCount          uint64
	filterDurationTotal  uint64
	reminderCount        uint64
	catalogCount         int64
	catalogLoadedAt      atomic.Value
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "cache_latency_seconds",
		Help:      "Latency for cache lookups",
		Buckets:   prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "cache_write_seconds",
		Help:      "Latency for cache set operations",
		Buckets:   prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "cache_hit_ratio",
		Help:      "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "cache_hits_total",
		Help:      "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "cache_misses_total",
		Help:      "Total cache misses",
	})

	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "catalog_scholarships",
		Help:      "Number of scholarships in the loaded catalog",
	})

	catalogLoads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "catalog_loads_total",
		Help:      "Catalog loads by source and result",
	}, []string{"source", "result"})

	filterDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "eligibility_filter_duration_seconds",
		Help:      "Time spent filtering and ranking the catalog",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"sort"})

	filterResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "eligibility_filter_results",
		Help:      "Number of scholarships surviving a filter run",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	reminders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "reminders_dispatched_total",
		Help:      "Reminder notifications by result",
	}, []string{"result"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "goroutines_total",
		Help:      "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite, cacheHitRatio, cacheHits, cacheMisses,
		catalogSize, catalogLoads, filterDuration, filterResults, reminders, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		catalogSize:     catalogSize,
		catalogLoads:    catalogLoads,
		filterDuration:  filterDuration,
		filterResults:   filterResults,
		reminders:       reminders,
	}
}

// Registry exposes the underlying registry for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
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

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordCacheOperation records cache hit/miss metrics and updates hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	total := hits + misses
	if total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveCatalogLoad records a catalog load attempt. size is ignored on failure.
func (m *MetricsService) ObserveCatalogLoad(source string, size int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.catalogLoads.WithLabelValues(source, "error").Inc()
		return
	}
	m.catalogLoads.WithLabelValues(source, "ok").Inc()
	m.catalogSize.Set(float64(size))
	atomic.StoreInt64(&m.catalogCount, int64(size))
	m.catalogLoadedAt.Store(time.Now().UTC())
}

// ObserveFilter records one filter+rank pass over the catalog.
func (m *MetricsService) ObserveFilter(mode models.SortMode, results int, duration time.Duration) {
	if m == nil {
		return
	}
	m.filterDuration.WithLabelValues(string(mode)).Observe(duration.Seconds())
	m.filterResults.Observe(float64(results))
	atomic.AddUint64(&m.filterCount, 1)
	atomic.AddUint64(&m.filterDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveReminder records a reminder dispatch outcome.
func (m *MetricsService) ObserveReminder(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.reminders.WithLabelValues("error").Inc()
		return
	}
	m.reminders.WithLabelValues("ok").Inc()
	atomic.AddUint64(&m.reminderCount, 1)
}

// Snapshot returns aggregated metrics for the admin endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)
	filters := atomic.LoadUint64(&m.filterCount)
	filterDuration := atomic.LoadUint64(&m.filterDurationTotal)

	var cacheRatio float64
	if total := hits + misses; total > 0 {
		cacheRatio = float64(hits) / float64(total)
	}

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	var avgFilterMs float64
	if filters > 0 {
		avgFilterMs = float64(filterDuration) / float64(filters) / float64(time.Millisecond)
	}

	snapshot := models.SystemMetrics{
		CacheHitRatio:            cacheRatio,
		CacheHits:                hits,
		CacheMisses:              misses,
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		CatalogSize:              int(atomic.LoadInt64(&m.catalogCount)),
		FilterRuns:               filters,
		AverageFilterDurationMs:  avgFilterMs,
		RemindersDispatched:      atomic.LoadUint64(&m.reminderCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
	if loadedAt, ok := m.catalogLoadedAt.Load().(time.Time); ok {
		snapshot.CatalogLoadedAt = loadedAt
	}
	return snapshot
}
