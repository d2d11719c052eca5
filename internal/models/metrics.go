package models

import "time"

// SystemMetrics is a lightweight snapshot served by the admin metrics endpoint.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CatalogSize              int       `json:"catalog_size"`
	CatalogLoadedAt          time.Time `json:"catalog_loaded_at,omitempty"`
	FilterRuns               uint64    `json:"filter_runs"`
	AverageFilterDurationMs  float64   `json:"average_filter_duration_ms"`
	RemindersDispatched      uint64    `json:"reminders_dispatched"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
