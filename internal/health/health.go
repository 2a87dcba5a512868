// Package health tracks per-media-type generation outcomes for the health
// endpoint. It is the only mutable state shared across requests, guarded by
// a single mutex.
package health

import (
	"sync"
	"time"

	"media-router/internal/models"
)

const degradedFailureRate = 0.5

type typeStats struct {
	requests     int
	failures     int
	totalLatency time.Duration
}

// Recorder accumulates generation outcomes since process start.
type Recorder struct {
	mu      sync.Mutex
	started time.Time
	perType map[models.MediaType]*typeStats
}

// NewRecorder constructs a recorder with an empty history.
func NewRecorder() *Recorder {
	return &Recorder{
		started: time.Now(),
		perType: make(map[models.MediaType]*typeStats),
	}
}

// Record registers the outcome of one generation.
func (r *Recorder) Record(mediaType models.MediaType, success bool, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.perType[mediaType]
	if !ok {
		stats = &typeStats{}
		r.perType[mediaType] = stats
	}
	stats.requests++
	if !success {
		stats.failures++
	}
	stats.totalLatency += latency
}

// MediaStats summarises outcomes for one media type.
type MediaStats struct {
	Requests    int     `json:"requests"`
	Failures    int     `json:"failures"`
	SuccessRate float64 `json:"success_rate"`
	AverageTime float64 `json:"average_time"`
}

// Snapshot is the health endpoint payload.
type Snapshot struct {
	Status        string                `json:"status"`
	UptimeSeconds float64               `json:"uptime_seconds"`
	TotalRequests int                   `json:"total_requests"`
	Media         map[string]MediaStats `json:"media"`
}

// Snapshot reports current health. The service is degraded when at least
// half of all generations have failed; with no traffic it is healthy.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Status:        "healthy",
		UptimeSeconds: time.Since(r.started).Seconds(),
		Media:         make(map[string]MediaStats, len(r.perType)),
	}

	totalFailures := 0
	for mediaType, stats := range r.perType {
		snap.TotalRequests += stats.requests
		totalFailures += stats.failures

		ms := MediaStats{
			Requests: stats.requests,
			Failures: stats.failures,
		}
		if stats.requests > 0 {
			ms.SuccessRate = float64(stats.requests-stats.failures) / float64(stats.requests)
			ms.AverageTime = stats.totalLatency.Seconds() / float64(stats.requests)
		}
		snap.Media[string(mediaType)] = ms
	}

	if snap.TotalRequests > 0 && float64(totalFailures)/float64(snap.TotalRequests) >= degradedFailureRate {
		snap.Status = "degraded"
	}
	return snap
}
