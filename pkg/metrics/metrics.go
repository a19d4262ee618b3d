// Package metrics defines the Prometheus collectors of the archive.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transcript_archive"

// Metrics groups every collector. Build one per registry.
type Metrics struct {
	FilesRegistered     prometheus.Counter
	FilesDeleted        prometheus.Counter
	TranscriptsAttached prometheus.Counter
	TranscriptsCascaded prometheus.Counter
	ConfidenceUpdates   prometheus.Counter
	LowConfidenceSpans  prometheus.Histogram
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter
	IngestRetries       prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registers all collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		FilesRegistered: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_registered_total",
			Help:      "Files added to the registry",
		}),
		FilesDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_deleted_total",
			Help:      "Files removed from the registry",
		}),
		TranscriptsAttached: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_attached_total",
			Help:      "Transcripts attached to files",
		}),
		TranscriptsCascaded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcripts_cascade_deleted_total",
			Help:      "Transcripts removed by file deletion",
		}),
		ConfidenceUpdates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confidence_updates_total",
			Help:      "Confidence payload replacements",
		}),
		LowConfidenceSpans: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "low_confidence_spans",
			Help:      "Spans returned per low-confidence query",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confidence_cache_hits_total",
			Help:      "Confidence payload reads served from cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confidence_cache_misses_total",
			Help:      "Confidence payload reads that went to the database",
		}),
		IngestRetries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_retries_total",
			Help:      "Ingest operations retried after an integrity error",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "path", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// NewRegistry returns a registry with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewNop returns metrics bound to a throwaway registry, for tests and the CLI
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
