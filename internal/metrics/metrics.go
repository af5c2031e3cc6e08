package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Detection
	DetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_detections_total",
			Help: "Total number of finished detections by strategy and category",
		},
		[]string{"strategy", "emotion"},
	)

	DetectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emotion_detection_duration_seconds",
			Help:    "Duration of a full pass through the classifier chain",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	StrategyFallThroughs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_strategy_fallthrough_total",
			Help: "Total number of times a strategy handed a frame to the next one",
		},
		[]string{"strategy", "reason"},
	)

	StrategyAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "emotion_strategy_available",
			Help: "1 when the strategy initialised at startup, 0 otherwise",
		},
		[]string{"strategy"},
	)

	// Catalog
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of music catalog lookups",
		},
		[]string{"provider", "result"}, // "ok", "error", "cache_hit"
	)

	// Timeline
	TimelineWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timeline_writes_total",
			Help: "Total number of timeline persistence attempts",
		},
		[]string{"backend", "result"},
	)

	TimelineEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "timeline_entries",
			Help: "Current number of entries held by the timeline",
		},
	)

	// WebSocket
	WSConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "emotion_ws_connections_active",
			Help: "Current number of open emotion websocket sessions",
		},
	)
)

func RecordDetection(strategy, emotion string, duration time.Duration) {
	DetectionsTotal.WithLabelValues(strategy, emotion).Inc()
	DetectionDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

func RecordFallThrough(strategy, reason string) {
	StrategyFallThroughs.WithLabelValues(strategy, reason).Inc()
}

func SetStrategyAvailable(strategy string, ok bool) {
	v := 0.0
	if ok {
		v = 1
	}
	StrategyAvailable.WithLabelValues(strategy).Set(v)
}

func RecordCatalogRequest(provider string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	CatalogRequests.WithLabelValues(provider, result).Inc()
}

func RecordCatalogCacheHit(provider string) {
	CatalogRequests.WithLabelValues(provider, "cache_hit").Inc()
}

func RecordTimelineWrite(backend string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	TimelineWrites.WithLabelValues(backend, result).Inc()
}

func TrackWSConnection(open bool) {
	if open {
		WSConnectionsActive.Inc()
		return
	}
	WSConnectionsActive.Dec()
}
