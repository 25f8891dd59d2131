package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	resolutionSuccess  *prometheus.CounterVec
	resolutionSkipped  *prometheus.CounterVec
	resolutionFailed   *prometheus.CounterVec
	resolutionDuration prometheus.Histogram
	feedDepth          prometheus.Gauge
	feedLoadDuration   prometheus.Histogram
	feedLoadFailures   prometheus.Counter
	liveInserts        *prometheus.CounterVec
	alertActions       *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		resolutionSuccess: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detection_resolution_total",
				Help: "Total number of detection events resolved into alerts",
			},
			[]string{"classification"},
		),
		resolutionSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detection_resolution_skipped_total",
				Help: "Total number of detection events skipped",
			},
			[]string{"reason"},
		),
		resolutionFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "detection_resolution_failed_total",
				Help: "Total number of detection resolutions failed by gateway lookup",
			},
			[]string{"lookup"},
		),
		resolutionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "detection_resolution_duration_milliseconds",
				Help:    "Detection resolution duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		feedDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "alert_feed_depth",
				Help: "Current number of alerts in the feed",
			},
		),
		feedLoadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "alert_feed_load_duration_milliseconds",
				Help:    "Bulk feed load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		feedLoadFailures: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "alert_feed_load_failures_total",
				Help: "Total number of bulk feed loads that failed",
			},
		),
		liveInserts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alert_feed_live_inserts_total",
				Help: "Total number of live detection inserts prepended to the feed",
			},
			[]string{"classification"},
		),
		alertActions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alert_actions_total",
				Help: "Total number of user actions taken on feed alerts",
			},
			[]string{"action"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "detection.resolution.success":
		m.resolutionSuccess.WithLabelValues(tags["classification"]).Inc()
	case "detection.resolution.skipped":
		m.resolutionSkipped.WithLabelValues(tags["reason"]).Inc()
	case "detection.resolution.failed":
		m.resolutionFailed.WithLabelValues(tags["lookup"]).Inc()
	case "feed.load.failed":
		m.feedLoadFailures.Inc()
	case "feed.live_insert":
		m.liveInserts.WithLabelValues(tags["classification"]).Inc()
	case "alert.action":
		m.alertActions.WithLabelValues(tags["action"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "detection.resolution":
		m.resolutionDuration.Observe(float64(duration.Milliseconds()))
	case "feed.load":
		m.feedLoadDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "feed.depth":
		m.feedDepth.Set(value)
	}
}
