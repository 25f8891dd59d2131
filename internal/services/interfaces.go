package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harinianandprojects/prioq-vision-dash/internal/dto"
	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
)

// AlertResolutionServiceInterface turns a raw detection event into a fully
// resolved alert by joining the detected customer's gateway context.
type AlertResolutionServiceInterface interface {
	Resolve(ctx context.Context, event models.DetectionEvent) (*models.Alert, error)
}

// AlertFeedServiceInterface owns the in-memory alert feed. All mutation of
// feed state goes through these methods.
type AlertFeedServiceInterface interface {
	// LoadRecent replaces the feed with the most recent detection events,
	// resolved in parallel and recombined in detection order. On gateway
	// failure the previous feed contents are kept.
	LoadRecent(ctx context.Context) error
	// HandleInsert resolves one live detection event and prepends the
	// resulting alert. Events for unknown customers are dropped.
	HandleInsert(ctx context.Context, event models.DetectionEvent)
	// Snapshot returns a copy of the feed, newest first.
	Snapshot() []models.Alert
	// Search filters the snapshot by a case-insensitive substring across
	// customer id, name, email, and phone. Empty query returns all.
	Search(query string) []models.Alert
	// Loading reports whether a bulk load is in flight.
	Loading() bool
	Acknowledge(alertID string) error
	Snooze(alertID string, duration time.Duration) error
	Dismiss(alertID string) error
}

// DashboardServiceInterface drives the page-level view selector and the
// stats row.
type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStats, error)
	GetView() string
	SetView(view string) error
}

// DetectionLoggerInterface provides structured logging for the detection
// pipeline.
type DetectionLoggerInterface interface {
	LogDetectionReceived(ctx context.Context, detectionID uuid.UUID, customerID string)
	LogAlertResolved(ctx context.Context, detectionID uuid.UUID, customerID string, classification models.Classification, durationMs int64)
	LogUnknownCustomerSkipped(ctx context.Context, detectionID uuid.UUID, customerID string)
	LogResolutionFailed(ctx context.Context, detectionID uuid.UUID, customerID string, errorMsg string)
	LogFeedLoaded(ctx context.Context, requested, resolved, skipped int, durationMs int64)
	LogFeedLoadFailed(ctx context.Context, errorMsg string)
	LogStaleLoadDiscarded(ctx context.Context, loadSeq uint64)
}

// MetricsRecorderInterface abstracts metric recording so services stay
// testable without a registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
