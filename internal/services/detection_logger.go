package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
)

// DetectionLogger provides structured logging for the detection pipeline
type DetectionLogger struct {
	logger *slog.Logger
}

// NewDetectionLogger creates a new detection logger
func NewDetectionLogger(logger *slog.Logger) DetectionLoggerInterface {
	return &DetectionLogger{
		logger: logger,
	}
}

// LogDetectionReceived logs a detection event entering resolution
func (dl *DetectionLogger) LogDetectionReceived(ctx context.Context, detectionID uuid.UUID, customerID string) {
	dl.logger.InfoContext(ctx, "detection received",
		slog.String("event_type", "detection_received"),
		slog.String("detection_id", detectionID.String()),
		slog.String("customer_id", customerID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAlertResolved logs a successfully resolved alert
func (dl *DetectionLogger) LogAlertResolved(ctx context.Context, detectionID uuid.UUID, customerID string, classification models.Classification, durationMs int64) {
	dl.logger.InfoContext(ctx, "alert resolved",
		slog.String("event_type", "alert_resolved"),
		slog.String("detection_id", detectionID.String()),
		slog.String("customer_id", customerID),
		slog.String("classification", string(classification)),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogUnknownCustomerSkipped logs a detection dropped for a missing profile
func (dl *DetectionLogger) LogUnknownCustomerSkipped(ctx context.Context, detectionID uuid.UUID, customerID string) {
	dl.logger.WarnContext(ctx, "detection skipped, customer unknown",
		slog.String("event_type", "unknown_customer_skipped"),
		slog.String("detection_id", detectionID.String()),
		slog.String("customer_id", customerID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogResolutionFailed logs a gateway failure during resolution
func (dl *DetectionLogger) LogResolutionFailed(ctx context.Context, detectionID uuid.UUID, customerID string, errorMsg string) {
	dl.logger.ErrorContext(ctx, "alert resolution failed",
		slog.String("event_type", "alert_resolution_failed"),
		slog.String("detection_id", detectionID.String()),
		slog.String("customer_id", customerID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogFeedLoaded logs a completed bulk load
func (dl *DetectionLogger) LogFeedLoaded(ctx context.Context, requested, resolved, skipped int, durationMs int64) {
	dl.logger.InfoContext(ctx, "alert feed loaded",
		slog.String("event_type", "feed_loaded"),
		slog.Int("requested", requested),
		slog.Int("resolved", resolved),
		slog.Int("skipped", skipped),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogFeedLoadFailed logs a bulk load that kept the previous feed contents
func (dl *DetectionLogger) LogFeedLoadFailed(ctx context.Context, errorMsg string) {
	dl.logger.ErrorContext(ctx, "alert feed load failed, keeping previous feed",
		slog.String("event_type", "feed_load_failed"),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogStaleLoadDiscarded logs a load result dropped because a newer load
// took over
func (dl *DetectionLogger) LogStaleLoadDiscarded(ctx context.Context, loadSeq uint64) {
	dl.logger.InfoContext(ctx, "stale feed load discarded",
		slog.String("event_type", "stale_load_discarded"),
		slog.Uint64("load_seq", loadSeq),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// Helper functions

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}
