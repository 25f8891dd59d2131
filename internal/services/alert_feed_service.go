package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories"
)

// ErrAlertNotFound marks an operation against an alert id that is not in
// the feed.
var ErrAlertNotFound = errors.New("alert not found in feed")

// AlertFeedService owns the in-memory feed of resolved alerts. The feed is
// the only mutable shared state in the service; every mutation happens
// under the feed mutex. Ordering invariant: detection_time descending.
//
// Bulk loads and live inserts can overlap. Each load carries a monotonic
// sequence number; a load that finishes after a newer one started discards
// its result instead of overwriting fresher data. Live inserts that arrive
// while a load is in flight are parked in a pending queue and merged in
// front of the loaded feed, so neither side drops events.
type AlertFeedService struct {
	resolver      AlertResolutionServiceInterface
	detectionRepo repositories.DetectionEventRepositoryInterface
	logger        DetectionLoggerInterface
	metrics       MetricsRecorderInterface

	loadLimit      int
	snoozeDuration time.Duration

	mu      sync.Mutex
	alerts  []models.Alert
	pending []models.Alert
	loading bool
	loadSeq uint64
}

// NewAlertFeedService creates a new alert feed service.
func NewAlertFeedService(
	resolver AlertResolutionServiceInterface,
	detectionRepo repositories.DetectionEventRepositoryInterface,
	logger DetectionLoggerInterface,
	metrics MetricsRecorderInterface,
	loadLimit int,
	snoozeDuration time.Duration,
) *AlertFeedService {
	if loadLimit <= 0 {
		loadLimit = 10
	}
	return &AlertFeedService{
		resolver:       resolver,
		detectionRepo:  detectionRepo,
		logger:         logger,
		metrics:        metrics,
		loadLimit:      loadLimit,
		snoozeDuration: snoozeDuration,
	}
}

// LoadRecent fetches the most recent detection events and replaces the
// feed with their resolved alerts. Events are resolved in parallel but
// recombined in detection order. Unknown-customer events are skipped; any
// gateway failure keeps the previous feed contents and surfaces the error.
func (s *AlertFeedService) LoadRecent(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.loading = true
	s.mu.Unlock()

	start := time.Now()

	events, err := s.detectionRepo.GetRecent(ctx, s.loadLimit)
	if err != nil {
		s.abortLoad(ctx, seq, err)
		return fmt.Errorf("%w: recent detections: %v", ErrGateway, err)
	}

	resolved := make([]*models.Alert, len(events))
	resolveErrs := make([]error, len(events))
	var wg sync.WaitGroup
	for i := range events {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resolved[i], resolveErrs[i] = s.resolver.Resolve(ctx, events[i])
		}(i)
	}
	wg.Wait()

	alerts := make([]models.Alert, 0, len(events))
	skipped := 0
	for i := range events {
		if err := resolveErrs[i]; err != nil {
			if errors.Is(err, ErrUnknownCustomer) {
				skipped++
				continue
			}
			s.abortLoad(ctx, seq, err)
			return err
		}
		alerts = append(alerts, *resolved[i])
	}

	s.mu.Lock()
	if seq != s.loadSeq {
		s.mu.Unlock()
		s.logger.LogStaleLoadDiscarded(ctx, seq)
		return nil
	}
	s.alerts = s.mergePendingLocked(alerts)
	s.pending = nil
	s.loading = false
	depth := len(s.alerts)
	s.mu.Unlock()

	durationMs := time.Since(start).Milliseconds()
	s.logger.LogFeedLoaded(ctx, len(events), len(alerts), skipped, durationMs)
	s.metrics.RecordProcessingTime("feed.load", time.Since(start))
	s.metrics.RecordGauge("feed.depth", float64(depth), nil)
	return nil
}

// abortLoad clears the loading flag for a failed load, unless a newer load
// already took over. Live inserts parked during the failed load are merged
// in front of the previous feed contents so they stay visible; the loaded
// contents themselves stay untouched. containsLocked already keeps pending
// and alerts disjoint, so the prepend needs no dedupe.
func (s *AlertFeedService) abortLoad(ctx context.Context, seq uint64, err error) {
	s.mu.Lock()
	depth := -1
	if seq == s.loadSeq {
		s.loading = false
		if len(s.pending) > 0 {
			s.alerts = append(s.pending, s.alerts...)
			s.pending = nil
			depth = len(s.alerts)
		}
	}
	s.mu.Unlock()
	s.logger.LogFeedLoadFailed(ctx, err.Error())
	s.metrics.IncrementCounter("feed.load.failed", nil)
	if depth >= 0 {
		s.metrics.RecordGauge("feed.depth", float64(depth), nil)
	}
}

// mergePendingLocked puts live inserts that arrived during the load in
// front of the loaded alerts, dropping loaded duplicates of the same
// detection. Caller holds s.mu.
func (s *AlertFeedService) mergePendingLocked(loaded []models.Alert) []models.Alert {
	if len(s.pending) == 0 {
		return loaded
	}
	seen := make(map[string]bool, len(s.pending))
	for i := range s.pending {
		seen[s.pending[i].ID] = true
	}
	merged := make([]models.Alert, 0, len(s.pending)+len(loaded))
	merged = append(merged, s.pending...)
	for i := range loaded {
		if !seen[loaded[i].ID] {
			merged = append(merged, loaded[i])
		}
	}
	return merged
}

// HandleInsert resolves one live detection event and prepends the alert.
// Unknown customers are dropped silently (already logged by the resolver);
// resolution failures drop the event, the feed recovers it on the next
// bulk load.
func (s *AlertFeedService) HandleInsert(ctx context.Context, event models.DetectionEvent) {
	alert, err := s.resolver.Resolve(ctx, event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsLocked(alert.ID) {
		return
	}
	if s.loading {
		s.pending = append([]models.Alert{*alert}, s.pending...)
	} else {
		s.alerts = append([]models.Alert{*alert}, s.alerts...)
		s.metrics.RecordGauge("feed.depth", float64(len(s.alerts)), nil)
	}
	s.metrics.IncrementCounter("feed.live_insert", map[string]string{
		"classification": string(alert.Classification),
	})
}

func (s *AlertFeedService) containsLocked(alertID string) bool {
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			return true
		}
	}
	for i := range s.pending {
		if s.pending[i].ID == alertID {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the feed, newest first.
func (s *AlertFeedService) Snapshot() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.Alert, len(s.alerts))
	copy(snapshot, s.alerts)
	return snapshot
}

// Search filters the snapshot by the feed's free-text query.
func (s *AlertFeedService) Search(query string) []models.Alert {
	snapshot := s.Snapshot()
	matched := make([]models.Alert, 0, len(snapshot))
	for i := range snapshot {
		if snapshot[i].MatchesQuery(query) {
			matched = append(matched, snapshot[i])
		}
	}
	return matched
}

// Loading reports whether a bulk load is in flight.
func (s *AlertFeedService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Acknowledge marks an alert handled. Local-only: nothing is written back
// to the gateway.
func (s *AlertFeedService) Acknowledge(alertID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			s.alerts[i].Acknowledged = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAlertNotFound, alertID)
}

// Snooze quiets an alert for the given duration; zero falls back to the
// configured default.
func (s *AlertFeedService) Snooze(alertID string, duration time.Duration) error {
	if duration <= 0 {
		duration = s.snoozeDuration
	}
	until := time.Now().UTC().Add(duration)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			s.alerts[i].SnoozedUntil = &until
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrAlertNotFound, alertID)
}

// Dismiss removes an alert from the feed, used to flag a false-positive
// detection. Dismissing an absent alert is a no-op.
func (s *AlertFeedService) Dismiss(alertID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			s.metrics.RecordGauge("feed.depth", float64(len(s.alerts)), nil)
			return nil
		}
	}
	return nil
}

// Consume drains a detection event channel into the feed until the channel
// closes or the context ends. Intended to run in its own goroutine.
func (s *AlertFeedService) Consume(ctx context.Context, events <-chan models.DetectionEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.HandleInsert(ctx, event)
		}
	}
}
