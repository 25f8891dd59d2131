package stream

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/harinianandprojects/prioq-vision-dash/internal/config"
	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
)

// pingInterval bounds how long the listener goes without checking the
// connection when no notifications arrive.
const pingInterval = 90 * time.Second

// PGListener is a DetectionStream backed by PostgreSQL LISTEN/NOTIFY. A
// database trigger on detection_events publishes each inserted row as a
// JSON payload on the configured channel.
type PGListener struct {
	listener *pq.Listener
	channel  string
	logger   *slog.Logger

	events chan models.DetectionEvent
	done   chan struct{}
	once   sync.Once
}

// NewPGListener connects to the database, subscribes to the configured
// notification channel, and starts delivering decoded events.
func NewPGListener(dsn string, cfg config.StreamConfig, logger *slog.Logger) (*PGListener, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Error("detection stream connection problem",
				slog.Int("event_type", int(ev)),
				slog.String("error", err.Error()),
			)
		}
	}

	listener := pq.NewListener(dsn, cfg.MinReconnectInterval, cfg.MaxReconnectInterval, reportProblem)
	if err := listener.Listen(cfg.Channel); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to listen on channel %s: %w", cfg.Channel, err)
	}

	l := &PGListener{
		listener: listener,
		channel:  cfg.Channel,
		logger:   logger,
		events:   make(chan models.DetectionEvent, 64),
		done:     make(chan struct{}),
	}
	go l.run()
	return l, nil
}

func (l *PGListener) Events() <-chan models.DetectionEvent {
	return l.events
}

// Close unsubscribes from the channel and stops the delivery goroutine.
func (l *PGListener) Close() error {
	var err error
	l.once.Do(func() {
		close(l.done)
		err = l.listener.Close()
	})
	return err
}

func (l *PGListener) run() {
	defer close(l.events)

	for {
		select {
		case <-l.done:
			return
		case notification, ok := <-l.listener.Notify:
			if !ok {
				return
			}
			// A nil notification means the connection was re-established;
			// events inserted during the outage were missed and the feed
			// recovers them on its next bulk load.
			if notification == nil {
				l.logger.Warn("detection stream reconnected, notifications may have been missed",
					slog.String("channel", l.channel))
				continue
			}
			event, err := decodeNotification(notification.Extra)
			if err != nil {
				l.logger.Error("failed to decode detection notification",
					slog.String("channel", notification.Channel),
					slog.String("payload", notification.Extra),
					slog.String("error", err.Error()),
				)
				continue
			}
			select {
			case l.events <- event:
			case <-l.done:
				return
			}
		case <-time.After(pingInterval):
			if err := l.listener.Ping(); err != nil {
				l.logger.Error("detection stream ping failed",
					slog.String("error", err.Error()))
			}
		}
	}
}

func decodeNotification(payload string) (models.DetectionEvent, error) {
	var event models.DetectionEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return models.DetectionEvent{}, fmt.Errorf("failed to unmarshal detection event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return models.DetectionEvent{}, err
	}
	return event, nil
}
