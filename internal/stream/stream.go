package stream

import (
	"sync"

	"github.com/harinianandprojects/prioq-vision-dash/internal/models"
)

// DetectionStream delivers detection events as they are inserted by the
// branch detection system. Implementations own their delivery goroutine;
// consumers range over Events until it is closed.
type DetectionStream interface {
	// Events returns the channel new detection events arrive on. The
	// channel is closed when the stream shuts down.
	Events() <-chan models.DetectionEvent
	// Close stops the stream and releases its resources. Safe to call
	// more than once.
	Close() error
}

// MemoryStream is an in-process DetectionStream backed by a buffered
// channel. It backs tests and local development without a database.
type MemoryStream struct {
	mu     sync.Mutex
	events chan models.DetectionEvent
	closed bool
}

// NewMemoryStream creates a MemoryStream able to buffer up to size events.
func NewMemoryStream(size int) *MemoryStream {
	if size <= 0 {
		size = 16
	}
	return &MemoryStream{events: make(chan models.DetectionEvent, size)}
}

// Emit publishes an event to the stream. Events emitted after Close, or
// while the buffer is full, are dropped.
func (s *MemoryStream) Emit(event models.DetectionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.events <- event:
	default:
	}
}

func (s *MemoryStream) Events() <-chan models.DetectionEvent {
	return s.events
}

func (s *MemoryStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.events)
	return nil
}
