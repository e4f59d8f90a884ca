package state

import (
	"time"

	"github.com/google/uuid"
)

// Option configures a Session.
type Option func(*Session)

// WithIDGenerator replaces the uuid-based shape IDs.
func WithIDGenerator(next func() string) Option {
	return func(s *Session) {
		s.nextID = next
	}
}

// WithClock replaces time.Now for shape timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func newShapeID() string {
	return "shape-" + uuid.NewString()
}
