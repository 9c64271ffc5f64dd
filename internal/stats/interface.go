package stats

import (
	"context"
	"time"
)

// SessionSnapshot captures the outcome of one capture session.
type SessionSnapshot struct {
	Timestamp time.Time
	Session   int
	Accepted  int
	InRange   int
	Discarded int
	MinDelta  uint16
	MaxDelta  uint16
	Elapsed   time.Duration
	TimedOut  bool
}

// Collector accumulates session outcomes for the lifetime of the
// process. Close logs an aggregate summary.
type Collector interface {
	Record(ctx context.Context, snapshot *SessionSnapshot) error
	Close() error
}
