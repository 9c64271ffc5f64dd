// Package stats keeps an in-memory record of session outcomes so the
// shutdown log can summarize a run. Results are never persisted.
package stats

import (
	"context"
	"sync"

	"codeberg.org/mutker/jitterctl/internal/errors"
	"codeberg.org/mutker/jitterctl/internal/logger"
)

type service struct {
	cfg Config

	mu        sync.Mutex
	recent    []*SessionSnapshot
	sessions  int
	timeouts  int
	inRange   int
	discarded int
}

// No-op implementation
type noopCollector struct{}

func NewCollector(cfg Config) (Collector, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidStatsConfig, err)
	}

	if !cfg.Enabled {
		logger.Debug().Msg("Session stats disabled, using no-op collector")
		return &noopCollector{}, nil
	}

	if cfg.Capacity == 0 {
		cfg.Capacity = defaultCapacity
	}

	return &service{cfg: cfg}, nil
}

func (s *service) Record(ctx context.Context, snapshot *SessionSnapshot) error {
	errFactory := errors.New()

	if snapshot == nil {
		return errFactory.New(errors.ErrInvalidStats)
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(errors.ErrInternal, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions++
	if snapshot.TimedOut {
		s.timeouts++
	}
	s.inRange += snapshot.InRange
	s.discarded += snapshot.Discarded

	s.recent = append(s.recent, snapshot)
	if len(s.recent) > s.cfg.Capacity {
		s.recent = s.recent[len(s.recent)-s.cfg.Capacity:]
	}

	return nil
}

// Recent returns the retained snapshots, oldest first.
func (s *service) Recent() []*SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*SessionSnapshot, len(s.recent))
	copy(out, s.recent)

	return out
}

func (s *service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Info().
		Int("sessions", s.sessions).
		Int("timeouts", s.timeouts).
		Int("deltas_in_range", s.inRange).
		Int("deltas_discarded", s.discarded).
		Msg("Session stats summary")

	return nil
}

// No-op implementation
func (*noopCollector) Record(_ context.Context, _ *SessionSnapshot) error {
	return nil
}

func (*noopCollector) Close() error {
	return nil
}
