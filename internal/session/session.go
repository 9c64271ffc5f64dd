// Package session drives the capture cycle: reset state, wait for a
// trigger, arm the tick source, poll for completion, then analyze and
// report. Exactly two contexts touch shared state during a session:
// the source's event context pushing into the recorder, and this loop
// polling the completion flag. Ownership of the buffer transfers to the
// loop at the flag transition and never moves back.
package session

import (
	"context"
	"io"
	"time"

	"codeberg.org/mutker/jitterctl/internal/capture"
	"codeberg.org/mutker/jitterctl/internal/console"
	"codeberg.org/mutker/jitterctl/internal/errors"
	"codeberg.org/mutker/jitterctl/internal/histogram"
	"codeberg.org/mutker/jitterctl/internal/logger"
	"codeberg.org/mutker/jitterctl/internal/stats"
	"codeberg.org/mutker/jitterctl/internal/timer"
)

// completionPollInterval is how often the foreground loop re-checks the
// completion flag while a session is armed.
const completionPollInterval = time.Millisecond

type Config struct {
	Timeout     time.Duration // session await timeout, 0 waits forever
	Sessions    int           // number of sessions, 0 runs forever
	Interactive bool          // wait for a keystroke before arming
}

type Runner struct {
	cfg      Config
	source   timer.Source
	recorder *capture.Recorder
	hist     *histogram.Histogram
	console  *console.Console
	renderer *console.Renderer
	stats    stats.Collector
}

func NewRunner(cfg Config, source timer.Source, cons *console.Console, renderer *console.Renderer, collector stats.Collector) *Runner {
	return &Runner{
		cfg:      cfg,
		source:   source,
		recorder: &capture.Recorder{},
		hist:     &histogram.Histogram{},
		console:  cons,
		renderer: renderer,
		stats:    collector,
	}
}

// Run executes capture sessions until the configured count is reached,
// the trigger input closes, or the context is canceled. A timed-out
// session is logged and skipped, not fatal.
func (r *Runner) Run(ctx context.Context) error {
	for n := 1; r.cfg.Sessions == 0 || n <= r.cfg.Sessions; n++ {
		err := r.runOnce(ctx, n)
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			return nil
		case errors.Is(err, io.EOF):
			logger.Info().Msg("Trigger input closed, stopping")
			return nil
		case errors.HasCode(err, errors.ErrSessionTimeout):
			logger.Warn().
				Int("session", n).
				Int("samples", r.recorder.Count()).
				Dur("timeout", r.cfg.Timeout).
				Msg("Session timed out before the buffer filled")
			r.recordSnapshot(ctx, n, time.Time{}, true)
		default:
			return err
		}
	}

	return nil
}

func (r *Runner) runOnce(ctx context.Context, n int) error {
	errFactory := errors.New()

	// Stale data from a prior session must never leak into this one.
	r.hist.Reset()
	r.recorder.Reset()

	if r.cfg.Interactive {
		r.renderer.Prompt()
		if err := r.console.WaitForKey(ctx); err != nil {
			return err
		}
	}

	started := time.Now()
	if err := r.source.Arm(r.onTick); err != nil {
		return err
	}

	err := r.awaitCompletion(ctx)
	// Disarm before touching the buffer, whatever happened: after
	// Disarm returns no producer context is running.
	r.source.Disarm()
	if err != nil {
		return err
	}

	samples, ok := r.recorder.TakeIfComplete()
	if !ok {
		return errFactory.New(errors.ErrBufferIncomplete)
	}

	r.hist.Analyze(samples)
	r.renderer.Render(r.hist)
	r.recordSnapshot(ctx, n, started, false)

	minDelta, maxDelta := r.hist.DeltaRange()
	logger.Debug().
		Int("session", n).
		Int("samples", len(samples)).
		Int("in_range", r.hist.InRange()).
		Int("discarded", r.hist.Discarded()).
		Uint16("min_delta", minDelta).
		Uint16("max_delta", maxDelta).
		Dur("elapsed", time.Since(started)).
		Msg("Session complete")

	return nil
}

// onTick runs on the source's event context. It must stay O(1) and
// never block: push the sample, and stop the source once the recorder
// refuses.
func (r *Runner) onTick(ticks uint16) bool {
	return r.recorder.TryPush(ticks)
}

// awaitCompletion polls the completion flag until it is set, the
// timeout expires, or the context is canceled.
func (r *Runner) awaitCompletion(ctx context.Context) error {
	errFactory := errors.New()

	var deadline <-chan time.Time
	if r.cfg.Timeout > 0 {
		t := time.NewTimer(r.cfg.Timeout)
		defer t.Stop()
		deadline = t.C
	}

	poll := time.NewTicker(completionPollInterval)
	defer poll.Stop()

	for {
		if r.recorder.Complete() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return errFactory.New(errors.ErrSessionTimeout)
		case <-poll.C:
		}
	}
}

func (r *Runner) recordSnapshot(ctx context.Context, n int, started time.Time, timedOut bool) {
	minDelta, maxDelta := r.hist.DeltaRange()
	snapshot := &stats.SessionSnapshot{
		Timestamp: time.Now(),
		Session:   n,
		Accepted:  r.recorder.Count(),
		InRange:   r.hist.InRange(),
		Discarded: r.hist.Discarded(),
		MinDelta:  minDelta,
		MaxDelta:  maxDelta,
		TimedOut:  timedOut,
	}
	if !started.IsZero() {
		snapshot.Elapsed = time.Since(started)
	}

	if err := r.stats.Record(ctx, snapshot); err != nil {
		logger.Debug().Err(err).Msg("Failed to record session snapshot")
	}
}
