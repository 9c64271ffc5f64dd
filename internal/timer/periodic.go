package timer

import (
	"sync"
	"time"

	"codeberg.org/mutker/jitterctl/internal/errors"
)

// epoch anchors the free-running counter. The counter value is the
// number of microseconds since process start truncated to 16 bits, so
// it wraps roughly every 65.5ms and behaves like a 1MHz hardware
// counter read at event time.
var epoch = time.Now()

// Ticks returns the current free-running counter value.
func Ticks() uint16 {
	return uint16(time.Since(epoch).Microseconds())
}

// Periodic delivers tick events at a nominal period from a dedicated
// goroutine. The jitter between the nominal period and the observed
// counter deltas is exactly what a capture session measures.
type Periodic struct {
	period time.Duration
	mu     sync.Mutex
	stop   chan struct{}
	done   chan struct{}
}

func NewPeriodic(period time.Duration) (*Periodic, error) {
	errFactory := errors.New()

	if period <= 0 {
		return nil, errFactory.WithData(errors.ErrInvalidPeriod, period)
	}

	return &Periodic{period: period}, nil
}

func (p *Periodic) Arm(handler Handler) error {
	errFactory := errors.New()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		return errFactory.New(errors.ErrSourceArmed)
	}

	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go p.run(handler, p.stop, p.done)

	return nil
}

func (p *Periodic) run(handler Handler, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !handler(Ticks()) {
				// Handler refused the event; stop delivering.
				return
			}
		}
	}
}

// Disarm stops event delivery and waits for the delivery goroutine to
// exit. Safe to call when the source already stopped itself.
func (p *Periodic) Disarm() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	<-done
}
