// Package capture implements the single-producer/single-consumer
// handoff between an asynchronous tick handler and the foreground
// session loop. The producer appends counter snapshots until the buffer
// is full; the consumer may read the buffer only after observing the
// completion flag. No lock is involved: the flag is written exactly
// once per session by the producer and polled by the consumer, and the
// atomic store/load pair provides the cross-context visibility the
// handoff depends on.
package capture

import "sync/atomic"

// NumSamples is the fixed capture depth of one session.
const NumSamples = 1000

// Recorder owns the capture buffer for the duration of a session.
//
// Context rules:
//   - TryPush is called only from the producer (tick handler) context.
//   - TakeIfComplete, Complete, Count and Reset are called only from
//     the consumer context. Count is meaningful to the consumer only
//     once the producer has been stopped or completion was observed.
type Recorder struct {
	samples  [NumSamples]uint16
	count    atomic.Uint32
	complete atomic.Bool
}

// TryPush records one counter snapshot. It is O(1) and branch-bounded:
// a single capacity check guards the write, so the buffer can never
// overrun. Returns false once the buffer is full; the producer should
// stop delivering events when that happens.
func (r *Recorder) TryPush(sample uint16) bool {
	n := r.count.Load()
	if n >= NumSamples {
		return false
	}

	r.samples[n] = sample
	r.count.Store(n + 1)

	if n+1 == NumSamples {
		// Store after the final sample write: the consumer observing
		// true is guaranteed to see every sample.
		r.complete.Store(true)
	}

	return true
}

// Complete reports whether the session's buffer has been filled.
func (r *Recorder) Complete() bool {
	return r.complete.Load()
}

// Count returns the number of samples accepted so far.
func (r *Recorder) Count() int {
	return int(r.count.Load())
}

// TakeIfComplete returns a copy of the filled buffer, or ok == false if
// the session has not completed. It never exposes a partially filled
// buffer.
func (r *Recorder) TakeIfComplete() ([]uint16, bool) {
	if !r.complete.Load() {
		return nil, false
	}

	out := make([]uint16, NumSamples)
	copy(out, r.samples[:])

	return out, true
}

// Reset prepares the recorder for the next session. Must not be called
// while a source is armed.
func (r *Recorder) Reset() {
	r.count.Store(0)
	r.complete.Store(false)
}
