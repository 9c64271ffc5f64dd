// Package histogram buckets inter-capture deltas for offline
// inspection. All arithmetic is deliberately uint16: consecutive
// counter values are subtracted with wraparound, which yields the
// correct forward distance as long as the counter wrapped at most once
// between samples. More than one wrap between samples is an accepted
// precision limit and cannot be detected from the samples alone.
package histogram

const (
	// NumBuckets is the fixed number of histogram slots, one tick wide
	// each. Not configurable at run time.
	NumBuckets = 100

	// BaseOffset is the smallest delta mapped into bucket 0, chosen
	// 50 ticks below the nominal 1000-tick period so the bucket range
	// [950, 1050) is centered on it. A delta below BaseOffset
	// underflows the uint16 bucket index, lands far above NumBuckets
	// and is discarded, which is the intended normalization trick.
	BaseOffset uint16 = 0x03B6
)

// Histogram accumulates delta counts for one analysis pass.
type Histogram struct {
	buckets   [NumBuckets]uint16
	inRange   int
	discarded int
	minDelta  uint16
	maxDelta  uint16
}

// Analyze buckets the deltas of all adjacent sample pairs. The first
// sample has no predecessor and contributes no delta, so a pass over n
// samples performs at most n-1 bucket increments.
func (h *Histogram) Analyze(samples []uint16) {
	for i := 1; i < len(samples); i++ {
		h.observe(samples[i] - samples[i-1])
	}
}

func (h *Histogram) observe(delta uint16) {
	if h.inRange+h.discarded == 0 || delta < h.minDelta {
		h.minDelta = delta
	}
	if delta > h.maxDelta {
		h.maxDelta = delta
	}

	idx := delta - BaseOffset
	if idx < NumBuckets {
		h.buckets[idx]++
		h.inRange++
	} else {
		// Too fast, too slow, or the subtraction underflowed. Discards
		// are silent: the histogram is best effort, not a partition.
		h.discarded++
	}
}

// Counts returns the bucket counters. Index i counts deltas of exactly
// BaseOffset+i ticks.
func (h *Histogram) Counts() [NumBuckets]uint16 {
	return h.buckets
}

// InRange returns the total number of bucketed deltas.
func (h *Histogram) InRange() int {
	return h.inRange
}

// Discarded returns the number of deltas that fell outside
// [BaseOffset, BaseOffset+NumBuckets).
func (h *Histogram) Discarded() int {
	return h.discarded
}

// DeltaRange returns the smallest and largest observed delta. Only
// meaningful when at least one delta was observed.
func (h *Histogram) DeltaRange() (minDelta, maxDelta uint16) {
	return h.minDelta, h.maxDelta
}

// Reset zeroes all buckets and counters for the next analysis pass.
func (h *Histogram) Reset() {
	*h = Histogram{}
}
