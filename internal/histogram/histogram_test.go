package histogram_test

import (
	"testing"

	"codeberg.org/mutker/jitterctl/internal/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltasBelowBaseOffsetAreDiscarded(t *testing.T) {
	// Deltas of 462 sit below BaseOffset (950); the bucket index
	// underflows, wraps far out of range and all three are discarded.
	h := &histogram.Histogram{}
	h.Analyze([]uint16{1000, 1462, 1924, 2386})

	assert.Equal(t, 0, h.InRange(), "no delta should land in a bucket")
	assert.Equal(t, 3, h.Discarded())
	for i, c := range h.Counts() {
		assert.Zero(t, c, "bucket %d must stay empty", i)
	}
}

func TestNominalPeriodLandsInBucketZero(t *testing.T) {
	h := &histogram.Histogram{}
	h.Analyze([]uint16{1000, 1950, 2900})

	counts := h.Counts()
	assert.Equal(t, uint16(2), counts[0], "both 950-tick deltas map to bucket 0")
	for i := 1; i < histogram.NumBuckets; i++ {
		assert.Zero(t, counts[i], "bucket %d must stay empty", i)
	}
	assert.Equal(t, 2, h.InRange())
	assert.Equal(t, 0, h.Discarded())
}

func TestBucketRangeBoundaries(t *testing.T) {
	// The last in-range delta is BaseOffset+NumBuckets-1; one past it
	// is discarded.
	h := &histogram.Histogram{}
	last := histogram.BaseOffset + histogram.NumBuckets - 1
	h.Analyze([]uint16{0, last})

	counts := h.Counts()
	assert.Equal(t, uint16(1), counts[histogram.NumBuckets-1])

	h.Reset()
	h.Analyze([]uint16{0, last + 1})
	assert.Equal(t, 0, h.InRange())
	assert.Equal(t, 1, h.Discarded())
}

func TestCounterWraparoundYieldsForwardDistance(t *testing.T) {
	// 65000 then 464: the counter wrapped once, and uint16 subtraction
	// still yields the true forward distance of 1000 ticks.
	h := &histogram.Histogram{}
	h.Analyze([]uint16{65000, 464})

	counts := h.Counts()
	assert.Equal(t, uint16(1), counts[1000-int(histogram.BaseOffset)])
	assert.Equal(t, 1, h.InRange())
	assert.Equal(t, 0, h.Discarded())
}

func TestTotalIncrementsBoundedBySampleCount(t *testing.T) {
	samples := make([]uint16, 1000)
	for i := range samples {
		// A mix of in-range, too-slow and wrapping deltas.
		samples[i] = uint16(i * i * 7)
	}

	h := &histogram.Histogram{}
	h.Analyze(samples)

	total := 0
	for _, c := range h.Counts() {
		total += int(c)
	}
	assert.Equal(t, h.InRange(), total, "in-range counter must match bucket sum")
	assert.Equal(t, len(samples)-1, h.InRange()+h.Discarded(),
		"every adjacent pair contributes exactly one delta")
	assert.LessOrEqual(t, total, len(samples)-1)
}

func TestFirstSampleContributesNoDelta(t *testing.T) {
	h := &histogram.Histogram{}

	h.Analyze([]uint16{12345})
	assert.Equal(t, 0, h.InRange()+h.Discarded())

	h.Analyze(nil)
	assert.Equal(t, 0, h.InRange()+h.Discarded())
}

func TestDeltaRange(t *testing.T) {
	h := &histogram.Histogram{}
	h.Analyze([]uint16{0, 950, 1910, 2400})

	minDelta, maxDelta := h.DeltaRange()
	assert.Equal(t, uint16(490), minDelta)
	assert.Equal(t, uint16(960), maxDelta)
}

func TestResetClearsEverything(t *testing.T) {
	h := &histogram.Histogram{}
	h.Analyze([]uint16{1000, 1950, 2400})
	require.NotZero(t, h.InRange()+h.Discarded())

	h.Reset()
	assert.Equal(t, 0, h.InRange())
	assert.Equal(t, 0, h.Discarded())
	for i, c := range h.Counts() {
		assert.Zero(t, c, "bucket %d must be cleared", i)
	}

	minDelta, maxDelta := h.DeltaRange()
	assert.Zero(t, minDelta)
	assert.Zero(t, maxDelta)
}
