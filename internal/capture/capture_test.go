package capture_test

import (
	"testing"

	"codeberg.org/mutker/jitterctl/internal/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryPushAcceptsExactlyCapacity(t *testing.T) {
	r := &capture.Recorder{}

	for i := 0; i < capture.NumSamples; i++ {
		assert.True(t, r.TryPush(uint16(i)), "push %d should be accepted", i)
		assert.Equal(t, i+1, r.Count(), "count should track accepted pushes")
	}

	// The buffer is full; everything further is refused.
	for i := 0; i < 10; i++ {
		assert.False(t, r.TryPush(0xFFFF), "push after capacity should be refused")
	}
	assert.Equal(t, capture.NumSamples, r.Count(), "count must never exceed capacity")
}

func TestCompleteSetOnlyWhenFull(t *testing.T) {
	r := &capture.Recorder{}

	for i := 0; i < capture.NumSamples-1; i++ {
		r.TryPush(uint16(i))
		require.False(t, r.Complete(), "complete must stay false before the buffer fills")
	}

	r.TryPush(42)
	assert.True(t, r.Complete(), "complete must be set when the last slot fills")

	// Refused pushes must not disturb the flag.
	r.TryPush(43)
	assert.True(t, r.Complete())
}

func TestTakeIfComplete(t *testing.T) {
	r := &capture.Recorder{}

	_, ok := r.TakeIfComplete()
	assert.False(t, ok, "an empty recorder has nothing to take")

	r.TryPush(7)
	_, ok = r.TakeIfComplete()
	assert.False(t, ok, "a partially filled buffer must never be exposed")

	for i := 1; i < capture.NumSamples; i++ {
		r.TryPush(uint16(i * 3))
	}

	samples, ok := r.TakeIfComplete()
	require.True(t, ok)
	require.Len(t, samples, capture.NumSamples)
	assert.Equal(t, uint16(7), samples[0])
	assert.Equal(t, uint16(3), samples[1])
	assert.Equal(t, uint16((capture.NumSamples-1)*3), samples[capture.NumSamples-1])

	// The returned buffer is a copy; writing to it must not corrupt a
	// later take.
	samples[0] = 0xDEAD
	again, ok := r.TakeIfComplete()
	require.True(t, ok)
	assert.Equal(t, uint16(7), again[0])
}

func TestResetStartsFreshSession(t *testing.T) {
	r := &capture.Recorder{}

	for i := 0; i < capture.NumSamples; i++ {
		r.TryPush(uint16(i))
	}
	require.True(t, r.Complete())

	r.Reset()
	assert.Equal(t, 0, r.Count(), "reset must zero the count")
	assert.False(t, r.Complete(), "reset must clear the completion flag")

	_, ok := r.TakeIfComplete()
	assert.False(t, ok, "nothing to take after a reset")

	// A fresh session fills from the start again.
	assert.True(t, r.TryPush(123))
	assert.Equal(t, 1, r.Count())
}
