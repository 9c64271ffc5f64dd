package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"codeberg.org/mutker/jitterctl/internal/console"
	"codeberg.org/mutker/jitterctl/internal/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return console.New(strings.NewReader(input), &out), &out
}

func TestRenderOmitsEmptyBuckets(t *testing.T) {
	cons, out := newTestConsole("")
	r := console.NewRenderer(cons, false)

	r.Render(&histogram.Histogram{})

	assert.Contains(t, out.String(), "Finished capturing.")
	assert.NotContains(t, out.String(), "Bucket ", "an all-zero histogram renders no bucket lines")
}

func TestRenderLabelsAreRealDeltaValues(t *testing.T) {
	cons, out := newTestConsole("")
	r := console.NewRenderer(cons, false)

	h := &histogram.Histogram{}
	h.Analyze([]uint16{1000, 1950, 2900}) // two 950-tick deltas, bucket 0
	h.Analyze([]uint16{0, 1000})          // one 1000-tick delta, bucket 50
	r.Render(h)

	assert.Contains(t, out.String(), "Bucket  950: 2", "bucket 0 is labeled with BaseOffset")
	assert.Contains(t, out.String(), "Bucket 1000: 1")
	assert.NotContains(t, out.String(), ": 0\n", "zero-count buckets are omitted")
	assert.Contains(t, out.String(), "in range: 3, discarded: 0")
}

func TestRenderReportsDiscards(t *testing.T) {
	cons, out := newTestConsole("")
	r := console.NewRenderer(cons, false)

	h := &histogram.Histogram{}
	h.Analyze([]uint16{1000, 1462, 1924, 2386})
	r.Render(h)

	assert.NotContains(t, out.String(), "Bucket ")
	assert.Contains(t, out.String(), "in range: 0, discarded: 3")
}

func TestPrompt(t *testing.T) {
	cons, out := newTestConsole("")
	r := console.NewRenderer(cons, false)

	r.Prompt()
	assert.Contains(t, out.String(), "Strike enter to begin capture.")
}

func TestWaitForKeyReturnsOnByte(t *testing.T) {
	cons, _ := newTestConsole("x")

	err := cons.WaitForKey(context.Background())
	assert.NoError(t, err)
}

func TestWaitForKeyOnClosedInput(t *testing.T) {
	cons, _ := newTestConsole("")

	err := cons.WaitForKey(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF, "closed input should surface as EOF")
}

func TestWaitForKeyHonorsContext(t *testing.T) {
	// Input never delivers; cancellation must unblock the wait.
	blocked, w := io.Pipe()
	defer w.Close()
	var out bytes.Buffer
	cons := console.New(blocked, &out)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := cons.WaitForKey(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
