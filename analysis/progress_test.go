package analysis

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressTracker(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(&buf, 4)
	p.Start()

	p.Increment()
	p.Increment()
	assert.Contains(t, buf.String(), "2/4 (50%)")

	p.Increment()
	p.Increment()
	p.Finish()

	out := buf.String()
	assert.Contains(t, out, "4/4 (100%)")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Greater(t, p.Elapsed().Nanoseconds(), int64(0))
}

func TestProgressTrackerFinishCompletesPartialRun(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(&buf, 3)
	p.Start()
	p.Increment()
	p.Finish()

	// The final line always shows the run as complete.
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\r")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Analyzing datasets: 3/3 (100%)", lines[len(lines)-1])
}

func TestProgressTrackerNilWriter(t *testing.T) {
	p := NewProgressTracker(nil, 2)
	p.Start()
	p.Increment()
	p.Finish() // must not panic
	assert.Equal(t, 1, p.current)
}

func TestProgressTrackerIgnoresUpdatesBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTracker(&buf, 2)
	p.Increment()
	p.Finish()
	assert.Empty(t, buf.String())
	assert.Zero(t, p.Elapsed())
}
