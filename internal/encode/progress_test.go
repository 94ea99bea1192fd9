package encode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Duration
		ok       bool
	}{
		{"00:00:10.00", 10 * time.Second, true},
		{"01:02:03.50", time.Hour + 2*time.Minute + 3500*time.Millisecond, true},
		{"-00:00:00.02", 0, true},
		{"N/A", 0, false},
		{"10.5", 0, false},
		{"aa:00:00", 0, false},
	}

	for _, tt := range tests {
		d, ok := parseClock(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.expected, d, tt.in)
	}
}

func TestProgressTracker(t *testing.T) {
	p := NewProgressTracker()

	_, ok := p.Observe("frame=   10 fps=0.0 q=23.0 size=0kB time=00:00:01.00 bitrate=N/A")
	assert.False(t, ok, "no duration known yet")

	_, ok = p.Observe("  Duration: 00:00:20.00, start: 0.000000, bitrate: 5000 kb/s")
	assert.False(t, ok)
	assert.Equal(t, 20*time.Second, p.Total())

	f, ok := p.Observe("frame=  250 fps=120 q=23.0 size=1024kB time=00:00:05.00 bitrate=1677.7kbits/s speed=4x")
	assert.True(t, ok)
	assert.InDelta(t, 0.25, f, 1e-9)

	// Later Duration lines (output metadata) do not reset the total
	p.Observe("  Duration: N/A, bitrate: N/A")
	p.Observe("  Duration: 00:10:00.00, start: 0.000000")
	assert.Equal(t, 20*time.Second, p.Total())

	f, ok = p.Observe("frame= 1000 time=00:00:25.00 bitrate=N/A")
	assert.True(t, ok)
	assert.Equal(t, 1.0, f, "fraction is clamped")

	_, ok = p.Observe("frame= 1000 time=N/A bitrate=N/A")
	assert.False(t, ok)
}

func TestProgressTracker_UnknownDuration(t *testing.T) {
	p := NewProgressTracker()
	p.Observe("  Duration: N/A, start: 0.000000")
	_, ok := p.Observe("time=00:00:05.00")
	assert.False(t, ok)
	assert.Equal(t, 0.0, p.Fraction())
}
