package encode

import (
	"strconv"
	"strings"
	"time"
)

// Markers in the tool's human-readable output
const (
	DurationPrefix = "Duration:"
	TimeMarker     = "time="
)

// ProgressTracker derives per-file progress from the tool's own output. The
// first "Duration:" line sets the input length; every "time=" status line
// moves the position.
type ProgressTracker struct {
	total    time.Duration
	position time.Duration
}

// NewProgressTracker creates a tracker with no known duration
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{}
}

// Observe consumes one output line. It returns the new fraction in [0,1]
// and true when the line moved the position of a file with known duration.
func (p *ProgressTracker) Observe(line string) (float64, bool) {
	line = strings.TrimSpace(line)

	if p.total == 0 && strings.HasPrefix(line, DurationPrefix) {
		rest := strings.TrimSpace(strings.TrimPrefix(line, DurationPrefix))
		if i := strings.IndexByte(rest, ','); i >= 0 {
			rest = rest[:i]
		}
		if d, ok := parseClock(rest); ok && d > 0 {
			p.total = d
		}
		return 0, false
	}

	i := strings.Index(line, TimeMarker)
	if i < 0 || p.total == 0 {
		return 0, false
	}
	field := line[i+len(TimeMarker):]
	if j := strings.IndexAny(field, " \t"); j >= 0 {
		field = field[:j]
	}
	d, ok := parseClock(field)
	if !ok {
		return 0, false
	}
	p.position = d
	return p.Fraction(), true
}

// Fraction returns the last observed progress in [0,1]
func (p *ProgressTracker) Fraction() float64 {
	if p.total <= 0 {
		return 0
	}
	f := float64(p.position) / float64(p.total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Total returns the input duration, zero if not yet known
func (p *ProgressTracker) Total() time.Duration {
	return p.total
}

// parseClock parses "HH:MM:SS(.frac)". A leading minus yields zero.
func parseClock(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, false
	}
	if neg {
		return 0, true
	}

	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))
	return d, true
}
