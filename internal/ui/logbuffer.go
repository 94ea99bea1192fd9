package ui

import (
	"strings"
	"sync"
)

// LogBuffer keeps the whole conversion log for export and exposes a bounded
// tail of it for display. It is safe for concurrent use; the service appends
// from its worker while the UI reads on the main goroutine.
type LogBuffer struct {
	mu       sync.Mutex
	lines    []string
	maxLines int
}

// NewLogBuffer creates a buffer whose view holds at most maxLines lines.
// A non-positive maxLines means the view is unbounded.
func NewLogBuffer(maxLines int) *LogBuffer {
	return &LogBuffer{maxLines: maxLines}
}

// Append adds a line to the log
func (b *LogBuffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

// Lines returns a copy of the most recent lines that fit the view
func (b *LogBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	tail := b.lines[b.hiddenLocked():]
	out := make([]string, len(tail))
	copy(out, tail)
	return out
}

// String joins every line since the last Clear with newlines, including
// the ones hidden from the view.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.lines, "\n")
}

// Len returns the number of lines since the last Clear
func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Dropped reports how many earlier lines Lines leaves out
func (b *LogBuffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hiddenLocked()
}

// Clear empties the buffer
func (b *LogBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

func (b *LogBuffer) hiddenLocked() int {
	if b.maxLines > 0 && len(b.lines) > b.maxLines {
		return len(b.lines) - b.maxLines
	}
	return 0
}
