package ui

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestLogBuffer_AppendAndString(t *testing.T) {
	b := NewLogBuffer(0)
	b.Append("first")
	b.Append("")
	b.Append("third")

	if b.Len() != 3 {
		t.Errorf("Expected 3 lines, got %d", b.Len())
	}
	if got := b.String(); got != "first\n\nthird" {
		t.Errorf("Unexpected joined log: %q", got)
	}

	lines := b.Lines()
	lines[0] = "mutated"
	if b.Lines()[0] != "first" {
		t.Error("Lines should return a copy")
	}
}

func TestLogBuffer_ViewShowsTail(t *testing.T) {
	b := NewLogBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Append(fmt.Sprintf("line %d", i))
	}

	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "line 3" || lines[2] != "line 5" {
		t.Errorf("Unexpected visible lines: %v", lines)
	}
	if b.Dropped() != 2 {
		t.Errorf("Expected 2 hidden lines, got %d", b.Dropped())
	}
	if b.Len() != 5 {
		t.Errorf("Expected 5 lines kept, got %d", b.Len())
	}
	if !strings.HasPrefix(b.String(), "line 1\nline 2\n") {
		t.Errorf("Expected export to start with the hidden lines, got %q", b.String())
	}
}

func TestLogBuffer_ExportKeepsSummariesOfLongBatch(t *testing.T) {
	b := NewLogBuffer(MaxLogLines)
	b.Append("Starting conversion of 2 file(s)")
	b.Append("✗ Failed: a.mp4 (code 1)")
	for i := 0; i < 6000; i++ {
		b.Append(fmt.Sprintf("frame=%d fps=60 q=23.0 time=00:00:%02d.00 speed=2x", i, i%60))
	}
	b.Append("✓ Done: b.mp4")

	saved := b.String()
	for _, want := range []string{"Starting conversion of 2 file(s)", "✗ Failed: a.mp4 (code 1)", "✓ Done: b.mp4"} {
		if !strings.Contains(saved, want) {
			t.Errorf("Expected saved log to contain %q", want)
		}
	}
	if got := len(b.Lines()); got != MaxLogLines {
		t.Errorf("Expected %d visible lines, got %d", MaxLogLines, got)
	}
	if want := 6003 - MaxLogLines; b.Dropped() != want {
		t.Errorf("Expected %d hidden lines, got %d", want, b.Dropped())
	}
}

func TestLogBuffer_Clear(t *testing.T) {
	b := NewLogBuffer(1)
	b.Append("a")
	b.Append("b")
	b.Clear()

	if b.Len() != 0 || b.Dropped() != 0 || b.String() != "" {
		t.Errorf("Expected empty buffer after Clear, got len=%d dropped=%d", b.Len(), b.Dropped())
	}
}

func TestLogBuffer_ConcurrentAppend(t *testing.T) {
	b := NewLogBuffer(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Append("x")
			}
		}()
	}
	wg.Wait()

	if b.Len() != 800 {
		t.Errorf("Expected 800 lines, got %d", b.Len())
	}
}
