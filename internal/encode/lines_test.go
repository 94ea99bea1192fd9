package encode

import (
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single without terminator", "hello", []string{"hello"}},
		{"lf", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "frame=1\rframe=2\rdone\n", []string{"frame=1", "frame=2", "done"}},
		{"mixed", "a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"trailing cr", "a\r", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Lines(strings.NewReader(tt.input)))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLines_CRLFSplitAcrossReads(t *testing.T) {
	// One byte per Read forces \r and \n into separate chunks
	r := iotest.OneByteReader(strings.NewReader("a\r\nb\r\n"))
	got := slices.Collect(Lines(r))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestLines_StopsEarly(t *testing.T) {
	var got []string
	for line := range Lines(strings.NewReader("1\n2\n3\n")) {
		got = append(got, line)
		if line == "2" {
			break
		}
	}
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestLines_ReadErrorEndsSequence(t *testing.T) {
	r := io.MultiReader(strings.NewReader("ok\n"), iotest.ErrReader(io.ErrUnexpectedEOF))
	got := slices.Collect(Lines(r))
	assert.Equal(t, []string{"ok"}, got)
}
