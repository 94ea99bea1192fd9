package encode

import (
	"bufio"
	"bytes"
	"io"
	"iter"
)

// Line buffer limits for the tool's output
const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024
)

// Lines returns a lazy sequence of lines read from r. Lines are split on
// "\n", "\r\n" and a bare "\r", the last one being how the tool redraws its
// status line. Terminators are not included. The sequence ends at EOF or on
// the first read error.
func Lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)
		scanner.Split(scanAnyNewline)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}
}

// scanAnyNewline is a bufio.SplitFunc treating \n, \r\n and \r as terminators
func scanAnyNewline(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// A trailing \r may be the first half of \r\n
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
