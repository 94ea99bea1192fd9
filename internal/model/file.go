package model

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// UnknownSize is displayed when a file could not be stat'ed at listing time
const UnknownSize = "N/A"

// InputFile is a validated source file with display metadata cached at the
// moment it was added to the list.
type InputFile struct {
	Path    string
	Name    string
	Size    int64 // bytes, -1 if unknown
	AddedAt time.Time
}

// NewInputFile validates that path is an existing regular file and captures
// its basename and size.
func NewInputFile(path string) (InputFile, error) {
	if path == "" {
		return InputFile{}, fmt.Errorf("file path is empty")
	}
	clean := filepath.Clean(path)

	info, err := os.Stat(clean)
	if err != nil {
		return InputFile{}, fmt.Errorf("input file does not exist: %w", err)
	}
	if info.IsDir() {
		return InputFile{}, fmt.Errorf("input path is a directory: %s", clean)
	}

	return InputFile{
		Path:    clean,
		Name:    filepath.Base(clean),
		Size:    info.Size(),
		AddedAt: time.Now(),
	}, nil
}

// Restat refreshes Size from disk. It sets Size to -1 and returns false when
// the file can no longer be stat'ed.
func (f *InputFile) Restat() bool {
	info, err := os.Stat(f.Path)
	if err != nil || info.IsDir() {
		f.Size = -1
		return false
	}
	f.Size = info.Size()
	return true
}

// DisplaySize returns the size in human readable form, e.g. "1.5 MiB"
func (f InputFile) DisplaySize() string {
	if f.Size < 0 {
		return UnknownSize
	}
	return humanize.IBytes(uint64(f.Size))
}
