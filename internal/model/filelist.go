package model

import (
	"path/filepath"
	"sync"
	"time"
)

// FileList is the ordered set of files selected for conversion. Order is the
// order of selection or scan; a path already present is not added twice.
// All methods are goroutine-safe.
type FileList struct {
	mu        sync.RWMutex
	files     []InputFile
	UpdatedAt time.Time
}

// NewFileList creates an empty file list
func NewFileList() *FileList {
	return &FileList{
		files:     make([]InputFile, 0),
		UpdatedAt: time.Now(),
	}
}

// Add appends files that are not yet in the list and returns how many were added
func (l *FileList) Add(files ...InputFile) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	added := 0
	for _, f := range files {
		if l.indexOf(f.Path) >= 0 {
			continue
		}
		l.files = append(l.files, f)
		added++
	}
	if added > 0 {
		l.UpdatedAt = time.Now()
	}
	return added
}

// Remove removes a file from the list by path
func (l *FileList) Remove(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(path)
	if i < 0 {
		return false
	}
	l.files = append(l.files[:i], l.files[i+1:]...)
	l.UpdatedAt = time.Now()
	return true
}

// Clear removes every file
func (l *FileList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files = l.files[:0]
	l.UpdatedAt = time.Now()
}

// Len returns the number of files
func (l *FileList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.files)
}

// At returns the file at index i
func (l *FileList) At(i int) (InputFile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.files) {
		return InputFile{}, false
	}
	return l.files[i], true
}

// Snapshot returns a copy of the files in order
func (l *FileList) Snapshot() []InputFile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]InputFile, len(l.files))
	copy(out, l.files)
	return out
}

// Paths returns the file paths in order
func (l *FileList) Paths() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	paths := make([]string, 0, len(l.files))
	for _, f := range l.files {
		paths = append(paths, f.Path)
	}
	return paths
}

// TotalSize returns the summed size of files with a known size
func (l *FileList) TotalSize() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total int64
	for _, f := range l.files {
		if f.Size > 0 {
			total += f.Size
		}
	}
	return total
}

// RefreshSizes re-reads every file size and returns how many files are gone
func (l *FileList) RefreshSizes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	missing := 0
	for i := range l.files {
		if !l.files[i].Restat() {
			missing++
		}
	}
	return missing
}

func (l *FileList) indexOf(path string) int {
	clean := filepath.Clean(path)
	for i, f := range l.files {
		if f.Path == clean {
			return i
		}
	}
	return -1
}
