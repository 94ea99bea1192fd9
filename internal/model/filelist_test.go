package model

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	return path
}

func TestNewInputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clip.mp4", 2048)

	f, err := NewInputFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if f.Name != "clip.mp4" {
		t.Errorf("Expected name clip.mp4, got %s", f.Name)
	}
	if f.Size != 2048 {
		t.Errorf("Expected size 2048, got %d", f.Size)
	}
	if f.DisplaySize() != "2.0 KiB" {
		t.Errorf("Expected display size 2.0 KiB, got %s", f.DisplaySize())
	}
}

func TestNewInputFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewInputFile(""); err == nil {
		t.Error("Expected error for empty path")
	}
	if _, err := NewInputFile(filepath.Join(dir, "missing.mp4")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := NewInputFile(dir); err == nil {
		t.Error("Expected error for directory")
	}
}

func TestInputFile_DisplaySizeUnknown(t *testing.T) {
	f := InputFile{Size: -1}
	if f.DisplaySize() != UnknownSize {
		t.Errorf("Expected %s, got %s", UnknownSize, f.DisplaySize())
	}
}

func TestFileList_RefreshSizesMarksMissingFiles(t *testing.T) {
	dir := t.TempDir()
	list := NewFileList()
	a, _ := NewInputFile(writeFile(t, dir, "a.mp4", 1024))
	b, _ := NewInputFile(writeFile(t, dir, "b.mp4", 10))
	list.Add(a, b)

	if err := os.Remove(a.Path); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}
	if err := os.WriteFile(b.Path, make([]byte, 20), 0644); err != nil {
		t.Fatalf("Failed to rewrite file: %v", err)
	}

	if missing := list.RefreshSizes(); missing != 1 {
		t.Errorf("Expected 1 missing file, got %d", missing)
	}
	gone, _ := list.At(0)
	if gone.DisplaySize() != UnknownSize {
		t.Errorf("Expected %s for removed file, got %s", UnknownSize, gone.DisplaySize())
	}
	if list.TotalSize() != 20 {
		t.Errorf("Expected total size 20, got %d", list.TotalSize())
	}
}

func TestFileList_AddPreservesOrderAndSkipsDuplicates(t *testing.T) {
	list := NewFileList()

	a := InputFile{Path: "/videos/b.mp4", Name: "b.mp4", Size: 10}
	b := InputFile{Path: "/videos/a.mp4", Name: "a.mp4", Size: 20}

	if added := list.Add(a, b); added != 2 {
		t.Fatalf("Expected 2 added, got %d", added)
	}
	if added := list.Add(InputFile{Path: "/videos/./b.mp4"}); added != 0 {
		t.Errorf("Expected duplicate to be skipped, got %d added", added)
	}

	paths := list.Paths()
	expected := []string{"/videos/b.mp4", "/videos/a.mp4"}
	if len(paths) != len(expected) {
		t.Fatalf("Expected %d paths, got %d", len(expected), len(paths))
	}
	for i := range expected {
		if paths[i] != expected[i] {
			t.Errorf("Path %d: expected %s, got %s", i, expected[i], paths[i])
		}
	}

	if list.TotalSize() != 30 {
		t.Errorf("Expected total size 30, got %d", list.TotalSize())
	}
}

func TestFileList_RemoveAndClear(t *testing.T) {
	list := NewFileList()
	list.Add(
		InputFile{Path: "/a.mp4"},
		InputFile{Path: "/b.mp4"},
		InputFile{Path: "/c.mp4"},
	)

	if !list.Remove("/b.mp4") {
		t.Fatal("Expected /b.mp4 to be removed")
	}
	if list.Remove("/b.mp4") {
		t.Error("Removing twice should report false")
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", list.Len())
	}
	if f, ok := list.At(1); !ok || f.Path != "/c.mp4" {
		t.Errorf("Expected /c.mp4 at index 1, got %+v", f)
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", list.Len())
	}
	if _, ok := list.At(0); ok {
		t.Error("At(0) on empty list should report false")
	}
}

func TestFileList_SnapshotIsCopy(t *testing.T) {
	list := NewFileList()
	list.Add(InputFile{Path: "/a.mp4"})

	snap := list.Snapshot()
	list.Clear()

	if len(snap) != 1 || snap[0].Path != "/a.mp4" {
		t.Errorf("Snapshot should be unaffected by Clear, got %+v", snap)
	}
}
