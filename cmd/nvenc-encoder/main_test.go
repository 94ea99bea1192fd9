package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/nvenc-encoder/internal/config"
	"github.com/ytget/nvenc-encoder/internal/logging"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("frames"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, "single.mov")
	writeFile(t, single)
	writeFile(t, filepath.Join(dir, "shows", "ep1.mkv"))
	writeFile(t, filepath.Join(dir, "shows", "notes.txt"))
	writeFile(t, filepath.Join(dir, "shows", "s2", "ep2.MP4"))

	list := collectFiles([]string{
		single,
		filepath.Join(dir, "shows"),
		single,
		filepath.Join(dir, "missing.mp4"),
	}, logging.Discard())

	paths := list.Paths()
	if len(paths) != 3 {
		t.Fatalf("Expected 3 files, got %d: %v", len(paths), paths)
	}
	if paths[0] != single {
		t.Errorf("Expected explicit file first, got %s", paths[0])
	}
}

func TestRun_UsageExitCode(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), []string{"-o", "/out"}, config.Env{}, io.Discard, &stderr)
	if code != exitUsage {
		t.Errorf("Expected exit code %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr.String(), "file or folder") {
		t.Errorf("Expected usage message, got %q", stderr.String())
	}
}

func TestRun_NoVideoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readme.txt"))

	code := run(context.Background(), []string{"-o", t.TempDir(), dir}, config.Env{}, io.Discard, io.Discard)
	if code != exitUsage {
		t.Errorf("Expected exit code %d, got %d", exitUsage, code)
	}
}

func TestRun_MissingToolFailsEveryFile(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "a.mp4"))
	writeFile(t, filepath.Join(in, "b.mp4"))
	logFile := filepath.Join(out, "logs", "run.txt")

	var stdout bytes.Buffer
	args := []string{"-ffmpeg", filepath.Join(in, "no-such-ffmpeg"), "-log", logFile, "-o", out, in}
	code := run(context.Background(), args, config.Env{}, &stdout, io.Discard)

	if code != exitFailure {
		t.Errorf("Expected exit code %d, got %d", exitFailure, code)
	}
	if !strings.Contains(stdout.String(), "Files processed: 2/2") {
		t.Errorf("Expected both files processed, got:\n%s", stdout.String())
	}

	saved, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Conversion log not written: %v", err)
	}
	if string(saved) != stdout.String() {
		t.Errorf("Saved log should match stdout\nsaved:\n%s\nstdout:\n%s", saved, stdout.String())
	}
}

func TestRun_CheckMissingTool(t *testing.T) {
	var stdout bytes.Buffer
	code := run(context.Background(), []string{"-check", "-ffmpeg", filepath.Join(t.TempDir(), "nope")}, config.Env{}, &stdout, io.Discard)
	if code != exitFailure {
		t.Errorf("Expected exit code %d, got %d", exitFailure, code)
	}
	if !strings.HasPrefix(stdout.String(), "✗") {
		t.Errorf("Unexpected check output: %q", stdout.String())
	}
}

func TestRun_Version(t *testing.T) {
	var stdout bytes.Buffer
	if code := run(context.Background(), []string{"-version"}, config.Env{}, &stdout, io.Discard); code != exitOK {
		t.Errorf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), version) {
		t.Errorf("Expected version in output, got %q", stdout.String())
	}
}
