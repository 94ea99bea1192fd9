package encode

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveOutputPath_Flat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	got, err := DeriveOutputPath(filepath.Join("videos", "a.mp4"), out, "_encoded", false, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "a_encoded.mp4"), got)

	info, err := os.Stat(out)
	require.NoError(t, err, "output directory should be created")
	assert.True(t, info.IsDir())
}

func TestDeriveOutputPath_StemAndExtension(t *testing.T) {
	out := t.TempDir()

	tests := []struct {
		input    string
		suffix   string
		expected string
	}{
		{"clip.mkv", "_encoded", "clip_encoded.mkv"},
		{"my.holiday.mov", "-nvenc", "my.holiday-nvenc.mov"},
		{"noext", "_x", "noext_x"},
		{"clip.MP4", "", "clip.MP4"},
	}

	for _, tt := range tests {
		got, err := DeriveOutputPath(filepath.Join("src", tt.input), out, tt.suffix, false, "")
		require.NoError(t, err)
		assert.Equal(t, tt.expected, filepath.Base(got))
		assert.Equal(t, filepath.Ext(tt.input), filepath.Ext(got))
	}
}

func TestDeriveOutputPath_PreserveWithBaseDir(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, "library")
	input := filepath.Join(base, "2024", "trip", "a.mp4")
	out := filepath.Join(root, "out")

	got, err := DeriveOutputPath(input, out, "_encoded", true, base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "2024", "trip", "a_encoded.mp4"), got)

	_, err = os.Stat(filepath.Join(out, "2024", "trip"))
	assert.NoError(t, err, "intermediate directories should be created")
}

func TestDeriveOutputPath_PreserveInputAtBaseDir(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "a.mp4")
	out := filepath.Join(root, "out")

	got, err := DeriveOutputPath(input, out, "_encoded", true, root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "a_encoded.mp4"), got)
}

func TestDeriveOutputPath_PreserveFallsBackToVolumeRoot(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "elsewhere", "a.mp4")
	out := filepath.Join(root, "out")

	for _, base := range []string{"", filepath.Join(root, "library")} {
		got, err := DeriveOutputPath(input, out, "_encoded", true, base)
		require.NoError(t, err)

		parent := filepath.Dir(input)
		rel := strings.TrimPrefix(parent, filepath.VolumeName(parent))
		rel = strings.TrimPrefix(rel, string(filepath.Separator))
		assert.Equal(t, filepath.Join(out, rel, "a_encoded.mp4"), got)
	}
}

func TestDeriveOutputPath_SameAsInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.mp4")

	_, err := DeriveOutputPath(input, dir, "", false, "")
	assert.True(t, errors.Is(err, ErrOutputIsInput), "got %v", err)
}

func TestDeriveOutputPath_NoOutputDir(t *testing.T) {
	_, err := DeriveOutputPath("a.mp4", "", "_encoded", false, "")
	assert.ErrorIs(t, err, ErrNoOutputDir)
}

func TestDeriveOutputPath_MkdirFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o500))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := DeriveOutputPath("a.mp4", filepath.Join(locked, "out"), "_encoded", false, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission), "got %v", err)
}
