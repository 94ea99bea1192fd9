package platform

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

const sampleEncoders = `Encoders:
 V..... = Video
 A..... = Audio
 S..... = Subtitle
 .F.... = Frame-level multithreading
 ------
 V....D libx264              libx264 H.264 / AVC / MPEG-4 AVC / MPEG-4 part 10 (codec h264)
 V....D h264_nvenc           NVIDIA NVENC H.264 encoder (codec h264)
 V....D hevc_nvenc           NVIDIA NVENC hevc encoder (codec hevc)
 A....D aac                  AAC (Advanced Audio Coding)
 S..... srt                  SubRip subtitle
`

func TestParseVersion(t *testing.T) {
	out := "ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers\nbuilt with gcc 13\n"
	version, ok := ParseVersion(out)
	if !ok {
		t.Fatal("Expected version to be recognised")
	}
	if version != "ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers" {
		t.Errorf("Unexpected version line: %q", version)
	}

	if _, ok := ParseVersion("avconv version 12\n"); ok {
		t.Error("Non-ffmpeg output should not be recognised")
	}
}

func TestParseEncoders(t *testing.T) {
	encoders := ParseEncoders(sampleEncoders)

	if len(encoders) != 5 {
		t.Fatalf("Expected 5 encoders, got %d: %+v", len(encoders), encoders)
	}

	tests := []struct {
		index int
		name  string
		kind  byte
		nvenc bool
	}{
		{0, "libx264", EncoderVideo, false},
		{1, "h264_nvenc", EncoderVideo, true},
		{2, "hevc_nvenc", EncoderVideo, true},
		{3, "aac", EncoderAudio, false},
		{4, "srt", EncoderSubtitle, false},
	}

	for _, test := range tests {
		enc := encoders[test.index]
		if enc.Name != test.name || enc.Kind != test.kind || enc.IsNVENC() != test.nvenc {
			t.Errorf("Encoder %d: expected %s/%c/%v, got %s/%c/%v",
				test.index, test.name, test.kind, test.nvenc, enc.Name, enc.Kind, enc.IsNVENC())
		}
	}

	if encoders[1].Description != "NVIDIA NVENC H.264 encoder (codec h264)" {
		t.Errorf("Unexpected description: %q", encoders[1].Description)
	}
}

func TestParseEncoders_NoTable(t *testing.T) {
	if got := ParseEncoders("Encoders:\n V..... = Video\n"); len(got) != 0 {
		t.Errorf("Expected no encoders before the rule line, got %+v", got)
	}
}

func TestHasNVENC(t *testing.T) {
	if !HasNVENC(sampleEncoders) {
		t.Error("Expected NVENC to be detected")
	}
	if HasNVENC(" V....D libx264 libx264 H.264\n") {
		t.Error("Expected no NVENC without nvenc encoders")
	}
	if !HasNVENC("V....D AV1_NVENC") {
		t.Error("Detection should be case-insensitive")
	}
}

func TestToolProbeService_Missing(t *testing.T) {
	probe := NewToolProbeService(nil)
	probe.SetTimeout(2 * time.Second)

	status := probe.Check(context.Background(), filepath.Join(t.TempDir(), "no-ffmpeg"))
	if status.Available {
		t.Error("Missing executable should not be available")
	}
	if status.NVENC {
		t.Error("Missing executable cannot have NVENC")
	}
	if status.Err == nil {
		t.Error("Expected an error for a missing executable")
	}
}
