package model

import (
	"errors"
	"fmt"
	"strings"
)

// Quality bounds shared by the NVENC -crf/-cq scale and x264/x265 CRF
const (
	MinQuality = 0
	MaxQuality = 51
)

// AudioPassthrough copies the source audio stream without re-encoding.
const AudioPassthrough = "copy"

// Validation errors
var (
	ErrInvalidQuality      = errors.New("quality must be between 0 and 51")
	ErrNegativeBitrate     = errors.New("bitrate must not be negative")
	ErrInvalidAudioBitrate = errors.New("audio bitrate must be positive")
	ErrEmptyEncoder        = errors.New("video encoder is required")
	ErrEmptyPreset         = errors.New("preset is required")
	ErrEmptyAudioCodec     = errors.New("audio codec is required")
	ErrEmptyExecutable     = errors.New("path to the external tool is required")
)

// ConversionOptions is an immutable snapshot of the user's encoding choices.
// It is copied by value into a batch so later edits in the UI never reach a
// running conversion.
type ConversionOptions struct {
	VideoEncoder string // h264_nvenc, hevc_nvenc, av1_nvenc, ...
	Quality      int    // 0..51
	Preset       string // p1..p7
	MaxBitrate   int    // kbps, 0 = unlimited
	AudioCodec   string // aac, ac3, mp3 or AudioPassthrough
	AudioBitrate int    // kbps, ignored for passthrough
	Scale        string // "W:H", optional
	FPS          string // optional
	ExtraFilters string // free-form -vf fragment, optional

	Overwrite         bool
	PreserveStructure bool
	BaseDir           string // anchor for PreserveStructure, optional
	OutputSuffix      string
	Executable        string // path to ffmpeg
}

// IsPassthroughAudio reports whether audio is copied unmodified
func (o ConversionOptions) IsPassthroughAudio() bool {
	return strings.TrimSpace(o.AudioCodec) == AudioPassthrough
}

// Validate checks the invariants the command builder relies on
func (o ConversionOptions) Validate() error {
	if o.Quality < MinQuality || o.Quality > MaxQuality {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, o.Quality)
	}
	if o.MaxBitrate < 0 {
		return fmt.Errorf("max bitrate: %w", ErrNegativeBitrate)
	}
	if o.AudioBitrate < 0 {
		return fmt.Errorf("audio bitrate: %w", ErrNegativeBitrate)
	}
	if strings.TrimSpace(o.VideoEncoder) == "" {
		return ErrEmptyEncoder
	}
	if strings.TrimSpace(o.Preset) == "" {
		return ErrEmptyPreset
	}
	if strings.TrimSpace(o.AudioCodec) == "" {
		return ErrEmptyAudioCodec
	}
	if !o.IsPassthroughAudio() && o.AudioBitrate == 0 {
		return ErrInvalidAudioBitrate
	}
	if strings.TrimSpace(o.Executable) == "" {
		return ErrEmptyExecutable
	}
	return nil
}
