package config

import (
	"os"
	"strings"

	"github.com/ytget/nvenc-encoder/internal/model"
)

// Environment variables read by the headless command and the GUI
const (
	EnvFFmpeg   = "NVENC_ENCODER_FFMPEG"
	EnvLogLevel = "NVENC_ENCODER_LOG_LEVEL"
)

// Default conversion option values
const (
	DefaultVideoEncoder = "h264_nvenc"
	DefaultQuality      = 23
	DefaultPreset       = "p4"
	DefaultMaxBitrate   = 0
	DefaultAudioCodec   = "aac"
	DefaultAudioBitrate = 128
	DefaultOverwrite    = true
	DefaultPreserve     = false
	DefaultOutputSuffix = "_encoded"
	DefaultExecutable   = "ffmpeg"
)

// Choices offered by the option pickers. Other values are accepted as typed.
var (
	VideoEncoders = []string{"h264_nvenc", "hevc_nvenc", "av1_nvenc"}
	Presets       = []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}
	AudioCodecs   = []string{"aac", "ac3", "mp3", model.AudioPassthrough}
)

// DefaultOptions returns the options used on first start
func DefaultOptions() model.ConversionOptions {
	return model.ConversionOptions{
		VideoEncoder:      DefaultVideoEncoder,
		Quality:           DefaultQuality,
		Preset:            DefaultPreset,
		MaxBitrate:        DefaultMaxBitrate,
		AudioCodec:        DefaultAudioCodec,
		AudioBitrate:      DefaultAudioBitrate,
		Overwrite:         DefaultOverwrite,
		PreserveStructure: DefaultPreserve,
		OutputSuffix:      DefaultOutputSuffix,
		Executable:        DefaultExecutable,
	}
}

// Env holds overrides taken from the process environment
type Env struct {
	FFmpeg   string
	LogLevel string
}

// FromEnv reads the environment overrides
func FromEnv() Env {
	return Env{
		FFmpeg:   strings.TrimSpace(os.Getenv(EnvFFmpeg)),
		LogLevel: strings.TrimSpace(os.Getenv(EnvLogLevel)),
	}
}

// Apply copies the set overrides onto opts
func (e Env) Apply(opts model.ConversionOptions) model.ConversionOptions {
	if e.FFmpeg != "" {
		opts.Executable = e.FFmpeg
	}
	return opts
}
