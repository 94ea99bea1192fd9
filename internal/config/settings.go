package config

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/nvenc-encoder/internal/model"
	"github.com/ytget/nvenc-encoder/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyBaseDir            = "base_directory"
	KeyVideoEncoder       = "video_encoder"
	KeyQuality            = "quality"
	KeyPreset             = "preset"
	KeyMaxBitrate         = "max_bitrate"
	KeyAudioCodec         = "audio_codec"
	KeyAudioBitrate       = "audio_bitrate"
	KeyScale              = "scale"
	KeyFPS                = "fps"
	KeyExtraFilters       = "extra_filters"
	KeyOverwrite          = "overwrite"
	KeyPreserveStructure  = "preserve_structure"
	KeyOutputSuffix       = "output_suffix"
	KeyExecutable         = "ffmpeg_path"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	DefaultOutputFolderName   = "encoded"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

func (s *Settings) prefs() fyne.Preferences {
	return s.app.Preferences()
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.prefs().String(KeyOutputDir)
	if dir == "" {
		videos, err := platform.GetHomeVideosDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(videos, DefaultOutputFolderName)
		s.SetOutputDirectory(dir)
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.prefs().SetString(KeyOutputDir, dir)
}

// GetBaseDirectory returns the anchor used when preserving folder structure
func (s *Settings) GetBaseDirectory() string {
	return s.prefs().String(KeyBaseDir)
}

// SetBaseDirectory sets the structure anchor, empty to use the volume root
func (s *Settings) SetBaseDirectory(dir string) {
	s.prefs().SetString(KeyBaseDir, dir)
}

// GetVideoEncoder returns the video encoder id
func (s *Settings) GetVideoEncoder() string {
	return s.stringOr(KeyVideoEncoder, DefaultVideoEncoder)
}

// SetVideoEncoder sets the video encoder id
func (s *Settings) SetVideoEncoder(encoder string) {
	s.setStringOr(KeyVideoEncoder, encoder, DefaultVideoEncoder)
}

// GetQuality returns the quality value in [0,51]
func (s *Settings) GetQuality() int {
	return clamp(s.prefs().IntWithFallback(KeyQuality, DefaultQuality), model.MinQuality, model.MaxQuality)
}

// SetQuality sets the quality, clamped to [0,51]
func (s *Settings) SetQuality(quality int) {
	s.prefs().SetInt(KeyQuality, clamp(quality, model.MinQuality, model.MaxQuality))
}

// GetPreset returns the encoder preset
func (s *Settings) GetPreset() string {
	return s.stringOr(KeyPreset, DefaultPreset)
}

// SetPreset sets the encoder preset
func (s *Settings) SetPreset(preset string) {
	s.setStringOr(KeyPreset, preset, DefaultPreset)
}

// GetMaxBitrate returns the max video bitrate in kbps, 0 for unlimited
func (s *Settings) GetMaxBitrate() int {
	return max(s.prefs().IntWithFallback(KeyMaxBitrate, DefaultMaxBitrate), 0)
}

// SetMaxBitrate sets the max video bitrate; negative values become 0
func (s *Settings) SetMaxBitrate(kbps int) {
	s.prefs().SetInt(KeyMaxBitrate, max(kbps, 0))
}

// GetAudioCodec returns the audio codec
func (s *Settings) GetAudioCodec() string {
	return s.stringOr(KeyAudioCodec, DefaultAudioCodec)
}

// SetAudioCodec sets the audio codec
func (s *Settings) SetAudioCodec(codec string) {
	s.setStringOr(KeyAudioCodec, codec, DefaultAudioCodec)
}

// GetAudioBitrate returns the audio bitrate in kbps
func (s *Settings) GetAudioBitrate() int {
	value := s.prefs().IntWithFallback(KeyAudioBitrate, DefaultAudioBitrate)
	if value <= 0 {
		return DefaultAudioBitrate
	}
	return value
}

// SetAudioBitrate sets the audio bitrate; non-positive values reset to the default
func (s *Settings) SetAudioBitrate(kbps int) {
	if kbps <= 0 {
		kbps = DefaultAudioBitrate
	}
	s.prefs().SetInt(KeyAudioBitrate, kbps)
}

// GetOutputSuffix returns the suffix appended to output file stems
func (s *Settings) GetOutputSuffix() string {
	return s.prefs().StringWithFallback(KeyOutputSuffix, DefaultOutputSuffix)
}

// SetOutputSuffix sets the output suffix. An empty suffix is allowed.
func (s *Settings) SetOutputSuffix(suffix string) {
	s.prefs().SetString(KeyOutputSuffix, suffix)
}

// GetExecutable returns the path to the external tool
func (s *Settings) GetExecutable() string {
	return s.stringOr(KeyExecutable, DefaultExecutable)
}

// SetExecutable sets the path to the external tool
func (s *Settings) SetExecutable(path string) {
	s.setStringOr(KeyExecutable, path, DefaultExecutable)
}

// Options returns a snapshot of every stored conversion option
func (s *Settings) Options() model.ConversionOptions {
	p := s.prefs()
	return model.ConversionOptions{
		VideoEncoder:      s.GetVideoEncoder(),
		Quality:           s.GetQuality(),
		Preset:            s.GetPreset(),
		MaxBitrate:        s.GetMaxBitrate(),
		AudioCodec:        s.GetAudioCodec(),
		AudioBitrate:      s.GetAudioBitrate(),
		Scale:             p.String(KeyScale),
		FPS:               p.String(KeyFPS),
		ExtraFilters:      p.String(KeyExtraFilters),
		Overwrite:         p.BoolWithFallback(KeyOverwrite, DefaultOverwrite),
		PreserveStructure: p.BoolWithFallback(KeyPreserveStructure, DefaultPreserve),
		BaseDir:           s.GetBaseDirectory(),
		OutputSuffix:      s.GetOutputSuffix(),
		Executable:        s.GetExecutable(),
	}
}

// SetOptions stores every conversion option
func (s *Settings) SetOptions(opts model.ConversionOptions) {
	p := s.prefs()
	s.SetVideoEncoder(opts.VideoEncoder)
	s.SetQuality(opts.Quality)
	s.SetPreset(opts.Preset)
	s.SetMaxBitrate(opts.MaxBitrate)
	s.SetAudioCodec(opts.AudioCodec)
	s.SetAudioBitrate(opts.AudioBitrate)
	p.SetString(KeyScale, strings.TrimSpace(opts.Scale))
	p.SetString(KeyFPS, strings.TrimSpace(opts.FPS))
	p.SetString(KeyExtraFilters, strings.TrimSpace(opts.ExtraFilters))
	p.SetBool(KeyOverwrite, opts.Overwrite)
	p.SetBool(KeyPreserveStructure, opts.PreserveStructure)
	s.SetBaseDirectory(opts.BaseDir)
	s.SetOutputSuffix(opts.OutputSuffix)
	s.SetExecutable(opts.Executable)
}

// ResetOptions restores the default conversion options
func (s *Settings) ResetOptions() {
	s.SetOptions(DefaultOptions())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to open the output folder after a batch
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.prefs().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the output folder after a batch
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.prefs().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
		"ru":     "Русский",
	}
}

// GetVideoEncoderOptions returns the encoders offered in the picker
func (s *Settings) GetVideoEncoderOptions() []string {
	return append([]string(nil), VideoEncoders...)
}

// GetPresetOptions returns the presets offered in the picker
func (s *Settings) GetPresetOptions() []string {
	return append([]string(nil), Presets...)
}

// GetAudioCodecOptions returns the audio codecs offered in the picker
func (s *Settings) GetAudioCodecOptions() []string {
	return append([]string(nil), AudioCodecs...)
}

func (s *Settings) stringOr(key, fallback string) string {
	value := strings.TrimSpace(s.prefs().String(key))
	if value == "" {
		return fallback
	}
	return value
}

func (s *Settings) setStringOr(key, value, fallback string) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	s.prefs().SetString(key, value)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
