package main

// Flags are grouped into video, audio, filters, output and utility.
// -no-overwrite is applied after Parse so the default from config holds unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/nvenc-encoder/internal/config"
	"github.com/ytget/nvenc-encoder/internal/model"
)

// errUsage marks errors that should end with exit code 2
var errUsage = errors.New("usage error")

// cliConfig is everything one invocation needs
type cliConfig struct {
	Options   model.ConversionOptions
	OutputDir string
	Paths     []string
	CheckOnly bool
	LogLevel  string
	LogFile   string
	Version   bool
}

// parseArgs parses args on top of the defaults and environment overrides
func parseArgs(args []string, env config.Env, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{
		Options:  env.Apply(config.DefaultOptions()),
		LogLevel: env.LogLevel,
	}

	fs := flag.NewFlagSet("nvenc-encoder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }

	var noOverwrite bool
	defineVideoFlags(fs, &cfg.Options)
	defineAudioFlags(fs, &cfg.Options)
	defineFilterFlags(fs, &cfg.Options)
	defineOutputFlags(fs, &cfg, &noOverwrite)
	defineUtilityFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if noOverwrite {
		cfg.Options.Overwrite = false
	}
	if cfg.Version || cfg.CheckOnly {
		return cfg, nil
	}

	cfg.Paths = fs.Args()
	if len(cfg.Paths) == 0 {
		return cfg, fmt.Errorf("%w: at least one file or folder is required", errUsage)
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return cfg, fmt.Errorf("%w: -o <output folder> is required", errUsage)
	}
	if err := cfg.Options.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: invalid options: %v", errUsage, err)
	}
	return cfg, nil
}

func defineVideoFlags(fs *flag.FlagSet, o *model.ConversionOptions) {
	fs.StringVar(&o.VideoEncoder, "encoder", o.VideoEncoder, "Video encoder: "+strings.Join(config.VideoEncoders, " | "))
	fs.IntVar(&o.Quality, "quality", o.Quality, "Quality (CRF), 0-51")
	fs.IntVar(&o.Quality, "q", o.Quality, "Same as -quality")
	fs.StringVar(&o.Preset, "preset", o.Preset, "NVENC preset: "+strings.Join(config.Presets, " | "))
	fs.StringVar(&o.Preset, "p", o.Preset, "Same as -preset")
	fs.IntVar(&o.MaxBitrate, "maxrate", o.MaxBitrate, "Max video bitrate in kbps, 0 = unlimited")
}

func defineAudioFlags(fs *flag.FlagSet, o *model.ConversionOptions) {
	fs.StringVar(&o.AudioCodec, "audio", o.AudioCodec, "Audio codec: "+strings.Join(config.AudioCodecs, " | "))
	fs.IntVar(&o.AudioBitrate, "audio-bitrate", o.AudioBitrate, "Audio bitrate in kbps (ignored for copy)")
}

func defineFilterFlags(fs *flag.FlagSet, o *model.ConversionOptions) {
	fs.StringVar(&o.Scale, "scale", "", "Scale as W:H, e.g. 1280:720")
	fs.StringVar(&o.FPS, "fps", "", "Output frame rate")
	fs.StringVar(&o.ExtraFilters, "filters", "", "Extra -vf filters, comma separated")
}

func defineOutputFlags(fs *flag.FlagSet, cfg *cliConfig, noOverwrite *bool) {
	o := &cfg.Options
	fs.StringVar(&cfg.OutputDir, "o", "", "Output folder (required)")
	fs.StringVar(&o.OutputSuffix, "suffix", o.OutputSuffix, "Suffix appended to output file names")
	fs.BoolVar(noOverwrite, "no-overwrite", false, "Keep existing output files")
	fs.BoolVar(&o.PreserveStructure, "preserve", o.PreserveStructure, "Recreate the input folder structure")
	fs.StringVar(&o.BaseDir, "base", "", "Base folder for -preserve (default: drive root)")
	fs.StringVar(&o.Executable, "ffmpeg", o.Executable, "Path to ffmpeg (env "+config.EnvFFmpeg+")")
}

func defineUtilityFlags(fs *flag.FlagSet, cfg *cliConfig) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Check ffmpeg and NVENC support and exit")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level: debug | info | warn | error (env "+config.EnvLogLevel+")")
	fs.StringVar(&cfg.LogFile, "log", "", "Also write the conversion log to this file")
	fs.BoolVar(&cfg.Version, "version", false, "Print version and exit")
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "NVENC Encoder v%s\n\n", version)
	fmt.Fprintln(w, "  nvenc-encoder [flags] -o <output folder> <file|folder>...")
	fmt.Fprintln(w, "  nvenc-encoder -check")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Folders are scanned recursively for video files.")
	fmt.Fprintln(w)
	fs.PrintDefaults()
}
