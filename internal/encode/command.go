package encode

import (
	"strconv"
	"strings"

	"github.com/ytget/nvenc-encoder/internal/model"
)

// Tool flags
const (
	FlagInput       = "-i"
	FlagVideoFilter = "-vf"
	FlagVideoCodec  = "-c:v"
	FlagPreset      = "-preset"
	FlagQuality     = "-crf"
	FlagMaxRate     = "-maxrate"
	FlagAudioCodec  = "-c:a"
	FlagAudioRate   = "-b:a"
	FlagOverwrite   = "-y"
	FlagNoOverwrite = "-n"
)

// BuildArgs returns the full argv for converting input to output.
// The first element is the executable.
func BuildArgs(executable, input, output string, opts model.ConversionOptions) []string {
	args := make([]string, 0, 20)
	args = append(args, executable, FlagInput, input)

	if vf := videoFilter(opts); vf != "" {
		args = append(args, FlagVideoFilter, vf)
	}

	args = append(args,
		FlagVideoCodec, strings.TrimSpace(opts.VideoEncoder),
		FlagPreset, strings.TrimSpace(opts.Preset),
		FlagQuality, strconv.Itoa(opts.Quality),
	)

	if opts.MaxBitrate > 0 {
		args = append(args, FlagMaxRate, kbps(opts.MaxBitrate))
	}

	if opts.IsPassthroughAudio() {
		args = append(args, FlagAudioCodec, model.AudioPassthrough)
	} else {
		args = append(args,
			FlagAudioCodec, strings.TrimSpace(opts.AudioCodec),
			FlagAudioRate, kbps(opts.AudioBitrate),
		)
	}

	if opts.Overwrite {
		args = append(args, FlagOverwrite)
	} else {
		args = append(args, FlagNoOverwrite)
	}

	return append(args, output)
}

// videoFilter joins the non-empty filter parts in scale, fps, extra order
func videoFilter(opts model.ConversionOptions) string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(opts.Scale); s != "" {
		parts = append(parts, "scale="+s)
	}
	if s := strings.TrimSpace(opts.FPS); s != "" {
		parts = append(parts, "fps="+s)
	}
	if s := strings.TrimSpace(opts.ExtraFilters); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ",")
}

func kbps(n int) string {
	return strconv.Itoa(n) + "k"
}

// CommandLine renders argv for display, quoting arguments that contain
// whitespace or quotes.
func CommandLine(args []string) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(quoteArg(a))
	}
	return b.String()
}

func quoteArg(a string) string {
	if a == "" {
		return `""`
	}
	if !strings.ContainsAny(a, " \t\n\"'") {
		return a
	}
	return `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
}
