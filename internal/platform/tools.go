package platform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Timeout constants
const (
	DefaultProbeTimeout = 5 * time.Second
)

// Probe arguments and markers
const (
	VersionFlag      = "-version"
	EncodersFlag     = "-encoders"
	HideBannerFlag   = "-hide_banner"
	VersionMarker    = "ffmpeg version"
	NVENCMarker      = "nvenc"
	EncoderTableRule = "------"
)

// Encoder kinds in the first column of the encoder table
const (
	EncoderVideo    = 'V'
	EncoderAudio    = 'A'
	EncoderSubtitle = 'S'
)

// ErrNotFFmpeg is returned when -version output does not identify the tool
var ErrNotFFmpeg = errors.New("executable did not report an ffmpeg version")

// Encoder is one row of the tool's encoder table
type Encoder struct {
	Name        string
	Kind        byte
	Description string
}

// IsNVENC reports whether the encoder is an NVIDIA hardware encoder
func (e Encoder) IsNVENC() bool {
	return strings.Contains(strings.ToLower(e.Name), NVENCMarker)
}

// ToolStatus is the result of probing the external tool
type ToolStatus struct {
	Executable string
	Available  bool
	Version    string // first line of -version output
	NVENC      bool
	Encoders   []Encoder // NVENC encoders only
	Err        error
}

// ToolProbeService checks the external tool before any batch runs
type ToolProbeService struct {
	timeout time.Duration
	log     *logrus.Entry
}

// NewToolProbeService creates a probe service
func NewToolProbeService(log *logrus.Entry) *ToolProbeService {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ToolProbeService{
		timeout: DefaultProbeTimeout,
		log:     log,
	}
}

// SetTimeout sets the timeout for each probe invocation
func (p *ToolProbeService) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Check runs "<executable> -version" and, when that identifies the tool,
// "<executable> -encoders" to detect NVENC support.
func (p *ToolProbeService) Check(ctx context.Context, executable string) ToolStatus {
	status := ToolStatus{Executable: executable}
	log := p.log.WithField("executable", executable)

	out, err := p.output(ctx, executable, VersionFlag)
	if err != nil {
		status.Err = fmt.Errorf("failed to run %s: %w", executable, err)
		log.WithError(err).Warn("Tool not available")
		return status
	}
	version, ok := ParseVersion(out)
	if !ok {
		status.Err = ErrNotFFmpeg
		log.Warn("Executable is not ffmpeg")
		return status
	}
	status.Available = true
	status.Version = version

	out, err = p.output(ctx, executable, HideBannerFlag, EncodersFlag)
	if err != nil {
		// The tool itself works; only hardware detection is unknown
		log.WithError(err).Warn("Could not list encoders")
		return status
	}
	for _, enc := range ParseEncoders(out) {
		if enc.IsNVENC() {
			status.Encoders = append(status.Encoders, enc)
		}
	}
	status.NVENC = len(status.Encoders) > 0 || HasNVENC(out)

	log.WithFields(logrus.Fields{
		"version": status.Version,
		"nvenc":   status.NVENC,
	}).Info("Tool probed")
	return status
}

func (p *ToolProbeService) output(ctx context.Context, executable string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, executable, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ParseVersion returns the first line of -version output when it names the tool
func ParseVersion(output string) (string, bool) {
	if !strings.Contains(output, VersionMarker) {
		return "", false
	}
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(line), true
}

// HasNVENC reports whether the encoder listing mentions an NVENC encoder
func HasNVENC(output string) bool {
	return strings.Contains(strings.ToLower(output), NVENCMarker)
}

// ParseEncoders parses the table printed by -encoders:
//
//	Encoders:
//	 V..... = Video
//	 ...
//	 ------
//	 V....D h264_nvenc           NVIDIA NVENC H.264 encoder (codec h264)
func ParseEncoders(output string) []Encoder {
	var encoders []Encoder
	inTable := false

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !inTable {
			inTable = strings.HasPrefix(line, EncoderTableRule)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields[0]) == 0 {
			continue
		}
		enc := Encoder{
			Name: fields[1],
			Kind: fields[0][0],
		}
		if len(fields) > 2 {
			enc.Description = strings.Join(fields[2:], " ")
		}
		encoders = append(encoders, enc)
	}
	return encoders
}
