// Package logging builds the diagnostic logger shared by the services and
// front-ends. The conversion log shown to the user is separate and lives in
// the encode callbacks.
package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = logrus.InfoLevel

// New returns a text logger writing to out (stderr when nil) at the given
// level name. An unknown level falls back to DefaultLevel with an error.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			filename := path.Base(f.File)
			return "", fmt.Sprintf("%s:%d", filename, f.Line)
		},
	})

	lvl, err := ParseLevel(level)
	log.SetLevel(lvl)
	log.SetReportCaller(lvl >= logrus.DebugLevel)
	return log, err
}

// ParseLevel maps a level name to a logrus level. Empty means DefaultLevel.
func ParseLevel(level string) (logrus.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return DefaultLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// WithComponent tags every entry with the component that produced it
func WithComponent(log *logrus.Logger, component string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"component": component,
	})
}

// Discard returns an entry that drops everything, for tests and callers
// without a configured logger
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
