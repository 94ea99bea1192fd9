package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		in       string
		expected logrus.Level
		wantErr  bool
	}{
		{"", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{"WARN", logrus.WarnLevel, false},
		{" error ", logrus.ErrorLevel, false},
		{"chatty", logrus.InfoLevel, true},
	}

	for _, test := range tests {
		log, err := New(test.in, &bytes.Buffer{})
		if (err != nil) != test.wantErr {
			t.Errorf("New(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
		}
		if log.GetLevel() != test.expected {
			t.Errorf("New(%q) level = %s, expected %s", test.in, log.GetLevel(), test.expected)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", &buf)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	WithComponent(log, "encode").WithField("file", "a.mp4").Info("File finished")

	out := buf.String()
	for _, want := range []string{"component=encode", "file=a.mp4", `msg="File finished"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output %q", want, out)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, _ := New("warn", &buf)

	log.Info("hidden")
	log.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("Info entry should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Warn entry should be written")
	}
}

func TestDiscard(t *testing.T) {
	entry := Discard()
	entry.Info("nothing")
	if entry.Logger.Out == nil {
		t.Error("Discard logger should have an output")
	}
}
