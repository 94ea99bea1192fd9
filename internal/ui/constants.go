package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
	QualityLabelFormat  = "%d"
)

// Layout sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 680

	SizeLabelWidth    float32 = 80
	StatusLabelWidth  float32 = 84
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 380
)

// Log view
const (
	// MaxLogLines bounds the log lines shown in the Log tab. Save logs
	// writes the whole log.
	MaxLogLines = 5000
	// DefaultLogFileName is proposed in the Save logs dialog.
	DefaultLogFileName = "conversion_log.txt"
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)

// QualitySliderStep moves the CRF slider by whole steps
const QualitySliderStep = 1
