package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nvenc-encoder/internal/model"
)

// OptionsPanel edits the encoding options in Video, Audio, Filters and
// General tabs. Options reads them back as a validated snapshot.
type OptionsPanel struct {
	window fyne.Window
	local  *Localization

	encoderSelect    *widget.Select
	qualitySlider    *widget.Slider
	qualityValue     *widget.Label
	presetSelect     *widget.Select
	maxBitrateEntry  *widget.Entry
	audioCodecSelect *widget.Select
	audioRateEntry   *widget.Entry
	scaleEntry       *widget.Entry
	fpsEntry         *widget.Entry
	filtersEntry     *widget.Entry
	executableEntry  *widget.Entry
	suffixEntry      *widget.Entry
	overwriteCheck   *widget.Check
	preserveCheck    *widget.Check
	baseDirEntry     *widget.Entry

	tabs *container.AppTabs
}

// NewOptionsPanel creates the panel with the given choices for the pickers
func NewOptionsPanel(window fyne.Window, localization *Localization, encoders, presets, audioCodecs []string) *OptionsPanel {
	p := &OptionsPanel{window: window, local: localization}
	p.createUI(encoders, presets, audioCodecs)
	return p
}

func (p *OptionsPanel) createUI(encoders, presets, audioCodecs []string) {
	t := p.local.GetText

	p.encoderSelect = widget.NewSelect(encoders, nil)

	p.qualityValue = widget.NewLabel("")
	p.qualitySlider = widget.NewSlider(model.MinQuality, model.MaxQuality)
	p.qualitySlider.Step = QualitySliderStep
	p.qualitySlider.OnChanged = func(v float64) {
		p.qualityValue.SetText(fmt.Sprintf(QualityLabelFormat, int(v)))
	}

	p.presetSelect = widget.NewSelect(presets, nil)

	p.maxBitrateEntry = widget.NewEntry()
	p.maxBitrateEntry.SetPlaceHolder(t(KeyUnlimitedHint))
	p.maxBitrateEntry.Validator = nonNegativeInt

	p.audioCodecSelect = widget.NewSelect(audioCodecs, func(codec string) {
		if p.audioRateEntry == nil {
			return
		}
		if codec == model.AudioPassthrough {
			p.audioRateEntry.Disable()
		} else {
			p.audioRateEntry.Enable()
		}
	})
	p.audioRateEntry = widget.NewEntry()
	p.audioRateEntry.Validator = nonNegativeInt

	p.scaleEntry = widget.NewEntry()
	p.scaleEntry.SetPlaceHolder(t(KeyScaleHint))
	p.fpsEntry = widget.NewEntry()
	p.filtersEntry = widget.NewEntry()

	p.executableEntry = widget.NewEntry()
	p.suffixEntry = widget.NewEntry()
	p.overwriteCheck = widget.NewCheck(t(KeyOverwrite), nil)
	p.preserveCheck = widget.NewCheck(t(KeyPreserveStructure), func(on bool) {
		if p.baseDirEntry == nil {
			return
		}
		if on {
			p.baseDirEntry.Enable()
		} else {
			p.baseDirEntry.Disable()
		}
	})
	p.baseDirEntry = widget.NewEntry()
	p.baseDirEntry.SetPlaceHolder(t(KeyBaseDirectoryHint))

	executableRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(t(KeyBrowse), p.onBrowseExecutable), p.executableEntry)
	baseDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(t(KeyBrowse), p.onBrowseBaseDir), p.baseDirEntry)

	video := widget.NewForm(
		widget.NewFormItem(t(KeyVideoEncoder), p.encoderSelect),
		widget.NewFormItem(t(KeyQuality), container.NewBorder(nil, nil, nil, p.qualityValue, p.qualitySlider)),
		&widget.FormItem{Text: t(KeyPreset), Widget: p.presetSelect, HintText: t(KeyPresetHint)},
		&widget.FormItem{Text: t(KeyMaxBitrate), Widget: p.maxBitrateEntry, HintText: t(KeyUnlimitedHint)},
	)
	audio := widget.NewForm(
		widget.NewFormItem(t(KeyAudioCodec), p.audioCodecSelect),
		widget.NewFormItem(t(KeyAudioBitrate), p.audioRateEntry),
	)
	filters := widget.NewForm(
		&widget.FormItem{Text: t(KeyScale), Widget: p.scaleEntry, HintText: t(KeyScaleHint)},
		widget.NewFormItem(t(KeyFPS), p.fpsEntry),
		widget.NewFormItem(t(KeyExtraFilters), p.filtersEntry),
	)
	general := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(t(KeyFFmpegPath), executableRow),
			widget.NewFormItem(t(KeyOutputSuffix), p.suffixEntry),
		),
		p.overwriteCheck,
		p.preserveCheck,
		widget.NewForm(widget.NewFormItem(t(KeyBaseDirectory), baseDirRow)),
	)

	p.tabs = container.NewAppTabs(
		container.NewTabItem(t(KeyVideo), video),
		container.NewTabItem(t(KeyAudio), audio),
		container.NewTabItem(t(KeyFilters), filters),
		container.NewTabItem(t(KeyGeneral), general),
	)
}

// Container returns the tabbed panel
func (p *OptionsPanel) Container() fyne.CanvasObject {
	return p.tabs
}

// Load shows opts in the widgets
func (p *OptionsPanel) Load(opts model.ConversionOptions) {
	p.encoderSelect.SetSelected(opts.VideoEncoder)
	p.qualitySlider.SetValue(float64(opts.Quality))
	p.qualityValue.SetText(fmt.Sprintf(QualityLabelFormat, opts.Quality))
	p.presetSelect.SetSelected(opts.Preset)
	p.maxBitrateEntry.SetText(strconv.Itoa(opts.MaxBitrate))
	p.audioRateEntry.SetText(strconv.Itoa(opts.AudioBitrate))
	p.audioCodecSelect.SetSelected(opts.AudioCodec)
	p.scaleEntry.SetText(opts.Scale)
	p.fpsEntry.SetText(opts.FPS)
	p.filtersEntry.SetText(opts.ExtraFilters)
	p.executableEntry.SetText(opts.Executable)
	p.suffixEntry.SetText(opts.OutputSuffix)
	p.overwriteCheck.SetChecked(opts.Overwrite)
	p.baseDirEntry.SetText(opts.BaseDir)
	p.preserveCheck.SetChecked(opts.PreserveStructure)
	if !opts.PreserveStructure {
		p.baseDirEntry.Disable()
	}
}

// Options returns the edited options, or an error when a numeric field does
// not parse or the combination is invalid
func (p *OptionsPanel) Options() (model.ConversionOptions, error) {
	maxBitrate, err := parseKbps(p.maxBitrateEntry.Text)
	if err != nil {
		return model.ConversionOptions{}, fmt.Errorf("max bitrate: %w", err)
	}

	opts := model.ConversionOptions{
		VideoEncoder:      p.encoderSelect.Selected,
		Quality:           int(p.qualitySlider.Value),
		Preset:            p.presetSelect.Selected,
		MaxBitrate:        maxBitrate,
		AudioCodec:        p.audioCodecSelect.Selected,
		Scale:             strings.TrimSpace(p.scaleEntry.Text),
		FPS:               strings.TrimSpace(p.fpsEntry.Text),
		ExtraFilters:      strings.TrimSpace(p.filtersEntry.Text),
		Overwrite:         p.overwriteCheck.Checked,
		PreserveStructure: p.preserveCheck.Checked,
		BaseDir:           strings.TrimSpace(p.baseDirEntry.Text),
		OutputSuffix:      p.suffixEntry.Text,
		Executable:        strings.TrimSpace(p.executableEntry.Text),
	}

	// The bitrate field is ignored for passthrough but kept when it parses.
	audioRate, err := parseKbps(p.audioRateEntry.Text)
	if err != nil && !opts.IsPassthroughAudio() {
		return model.ConversionOptions{}, fmt.Errorf("audio bitrate: %w", err)
	}
	opts.AudioBitrate = audioRate

	if err := opts.Validate(); err != nil {
		return model.ConversionOptions{}, err
	}
	return opts, nil
}

// Executable returns the tool path currently entered
func (p *OptionsPanel) Executable() string {
	return strings.TrimSpace(p.executableEntry.Text)
}

// SetOnExecutableChanged registers a callback fired when the tool path is edited
func (p *OptionsPanel) SetOnExecutableChanged(callback func(string)) {
	p.executableEntry.OnChanged = callback
}

// SetEnabled locks the options while a batch runs
func (p *OptionsPanel) SetEnabled(enabled bool) {
	for _, w := range []fyne.Disableable{
		p.encoderSelect, p.qualitySlider, p.presetSelect, p.maxBitrateEntry,
		p.audioCodecSelect, p.scaleEntry, p.fpsEntry, p.filtersEntry,
		p.executableEntry, p.suffixEntry, p.overwriteCheck, p.preserveCheck,
	} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}

	if enabled && p.audioCodecSelect.Selected != model.AudioPassthrough {
		p.audioRateEntry.Enable()
	} else {
		p.audioRateEntry.Disable()
	}
	if enabled && p.preserveCheck.Checked {
		p.baseDirEntry.Enable()
	} else {
		p.baseDirEntry.Disable()
	}
}

func (p *OptionsPanel) onBrowseExecutable() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		p.executableEntry.SetText(reader.URI().Path())
	}, p.window)
}

func (p *OptionsPanel) onBrowseBaseDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		p.baseDirEntry.SetText(uri.Path())
	}, p.window)
}

// parseKbps parses a kbps field; empty means 0
func parseKbps(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	if v < 0 {
		return 0, model.ErrNegativeBitrate
	}
	return v, nil
}

func nonNegativeInt(text string) error {
	_, err := parseKbps(text)
	return err
}
