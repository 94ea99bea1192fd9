package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nvenc-encoder/internal/config"
)

// SettingsDialog edits application preferences that are not encoding options
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	local    *Localization
	dialog   *dialog.ConfirmDialog

	languageSelect *widget.Select
	autoRevealChk  *widget.Check

	// language code by display name
	languageCodes  map[string]string
	resetRequested bool

	onSaved func(languageChanged, resetOptions bool)
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func(languageChanged, resetOptions bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		local:    localization,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.local.GetText

	sd.languageCodes = make(map[string]string)
	names := make([]string, 0)
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	sd.autoRevealChk = widget.NewCheck(t(KeyAutoReveal), nil)

	resetBtn := widget.NewButton(t(KeyResetDefaults), func() {
		sd.resetRequested = true
	})
	resetBtn.Importance = widget.WarningImportance

	form := container.NewVBox(
		widget.NewForm(widget.NewFormItem(t(KeyLanguage), sd.languageSelect)),
		sd.autoRevealChk,
		widget.NewSeparator(),
		resetBtn,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.resetRequested = false
	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
	sd.autoRevealChk.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		languageChanged = true
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealChk.Checked)

	if sd.resetRequested {
		sd.settings.ResetOptions()
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged, sd.resetRequested)
	}

	dialog.ShowInformation(sd.local.GetText(KeySettings), sd.local.GetText(KeySettingsSaved), sd.window)
}
