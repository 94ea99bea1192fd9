package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/ytget/nvenc-encoder/internal/config"
	"github.com/ytget/nvenc-encoder/internal/encode"
	"github.com/ytget/nvenc-encoder/internal/model"
	"github.com/ytget/nvenc-encoder/internal/platform"
)

// ToolProbeDelay is how long the tool path must stay unchanged before it is probed again
const ToolProbeDelay = 600 * time.Millisecond

// ToolChecker probes the external conversion tool
type ToolChecker interface {
	Check(ctx context.Context, executable string) platform.ToolStatus
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	converter    encode.Converter
	probe        ToolChecker
	env          config.Env
	settings     *config.Settings
	localization *Localization
	log          *logrus.Entry

	files     *model.FileList
	logBuffer *LogBuffer

	// per-file state of the current or last batch, keyed by input path
	tasksMu sync.Mutex
	tasks   map[string]model.ConversionTask
	current *model.ConversionTask

	// owned by the UI goroutine
	running    bool
	outputDir  string
	toolStatus *platform.ToolStatus
	selected   widget.ListItemID
	logLines   []string

	fileList        *widget.List
	filesSummary    *widget.Label
	outputEntry     *widget.Entry
	options         *OptionsPanel
	startBtn        *widget.Button
	stopBtn         *widget.Button
	progressBar     *widget.ProgressBar
	processingLabel *widget.Label
	toolLabel       *widget.Label
	logList         *widget.List

	// UI update debouncing
	lastUIUpdate     time.Time
	refreshScheduled bool
	uiUpdateMutex    sync.Mutex

	probeMu    sync.Mutex
	probeTimer *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, converter encode.Converter, probe ToolChecker, env config.Env, log *logrus.Entry) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		converter:    converter,
		probe:        probe,
		env:          env,
		settings:     settings,
		localization: localization,
		log:          log,
		files:        model.NewFileList(),
		logBuffer:    NewLogBuffer(MaxLogLines),
		tasks:        make(map[string]model.ConversionTask),
		selected:     -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	converter.SetLineCallback(ui.onLine)
	converter.SetUpdateCallback(ui.onTaskUpdate)
	converter.SetFinishedCallback(ui.onBatchFinished)

	ui.setupUI()
	ui.options.Load(env.Apply(settings.Options()))
	ui.options.SetOnExecutableChanged(ui.scheduleToolProbe)
	ui.outputEntry.SetText(settings.GetOutputDirectory())
	ui.updateButtons()

	log.WithField("language", localization.GetCurrentLanguage()).Info("UI initialized")
	return ui
}

// CheckTool probes the configured tool in the background and updates the
// status line. A missing tool is reported in a dialog.
func (ui *RootUI) CheckTool() {
	executable := ui.options.Executable()
	ui.toolLabel.SetText(ui.localization.GetText(KeyCheckingTool))
	go func() {
		status := ui.probe.Check(context.Background(), executable)
		fyne.Do(func() {
			ui.applyToolStatus(status, true)
		})
	}()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText
	ui.createMenu()

	// Files tab
	addFilesBtn := widget.NewButtonWithIcon(t(KeyAddFiles), theme.ContentAddIcon(), ui.onAddFiles)
	addFolderBtn := widget.NewButtonWithIcon(t(KeyAddFolder), theme.FolderOpenIcon(), ui.onAddFolder)
	removeBtn := widget.NewButtonWithIcon(t(KeyRemove), theme.ContentRemoveIcon(), ui.onRemoveSelected)
	clearBtn := widget.NewButtonWithIcon(t(KeyClearAll), theme.DeleteIcon(), ui.onClearFiles)
	revealBtn := widget.NewButtonWithIcon(t(KeyReveal), theme.SearchIcon(), ui.onRevealSelected)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var toolbarLeft fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		toolbarLeft = container.NewHBox(logoImage, settingsBtn)
	}

	fileToolbar := container.NewHBox(toolbarLeft, addFilesBtn, addFolderBtn, removeBtn, clearBtn, layout.NewSpacer(), revealBtn)

	ui.fileList = widget.NewList(
		ui.files.Len,
		func() fyne.CanvasObject { return NewFileRow(ui.localization) },
		ui.updateFileItem,
	)
	ui.selected = -1
	ui.fileList.OnSelected = func(id widget.ListItemID) { ui.selected = id }
	ui.fileList.OnUnselected = func(widget.ListItemID) { ui.selected = -1 }

	ui.filesSummary = widget.NewLabel("")
	ui.refreshFilesSummary()

	filesTab := container.NewBorder(fileToolbar, ui.filesSummary, nil, nil, ui.fileList)

	// Encoding tab
	ui.options = NewOptionsPanel(ui.window, ui.localization,
		ui.settings.GetVideoEncoderOptions(), ui.settings.GetPresetOptions(), ui.settings.GetAudioCodecOptions())

	// Log tab
	ui.logList = widget.NewList(
		func() int { return len(ui.logLines) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.TextStyle = fyne.TextStyle{Monospace: true}
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.logLines) {
				obj.(*widget.Label).SetText(ui.logLines[id])
			}
		},
	)
	logToolbar := container.NewHBox(
		layout.NewSpacer(),
		widget.NewButtonWithIcon(t(KeyClearLog), theme.ContentClearIcon(), ui.onClearLog),
		widget.NewButtonWithIcon(t(KeySaveLog), theme.DocumentSaveIcon(), ui.onSaveLog),
	)
	logTab := container.NewBorder(logToolbar, nil, nil, nil, ui.logList)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon(t(KeyFiles), theme.FileVideoIcon(), filesTab),
		container.NewTabItemWithIcon(t(KeyOptions), theme.SettingsIcon(), ui.options.Container()),
		container.NewTabItemWithIcon(t(KeyLog), theme.ListIcon(), logTab),
	)

	// Output folder row
	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetPlaceHolder(t(KeyOutputFolder))
	outputButtons := container.NewHBox(
		widget.NewButtonWithIcon(t(KeyBrowse), theme.FolderIcon(), ui.onBrowseOutput),
		widget.NewButtonWithIcon("", theme.FolderOpenIcon(), ui.onOpenOutput),
	)
	outputRow := container.NewBorder(nil, nil, widget.NewLabel(t(KeyOutputFolder)), outputButtons, ui.outputEntry)

	// Progress and controls
	ui.processingLabel = widget.NewLabel(t(KeyReady))
	ui.processingLabel.Truncation = fyne.TextTruncateEllipsis
	ui.progressBar = widget.NewProgressBar()
	ui.toolLabel = widget.NewLabel("")

	ui.startBtn = widget.NewButtonWithIcon(t(KeyStart), theme.MediaPlayIcon(), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButtonWithIcon(t(KeyStop), theme.MediaStopIcon(), ui.onStopClick)
	ui.stopBtn.Importance = widget.DangerImportance

	if ui.toolStatus != nil {
		ui.applyToolStatus(*ui.toolStatus, false)
	}

	controls := container.NewBorder(nil, nil, ui.toolLabel, container.NewHBox(ui.stopBtn, ui.startBtn))
	bottom := container.NewVBox(outputRow, ui.processingLabel, ui.progressBar, controls)

	ui.window.SetContent(container.NewBorder(nil, bottom, nil, nil, tabs))
}

// createMenu builds the main menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	fileMenu := fyne.NewMenu(t(KeyFile),
		fyne.NewMenuItem(t(KeyAddFiles), ui.onAddFiles),
		fyne.NewMenuItem(t(KeyAddFolder), ui.onAddFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(t(KeySettings), ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		item := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(code)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange switches language and rebuilds the window, keeping the
// files, log, options and output folder as they are
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds every widget with the current language
func (ui *RootUI) refreshUITexts() {
	opts, err := ui.options.Options()
	if err != nil {
		opts = ui.settings.Options()
	}
	output := ui.outputEntry.Text

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.options.Load(opts)
	ui.options.SetOnExecutableChanged(ui.scheduleToolProbe)
	ui.outputEntry.SetText(output)
	ui.refreshViews()
	ui.updateButtons()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, func(languageChanged, resetOptions bool) {
		if languageChanged {
			ui.localization.SetLanguage(ui.settings.GetLanguage())
			ui.refreshUITexts()
		}
		if resetOptions {
			ui.options.Load(ui.env.Apply(ui.settings.Options()))
		}
	}).Show()
}

// Files

func (ui *RootUI) onAddFiles() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		ui.addPaths([]string{reader.URI().Path()})
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.VideoExtensions))
	fd.Show()
}

func (ui *RootUI) onAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}

		paths, err := platform.ScanVideoFiles(uri.Path())
		if err != nil {
			ui.log.WithError(err).Warn("Folder scan failed")
			dialog.ShowError(err, ui.window)
			return
		}
		if len(paths) == 0 {
			dialog.ShowInformation(ui.localization.GetText(KeyAddFolder), ui.localization.GetText(KeyNoVideosInFolder), ui.window)
			return
		}
		ui.addPaths(paths)
	}, ui.window)
}

// addPaths adds the given files to the list and returns how many were new
func (ui *RootUI) addPaths(paths []string) int {
	files := make([]model.InputFile, 0, len(paths))
	for _, p := range paths {
		f, err := model.NewInputFile(p)
		if err != nil {
			ui.log.WithError(err).WithField("path", p).Warn("Skipping file")
			continue
		}
		files = append(files, f)
	}

	added := ui.files.Add(files...)
	ui.log.WithFields(logrus.Fields{"added": added, "total": ui.files.Len()}).Info("Files added")
	ui.fileList.Refresh()
	ui.refreshFilesSummary()
	return added
}

func (ui *RootUI) onRemoveSelected() {
	f, ok := ui.files.At(ui.selected)
	if !ok {
		return
	}
	ui.files.Remove(f.Path)
	ui.fileList.UnselectAll()
	ui.selected = -1
	ui.fileList.Refresh()
	ui.refreshFilesSummary()
}

func (ui *RootUI) onClearFiles() {
	if ui.files.Len() == 0 {
		return
	}
	dialog.ShowConfirm(ui.localization.GetText(KeyClearAll), ui.localization.GetText(KeyClearAllConfirm), func(ok bool) {
		if !ok {
			return
		}
		ui.files.Clear()
		ui.fileList.UnselectAll()
		ui.selected = -1
		ui.fileList.Refresh()
		ui.refreshFilesSummary()
	}, ui.window)
}

// onRevealSelected shows the converted output of the selected file in the
// file manager, or the input when it has not been converted
func (ui *RootUI) onRevealSelected() {
	f, ok := ui.files.At(ui.selected)
	if !ok {
		return
	}

	target := f.Path
	ui.tasksMu.Lock()
	if task, found := ui.tasks[f.Path]; found && task.Status == model.TaskStatusCompleted && task.OutputPath != "" {
		target = task.OutputPath
	}
	ui.tasksMu.Unlock()

	if err := platform.OpenFileInManager(target); err != nil {
		ui.log.WithError(err).WithField("path", target).Warn("Failed to reveal file")
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) updateFileItem(id widget.ListItemID, obj fyne.CanvasObject) {
	f, ok := ui.files.At(id)
	if !ok {
		return
	}
	row := obj.(*FileRow)

	ui.tasksMu.Lock()
	task, found := ui.tasks[f.Path]
	ui.tasksMu.Unlock()

	if found {
		row.Update(f, &task)
	} else {
		row.Update(f, nil)
	}
}

func (ui *RootUI) refreshFilesSummary() {
	ui.filesSummary.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilesCount),
		ui.files.Len(), humanize.IBytes(uint64(ui.files.TotalSize()))))
}

// Output folder

func (ui *RootUI) onBrowseOutput() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputEntry.SetText(uri.Path())
	}, ui.window)
}

func (ui *RootUI) onOpenOutput() {
	dir := strings.TrimSpace(ui.outputEntry.Text)
	if dir == "" {
		return
	}
	if err := platform.OpenFolder(dir); err != nil {
		ui.log.WithError(err).Warn("Failed to open output folder")
		dialog.ShowError(err, ui.window)
	}
}

// Conversion

func (ui *RootUI) onStartClick() {
	t := ui.localization.GetText

	if ui.files.Len() == 0 {
		dialog.ShowInformation(t(KeyError), t(KeyNoFiles), ui.window)
		return
	}
	outputDir := strings.TrimSpace(ui.outputEntry.Text)
	if outputDir == "" {
		dialog.ShowInformation(t(KeyError), t(KeyNoOutputDir), ui.window)
		return
	}
	opts, err := ui.options.Options()
	if err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", t(KeyInvalidOptions), err), ui.window)
		return
	}

	ui.settings.SetOptions(opts)
	ui.settings.SetOutputDirectory(outputDir)

	if missing := ui.files.RefreshSizes(); missing > 0 {
		ui.log.WithField("missing", missing).Warn("Some input files are no longer readable")
	}
	ui.refreshFilesSummary()

	batch := model.NewBatch(ui.files.Paths(), opts, outputDir)

	ui.tasksMu.Lock()
	ui.tasks = make(map[string]model.ConversionTask)
	ui.current = nil
	ui.tasksMu.Unlock()

	if err := ui.converter.Start(batch); err != nil {
		ui.log.WithError(err).Warn("Batch not started")
		ui.showStartError(err)
		return
	}

	ui.log.WithFields(logrus.Fields{"batch": batch.ID, "files": len(batch.Files)}).Info("Batch started")
	ui.outputDir = outputDir
	ui.running = true
	ui.progressBar.SetValue(0)
	ui.fileList.Refresh()
	ui.updateButtons()
}

func (ui *RootUI) showStartError(err error) {
	t := ui.localization.GetText
	switch {
	case errors.Is(err, encode.ErrNoFiles):
		dialog.ShowInformation(t(KeyError), t(KeyNoFiles), ui.window)
	case errors.Is(err, encode.ErrNoOutputDir):
		dialog.ShowInformation(t(KeyError), t(KeyNoOutputDir), ui.window)
	case errors.Is(err, encode.ErrAlreadyRunning):
		dialog.ShowInformation(t(KeyError), t(KeyAlreadyRunning), ui.window)
	default:
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onStopClick() {
	if err := ui.converter.Cancel(); err != nil {
		ui.log.WithError(err).Debug("Stop ignored")
		return
	}
	ui.processingLabel.SetText(ui.localization.GetText(KeyStopping))
	ui.stopBtn.Disable()
}

// updateButtons reflects the running state and tool availability
func (ui *RootUI) updateButtons() {
	toolReady := ui.toolStatus != nil && ui.toolStatus.Available
	if ui.running || !toolReady {
		ui.startBtn.Disable()
	} else {
		ui.startBtn.Enable()
	}
	if ui.running {
		ui.stopBtn.Enable()
	} else {
		ui.stopBtn.Disable()
	}
	ui.options.SetEnabled(!ui.running)
}

// onLine receives conversion log lines from the worker goroutine
func (ui *RootUI) onLine(line string) {
	ui.logBuffer.Append(line)
	ui.debouncedUIUpdate()
}

// onTaskUpdate receives per-file updates from the worker goroutine
func (ui *RootUI) onTaskUpdate(task model.ConversionTask) {
	ui.tasksMu.Lock()
	ui.tasks[task.InputPath] = task
	ui.current = &task
	ui.tasksMu.Unlock()

	ui.debouncedUIUpdate()
}

// onBatchFinished runs once per batch on the worker goroutine
func (ui *RootUI) onBatchFinished(report model.Report) {
	fyne.Do(func() {
		ui.finishBatch(report)
	})
}

func (ui *RootUI) finishBatch(report model.Report) {
	t := ui.localization.GetText

	ui.running = false
	ui.tasksMu.Lock()
	ui.current = nil
	ui.tasksMu.Unlock()

	ui.refreshViews()
	ui.updateButtons()

	ui.log.WithFields(logrus.Fields{
		"batch":     report.BatchID,
		"processed": report.Processed,
		"total":     report.Total,
		"cancelled": report.Cancelled,
	}).Info("Batch finished")

	switch {
	case report.Cancelled:
		ui.processingLabel.SetText(t(KeyConversionStopped))
		dialog.ShowInformation(t(KeyConversionStopped),
			fmt.Sprintf(t(KeyPartialConverted), report.Processed, report.Total), ui.window)
	case report.Complete():
		ui.processingLabel.SetText(t(KeyConversionFinished))
		ui.progressBar.SetValue(1)
		dialog.ShowInformation(t(KeyConversionFinished),
			fmt.Sprintf(t(KeyAllConverted), report.Total), ui.window)
	default:
		ui.processingLabel.SetText(t(KeyConversionFinished))
		dialog.ShowInformation(t(KeyPartialTitle),
			fmt.Sprintf(t(KeyPartialConverted), report.Processed, report.Total), ui.window)
	}

	if ui.settings.GetAutoRevealOnComplete() && report.Succeeded > 0 && ui.outputDir != "" {
		if err := platform.OpenFolder(ui.outputDir); err != nil {
			ui.log.WithError(err).Warn("Auto-reveal failed")
		}
	}
}

// debouncedUIUpdate limits view refreshes to one per UIUpdateDebounce. An
// update arriving inside the window schedules a trailing refresh so the last
// line is never lost.
func (ui *RootUI) debouncedUIUpdate() {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	if ui.refreshScheduled {
		return
	}

	wait := UIUpdateDebounce - time.Since(ui.lastUIUpdate)
	if wait <= 0 {
		ui.lastUIUpdate = time.Now()
		fyne.Do(ui.refreshViews)
		return
	}

	ui.refreshScheduled = true
	time.AfterFunc(wait, func() {
		ui.uiUpdateMutex.Lock()
		ui.refreshScheduled = false
		ui.lastUIUpdate = time.Now()
		ui.uiUpdateMutex.Unlock()
		fyne.Do(ui.refreshViews)
	})
}

// refreshViews redraws the log, the file list and the batch progress. It
// must run on the UI goroutine.
func (ui *RootUI) refreshViews() {
	ui.logLines = ui.logBuffer.Lines()
	if hidden := ui.logBuffer.Dropped(); hidden > 0 {
		header := fmt.Sprintf(ui.localization.GetText(KeyLinesHidden), hidden)
		ui.logLines = append([]string{header}, ui.logLines...)
	}
	ui.logList.Refresh()
	if len(ui.logLines) > 0 {
		ui.logList.ScrollToBottom()
	}

	ui.fileList.Refresh()

	ui.tasksMu.Lock()
	current := ui.current
	ui.tasksMu.Unlock()

	if current == nil || !ui.running {
		return
	}
	if current.Total > 0 {
		ui.progressBar.SetValue((float64(current.Index) + current.Progress) / float64(current.Total))
	}
	if current.Status == model.TaskStatusRunning {
		ui.processingLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProcessing), nameOf(current.InputPath)))
	}
}

// Log

func (ui *RootUI) onClearLog() {
	ui.logBuffer.Clear()
	ui.refreshViews()
}

func (ui *RootUI) onSaveLog() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write([]byte(ui.logBuffer.String() + "\n")); err != nil {
			ui.log.WithError(err).Warn("Failed to save log")
			dialog.ShowError(err, ui.window)
			return
		}
		ui.log.WithField("path", writer.URI().Path()).Info("Log saved")
		dialog.ShowInformation(ui.localization.GetText(KeySaveLog), ui.localization.GetText(KeyLogSaved), ui.window)
	}, ui.window)
	fd.SetFileName(DefaultLogFileName)
	fd.Show()
}

// Tool status

// scheduleToolProbe re-probes the tool once its path stops changing
func (ui *RootUI) scheduleToolProbe(executable string) {
	executable = strings.TrimSpace(executable)
	if ui.toolStatus != nil && ui.toolStatus.Executable == executable {
		return
	}

	ui.probeMu.Lock()
	defer ui.probeMu.Unlock()

	if ui.probeTimer != nil {
		ui.probeTimer.Stop()
	}
	ui.probeTimer = time.AfterFunc(ToolProbeDelay, func() {
		status := ui.probe.Check(context.Background(), executable)
		fyne.Do(func() {
			if ui.options.Executable() == executable {
				ui.applyToolStatus(status, false)
			}
		})
	})
}

// applyToolStatus shows the probe result and gates the Start button.
// announce reports a missing tool in a dialog.
func (ui *RootUI) applyToolStatus(status platform.ToolStatus, announce bool) {
	t := ui.localization.GetText
	ui.toolStatus = &status

	if !status.Available {
		ui.toolLabel.Importance = widget.DangerImportance
		ui.toolLabel.SetText("✗ " + t(KeyToolMissing))
		if announce {
			dialog.ShowInformation(t(KeyToolMissing), t(KeyToolMissingDetail), ui.window)
		}
	} else {
		nvenc := t(KeyNVENCUnavailable)
		ui.toolLabel.Importance = widget.WarningImportance
		if status.NVENC {
			nvenc = t(KeyNVENCAvailable)
			ui.toolLabel.Importance = widget.SuccessImportance
		}
		ui.toolLabel.SetText("✓ " + t(KeyToolFound) + MiddleDotSeparator + nvenc)
	}
	ui.toolLabel.Refresh()
	ui.updateButtons()
}

func nameOf(path string) string {
	return filepath.Base(path)
}
