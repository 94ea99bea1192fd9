package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/nvenc-encoder/internal/model"
)

// FileRow renders one input file of the list together with the state of its
// conversion in the current or last batch.
type FileRow struct {
	widget.BaseWidget

	file  model.InputFile
	task  *model.ConversionTask
	local *Localization

	nameLabel    *widget.Label
	pathLabel    *widget.Label
	sizeLabel    *widget.Label
	statusLabel  *widget.Label
	percentLabel *widget.Label
	progressBar  *widget.ProgressBar
}

// NewFileRow creates an empty row; list templates fill it via Update
func NewFileRow(localization *Localization) *FileRow {
	fr := &FileRow{local: localization}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

func (fr *FileRow) createUI() {
	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.pathLabel = widget.NewLabel("")
	fr.pathLabel.Truncation = fyne.TextTruncateEllipsis
	fr.pathLabel.TextStyle = fyne.TextStyle{Italic: true}

	fr.sizeLabel = widget.NewLabel("")
	fr.sizeLabel.Alignment = fyne.TextAlignTrailing

	fr.statusLabel = widget.NewLabel("")
	fr.statusLabel.Alignment = fyne.TextAlignTrailing

	fr.percentLabel = widget.NewLabel("")
	fr.percentLabel.Alignment = fyne.TextAlignTrailing
	fr.percentLabel.TextStyle = fyne.TextStyle{Monospace: true}

	fr.progressBar = widget.NewProgressBar()
	fr.progressBar.TextFormatter = func() string { return "" }
	fr.progressBar.Hide()
}

// Update shows file and, when non-nil, the state of its conversion task
func (fr *FileRow) Update(file model.InputFile, task *model.ConversionTask) {
	fr.file = file
	fr.task = task

	fr.nameLabel.SetText(file.Name)
	fr.pathLabel.SetText(file.Path)
	fr.sizeLabel.SetText(file.DisplaySize())

	if task == nil {
		fr.statusLabel.Importance = widget.MediumImportance
		fr.statusLabel.SetText("")
		fr.percentLabel.SetText("")
		fr.progressBar.Hide()
		return
	}

	fr.statusLabel.Importance = statusImportance(task.Status)
	fr.statusLabel.SetText(statusText(task.Status))
	fr.statusLabel.Refresh()

	switch task.Status {
	case model.TaskStatusRunning, model.TaskStatusStopping:
		fr.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, task.Percent))
		fr.progressBar.SetValue(task.Progress)
		fr.progressBar.Show()
	default:
		fr.percentLabel.SetText("")
		fr.progressBar.Hide()
	}
}

// statusImportance maps a task status to label coloring
func statusImportance(status model.TaskStatus) widget.Importance {
	switch status {
	case model.TaskStatusCompleted:
		return widget.SuccessImportance
	case model.TaskStatusFailed, model.TaskStatusError:
		return widget.DangerImportance
	case model.TaskStatusRunning:
		return widget.HighImportance
	case model.TaskStatusStopping, model.TaskStatusStopped:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}

func statusText(status model.TaskStatus) string {
	switch status {
	case model.TaskStatusCompleted:
		return "✓ " + status.String()
	case model.TaskStatusFailed, model.TaskStatusError:
		return "✗ " + status.String()
	case model.TaskStatusRunning:
		return "▶ " + status.String()
	case model.TaskStatusStopped:
		return "■ " + status.String()
	case model.TaskStatusPending:
		return "⏳ " + status.String()
	default:
		return status.String()
	}
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	right := container.NewHBox(
		fixedWidth(SizeLabelWidth, fr.sizeLabel),
		fixedWidth(StatusLabelWidth, fr.statusLabel),
		fixedWidth(PercentLabelWidth, fr.percentLabel),
	)
	left := container.NewVBox(fr.nameLabel, fr.pathLabel)
	main := container.NewBorder(nil, fr.progressBar, nil, right, left)

	return widget.NewSimpleRenderer(main)
}

// MinSize keeps rows readable inside narrow windows
func (fr *FileRow) MinSize() fyne.Size {
	size := fr.BaseWidget.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}
