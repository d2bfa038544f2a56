package ui

import (
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gdrive-downloader/internal/model"
)

// LinkRow shows one link of the running batch with its status marker
type LinkRow struct {
	widget.BaseWidget

	task *model.DownloadTask

	icon        *widget.Icon
	link        fyne.CanvasObject
	progress    *widget.ProgressBarInfinite
	progressBox *fyne.Container
	reason      *widget.Label
}

// NewLinkRow creates a row for the link at index in its "in progress" state
func NewLinkRow(taskID string, index int, rawURL string) *LinkRow {
	r := &LinkRow{
		task: &model.DownloadTask{
			ID:     taskID,
			Index:  index,
			URL:    rawURL,
			Status: model.TaskStatusDownloading,
		},
	}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.updateFromTask()
	return r
}

// Status returns the status currently shown by the row
func (r *LinkRow) Status() model.TaskStatus {
	return r.task.Status
}

// Task returns the row's view of its task
func (r *LinkRow) Task() *model.DownloadTask {
	return r.task
}

// Apply renders ev. Events after a terminal one are ignored.
func (r *LinkRow) Apply(ev model.StatusEvent) bool {
	if !r.task.Apply(ev) {
		return false
	}
	r.updateFromTask()
	r.Refresh()
	return true
}

// createUI creates the UI components
func (r *LinkRow) createUI() {
	r.icon = widget.NewIcon(nil)

	// Clicking the link opens it in the browser; unparsable input stays plain text
	if u, err := url.Parse(r.task.URL); err == nil && u.Scheme != "" {
		r.link = widget.NewHyperlink(r.task.URL, u)
	} else {
		label := widget.NewLabel(r.task.URL)
		label.Selectable = true
		r.link = label
	}

	r.progress = widget.NewProgressBarInfinite()
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(ProgressSize*4, ProgressSize))
	r.progressBox = container.NewStack(spacer, r.progress)

	r.reason = widget.NewLabel("")
	r.reason.Truncation = fyne.TextTruncateEllipsis
}

// updateFromTask updates UI components based on task state
func (r *LinkRow) updateFromTask() {
	switch r.task.Status {
	case model.TaskStatusCompleted:
		r.icon.SetResource(theme.NewSuccessThemedResource(theme.ConfirmIcon()))
		r.progress.Stop()
		r.progressBox.Hide()
		r.reason.Importance = widget.SuccessImportance
		r.reason.SetText(r.task.GetDisplayTitle())
		r.reason.Show()
	case model.TaskStatusError:
		r.icon.SetResource(theme.NewErrorThemedResource(theme.CancelIcon()))
		r.progress.Stop()
		r.progressBox.Hide()
		r.reason.Importance = widget.DangerImportance
		r.reason.SetText(r.task.LastError)
		r.reason.Show()
	default:
		r.icon.SetResource(theme.NewPrimaryThemedResource(theme.DownloadIcon()))
		if r.task.Status.IsActive() {
			r.progress.Start()
		}
		r.progressBox.Show()
		r.reason.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (r *LinkRow) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil, r.icon, r.progressBox,
		container.NewHBox(r.link, r.reason))
	return widget.NewSimpleRenderer(row)
}
