package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gdrive-downloader/internal/config"
	"github.com/ytget/gdrive-downloader/internal/download"
	"github.com/ytget/gdrive-downloader/internal/link"
	"github.com/ytget/gdrive-downloader/internal/model"
	"github.com/ytget/gdrive-downloader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window      fyne.Window
	app         fyne.App
	downloadSvc download.Downloader
	settings    *config.Settings
	log         *slog.Logger

	linksEntry  *widget.Entry
	downloadBtn *widget.Button
	themeBtn    *widget.Button
	linksBox    *fyne.Container

	// rows of the current batch keyed by task ID; touched on the UI goroutine only
	rows map[string]*LinkRow

	// links waiting for a destination folder; consumed once by startBatch
	pendingMu sync.Mutex
	pending   []string
	running   bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, downloadSvc download.Downloader, log *slog.Logger) *RootUI {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ui := &RootUI{
		window:      window,
		app:         app,
		downloadSvc: downloadSvc,
		settings:    settings,
		log:         log,
		rows:        make(map[string]*LinkRow),
	}

	window.SetTitle(AppTitle)
	app.Settings().SetTheme(NewTheme(settings.GetThemeVariant()))

	// Status events arrive on the batch goroutine; rows are updated on the UI goroutine
	ui.downloadSvc.SetUpdateCallback(func(ev model.StatusEvent) {
		fyne.DoAndWait(func() { ui.applyEvent(ev) })
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.linksEntry = widget.NewMultiLineEntry()
	ui.linksEntry.SetPlaceHolder(LinksPlaceholder)
	ui.linksEntry.SetMinRowsVisible(LinksVisibleRows)
	ui.linksEntry.Wrapping = fyne.TextWrapOff

	ui.downloadBtn = widget.NewButton(DownloadLabel, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.themeBtn = widget.NewButtonWithIcon("", ui.themeIcon(), ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle(AppTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, ui.themeBtn, settingsBtn, title)

	buttonRow := container.NewCenter(container.NewGridWrap(
		fyne.NewSize(DownloadButtonWidth, DownloadButtonHeight), ui.downloadBtn))

	ui.linksBox = container.NewVBox()

	top := container.NewVBox(header, ui.linksEntry, buttonRow, widget.NewSeparator())
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, container.NewVScroll(ui.linksBox)))
}

// onDownloadClick takes the pasted links and asks for a destination folder
func (ui *RootUI) onDownloadClick() {
	links := link.SplitLines(ui.linksEntry.Text)
	if !hasLinks(links) {
		dialog.ShowInformation(AppTitle, NoLinksMessage, ui.window)
		return
	}

	ui.pendingMu.Lock()
	if ui.running {
		ui.pendingMu.Unlock()
		dialog.ShowInformation(AppTitle, BusyMessage, ui.window)
		return
	}
	ui.pending = links
	ui.pendingMu.Unlock()

	ui.linksEntry.SetText("")

	folder := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.log.Error("Folder selection failed", slog.Any("error", err))
			return
		}
		if uri == nil {
			return
		}
		ui.startBatch(uri.Path())
	}, ui.window)
	folder.SetConfirmText(ChooseFolderConfirm)
	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetDestinationDirectory())); err == nil {
		folder.SetLocation(lister)
	}
	folder.Show()
}

// startBatch consumes the pending links and downloads them into dir in the background
func (ui *RootUI) startBatch(dir string) {
	ui.pendingMu.Lock()
	links := ui.pending
	ui.pending = nil
	if ui.running || len(links) == 0 {
		ui.pendingMu.Unlock()
		return
	}
	ui.running = true
	ui.pendingMu.Unlock()

	ui.settings.SetDestinationDirectory(dir)
	ui.clearRows()
	ui.downloadBtn.Disable()

	go func() {
		result := ui.downloadSvc.DownloadAll(context.Background(), links, dir)
		fyne.Do(func() { ui.finishBatch(result) })
	}()
}

// applyEvent creates the row on enqueue and updates it afterwards
func (ui *RootUI) applyEvent(ev model.StatusEvent) {
	row, ok := ui.rows[ev.TaskID]
	if !ok {
		row = NewLinkRow(ev.TaskID, ev.Index, ev.URL)
		ui.rows[ev.TaskID] = row
		ui.linksBox.Add(row)
	}
	if !row.Apply(ev) && ev.IsTerminal() {
		ui.log.Warn("Ignored repeated terminal status", slog.String("task", ev.TaskID))
	}
}

// clearRows removes the rows of the previous batch
func (ui *RootUI) clearRows() {
	ui.rows = make(map[string]*LinkRow)
	ui.linksBox.RemoveAll()
}

// finishBatch notifies the user once the whole batch has terminated
func (ui *RootUI) finishBatch(result *model.BatchResult) {
	ui.pendingMu.Lock()
	ui.running = false
	ui.pendingMu.Unlock()
	ui.downloadBtn.Enable()

	if result.Succeeded() == 0 {
		return
	}

	ui.showToastNotification(result)

	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealFolder(result.Destination)
	}
}

// onToggleTheme switches between dark and light
func (ui *RootUI) onToggleTheme() {
	ui.applyTheme(ui.settings.ToggleThemeVariant())
}

func (ui *RootUI) applyTheme(v config.ThemeVariant) {
	ui.app.Settings().SetTheme(NewTheme(v))
	ui.themeBtn.SetIcon(ui.themeIcon())
}

func (ui *RootUI) themeIcon() fyne.Resource {
	if ui.settings.GetThemeVariant() == config.ThemeDark {
		return theme.VisibilityOffIcon()
	}
	return theme.VisibilityIcon()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.applyTheme).Show()
}

// onRevealFolder opens dir in the system file manager
func (ui *RootUI) onRevealFolder(dir string) {
	if err := platform.OpenFolderInManager(dir); err != nil {
		ui.log.Error("Failed to open folder", slog.String("path", dir), slog.Any("error", err))
		dialog.ShowError(err, ui.window)
	}
}

// showToastNotification shows an in-app toast with the batch summary
func (ui *RootUI) showToastNotification(result *model.BatchResult) {
	titleLabel := widget.NewLabel(CompletedTitle)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(summary(result))
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(RevealLabel, func() {
		ui.onRevealFolder(result.Destination)
	})
	revealBtn.Importance = widget.HighImportance

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(header, messageLabel, container.NewHBox(revealBtn))

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

// summary formats the toast message, e.g. "3 of 4 saved · 1 failed"
func summary(result *model.BatchResult) string {
	text := fmt.Sprintf(SummaryFormat, result.Succeeded(), result.Total())
	if failed := result.Failed(); failed > 0 {
		text += MiddleDotSeparator + fmt.Sprintf(FailedFormat, failed)
	}
	return text
}

func hasLinks(links []string) bool {
	for _, l := range links {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
