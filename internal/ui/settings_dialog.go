package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gdrive-downloader/internal/config"
)

// SettingsDialog edits the persisted preferences
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// onThemeChanged is called after a different theme was saved
	onThemeChanged func(config.ThemeVariant)

	destinationEntry *widget.Entry
	themeRadio       *widget.RadioGroup
	autoRevealCheck  *widget.Check
}

// NewSettingsDialog creates a settings dialog bound to settings
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onThemeChanged func(config.ThemeVariant)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:       settings,
		window:         window,
		onThemeChanged: onThemeChanged,
	}
	sd.createUI()
	return sd
}

// Show loads the stored values and displays the dialog
func (sd *SettingsDialog) Show() {
	sd.load()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.destinationEntry = widget.NewEntry()
	browse := widget.NewButton(BrowseLabel, sd.onBrowse)

	sd.themeRadio = widget.NewRadioGroup([]string{DarkThemeOption, LightThemeOption}, nil)
	sd.themeRadio.Horizontal = true
	sd.themeRadio.Required = true

	sd.autoRevealCheck = widget.NewCheck(AutoRevealLabel, nil)

	form := widget.NewForm(
		widget.NewFormItem(DestinationLabel, container.NewBorder(nil, nil, nil, browse, sd.destinationEntry)),
		widget.NewFormItem(ThemeLabel, sd.themeRadio),
		widget.NewFormItem("", sd.autoRevealCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(SettingsTitle, SaveLabel, CancelLabel, form, sd.onSave, sd.window)
	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

func (sd *SettingsDialog) load() {
	sd.destinationEntry.SetText(sd.settings.GetDestinationDirectory())
	sd.themeRadio.SetSelected(themeOption(sd.settings.GetThemeVariant()))
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

func (sd *SettingsDialog) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.destinationEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave stores the edited values when confirmed
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.destinationEntry.Text); dir != "" {
		sd.settings.SetDestinationDirectory(dir)
	}
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	variant := themeVariant(sd.themeRadio.Selected)
	if variant != sd.settings.GetThemeVariant() {
		sd.settings.SetThemeVariant(variant)
		if sd.onThemeChanged != nil {
			sd.onThemeChanged(variant)
		}
	}
}

func themeOption(v config.ThemeVariant) string {
	if v == config.ThemeLight {
		return LightThemeOption
	}
	return DarkThemeOption
}

func themeVariant(option string) config.ThemeVariant {
	if option == LightThemeOption {
		return config.ThemeLight
	}
	return config.ThemeDark
}
