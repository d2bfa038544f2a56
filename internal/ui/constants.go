package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Texts
const (
	AppTitle            = "Google Drive File Downloader"
	LinksPlaceholder    = "Paste links to files (one per row)"
	DownloadLabel       = "Download files"
	ChooseFolderConfirm = "Download here"
	CompletedTitle      = "Download completed!"
	NoLinksMessage      = "Paste at least one link first."
	BusyMessage         = "A batch is already running."
	SettingsTitle       = "Settings"
	RevealLabel         = "Open folder"
	SaveLabel           = "Save"
	CancelLabel         = "Cancel"
	BrowseLabel         = "Browse"
	DestinationLabel    = "Destination"
	ThemeLabel          = "Theme"
	AutoRevealLabel     = "Open the folder when a batch completes"
	DarkThemeOption     = "Dark"
	LightThemeOption    = "Light"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	SummaryFormat      = "%d of %d saved"
	FailedFormat       = "%d failed"
)

// Layout sizing
const (
	DownloadButtonWidth  float32 = 250
	DownloadButtonHeight float32 = 50
	LinksVisibleRows             = 5
	ProgressSize         float32 = 16
	WindowWidth          float32 = 800
	WindowHeight         float32 = 600
	SettingsWidth        float32 = 500
	SettingsHeight       float32 = 260
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
