package config

import (
	"fyne.io/fyne/v2"
	"github.com/ytget/gdrive-downloader/internal/platform"
)

// Theme variants selectable in the UI
type ThemeVariant string

const (
	ThemeDark  ThemeVariant = "dark"
	ThemeLight ThemeVariant = "light"
)

// Settings keys for Fyne preferences
const (
	KeyDestinationDir     = "destination_directory"
	KeyThemeVariant       = "theme_variant"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultThemeVariant       = ThemeDark
	DefaultAutoRevealComplete = false
	FallbackDestinationDir    = "downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDestinationDirectory returns the last used destination directory,
// defaulting to the user's Downloads folder
func (s *Settings) GetDestinationDirectory() string {
	dir := s.app.Preferences().String(KeyDestinationDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDestinationDir
		}
		s.SetDestinationDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDestinationDirectory sets the destination directory
func (s *Settings) SetDestinationDirectory(dir string) {
	s.app.Preferences().SetString(KeyDestinationDir, dir)
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	switch v := ThemeVariant(s.app.Preferences().String(KeyThemeVariant)); v {
	case ThemeDark, ThemeLight:
		return v
	default:
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
}

// SetThemeVariant sets the theme variant; unknown values reset to the default
func (s *Settings) SetThemeVariant(v ThemeVariant) {
	if v != ThemeDark && v != ThemeLight {
		v = DefaultThemeVariant
	}
	s.app.Preferences().SetString(KeyThemeVariant, string(v))
}

// ToggleThemeVariant flips between dark and light and returns the new value
func (s *Settings) ToggleThemeVariant() ThemeVariant {
	next := ThemeLight
	if s.GetThemeVariant() == ThemeLight {
		next = ThemeDark
	}
	s.SetThemeVariant(next)
	return next
}

// GetAutoRevealOnComplete returns whether to open the destination folder after a batch
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the destination folder after a batch
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}
