package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/gdrive-downloader/internal/config"
)

// appTheme pins the default theme to one variant regardless of the OS setting
type appTheme struct {
	variant fyne.ThemeVariant
}

// NewTheme creates the application theme for the configured variant
func NewTheme(v config.ThemeVariant) fyne.Theme {
	if v == config.ThemeLight {
		return &appTheme{variant: theme.VariantLight}
	}
	return &appTheme{variant: theme.VariantDark}
}

// Color returns theme colors
func (t *appTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 211, G: 47, B: 47, A: 255}
	}
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
