package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/ytfetch/internal/config"
)

// AppearanceTheme is a compact theme that can pin the light or dark variant
type AppearanceTheme struct {
	mode string
}

// NewAppearanceTheme creates a theme for one of the config.Appearance* modes
func NewAppearanceTheme(mode string) *AppearanceTheme {
	return &AppearanceTheme{mode: mode}
}

// Mode returns the appearance mode the theme was created with
func (t *AppearanceTheme) Mode() string {
	return t.mode
}

// Variant returns the variant to render with, honoring a pinned mode
func (t *AppearanceTheme) Variant(requested fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.mode {
	case config.AppearanceDark:
		return theme.VariantDark
	case config.AppearanceLight:
		return theme.VariantLight
	default:
		return requested
	}
}

// Color returns theme colors
func (t *AppearanceTheme) Color(name fyne.ThemeColorName, requested fyne.ThemeVariant) color.Color {
	variant := t.Variant(requested)

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 31, G: 106, B: 165, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 36, G: 36, B: 36, A: 255}
		}
		return color.RGBA{R: 235, G: 235, B: 235, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppearanceTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppearanceTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, slightly tighter than the default
func (t *AppearanceTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameHeadingText:
		return 18
	}

	return theme.DefaultTheme().Size(name)
}
