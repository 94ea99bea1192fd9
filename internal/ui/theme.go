package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// EncoderTheme tightens Fyne's default spacing so the file list, options and
// log fit in one window, and uses NVIDIA-ish green as the primary color.
type EncoderTheme struct {
	base   fyne.Theme
	colors map[fyne.ThemeColorName]color.Color
	sizes  map[fyne.ThemeSizeName]float32
}

// NewEncoderTheme creates the application theme
func NewEncoderTheme() fyne.Theme {
	return &EncoderTheme{
		base: theme.DefaultTheme(),
		colors: map[fyne.ThemeColorName]color.Color{
			theme.ColorNamePrimary: color.RGBA{R: 118, G: 185, B: 0, A: 255},
			theme.ColorNameSuccess: color.RGBA{R: 46, G: 160, B: 67, A: 255},
			theme.ColorNameError:   color.RGBA{R: 198, G: 40, B: 40, A: 255},
			theme.ColorNameWarning: color.RGBA{R: 245, G: 166, B: 35, A: 255},
		},
		sizes: map[fyne.ThemeSizeName]float32{
			theme.SizeNamePadding:        3,
			theme.SizeNameInnerPadding:   6,
			theme.SizeNameLineSpacing:    2,
			theme.SizeNameScrollBar:      12,
			theme.SizeNameText:           13,
			theme.SizeNameHeadingText:    16,
			theme.SizeNameSubHeadingText: 14,
			theme.SizeNameCaptionText:    11,
		},
	}
}

// Color returns the override for name, or the default theme color
func (t *EncoderTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := t.colors[name]; ok {
		return c
	}
	return t.base.Color(name, variant)
}

func (t *EncoderTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *EncoderTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns the compact override for name, or the default theme size
func (t *EncoderTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := t.sizes[name]; ok {
		return s
	}
	return t.base.Size(name)
}
