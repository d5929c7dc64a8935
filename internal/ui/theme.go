package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme tightens the default theme so the checklist fits more rows
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 204, G: 32, B: 32, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 3
	}
	return theme.DefaultTheme().Size(name)
}

// ConsoleTheme renders the log panel as green monospace text on black
type ConsoleTheme struct {
	base fyne.Theme
}

// NewConsoleTheme wraps base; a nil base means the default theme
func NewConsoleTheme(base fyne.Theme) fyne.Theme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &ConsoleTheme{base: base}
}

func (t *ConsoleTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground:
		return color.Black
	case theme.ColorNameForeground:
		return color.RGBA{G: 255, A: 255}
	case theme.ColorNameHover, theme.ColorNameSelection:
		return color.RGBA{G: 64, A: 255}
	}
	return t.base.Color(name, variant)
}

func (t *ConsoleTheme) Font(style fyne.TextStyle) fyne.Resource {
	style.Monospace = true
	return t.base.Font(style)
}

func (t *ConsoleTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *ConsoleTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return 12
	}
	return t.base.Size(name)
}
