package ui

import "fyne.io/fyne/v2"

// Window
var (
	WindowSize = fyne.NewSize(700, 600)
)

// Checklist and log panel
const (
	// TitleMaxRunes caps checklist labels; longer titles are cut, not wrapped
	TitleMaxRunes = 80

	// LogMaxLines bounds the log panel; the oldest lines are dropped first
	LogMaxLines = 2000

	LogPanelMinHeight float32 = 180
)

// Icons
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	SelectionCountFormat = "%d / %d"
)
