package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// LogPanel is the scrolling transcript under the checklist. It implements
// progress.Sink and must only be appended to from the UI thread.
type LogPanel struct {
	lines    binding.StringList
	list     *widget.List
	maxLines int
	content  fyne.CanvasObject
}

// NewLogPanel creates an empty panel keeping at most maxLines lines
func NewLogPanel(maxLines int) *LogPanel {
	p := &LogPanel{
		lines:    binding.NewStringList(),
		maxLines: maxLines,
	}

	p.list = widget.NewListWithData(p.lines,
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)

	bg := canvas.NewRectangle(color.Black)
	bg.SetMinSize(fyne.NewSize(0, LogPanelMinHeight))
	p.content = container.NewThemeOverride(container.NewStack(bg, p.list), NewConsoleTheme(nil))
	return p
}

// Append adds a line and scrolls to it
func (p *LogPanel) Append(line string) {
	_ = p.lines.Append(line)

	if p.maxLines > 0 && p.lines.Length() > p.maxLines {
		all, _ := p.lines.Get()
		_ = p.lines.Set(all[len(all)-p.maxLines:])
	}
	p.list.ScrollToBottom()
}

// Lines returns the current transcript
func (p *LogPanel) Lines() []string {
	all, _ := p.lines.Get()
	return all
}

// Clear empties the panel
func (p *LogPanel) Clear() {
	_ = p.lines.Set(nil)
}

// Object returns the widget tree to place in a layout
func (p *LogPanel) Object() fyne.CanvasObject {
	return p.content
}
