package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/playlist-downloader/internal/model"
)

// Checklist renders one check box per playlist entry. Items are a UI-side
// copy of the selection; onToggle reports user changes by index.
type Checklist struct {
	items    []model.SelectionItem
	list     *widget.List
	onToggle func(index int, selected bool)
}

// NewChecklist creates an empty checklist
func NewChecklist(onToggle func(index int, selected bool)) *Checklist {
	c := &Checklist{onToggle: onToggle}
	c.list = widget.NewList(
		func() int { return len(c.items) },
		func() fyne.CanvasObject { return widget.NewCheck("", nil) },
		c.updateItem,
	)
	return c
}

func (c *Checklist) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(c.items) {
		return
	}
	check := obj.(*widget.Check)
	item := c.items[id]

	// rows are recycled; detach the old handler before setting state
	check.OnChanged = nil
	check.SetText(TruncateTitle(item.Title))
	check.SetChecked(item.Selected)

	index := id
	check.OnChanged = func(selected bool) {
		if index < len(c.items) {
			c.items[index].Selected = selected
		}
		if c.onToggle != nil {
			c.onToggle(index, selected)
		}
	}
}

// SetItems replaces the rows
func (c *Checklist) SetItems(items []model.SelectionItem) {
	c.items = items
	c.list.Refresh()
	if len(items) > 0 {
		c.list.ScrollToTop()
	}
}

// Items returns the rows currently shown
func (c *Checklist) Items() []model.SelectionItem {
	return c.items
}

// Widget returns the underlying list
func (c *Checklist) Widget() *widget.List {
	return c.list
}

// TruncateTitle cuts a title to TitleMaxRunes runes
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= TitleMaxRunes {
		return title
	}
	return string(r[:TitleMaxRunes])
}
