// Package selection holds the checklist behind the UI: one index-aligned
// list of playlist entries and their selected flags.
package selection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ytget/playlist-downloader/internal/model"
)

// ErrIndexOutOfRange is returned for indexes outside the current list
var ErrIndexOutOfRange = errors.New("selection index out of range")

// State is safe for concurrent use. Items start selected.
type State struct {
	mu    sync.RWMutex
	items []model.SelectionItem
}

// New creates an empty selection
func New() *State {
	return &State{}
}

// Replace discards the current list and installs entries, all selected
func (s *State) Replace(entries []model.PlaylistEntry) {
	items := make([]model.SelectionItem, len(entries))
	for i, e := range entries {
		items[i] = model.SelectionItem{PlaylistEntry: e, Selected: true}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Clear empties the selection
func (s *State) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// Toggle flips the selected flag at index and returns the new value
func (s *State) Toggle(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return false, err
	}
	s.items[index].Selected = !s.items[index].Selected
	return s.items[index].Selected, nil
}

// Set sets the selected flag at index
func (s *State) Set(index int, selected bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.items[index].Selected = selected
	return nil
}

// SetAll selects or deselects every item
func (s *State) SetAll(selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Selected = selected
	}
}

// Snapshot returns a copy of the selected entries in list order. Later
// toggles do not affect a snapshot already taken.
func (s *State) Snapshot() []model.PlaylistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PlaylistEntry, 0, len(s.items))
	for _, it := range s.items {
		if it.Selected {
			out = append(out, it.PlaylistEntry)
		}
	}
	return out
}

// Items returns a copy of every item with its selected flag
func (s *State) Items() []model.SelectionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.SelectionItem(nil), s.items...)
}

// Len returns the number of items
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// SelectedCount returns the number of selected items
func (s *State) SelectedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, it := range s.items {
		if it.Selected {
			n++
		}
	}
	return n
}

func (s *State) checkIndex(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	return nil
}
