package model

import (
	"fmt"
	"strings"
)

// PlaylistEntry is one item of a fetched playlist. It is immutable once
// created and is replaced wholesale by the next fetch.
type PlaylistEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SelectionItem is a playlist entry plus the user's checkbox state
type SelectionItem struct {
	PlaylistEntry
	Selected bool `json:"selected"`
}

// Playlist is the result of a single fetch
type Playlist struct {
	Title     string          `json:"title"`
	SourceURL string          `json:"source_url"`
	Entries   []PlaylistEntry `json:"entries"`
}

// NewPlaylist creates an empty playlist for the given source URL
func NewPlaylist(sourceURL string) *Playlist {
	return &Playlist{
		SourceURL: sourceURL,
		Entries:   make([]PlaylistEntry, 0),
	}
}

// AddEntry appends an entry to the playlist
func (p *Playlist) AddEntry(entry PlaylistEntry) {
	p.Entries = append(p.Entries, entry)
}

// Len returns the number of entries
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// DisplayTitle returns the title, falling back to the source URL
func (p *Playlist) DisplayTitle() string {
	if strings.TrimSpace(p.Title) != "" {
		return p.Title
	}
	return p.SourceURL
}

// PlaceholderTitle returns the title used for an entry that has none.
// ordinal is 1-based.
func PlaceholderTitle(ordinal int) string {
	return fmt.Sprintf("Video %d", ordinal)
}
